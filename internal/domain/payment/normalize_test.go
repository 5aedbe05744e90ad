package payment

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExpiry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw       string
		wantMonth string
		wantYear  string
	}{
		{raw: "12 / 25", wantMonth: "12", wantYear: "2025"},
		{raw: "12/25", wantMonth: "12", wantYear: "2025"},
		{raw: "01/00", wantMonth: "01", wantYear: "2000"},
		{raw: " 07 /2031 ", wantMonth: "07", wantYear: "2031"},
		{raw: "12/2025", wantMonth: "12", wantYear: "2025"},
		{raw: "1225", wantMonth: "1225", wantYear: ""},
		{raw: "ab/cd", wantMonth: "ab", wantYear: "cd"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			month, year := NormalizeExpiry(tc.raw)

			assert.Equal(t, tc.wantMonth, month)
			assert.Equal(t, tc.wantYear, year)
		})
	}
}

func TestNormalizeExpiry_TwoDigitYears(t *testing.T) {
	t.Parallel()

	for yy := 0; yy < 100; yy++ {
		_, year := NormalizeExpiry(fmt.Sprintf("06/%02d", yy))

		got, err := strconv.Atoi(year)
		require.NoError(t, err)
		assert.Equal(t, 2000+yy, got)
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"4111 1111 1111 1111":   "4111111111111111",
		"4111111111111111":      "4111111111111111",
		" 4111\t1111 1111\n1111": "4111111111111111",
		"":                      "",
	}

	for raw, want := range testCases {
		assert.Equal(t, want, NormalizeCardNumber(raw), "input %q", raw)
	}
}
