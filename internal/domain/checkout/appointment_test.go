package checkout

import (
	"context"
	"errors"
	"testing"

	"CardCheckout/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizeAppointmentDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "2026-11-02", want: "2026-11-02"},
		{raw: "11/02/2026", want: "2026-11-02"},
		{raw: "2026/11/02", want: "2026-11-02"},
		{raw: "November 2, 2026", want: "2026-11-02"},
		{raw: "Nov 2, 2026", want: "2026-11-02"},
		{raw: "2026-11-02T10:00:00Z", want: "2026-11-02"},
		{raw: " 2026-11-02 ", want: "2026-11-02"},
		{raw: "", wantErr: true},
		{raw: "next tuesday", wantErr: true},
		{raw: "2026-13-40", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeAppointmentDate(tc.raw)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAppointmentDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func appointmentGate(t *testing.T) (*AppointmentGate, *order.MockOrderRepo, *MockSessionStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	orders := order.NewMockOrderRepo(ctrl)
	sessions := NewMockSessionStore(ctrl)

	return NewAppointmentGate(orders, sessions), orders, sessions
}

func TestAppointmentGate_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		values  map[string]string
		wantMsg string
	}{
		{name: "present", values: map[string]string{AppointmentDateKey: "11/02/2026"}},
		{name: "missing", values: map[string]string{}, wantMsg: msgAppointmentRequired},
		{name: "blank", values: map[string]string{AppointmentDateKey: "   "}, wantMsg: msgAppointmentRequired},
		{name: "unparseable", values: map[string]string{AppointmentDateKey: "soon"}, wantMsg: msgAppointmentInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			gate, _, _ := appointmentGate(t)
			rc := NewRequestContext("", tc.values, MapSource(SourceRequest, tc.values))

			// when
			problems := gate.Validate(context.Background(), rc)

			// then
			if tc.wantMsg == "" {
				assert.Empty(t, problems)
				return
			}
			require.Len(t, problems, 1)
			assert.Equal(t, AppointmentDateKey, problems[0].Field)
			assert.Equal(t, tc.wantMsg, problems[0].Message)
		})
	}
}

func TestAppointmentGate_OnOrderPlaced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o := order.Order{ID: "1001"}

	t.Run("should store the date and leave session and cookie alone", func(t *testing.T) {
		t.Parallel()

		// given
		gate, orders, _ := appointmentGate(t)
		rc := NewRequestContext("sid", nil,
			MapSource(SourceSession, map[string]string{AppointmentDateKey: "Nov 2, 2026"}))
		orders.EXPECT().SetMeta(ctx, "1001", AppointmentDateKey, "2026-11-02").Return(nil)

		// when
		err := gate.OnOrderPlaced(ctx, o, rc)

		// then
		require.NoError(t, err)
		assert.Empty(t, rc.ExpiredCookies())
	})

	t.Run("should fail when metadata cannot be written", func(t *testing.T) {
		t.Parallel()

		gate, orders, _ := appointmentGate(t)
		rc := NewRequestContext("", nil,
			MapSource(SourceRequest, map[string]string{AppointmentDateKey: "2026-11-02"}))
		orders.EXPECT().SetMeta(ctx, "1001", AppointmentDateKey, "2026-11-02").Return(errors.New("db down"))

		err := gate.OnOrderPlaced(ctx, o, rc)

		assert.EqualError(t, err, "store appointment date: db down")
		assert.Empty(t, rc.ExpiredCookies())
	})
}

func TestAppointmentGate_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should store the normalized date", func(t *testing.T) {
		t.Parallel()

		gate, _, sessions := appointmentGate(t)
		sessions.EXPECT().Set(ctx, "sid", AppointmentDateKey, "2026-11-02").Return(nil)

		date, err := gate.Save(ctx, "sid", "11/02/2026")

		require.NoError(t, err)
		assert.Equal(t, "2026-11-02", date)
	})

	t.Run("should reject an invalid date without touching the session", func(t *testing.T) {
		t.Parallel()

		gate, _, _ := appointmentGate(t)

		_, err := gate.Save(ctx, "sid", "whenever")

		assert.ErrorIs(t, err, ErrInvalidAppointmentDate)
		assert.Equal(t, KindValidationFailed, KindOf(err))
		assert.Equal(t, "Appointment Date is not a valid date. Go to the previous step and select a date.", err.Error())
	})

	t.Run("should ask for a date when none was sent", func(t *testing.T) {
		t.Parallel()

		gate, _, _ := appointmentGate(t)

		_, err := gate.Save(ctx, "sid", "  ")

		assert.Equal(t, "Appointment Date is a required field. Go to the previous step and select a date.", err.Error())
	})
}

func TestAppointmentGate_OnOrderPaid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o := order.Order{ID: "1001"}

	t.Run("should clear session and cookie", func(t *testing.T) {
		t.Parallel()

		// given
		gate, _, sessions := appointmentGate(t)
		rc := NewRequestContext("sid", nil)
		sessions.EXPECT().Delete(ctx, "sid", AppointmentDateKey).Return(nil)

		// when
		gate.OnOrderPaid(ctx, o, rc)

		// then
		assert.Equal(t, []string{AppointmentDateKey}, rc.ExpiredCookies())
	})

	t.Run("should ignore session cleanup failures", func(t *testing.T) {
		t.Parallel()

		gate, _, sessions := appointmentGate(t)
		rc := NewRequestContext("sid", nil)
		sessions.EXPECT().Delete(ctx, "sid", AppointmentDateKey).Return(errors.New("db down"))

		gate.OnOrderPaid(ctx, o, rc)

		assert.Equal(t, []string{AppointmentDateKey}, rc.ExpiredCookies())
	})

	t.Run("should only expire the cookie without a session", func(t *testing.T) {
		t.Parallel()

		gate, _, _ := appointmentGate(t)
		rc := NewRequestContext("", nil)

		gate.OnOrderPaid(ctx, o, rc)

		assert.Equal(t, []string{AppointmentDateKey}, rc.ExpiredCookies())
	})
}
