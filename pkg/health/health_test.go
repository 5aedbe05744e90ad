package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	t.Run("should be up with no checkers", func(t *testing.T) {
		resp := NewRegistry().CheckAll(context.Background())

		assert.Equal(t, StatusUp, resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("should be down when any checker is down", func(t *testing.T) {
		registry := NewRegistry(NewPostgresChecker(stubPinger{}))
		registry.Register(NewPostgresChecker(stubPinger{err: errors.New("connection refused")}))

		resp := registry.CheckAll(context.Background())

		assert.Equal(t, StatusDown, resp.Status)
		require.Len(t, resp.Checks, 2)
		assert.Equal(t, StatusUp, resp.Checks[0].Status)
		assert.Equal(t, "connection refused", resp.Checks[1].Message)
	})
}

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   Status
	}{
		{name: "should return 200 when postgres is up", wantStatus: http.StatusOK, wantBody: StatusUp},
		{name: "should return 503 when postgres is down", pingErr: errors.New("down"), wantStatus: http.StatusServiceUnavailable, wantBody: StatusDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			engine := gin.New()
			engine.GET("/health/ready", ReadinessHandler(NewRegistry(NewPostgresChecker(stubPinger{err: tc.pingErr})), DefaultTimeout))
			rec := httptest.NewRecorder()

			// when
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			// then
			assert.Equal(t, tc.wantStatus, rec.Code)
			var body ReadinessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body.Status)
		})
	}
}

func TestCheckFunc(t *testing.T) {
	t.Parallel()

	// given
	checker := NewCheckFunc("globalpayments", func(context.Context) Result {
		return Result{Status: StatusUp, Message: "card payments unavailable"}
	})

	// when
	resp := NewRegistry(checker).CheckAll(context.Background())

	// then
	assert.Equal(t, StatusUp, resp.Status)
	require.Len(t, resp.Checks, 1)
	assert.Equal(t, "globalpayments", resp.Checks[0].Name)
	assert.Equal(t, "card payments unavailable", resp.Checks[0].Message)
}
