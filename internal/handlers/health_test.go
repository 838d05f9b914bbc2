package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("healthy", func(t *testing.T) {
		db := NewMockPinger(ctrl)
		db.EXPECT().PingContext(gomock.Any()).Return(nil)

		rr := serve(http.MethodGet, "/health", "/health", "", NewHealthHandler(db))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		db := NewMockPinger(ctrl)
		db.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

		rr := serve(http.MethodGet, "/health", "/health", "", NewHealthHandler(db))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"unhealthy"}`, rr.Body.String())
	})
}
