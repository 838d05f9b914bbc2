package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDeleteUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "deleted",
			target: "/users/1",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"User deleted successfully"}`,
		},
		{
			name:   "not found",
			target: "/users/404",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(404)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found"}`,
		},
		{
			name:   "internal server error",
			target: "/users/1",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodDelete, "/users/{user_id}", tt.target, "", NewDeleteUserHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
