package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "only is_active",
			target: "/users/1",
			body:   `{"is_active":false}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{IsActive: boolPtr(false)}).
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: false, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":false,"items":[]}`,
		},
		{
			name:   "both fields",
			target: "/users/1",
			body:   `{"email":"b@x.com","is_active":true}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{Email: strPtr("b@x.com"), IsActive: boolPtr(true)}).
					Return(&models.User{ID: 1, Email: "b@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"b@x.com","is_active":true,"items":[]}`,
		},
		{
			name:   "not found",
			target: "/users/404",
			body:   `{"is_active":false}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), int64(404), gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found"}`,
		},
		{
			name:   "email taken",
			target: "/users/1",
			body:   `{"email":"b@x.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Email already registered"}`,
		},
		{
			name:         "malformed email",
			target:       "/users/1",
			body:         `{"email":"nope"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"email: failed on 'email'"}`,
		},
		{
			name:   "internal server error",
			target: "/users/1",
			body:   `{}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserUpdate{}).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPut, "/users/{user_id}", tt.target, tt.body, NewUpdateUserHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
