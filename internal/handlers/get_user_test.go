package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/users/1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":true,"items":[]}`,
		},
		{
			name:   "not found",
			target: "/users/404",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(404)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found"}`,
		},
		{
			name:         "invalid id",
			target:       "/users/abc",
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"user_id must be an integer"}`,
		},
		{
			name:   "internal server error",
			target: "/users/1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodGet, "/users/{user_id}", tt.target, "", NewGetUserHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetUserByEmailHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserByEmailGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/users/email/a@x.com",
			mockSetup: func(m *MockUserByEmailGetter) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":true,"items":[]}`,
		},
		{
			name:   "escaped email",
			target: "/users/email/a%40x.com",
			mockSetup: func(m *MockUserByEmailGetter) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":true,"items":[]}`,
		},
		{
			name:   "not found",
			target: "/users/email/nobody@x.com",
			mockSetup: func(m *MockUserByEmailGetter) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserByEmailGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodGet, "/users/email/{email}", tt.target, "", NewGetUserByEmailHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
