package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/passwords"
	"github.com/sbilibin2017/gw-users-items/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"a@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), "a@x.com", "secret").
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":true,"items":[]}`,
		},
		{
			name: "email already registered",
			body: `{"email":"a@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), "a@x.com", "secret").
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Email already registered"}`,
		},
		{
			name: "internal server error",
			body: `{"email":"a@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), "a@x.com", "secret").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
		{
			name:         "malformed email",
			body:         `{"email":"not-an-email","password":"secret"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"email: failed on 'email'"}`,
		},
		{
			name:         "missing password",
			body:         `{"email":"a@x.com"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"password: failed on 'required'"}`,
		},
		{
			name: "password of exactly 72 bytes",
			body: `{"email":"a@x.com","password":"` + strings.Repeat("p", 72) + `"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), "a@x.com", strings.Repeat("p", 72)).
					Return(&models.User{ID: 1, Email: "a@x.com", IsActive: true, Items: []models.Item{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"email":"a@x.com","is_active":true,"items":[]}`,
		},
		{
			name:         "password over 72 bytes",
			body:         `{"email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"password: failed on 'maxbytes'"}`,
		},
		{
			name:         "multibyte password over 72 bytes",
			body:         `{"email":"a@x.com","password":"` + strings.Repeat("é", 37) + `"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"password: failed on 'maxbytes'"}`,
		},
		{
			name: "hasher rejects password length",
			body: `{"email":"a@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), "a@x.com", "secret").
					Return(nil, passwords.ErrPasswordTooLong)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"password: failed on 'maxbytes'"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPost, "/users/", "/users/", tt.body, NewCreateUserHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
