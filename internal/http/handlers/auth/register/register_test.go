package register

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
)

// Мок сервиса с методом Register
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantError      string
		wantToken      string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Username: "user1",
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockToken:      "token-abc",
			mockUser:       &models.User{UID: "uid-1", Username: "user1", Role: "user"},
			wantStatusCode: http.StatusOK,
			wantToken:      "token-abc",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Username: "user1",
				Email:    "user1@example.com",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
		},
		{
			name: "duplicate username",
			requestBody: Request{
				Username: "user1",
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockErr:        services.ErrUserExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "user already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("Register", mock.Anything, "user1", "user1@example.com", "password123").
					Return(tt.mockToken, tt.mockUser, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, "Error", resp["status"])
				assert.Equal(t, tt.wantError, resp["error"])
			} else {
				assert.Equal(t, "OK", resp["status"])
				data := resp["data"].(map[string]any)
				assert.Equal(t, "uid-1", data["uid"])
				// Регистрация сразу логинит: в ответе есть токен
				assert.Equal(t, tt.wantToken, data["token"])
			}
			authMock.AssertExpectations(t)
		})
	}
}
