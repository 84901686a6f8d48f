package create

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
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/f1"
)

// Мок сервиса с методом CreateDriver
type F1ServiceMock struct {
	mock.Mock
}

func (m *F1ServiceMock) CreateDriver(ctx context.Context, req models.DummyDriver) (*models.Driver, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func validRequest() models.DummyDriver {
	return models.DummyDriver{
		Num:         16,
		Code:        "LEC",
		Forename:    "Charles",
		Surname:     "Leclerc",
		DOB:         "16-10-1997",
		Nationality: "MON",
		TeamID:      "0b2cc2f7-dd4c-44fc-b02f-82c55a1b8a3f",
	}
}

func TestCreateDriverHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockDriver     *models.Driver
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "пилот создан",
			requestBody:    validRequest(),
			mockDriver:     &models.Driver{ID: "driver-1", Code: "LEC"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "неизвестная команда дает 400",
			requestBody:    validRequest(),
			mockErr:        services.ErrTeamNotFound,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "team not found",
		},
		{
			name:           "некорректный json",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f1Mock := new(F1ServiceMock)
			if tt.mockDriver != nil || tt.mockErr != nil {
				f1Mock.On("CreateDriver", mock.Anything, mock.Anything).
					Return(tt.mockDriver, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), f1Mock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader(bodyBytes))
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
				assert.Equal(t, "driver-1", data["id"])
			}
			f1Mock.AssertExpectations(t)
		})
	}
}
