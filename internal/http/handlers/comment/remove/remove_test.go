package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
)

// Мок сервиса с методом Remove
type CommentServiceMock struct {
	mock.Mock
}

func (m *CommentServiceMock) Remove(ctx context.Context, id, userUID string) error {
	args := m.Called(ctx, id, userUID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		userUID        string
		mockErr        error
		wantStatusCode int
	}{
		{
			name:           "owner removes own comment",
			userUID:        "uid-1",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "foreign comment gives 403",
			userUID:        "uid-2",
			mockErr:        services.ErrNotOwner,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "missing comment gives 404",
			userUID:        "uid-1",
			mockErr:        services.ErrCommentNotFound,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "unauthenticated gives 401",
			userUID:        "",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(CommentServiceMock)
			if tt.userUID != "" {
				svcMock.On("Remove", mock.Anything, "c-1", tt.userUID).Return(tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svcMock)

			r := chi.NewRouter()
			r.Delete("/comments/{id}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodDelete, "/comments/c-1", nil)
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}
