// Package login реализует HTTP-обработчик входа с серверной сессией.
//
// В отличие от входа по токену, успех здесь выставляет HTTP-only cookie
// с непрозрачным идентификатором сессии. Каждый вход создает новую сессию,
// старые идентификаторы не переиспользуются.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
)

// Request — структура входных данных для входа.
// Username принимает имя пользователя либо email.
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=254"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики входа с сессией.
type Service interface {
	LoginSession(ctx context.Context, identifier, password string) (string, *services.Identity, error)
}

// CookieFactory формирует cookie с идентификатором сессии.
type CookieFactory interface {
	NewCookie(id string) *http.Cookie
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookies  CookieFactory
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером, сервисом и фабрикой cookie.
func New(log *slog.Logger, service Service, cookies CookieFactory) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookies:  cookies,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход с серверной сессией
// @Description Аутентифицирует пользователя и выставляет HTTP-only cookie с идентификатором сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} map[string]any "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.secret.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	sessionID, identity, err := h.service.LoginSession(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("invalid credentials", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login"))
		return
	}

	http.SetCookie(w, h.cookies.NewCookie(sessionID))

	log.Info("session login success", slog.String("username", identity.Username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"username": identity.Username,
		"role":     identity.Role,
	}))
}
