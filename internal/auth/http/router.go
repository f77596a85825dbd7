package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AlibekovAA/caption-studio/backend/internal/auth/service"
	authdto "github.com/AlibekovAA/caption-studio/backend/internal/auth/service/dto"
	"github.com/AlibekovAA/caption-studio/backend/internal/auth/service/mapper"
	commonhttp "github.com/AlibekovAA/caption-studio/backend/internal/common/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    authdto.User `json:"user"`
	Token   string       `json:"token"`
}

type usersResponse struct {
	Count int            `json:"count"`
	Users []authdto.User `json:"users"`
}

type Handler struct {
	auth         *service.AuthService
	log          *logger.Logger
	errorHandler *commonhttp.ErrorHandler
	timeout      time.Duration
}

func NewHandler(auth *service.AuthService, requestTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		auth:         auth,
		log:          log,
		errorHandler: commonhttp.NewErrorHandler(log),
		timeout:      requestTimeout,
	}
}

// Routes mounts the auth endpoints under /api/auth.
func (h *Handler) Routes(r chi.Router) {
	withTimeout := commonhttp.WithTimeout(h.timeout)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", withTimeout(h.signup))
		r.Post("/login", withTimeout(h.login))
		r.Get("/users", withTimeout(h.users))
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "signup_invalid_json",
		}).Warnf("signup failed: invalid json: %v", err)
		commonhttp.WriteDecodeError(w, r, err)
		return
	}

	result, err := h.auth.Signup(r.Context(), service.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errorHandler.HandleError(w, r, err, "Registration failed")
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    mapper.UserToDTO(result.User),
		Token:   result.AccessToken,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "login_invalid_json",
		}).Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteDecodeError(w, r, err)
		return
	}

	result, err := h.auth.Login(r.Context(), service.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errorHandler.HandleError(w, r, err, "Login failed")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		User:    mapper.UserToDTO(result.User),
		Token:   result.AccessToken,
	})
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err, "Failed to fetch users")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, usersResponse{
		Count: len(users),
		Users: mapper.UsersToDTO(users),
	})
}
