package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"messenger-service/internal/observability"
	"messenger-service/internal/repositories"
	"messenger-service/internal/telemetry"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	userRepo repositories.UserRepository
	emitter  *telemetry.AuditEmitter
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(userRepo repositories.UserRepository, emitter *telemetry.AuditEmitter) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, emitter: emitter}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account with a freshly generated id.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid request body")
		return
	}

	user, err := h.userRepo.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			observability.IncRegistration("taken")
			respondError(c, "username already taken")
			return
		}
		observability.IncRegistration("error")
		respondError(c, "server error")
		return
	}

	observability.IncRegistration("success")
	h.emitter.Emit(c.Request.Context(), "INFO", "user registered", requestIDFromContext(c), user.Username, observability.IPFromRequest(c.Request))
	respondSuccess(c, gin.H{"user_id": user.ID, "username": user.Username})
}

// Login matches the supplied credentials verbatim against the users table.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid request body")
		return
	}

	user, err := h.userRepo.GetByCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCredentials) {
			observability.IncLogin("rejected")
			h.emitter.Emit(c.Request.Context(), "WARN", "login rejected", requestIDFromContext(c), req.Username, observability.IPFromRequest(c.Request))
			respondError(c, "invalid credentials")
			return
		}
		observability.IncLogin("error")
		respondError(c, "server error")
		return
	}

	observability.IncLogin("success")
	h.emitter.Emit(c.Request.Context(), "INFO", "user logged in", requestIDFromContext(c), user.Username, observability.IPFromRequest(c.Request))
	respondSuccess(c, gin.H{"user_id": user.ID, "username": user.Username})
}
