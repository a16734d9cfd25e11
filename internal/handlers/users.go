package handlers

import (
	"github.com/gin-gonic/gin"

	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

// UserHandler serves the user directory and search.
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler builds a UserHandler.
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers returns every user's directory projection.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "server error")
		return
	}
	respondSuccess(c, gin.H{"users": summaries(users)})
}

// SearchUsers returns users whose username contains the path fragment.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.userRepo.SearchUsers(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, "search error")
		return
	}
	respondSuccess(c, gin.H{"users": summaries(users)})
}

func summaries(users []models.User) []models.UserSummary {
	result := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		result = append(result, u.Summary())
	}
	return result
}
