package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/mocks"
	"messenger-service/internal/models"
)

func setupUserRouter(handler *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users", handler.ListUsers)
	r.GET("/search/:username", handler.SearchUsers)
	return r
}

func TestListUsersSuccess(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo)
	router := setupUserRouter(handler)

	userRepo.On("ListUsers", mock.Anything).Return([]models.User{
		{ID: "1", Username: "alexey", Password: "123456"},
		{ID: "2", Username: "maria", Password: "123456"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])

	users := resp["users"].([]any)
	require.Len(t, users, 2)
	first := users[0].(map[string]any)
	assert.Equal(t, "alexey", first["username"])
	assert.Equal(t, models.DefaultAvatar, first["avatar"])
	// the password never leaves the directory projection
	assert.NotContains(t, first, "password")
	userRepo.AssertExpectations(t)
}

func TestListUsersRepoError(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo)
	router := setupUserRouter(handler)

	userRepo.On("ListUsers", mock.Anything).Return(([]models.User)(nil), assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "error", resp["status"])
	userRepo.AssertExpectations(t)
}

func TestSearchUsersPassesFragment(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo)
	router := setupUserRouter(handler)

	userRepo.On("SearchUsers", mock.Anything, "ale").Return([]models.User{
		{ID: "1", Username: "alexey"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/search/ale", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	users := resp["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "alexey", users[0].(map[string]any)["username"])
	userRepo.AssertExpectations(t)
}

func TestSearchUsersEmptyResult(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewUserHandler(userRepo)
	router := setupUserRouter(handler)

	userRepo.On("SearchUsers", mock.Anything, "zzz").Return([]models.User{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/search/zzz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Empty(t, resp["users"])
	userRepo.AssertExpectations(t)
}
