package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration, listing, token issuance and roles.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users. Registration is idempotent by
// email.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	registered, err := h.Service.Register(u)
	if err != nil {
		logger.Error("failed to register user", zap.String("email", u.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to register user", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, registered)
}

// GetAllUsersHandler handles GET /users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	users, err := h.Service.GetAll()
	if err != nil {
		logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to list users", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, users)
}

// IssueTokenHandler handles GET /jwt?email=. A token is only issued for a
// known email.
func (h *UserHandler) IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "An email query parameter is required", "")
		return
	}

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownEmail) {
			utils.JSONError(c, http.StatusUnauthorized, "Unknown email", "")
			return
		}
		logger.Error("failed to issue token", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to issue token", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token})
}

// CheckAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	admin, err := h.Service.IsAdmin(email)
	if err != nil {
		logger.Error("failed to check role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to check role", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"isAdmin": admin})
}

// GrantAdminHandler handles PUT /users/admin/:id. Only updates an existing
// user; granting a role never creates one.
func (h *UserHandler) GrantAdminHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.GrantAdmin(id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("failed to grant admin", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to grant admin role", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Admin role granted"})
}
