package http

import (
	"net/http"
	"time"

	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"John"`
	LastName  string `json:"last_name" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginRequest accepts either email+password or a refresh token, never both.
type LoginRequest struct {
	Email        string `json:"email" binding:"omitempty,email" example:"john.doe@example.com"`
	Password     string `json:"password" example:"password123"`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOi..."`
}

type UserDTO struct {
	UserID    uuid.UUID `json:"user_id" example:"12bd787e-05d0-44eb-97e2-8f10e3a564e2"`
	FirstName string    `json:"first_name" example:"John"`
	LastName  string    `json:"last_name" example:"Doe"`
	Email     string    `json:"email" example:"john.doe@example.com"`
}

func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func NewAuthHandler(
	authService ports.AuthService,
	userService ports.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Register a user
// @Description Creates a user on the free subscription tier
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} UserDTO "User created"
// @Failure 400 {object} errorResponse "Invalid request or user already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.logger.Info("Registration failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	h.logger.Info("User created successfully", map[string]interface{}{
		"email":   req.Email,
		"user_id": user.ID.String(),
	})
	c.JSON(http.StatusCreated, toUserDTO(user))
}

// @Summary Log in
// @Description Issues a token pair from email+password or from a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login data"
// @Success 200 {object} domain.TokenPair "Token pair"
// @Failure 400 {object} errorResponse "Invalid request or failed credential check"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if msg, ok := validateLoginModes(req); !ok {
		newErrorResponse(c, http.StatusBadRequest, msg)
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.logger.Info("Login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	h.logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": tokens.UserID.String(),
	})
	c.JSON(http.StatusOK, tokens)
}

// @Summary Current user profile
// @Description Returns the profile belonging to the bearer access token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UserDTO "Profile"
// @Failure 401 {object} errorResponse "Missing or invalid token"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := authPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to get current user", map[string]interface{}{
			"user_id": payload.UserID.String(),
			"error":   err.Error(),
		})
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserDTO(user))
}

// validateLoginModes enforces the exclusive-mode rule: exactly one of
// email+password or refresh_token.
func validateLoginModes(req LoginRequest) (string, bool) {
	hasCredentials := req.Email != "" || req.Password != ""
	hasRefreshToken := req.RefreshToken != ""

	if hasCredentials && hasRefreshToken {
		return "Provide either email and password or a refresh token, not both", false
	}
	if !hasCredentials && !hasRefreshToken {
		return "Provide either email and password or a refresh token", false
	}
	if hasCredentials && (req.Email == "" || req.Password == "") {
		return "Both email and password are required", false
	}
	return "", true
}
