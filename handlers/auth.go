package handlers

import (
	"errors"
	"net/http"

	"rentify/models"
	"rentify/services/auth"
	"rentify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignUpHandler registers a new account. Validation failures return every
// violated field at once.
func (hb *HandlerBundle) SignUpHandler(c *gin.Context) {
	logger := getLogger(c)

	var req auth.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := hb.Auth.SignUp(c.Request.Context(), req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Signup failed", err.Error())
		return
	}

	// Never echo the stored credential back out.
	user.Password = ""
	c.JSON(http.StatusCreated, user)
}

// LoginHandler authenticates a user and opens the user session slot.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := hb.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}

	identity := models.Identity{Username: user.Username, Email: user.Email, Role: user.Role}
	if err := hb.Auth.Login(c.Request.Context(), identity); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// LogoutHandler closes the user session slot. The admin slot is untouched.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := hb.Auth.Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// AdminLoginHandler authenticates against the fixed admin credential pair
// and opens the admin session slot.
func (hb *HandlerBundle) AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid admin login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	identity, err := hb.Auth.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": identity})
}

// AdminLogoutHandler closes the admin session slot only.
func (hb *HandlerBundle) AdminLogoutHandler(c *gin.Context) {
	if err := hb.Auth.AdminLogout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// CheckAuthHandler reports both session slots as currently persisted.
func (hb *HandlerBundle) CheckAuthHandler(c *gin.Context) {
	session, err := hb.Auth.CheckAuth(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Session check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}
