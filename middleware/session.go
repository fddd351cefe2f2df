package middleware

import (
	"net/http"

	"rentify/database/repository"
	"rentify/models"

	"github.com/gin-gonic/gin"
)

const (
	userIdentityKey  = "userIdentity"
	adminIdentityKey = "adminIdentity"
)

// UserSessionRequired rejects requests unless the persisted user session
// slot is authenticated, and stashes the identity in the request context.
func UserSessionRequired(repo repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := repo.LoadSession(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session check failed"})
			return
		}
		if session.User == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Set(userIdentityKey, *session.User)
		c.Next()
	}
}

// AdminSessionRequired rejects requests unless the persisted admin session
// slot is authenticated. The user slot is irrelevant here.
func AdminSessionRequired(repo repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := repo.LoadSession(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session check failed"})
			return
		}
		if session.Admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
			return
		}
		c.Set(adminIdentityKey, *session.Admin)
		c.Next()
	}
}

// UserIdentity returns the identity stashed by UserSessionRequired.
func UserIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(userIdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

// AdminIdentity returns the identity stashed by AdminSessionRequired.
func AdminIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(adminIdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
