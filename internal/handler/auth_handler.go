package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/service"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the admin password for a bearer session token.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "password is required") {
		return
	}

	session, err := a.sessions.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrNoAdminSecret) {
			respondError(c, http.StatusUnauthorized, "invalid password")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the presented session. Revoking an unknown or already
// revoked token succeeds all the same.
func (a *API) Logout(c *gin.Context) {
	if err := a.sessions.Logout(bearerToken(c)); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// VerifySession reports whether the presented token is still valid. The
// answer is always 200 so the frontend can poll it without error handling.
func (a *API) VerifySession(c *gin.Context) {
	ok, err := a.sessions.Verify(bearerToken(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": ok})
}

// RequireAdmin gates admin-only routes behind a valid bearer session.
func (a *API) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := a.sessions.Verify(bearerToken(c))
		if err != nil {
			respondStoreError(c, err)
			c.Abort()
			return
		}
		if !ok {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
