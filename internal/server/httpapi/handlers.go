package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/acquisitions/internal/common"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// normalizeEmail fixes the email case policy: addresses are compared and
// stored lowercased, so lookups are exact-match.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *HTTPServer) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, normalizeEmail(req.Email), req.Password, role)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		s.logger.Error(c.Request.Context(), "sign-up failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error(c.Request.Context(), "token issuance failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	s.cookie.Attach(c, token)

	s.logger.Info(c.Request.Context(), "user registered", "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "User registered",
		"user":    user,
	})
}

func (s *HTTPServer) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": err.Error(),
		})
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable on the wire
		// so callers cannot enumerate accounts.
		if errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		s.logger.Error(c.Request.Context(), "sign-in failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error(c.Request.Context(), "token issuance failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	s.cookie.Attach(c, token)

	s.logger.Info(c.Request.Context(), "user signed in", "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "User signed in",
		"user":    user,
	})
}

// handleSignOut clears the session cookie. It is stateless and idempotent:
// no server-side verification happens and the token itself stays valid until
// its expiry.
func (s *HTTPServer) handleSignOut(c *gin.Context) {
	s.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "User signed out"})
}

// handleMe echoes the identity claims of the verified session token.
func (s *HTTPServer) handleMe(c *gin.Context) {
	claims := ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

func (s *HTTPServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).Seconds(),
	})
}

func (s *HTTPServer) handleBanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Acquisitions API is running"})
}
