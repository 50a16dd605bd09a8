package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"inventory_api/internal/auth"
	"inventory_api/internal/domain"
	"inventory_api/internal/repository"
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
}

// Fixed registration messages
const (
	userCreatedMsg = "User created successfully. Welcome!"
	userExistsMsg  = "That username is already in use. Please enter a new one"
	serverErrorMsg = "There was a server error while processing your request"
)

var credentialFieldHelp = map[string]string{
	"username": "This field is required",
	"password": "This field is required",
}

// RegisterHandler creates a new user account with the standard access level.
func RegisterHandler(users repository.UserRepositoryI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessages(err, credentialFieldHelp)})
			return
		}
		existing, err := users.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			logrus.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Error("User lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": serverErrorMsg})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": userExistsMsg})
			return
		}
		user := domain.User{Username: req.Username, Password: req.Password, Access: domain.StandardAccess}
		if err := users.Create(c.Request.Context(), &user); err != nil {
			// The password never goes into the log.
			logrus.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Error("Failed to create user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": serverErrorMsg})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": userCreatedMsg})
	}
}

// LoginHandler verifies credentials through the authentication gate and
// returns a signed access token.
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessages(err, credentialFieldHelp)})
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			logrus.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Error("Authentication lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": serverErrorMsg})
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := svc.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{AccessToken: token})
	}
}
