package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"volunteerhub/internal/auth"
	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users     repository.UserRepository
	jwtSecret []byte
}

func NewAuthHandler(users repository.UserRepository, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

type registerRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	ZipCode     string `json:"zipCode" binding:"required"`
}

type loginRequest struct {
	// Username accepts either a username or an email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. The existence check and the insert are two
// separate round-trips; two concurrent registrations with the same email or
// username can race past the check, and the store enforces no unique index.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	ctx := c.Request.Context()

	existing, err := h.users.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		slog.Error("registration lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email or username already exists"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		ZipCode:      req.ZipCode,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}

	userID, err := h.users.Insert(ctx, user)
	if err != nil {
		slog.Error("user insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login verifies credentials and issues a token. Unknown identifiers and
// wrong passwords produce byte-identical responses so the endpoint cannot be
// used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.FindByIdentifier(ctx, req.Username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed", "error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Username, h.jwtSecret)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
