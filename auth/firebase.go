// Package auth exchanges a Firebase ID token for a session JWT. The
// Firebase UID doubles as the store identifier: every owner operates
// on stores/{uid} and users/{uid}.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var firebaseAuth *fbauth.Client

// Init wires the Firebase auth client used to verify ID tokens.
func Init(ctx context.Context, app *firebase.App) error {
	client, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("auth client: %w", err)
	}
	firebaseAuth = client
	return nil
}

// Login verifies a Firebase ID token and answers with a session JWT
// carrying the caller's store id.
func Login(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		return
	}
	if firebaseAuth == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Auth is not configured"})
		return
	}

	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
		return
	}

	email, _ := token.Claims["email"].(string)
	sessionToken, err := IssueToken(token.UID, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   sessionToken,
		"storeId": token.UID,
	})
}

// IssueToken signs a 72h session JWT for a store owner.
func IssueToken(storeID, email string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"store_id": storeID,
		"email":    email,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
