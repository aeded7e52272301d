package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// StoreIDKey is the context key the session middleware sets for the
// authenticated owner's store id.
const StoreIDKey = "store_id"

// ValidateToken rejects requests without a valid session JWT and puts
// the store id into the context. Operations requiring an identity fail
// here, before any remote call is made.
func ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	storeID, _ := claims[StoreIDKey].(string)
	if storeID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no store id"})
		c.Abort()
		return
	}

	c.Set(StoreIDKey, storeID)
	c.Next()
}

// StoreID returns the authenticated store id set by ValidateToken.
func StoreID(c *gin.Context) string {
	return c.GetString(StoreIDKey)
}
