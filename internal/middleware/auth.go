// Package middleware provides HTTP middleware for the API.
//
// Go Pattern: Middleware in Go is a function that wraps an HTTP handler.
// In Gin, middleware is a gin.HandlerFunc that calls c.Next() to continue
// the chain, or c.Abort() to stop processing. This is similar to Express.js
// middleware, but with explicit control flow.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
)

// CookieName is the cookie browsers carry the session token in.
// Its value has the same "Bearer <token>" form as the Authorization header.
const CookieName = "access_token"

// contextKey is a custom type for context keys to avoid collisions.
// Go Pattern: Use unexported types for context keys so other packages
// can't accidentally overwrite your values.
type contextKey string

const userContextKey contextKey = "user"

// UserLookup resolves the user a token was issued to.
// *database.DB satisfies it; tests pass a fake.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// JWTAuth returns middleware that requires a valid session token.
//
// How it works:
// 1. Read "Bearer <token>" from the Authorization header, or from the cookie
// 2. Validate the signature and expiry
// 3. Look up the user named in the token's subject
// 4. If valid, store the user in the request context
// 5. Otherwise return 401 Unauthorized
func JWTAuth(users UserLookup, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			abortUnauthorized(c, "Login required. Send 'Authorization: Bearer <token>' or the session cookie")
			return
		}

		claims, err := ParseJWT(tokenString, jwtSecret)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthorized(c, "User not found")
			return
		}

		// Go Pattern: Gin uses its own context (different from context.Context).
		// c.Set() stores values that handlers can retrieve with c.Get().
		c.Set(string(userContextKey), user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from the request context.
// Call this in your handlers after the auth middleware has run.
func GetUser(c *gin.Context) *models.User {
	val, exists := c.Get(string(userContextKey))
	if !exists {
		return nil
	}
	// Go Pattern: Type assertion — the comma-ok idiom won't panic on a wrong type.
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// tokenFromRequest prefers the Authorization header over the cookie.
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(cookie, "Bearer "))
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
		Code:    http.StatusUnauthorized,
	})
}
