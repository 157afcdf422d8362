// auth_test.go — Unit tests for session tokens and the auth middleware.
//
// Go Pattern: A tiny in-memory fake satisfies UserLookup, so the middleware
// can be tested without a database.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
)

const testSecret = "test-secret"

type fakeUsers map[string]*models.User

func (f fakeUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

var alice = &models.User{ID: "11111111-1111-1111-1111-111111111111", Username: "alice"}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(fakeUsers{alice.ID: alice}, testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, GetUser(c).Username)
	})
	return r
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(alice, testSecret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	assert.Equal(t, alice.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseJWT_Rejects(t *testing.T) {
	expired, _ := GenerateJWT(alice, testSecret, -time.Minute)
	valid, _ := GenerateJWT(alice, testSecret, time.Minute)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"expired", expired, testSecret},
		{"wrong secret", valid, "other-secret"},
		{"garbage", "not.a.token", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJWT(tt.token, tt.secret); err == nil {
				t.Error("ParseJWT() should have failed")
			}
		})
	}
}

func TestJWTAuth(t *testing.T) {
	valid, _ := GenerateJWT(alice, testSecret, time.Minute)
	stranger, _ := GenerateJWT(&models.User{ID: "22222222-2222-2222-2222-222222222222"}, testSecret, time.Minute)

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer header", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+valid)
		}, http.StatusOK},
		{"session cookie", func(r *http.Request) {
			// gin.Context.SetCookie query-escapes the value the same way.
			r.AddCookie(&http.Cookie{Name: CookieName, Value: url.QueryEscape("Bearer " + valid)})
		}, http.StatusOK},
		{"malformed header", func(r *http.Request) {
			r.Header.Set("Authorization", "Token "+valid)
		}, http.StatusUnauthorized},
		{"unknown user", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+stranger)
		}, http.StatusUnauthorized},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "alice", w.Body.String())
			}
		})
	}
}
