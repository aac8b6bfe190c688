package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, userID uint, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   "ana@example.com",
		"exp":     expires.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuth(t *testing.T) {
	router := gin.New()
	router.GET("/me", Auth("secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"bad scheme", "Token abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"wrong secret", "Bearer " + signToken(t, "other", 1, time.Now().Add(time.Hour)), http.StatusUnauthorized, "invalid token"},
		{"expired", "Bearer " + signToken(t, "secret", 1, time.Now().Add(-time.Hour)), http.StatusUnauthorized, "token has expired"},
		{"valid", "Bearer " + signToken(t, "secret", 7, time.Now().Add(time.Hour)), http.StatusOK, `"user_id":7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://app.example.com"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
