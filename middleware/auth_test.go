package middleware

import (
	"Landmark/pkg/context"
	"Landmark/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Auth(secret))
	r.GET("/me", func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestAuth(t *testing.T) {
	valid, err := jwt.GenerateToken(secret, 42, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	expired, err := jwt.GenerateToken(secret, 42, jwt.TypeAccess, -time.Minute)
	require.NoError(t, err)
	wrongType, err := jwt.GenerateToken(secret, 42, "refresh", time.Hour)
	require.NoError(t, err)
	otherKey, err := jwt.GenerateToken([]byte("other"), 42, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "no scheme", header: valid, status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "wrong type", header: "Bearer " + wrongType, status: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + otherKey, status: http.StatusUnauthorized},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
			}
		})
	}
}

func TestRequestID_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(context.CtxRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
