package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-be/internal/jwt"
)

var testSecret = []byte("middleware-test-secret-middleware-test-secret")

func newTestRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := jwt.NewJWTService(base64.StdEncoding.EncodeToString(testSecret))
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router, svc
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(router, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "Basic abc123").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "Bearer ").Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Bearer not.a.token").Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t)

	claims := gojwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS384, claims).SignedString(testSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Bearer "+expired).Code)
}

func TestAuthMiddlewareMalformedSubject(t *testing.T) {
	router, _ := newTestRouter(t)

	claims := gojwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  gojwt.NewNumericDate(time.Now()),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS384, claims).SignedString(testSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, doRequest(router, "Bearer "+token).Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router, svc := newTestRouter(t)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}
