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

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// protectedRouter exposes one route behind JWTAuth and records the user id
// the middleware resolved.
func protectedRouter(capturedUserID *uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(), func(c *gin.Context) {
		if id, exists := c.Get("userID"); exists {
			*capturedUserID = id.(uint)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTAuth_ValidToken(t *testing.T) {
	SetJWTSecret(testSecret)
	var userID uint
	router := protectedRouter(&userID)

	token := signToken(t, testSecret, jwt.MapClaims{
		"uid": float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	recorder := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint(42), userID)
}

func TestJWTAuth_NumericStringUID(t *testing.T) {
	SetJWTSecret(testSecret)
	var userID uint
	router := protectedRouter(&userID)

	token := signToken(t, testSecret, jwt.MapClaims{"uid": "7"})
	recorder := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint(7), userID)
}

func TestJWTAuth_Rejections(t *testing.T) {
	SetJWTSecret(testSecret)
	var userID uint
	router := protectedRouter(&userID)

	expired := signToken(t, testSecret, jwt.MapClaims{
		"uid": float64(1),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	notYetValid := signToken(t, testSecret, jwt.MapClaims{
		"uid": float64(1),
		"nbf": time.Now().Add(time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "another-secret", jwt.MapClaims{"uid": float64(1)})
	missingUID := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})
	badUID := signToken(t, testSecret, jwt.MapClaims{"uid": "not-a-number"})

	testCases := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + wrongSecret},
		{"expired token", "Bearer " + expired},
		{"not yet valid token", "Bearer " + notYetValid},
		{"missing uid claim", "Bearer " + missingUID},
		{"non-numeric uid claim", "Bearer " + badUID},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			recorder := request(router, tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "invalid_token")
		})
	}
}

func TestExtractUserID(t *testing.T) {
	id, err := extractUserID(jwt.MapClaims{"uid": "123"})
	require.NoError(t, err)
	assert.Equal(t, uint(123), id)

	id, err = extractUserID(jwt.MapClaims{"uid": float64(5)})
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	_, err = extractUserID(jwt.MapClaims{"uid": float64(-1)})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)
}
