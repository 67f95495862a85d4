package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func TestGenerateJWT_Success(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-123", "test@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	_, err := GenerateJWT("", "user-123", "test@example.com")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret not set")
}

func TestValidateJWT_ValidToken(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-123", "test@example.com")
	require.NoError(t, err)

	claims, err := ValidateJWT(testSecret, token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)

	// expiration is set to 7 days
	timeDiff := claims.ExpiresAt.Time.Sub(time.Now().Add(7 * 24 * time.Hour)).Abs()
	assert.Less(t, timeDiff, 5*time.Second)
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: "user-123",
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, tokenString)

	assert.Error(t, err, "expired token should be rejected")
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-123", "test@example.com")
	require.NoError(t, err)

	_, err = ValidateJWT("different-secret-key", token)

	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestValidateJWT_AlgorithmConfusionAttack(t *testing.T) {
	claims := Claims{
		UserID: "attacker",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := ValidateJWT(testSecret, tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestValidateJWT_MalformedToken(t *testing.T) {
	malformedTokens := []string{
		"",
		"not.a.jwt",
		"only.two",
		"<script>alert('xss')</script>",
	}

	for _, token := range malformedTokens {
		_, err := ValidateJWT(testSecret, token)
		assert.Error(t, err, "malformed token '%s' should be rejected", token)
	}
}

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/protected", Middleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	return router
}

func TestMiddleware(t *testing.T) {
	valid, err := GenerateJWT(testSecret, "user-123", "test@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "disabled without secret", secret: "", header: "", wantStatus: http.StatusOK},
		{name: "missing header", secret: testSecret, header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", secret: testSecret, header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", secret: testSecret, header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", secret: testSecret, header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			newAuthRouter(tt.secret).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}
