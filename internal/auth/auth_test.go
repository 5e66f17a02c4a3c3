package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workreport-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Role:  models.UserRoleEmployee,
	}
}

func TestPasswordHashing(t *testing.T) {
	service := NewAuthService("test-secret")

	hash, err := service.HashPassword("Welcome@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Welcome@123", hash)

	assert.True(t, service.CheckPassword(hash, "Welcome@123"))
	assert.False(t, service.CheckPassword(hash, "welcome@123"))
	assert.False(t, service.CheckPassword(hash, ""))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := NewAuthService("test-secret")

	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.Equal(t, "jane.doe@example.com", claims.Subject)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, "workreport-portal-backend", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").GenerateJWT(testUser())
	require.NoError(t, err)

	_, err = NewAuthService("secret-b").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	service := NewAuthService("test-secret")
	now := time.Now()
	claims := &AuthClaims{
		Email: "jane.doe@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			Subject:   "jane.doe@example.com",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsUnsignedToken(t *testing.T) {
	service := NewAuthService("test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "jane.doe@example.com",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestResetTokens(t *testing.T) {
	service := NewAuthService("test-secret")

	raw, hash, expires, err := service.GenerateResetToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Len(t, hash, 64) // sha256 hex
	assert.True(t, expires.After(time.Now()))

	assert.Equal(t, hash, HashResetToken(raw))
	assert.True(t, ResetTokenMatches(raw, hash))
	assert.False(t, ResetTokenMatches("not-the-token", hash))

	// Each token is unique
	raw2, hash2, _, err := service.GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}

func setupAuthRouter(service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewAuthMiddleware(service)
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	service := NewAuthService("test-secret")
	router := setupAuthRouter(service)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT(testUser())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jane.doe@example.com")
	})
}

func TestRequireRole(t *testing.T) {
	service := NewAuthService("test-secret")
	router := setupAuthRouter(service)

	t.Run("employee forbidden", func(t *testing.T) {
		token, err := service.GenerateJWT(testUser())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		admin := testUser()
		admin.Role = models.UserRoleAdmin
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
