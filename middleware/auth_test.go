package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ArogyaMCVK/models"
	"ArogyaMCVK/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func resolverFor(user models.User) UserResolver {
	return func(ctx context.Context, id string) (models.User, error) {
		return user, nil
	}
}

func failingResolver(ctx context.Context, id string) (models.User, error) {
	return models.User{}, errors.New("no such user")
}

func protectedRouter(resolve UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", RequireAuth(resolve), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := make(map[string]interface{})
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequireAuthNoHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := protectedRouter(resolverFor(models.User{Role: models.RoleAdmin}))

	w, body := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, no token provided.", body["msg"])
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := protectedRouter(resolverFor(models.User{Role: models.RoleAdmin}))

	w, body := doRequest(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, no token provided.", body["msg"])
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := protectedRouter(resolverFor(models.User{Role: models.RoleAdmin}))

	w, body := doRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, invalid token.", body["msg"])
}

func TestRequireAuthUserGone(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token, err := services.GenerateToken("64f0c1e2a3b4c5d6e7f80912", models.RoleAdmin)
	require.NoError(t, err)

	r := protectedRouter(failingResolver)
	w, body := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, user not found for this token.", body["msg"])
}

func TestRequireRolesRejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token, err := services.GenerateToken("64f0c1e2a3b4c5d6e7f80912", models.RoleUser)
	require.NoError(t, err)

	r := protectedRouter(resolverFor(models.User{Email: "u@example.com", Role: models.RoleUser}))
	w, body := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "User role 'user' is not authorized to access this resource. Required roles: admin.", body["msg"])
}

func TestRequireRolesAllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token, err := services.GenerateToken("64f0c1e2a3b4c5d6e7f80912", models.RoleAdmin)
	require.NoError(t, err)

	r := protectedRouter(resolverFor(models.User{Email: "a@example.com", Role: models.RoleAdmin}))
	w, body := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@example.com", body["email"])
}

func TestRequireRolesWithoutAuthIsOrderingBug(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w, body := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, user data missing.", body["msg"])
}

func TestRequireAuthMissingSecretIsServerError(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := protectedRouter(resolverFor(models.User{Role: models.RoleAdmin}))

	w, body := doRequest(r, "Bearer some-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server configuration error.", body["msg"])
}
