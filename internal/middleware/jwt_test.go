package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/service"
)

type userRepoStub struct {
	user *models.User
}

func (m *userRepoStub) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.user == nil || m.user.Username != username {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *userRepoStub) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.user == nil || m.user.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *userRepoStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return nil
}

func (m *userRepoStub) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return nil
}

func (m *userRepoStub) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return nil, sql.ErrNoRows
}

func (m *userRepoStub) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	return nil
}

func (m *userRepoStub) RevokeUserRefreshTokens(ctx context.Context, userID int64) error {
	return nil
}

func (m *userRepoStub) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return nil
}

func newAuthServiceForTest(t *testing.T) (*service.AuthService, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("9876543210"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoStub{user: &models.User{
		ID:           5,
		Name:         "Dr. Mehta",
		Username:     "mehta",
		PasswordHash: string(hash),
		Role:         models.RoleProfessional,
	}}
	svc := service.NewAuthService(repo, nil, nil, service.AuthConfig{
		AccessTokenSecret: "test-secret",
		AccessTokenExpiry: time.Hour,
	})

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "mehta", Password: "9876543210", Role: "professional",
	})
	require.NoError(t, err)
	return svc, res.Token
}

func performRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func protectedRouter(svc *service.AuthService, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("")
	group.Use(JWT(svc))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	svc, token := newAuthServiceForTest(t)
	r := protectedRouter(svc)

	w := performRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":5`)
}

func TestJWTMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	svc, token := newAuthServiceForTest(t)
	r := protectedRouter(svc)

	assert.Equal(t, http.StatusUnauthorized, performRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, performRequest(r, token).Code)
	assert.Equal(t, http.StatusUnauthorized, performRequest(r, "Bearer not-a-token").Code)
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	svc, token := newAuthServiceForTest(t)

	admin := protectedRouter(svc, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, performRequest(admin, "Bearer "+token).Code)

	professional := protectedRouter(svc, models.RoleProfessional)
	assert.Equal(t, http.StatusOK, performRequest(professional, "Bearer "+token).Code)
}
