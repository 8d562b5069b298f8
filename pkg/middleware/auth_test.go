package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/middleware"
	"github.com/RajaPrasetya/pos-server-api/pkg/token"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

type stubUserRepo struct {
	users map[int64]*entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) SetToken(_ context.Context, id int64, tok *string) error {
	if user, ok := s.users[id]; ok {
		user.Token = tok
	}
	return nil
}

// loggedInUser returns a repo holding one user plus a token that is both
// valid and stored on the row.
func loggedInUser(t *testing.T) (*stubUserRepo, *entity.User, string) {
	t.Helper()

	user := &entity.User{
		IDUser:   1,
		Username: "budi",
		Role:     entity.RoleCashier,
	}

	signed, _, err := token.Issue(testJWTSecret, time.Hour, user)
	require.NoError(t, err)
	user.Token = &signed

	return &stubUserRepo{users: map[int64]*entity.User{1: user}}, user, signed
}

func protectedRouter(repo *stubUserRepo, roles ...entity.UserRole) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo, testJWTSecret, zap.NewNop()))
		if len(roles) > 0 {
			r.Use(middleware.RequireRoles(zap.NewNop(), roles...))
		}
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetPrincipal(r.Context())
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(user.Username))
		})
	})
	return r
}

func doRequest(router *chi.Mux, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateAcceptsStoredToken(t *testing.T) {
	repo, _, signed := loggedInUser(t)
	router := protectedRouter(repo)

	rec := doRequest(router, "Bearer "+signed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "budi", rec.Body.String())
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	repo, _, _ := loggedInUser(t)
	router := protectedRouter(repo)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	repo, _, signed := loggedInUser(t)
	router := protectedRouter(repo)

	for _, header := range []string{"Bearer", "Basic " + signed, signed} {
		rec := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateRejectsUndecodableToken(t *testing.T) {
	repo, _, _ := loggedInUser(t)
	router := protectedRouter(repo)

	rec := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsReplacedToken(t *testing.T) {
	repo, user, signed := loggedInUser(t)
	router := protectedRouter(repo)

	// A later login stored a different token; the previous one still decodes
	// but no longer matches the row.
	newer, _, err := token.Issue(testJWTSecret, time.Hour, user)
	require.NoError(t, err)
	user.Token = &newer

	rec := doRequest(router, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsAfterLogout(t *testing.T) {
	repo, user, signed := loggedInUser(t)
	router := protectedRouter(repo)

	user.Token = nil

	rec := doRequest(router, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	repo, _, signed := loggedInUser(t)
	router := protectedRouter(repo, entity.RoleAdmin, entity.RoleCashier)

	rec := doRequest(router, "Bearer "+signed)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesForbidsUnlistedRole(t *testing.T) {
	repo, _, signed := loggedInUser(t)
	router := protectedRouter(repo, entity.RoleAdmin, entity.RoleManager)

	rec := doRequest(router, "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesWithoutAuthenticationIs401(t *testing.T) {
	repo, _, _ := loggedInUser(t)
	router := protectedRouter(repo, entity.RoleAdmin)

	// Missing credentials must read as 401 even on a role-gated route.
	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
