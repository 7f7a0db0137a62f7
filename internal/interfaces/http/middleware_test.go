package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
	apphttp "github.com/alexsagar/teantea-api/internal/interfaces/http"
	pkgjwt "github.com/alexsagar/teantea-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testShopID    = "4821"
	testIssuer    = "teantea-test"
	testExpMin    = 60
)

// fakeUserRepo serves one user keyed by (shop_id, id).
type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, shopID, id string) (*entity.User, error) {
	if r.user == nil || r.user.ShopID != shopID || r.user.ID != id {
		return nil, nil
	}
	return r.user, nil
}
func (r *fakeUserRepo) GetByEmail(context.Context, string, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) ListByShop(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) UpdatePermissions(context.Context, string, string, entity.PermissionSet) error {
	return nil
}
func (r *fakeUserRepo) Deactivate(context.Context, string, string) error { return nil }

// buildTestApp wires one protected route behind the auth middleware and a
// (orders, read) permission gate.
func buildTestApp(user *entity.User) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, &fakeUserRepo{user: user}),
		apphttp.RequirePermission("orders", "read"),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"userId": apphttp.GetUserID(c),
				"shopId": apphttp.GetShopID(c),
			})
		},
	)
	return app
}

func activeUser(role string, perms entity.PermissionSet) *entity.User {
	if perms == nil {
		perms = entity.PermissionSet{}
	}
	return &entity.User{
		ID:          testUserID,
		ShopID:      testShopID,
		Name:        "Test User",
		Role:        role,
		Permissions: perms,
		IsActive:    true,
	}
}

func validToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testShopID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Code
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp(activeUser(entity.RoleAdmin, nil))

	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, resp))
}

func TestAuthMiddleware_GarbledToken(t *testing.T) {
	app := buildTestApp(activeUser(entity.RoleAdmin, nil))

	resp := doRequest(t, app, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIAL", errorCode(t, resp))
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	app := buildTestApp(activeUser(entity.RoleAdmin, nil))

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["userId"])
	assert.Equal(t, testShopID, out["shopId"])
}

// Legacy clients send the raw token without the Bearer prefix.
func TestAuthMiddleware_RawTokenHeader(t *testing.T) {
	app := buildTestApp(activeUser(entity.RoleAdmin, nil))

	resp := doRequest(t, app, validToken(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	// Valid token but no matching row in the store.
	app := buildTestApp(nil)

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIAL", errorCode(t, resp))
}

func TestAuthMiddleware_InactiveUser(t *testing.T) {
	user := activeUser(entity.RoleAdmin, nil)
	user.IsActive = false
	app := buildTestApp(user)

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIAL", errorCode(t, resp))
}

// buildAdminGateApp mirrors the staff registration chain: auth then the
// admin-role gate, with no permission gate in between.
func buildAdminGateApp(user *entity.User) *fiber.App {
	app := fiber.New()
	app.Post("/register",
		apphttp.AuthMiddleware(testJWTSecret, &fakeUserRepo{user: user}),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusCreated)
		},
	)
	return app
}

func doPost(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	app := buildAdminGateApp(activeUser(entity.RoleAdmin, nil))

	resp := doPost(t, app, "Bearer "+validToken(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// A permission grant on staff:create must not open the admin-only gate.
func TestRequireAdmin_RejectsGrantedNonAdmin(t *testing.T) {
	perms := entity.PermissionSet{}
	perms.Grant("staff", "create")
	app := buildAdminGateApp(activeUser(entity.RoleStaff, perms))

	resp := doPost(t, app, "Bearer "+validToken(t, entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireAdmin_RejectsManager(t *testing.T) {
	app := buildAdminGateApp(activeUser(entity.RoleManager, nil))

	resp := doPost(t, app, "Bearer "+validToken(t, entity.RoleManager))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_AdminBypass(t *testing.T) {
	// Admin with an empty permission set still passes the gate.
	app := buildTestApp(activeUser(entity.RoleAdmin, entity.PermissionSet{}))

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_GrantedStaff(t *testing.T) {
	perms := entity.PermissionSet{}
	perms.Grant("orders", "read")
	app := buildTestApp(activeUser(entity.RoleStaff, perms))

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleStaff))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_DeniedStaff(t *testing.T) {
	perms := entity.PermissionSet{}
	perms.Grant("orders", "create") // read is not granted
	app := buildTestApp(activeUser(entity.RoleStaff, perms))

	resp := doRequest(t, app, "Bearer "+validToken(t, entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}
