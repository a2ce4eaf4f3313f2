package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/databases/dbtest"
	authService "exeat_backend/internals/features/users/auth/service"
	userModel "exeat_backend/internals/features/users/user/model"
	helper "exeat_backend/internals/helpers"
	helpersAuth "exeat_backend/internals/helpers/auth"
)

const testSecret = "route-test-secret"

type outbox struct {
	mu       sync.Mutex
	subjects []string
}

func (o *outbox) Enqueue(to, subject, html string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subjects = append(o.subjects, subject)
	return true
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subjects)
}

type testServer struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *authService.TokenService
	mail   *outbox
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := dbtest.Open(t)
	tokens := authService.NewTokenService(testSecret, time.Hour)
	mail := &outbox{}

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	SetupRoutes(app, Deps{
		DB:        db,
		Tokens:    tokens,
		Blacklist: helpersAuth.NewDBBlacklist(db, testSecret),
		Emails:    mail,
		Now:       func() time.Time { return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC) },
	})
	return &testServer{app: app, db: db, tokens: tokens, mail: mail}
}

func (s *testServer) login(t *testing.T, name, email string, role constants.Role) string {
	t.Helper()
	u := &userModel.UserModel{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, s.db.Create(u).Error)
	raw, _, err := s.tokens.Issue(u)
	require.NoError(t, err)
	return raw
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

func dataField(t *testing.T, env envelope, key string) any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m[key]
}

func TestAuthGuards(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/requests/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization token is required.", env.Error)

	status, env = s.do(t, http.MethodGet, "/api/requests/my", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized: Invalid or expired token.", env.Error)

	admin := s.login(t, "Admin", "admin@school.test", constants.RoleAdmin)
	status, env = s.do(t, http.MethodPost, "/api/requests", admin, map[string]string{
		"reason": "x", "startDate": "2024-07-01", "endDate": "2024-07-01",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, env.Success)

	student := s.login(t, "Student", "student@school.test", constants.RoleStudent)
	status, _ = s.do(t, http.MethodGet, "/api/admin/requests", student, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.do(t, http.MethodGet, "/api/superadmin/users", admin, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestExeatLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	student := s.login(t, "Ada Obi", "ada@school.test", constants.RoleStudent)
	admin := s.login(t, "Desk Admin", "desk@school.test", constants.RoleAdmin)
	super := s.login(t, "Principal", "principal@school.test", constants.RoleSuperAdmin)

	// blackout registry
	status, env := s.do(t, http.MethodPost, "/api/superadmin/blackout-dates", super, map[string]string{
		"reason": "Exams", "startDate": "2024-06-02", "endDate": "2024-06-05",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = s.do(t, http.MethodGet, "/api/users/blackout-dates", student, nil)
	require.Equal(t, http.StatusOK, status)
	var active []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &active))
	require.Len(t, active, 1)
	assert.Equal(t, "Exams", active[0]["reason"])

	// blocked by the blackout
	status, env = s.do(t, http.MethodPost, "/api/requests", student, map[string]string{
		"reason": "Family visit", "startDate": "2024-06-01", "endDate": "2024-06-03",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BLACKOUT_CONFLICT", env.ErrorCode)
	assert.Contains(t, env.Error, "Exams")

	// dates reversed
	status, env = s.do(t, http.MethodPost, "/api/requests", student, map[string]string{
		"reason": "Family visit", "startDate": "2024-07-05", "endDate": "2024-07-01",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "End date cannot be before the start date.", env.Error)

	// accepted
	status, env = s.do(t, http.MethodPost, "/api/requests", student, map[string]string{
		"reason": "Family visit", "startDate": "2024-07-01", "endDate": "2024-07-02", "type": "OVERNIGHT",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.Equal(t, "PENDING", dataField(t, env, "status"))
	assert.Equal(t, "2024-07-01", dataField(t, env, "startDate"))
	id, _ := dataField(t, env, "id").(string)
	require.NotEmpty(t, id)

	status, env = s.do(t, http.MethodGet, "/api/requests/my", student, nil)
	require.Equal(t, http.StatusOK, status)
	var mine []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Len(t, mine, 1)

	// admin side
	status, _ = s.do(t, http.MethodGet, "/api/admin/requests/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.do(t, http.MethodPost, "/api/admin/requests/"+id+"/decision", admin, map[string]string{"action": "promote"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid action type", env.Error)

	status, env = s.do(t, http.MethodPost, "/api/admin/requests/"+id+"/decision", admin, map[string]string{"action": "approve"})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "APPROVED", dataField(t, env, "status"))
	assert.Equal(t, 1, s.mail.count())

	status, env = s.do(t, http.MethodPost, "/api/admin/requests/"+id+"/decision", admin, map[string]string{"action": "reject"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", env.ErrorCode)

	status, env = s.do(t, http.MethodGet, "/api/admin/requests?status=approved&search=ada", admin, nil)
	require.Equal(t, http.StatusOK, status)
	var approved []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &approved))
	require.Len(t, approved, 1)
	assert.Equal(t, "Ada Obi", approved[0]["student"].(map[string]any)["name"])

	// student can no longer cancel it
	status, env = s.do(t, http.MethodDelete, "/api/requests/"+id+"/cancel", student, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", env.ErrorCode)

	// notifications: submitted + approved
	status, env = s.do(t, http.MethodGet, "/api/requests/notifications", student, nil)
	require.Equal(t, http.StatusOK, status)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	assert.Len(t, notes, 2)

	status, _ = s.do(t, http.MethodPost, "/api/requests/notifications/read-all", student, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestCancelOverHTTP(t *testing.T) {
	s := newTestServer(t)
	owner := s.login(t, "Owner", "owner@school.test", constants.RoleStudent)
	other := s.login(t, "Other", "other@school.test", constants.RoleStudent)

	status, env := s.do(t, http.MethodPost, "/api/requests", owner, map[string]string{
		"reason": "Clinic", "startDate": "2024-07-01", "endDate": "2024-07-01",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	id, _ := dataField(t, env, "id").(string)

	status, _ = s.do(t, http.MethodDelete, "/api/requests/"+id+"/cancel", other, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodDelete, "/api/requests/"+id+"/cancel", owner, nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "CANCELED", dataField(t, env, "status"))

	status, _ = s.do(t, http.MethodDelete, "/api/requests/3f6c1c7e-2a55-4d57-9b1c-0a7d2d7e9e01/cancel", owner, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRegisterLoginLogout(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "New Student", "email": "new@school.test", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Again", "email": "NEW@school.test", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already in use", env.Error)

	status, env = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "new@school.test", "password": "nope!!",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid credentials", env.Error)

	status, env = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "new@school.test", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status, env.Error)
	token, _ := dataField(t, env, "token").(string)
	require.NotEmpty(t, token)

	status, _ = s.do(t, http.MethodGet, "/api/requests/my", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = s.do(t, http.MethodGet, "/api/requests/my", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Session has been logged out. Please log in again.", env.Error)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
