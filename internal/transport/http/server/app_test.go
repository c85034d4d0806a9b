package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository/memory"
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"
	"github.com/Yosipmikecolin/app-web-wesense/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Session: config.SessionConfig{
			CookieName:     "console_ctx",
			Secret:         "test-secret",
			CookieTTL:      time.Hour,
			StorageKey:     "auth_user",
			LoginRoute:     "/login",
			ExcludedRoutes: []string{"/login", "/logout", "/password-reset"},
		},
		Users: config.UsersConfig{PageSizes: []int{5, 6, 10}, DefaultPageSize: 6, Seed: true},
	}
}

type client struct {
	t       *testing.T
	app     *fiber.App
	cookies []*http.Cookie
}

func newApp(t *testing.T, maxStores int) (*fiber.App, *session.Registry) {
	t.Helper()

	cfg := testConfig()
	log := zap.NewNop().Sugar()
	repo := memory.New(log, cfg.Users.Seed)
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, context.Background(), repo, cfg.HTTP.RequestTimeout, cfg.Users)
	reg := session.NewRegistry(log, repo, repo, session.Options{
		Key:       cfg.Session.StorageKey,
		Sleep:     func(time.Duration) {},
		MaxStores: maxStores,
	})

	return NewApp(cfg, log, uc, reg), reg
}

func newClient(t *testing.T) *client {
	t.Helper()

	app, _ := newApp(t, 0)
	return &client{t: t, app: app}
}

func (c *client) do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if set := resp.Cookies(); len(set) > 0 {
		c.cookies = set
	}
	out, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, out
}

func (c *client) login(email string) {
	c.t.Helper()

	resp, _ := c.do(http.MethodPost, "/login", dto.LoginRequest{Email: email, Password: "admin123"})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestApp_Healthz(t *testing.T) {
	c := newClient(t)
	resp, _ := c.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_ProtectedRouteRedirects(t *testing.T) {
	c := newClient(t)

	resp, _ := c.do(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
	require.NotEmpty(t, c.cookies)

	resp, body := c.do(http.MethodGet, "/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.SessionResponse](t, body)
	require.False(t, s.Authenticated)
	require.Equal(t, "admin@sistema.com", s.Demo.Email)
}

func TestApp_LoginFailures(t *testing.T) {
	c := newClient(t)

	resp, body := c.do(http.MethodPost, "/login", dto.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, body)
	require.Equal(t, dto.INVALIDARGUMENT, e.Error.Code)
	require.Contains(t, e.Error.Fields, "email")

	resp, body = c.do(http.MethodPost, "/login", dto.LoginRequest{Email: "nope@x.com", Password: "x"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	e = decode[dto.ErrorResponse](t, body)
	require.Equal(t, dto.LOGINFAILED, e.Error.Code)
	require.Equal(t, "Credenciales incorrectas. Intente de nuevo.", e.Error.Message)

	resp, _ = c.do(http.MethodGet, "/session", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestApp_LoginFallbackAndSession(t *testing.T) {
	c := newClient(t)
	c.login("admin@sistema.com")

	resp, body := c.do(http.MethodGet, "/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.SessionResponse](t, body)
	require.True(t, s.Authenticated)
	require.Equal(t, "authenticated", s.State)
	require.Equal(t, "Carlos Alberto Mendoza", s.User.FullName)
}

func TestApp_ListUsers(t *testing.T) {
	c := newClient(t)
	c.login("maria.garcia@empresa.com")

	resp, body := c.do(http.MethodGet, "/users?page=2&page_size=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.UserList](t, body)
	require.Len(t, list.Users, 5)
	require.Equal(t, 10, list.TotalCount)
	require.Equal(t, 2, list.TotalPages)
	require.Equal(t, 6, list.First)
	require.Equal(t, 10, list.Last)
	require.Equal(t, []int{5, 6, 10}, list.PageSizes)

	resp, body = c.do(http.MethodGet, "/users?search=garcia&status=Activo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decode[dto.UserList](t, body)
	require.Equal(t, 2, list.TotalCount)
	require.Equal(t, 6, list.PageSize)
	for _, u := range list.Users {
		require.Equal(t, "Activo", u.Status)
	}

	resp, _ = c.do(http.MethodGet, "/users?page_size=7", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/users?page=abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApp_UserCRUD(t *testing.T) {
	c := newClient(t)
	c.login("admin@sistema.com")

	form := dto.UserForm{
		Name:    "Laura Méndez",
		NIT:     "1122-3344",
		Email:   "laura@empresa.com",
		Phone:   "+502 5555-1111",
		Profile: "Moderador",
		Status:  "Pendiente",
	}

	resp, body := c.do(http.MethodPost, "/create-user", dto.UserForm{Name: "L"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, body)
	require.Equal(t, "El nombre debe tener al menos 2 caracteres", e.Error.Fields["name"])
	require.Equal(t, "El NIT es requerido", e.Error.Fields["nit"])

	resp, body = c.do(http.MethodPost, "/users", form)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[struct {
		User dto.User `json:"user"`
	}](t, body).User
	require.NotEmpty(t, created.ID)
	require.Equal(t, "11223344", created.NIT)

	resp, _ = c.do(http.MethodPost, "/users", form)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = c.do(http.MethodGet, "/users?page=3&page_size=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.UserList](t, body)
	require.Equal(t, 11, list.TotalCount)
	require.Equal(t, created.ID, list.Users[0].ID)

	form.Status = "Activo"
	resp, body = c.do(http.MethodPut, "/users/"+created.ID, form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Activo", decode[struct {
		User dto.User `json:"user"`
	}](t, body).User.Status)

	resp, _ = c.do(http.MethodGet, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodDelete, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = c.do(http.MethodGet, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, dto.NOTFOUND, decode[dto.ErrorResponse](t, body).Error.Code)
}

func TestApp_Logout(t *testing.T) {
	c := newClient(t)
	c.login("sofia.castillo@empresa.com")

	resp, _ := c.do(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestApp_PasswordResetIsPublic(t *testing.T) {
	c := newClient(t)
	resp, _ := c.do(http.MethodGet, "/password-reset", nil)
	require.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestApp_ListUsersReset(t *testing.T) {
	c := newClient(t)
	c.login("admin@sistema.com")

	resp, body := c.do(http.MethodGet, "/users?page=2&page_size=5&status=Activo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.UserList](t, body)
	require.Equal(t, 2, list.Page)
	require.Equal(t, 6, list.First)

	resp, body = c.do(http.MethodGet, "/users?page=2&page_size=5&status=Activo&reset=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decode[dto.UserList](t, body)
	require.Equal(t, 1, list.Page)
	require.Equal(t, 1, list.First)
	require.Equal(t, 5, list.Last)
	require.Len(t, list.Users, 5)
}

func TestApp_CookielessRequestsStayBounded(t *testing.T) {
	app, reg := newApp(t, 20)

	for i := 0; i < 500; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		_ = resp.Body.Close()
	}

	require.LessOrEqual(t, reg.Len(), 20)
}
