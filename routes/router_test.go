package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"reservation-demo/config"
	"reservation-demo/services"
)

type testEnv struct {
	router  *gin.Engine
	cfg     *config.Runtime
	ids     *services.IdentityService
	store   *services.ReservationStore
	catalog *services.CatalogService
}

func newTestEnv(t *testing.T, mode string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogPath := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
- id: 1
  name: Standard Single
  description: A compact single room.
  price: 59.00
- id: 2
  name: Deluxe King
  description: A spacious king room.
  price: 129.00
`), 0o644))

	s := config.DefaultSettings()
	s.AuthMode = mode
	s.CatalogPath = catalogPath

	cfg := config.NewRuntime(s)
	store := services.NewReservationStore()
	ids := services.NewIdentityService(cfg)
	catalog := services.NewCatalogService(catalogPath)

	return &testEnv{
		router:  SetupRouter(cfg, ids, store, catalog),
		cfg:     cfg,
		ids:     ids,
		store:   store,
		catalog: catalog,
	}
}

func (e *testEnv) get(path string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "reservation_user", Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "reservation_user", Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// loginToken logs in over HTTP in token mode and returns the minted token
// from the redirect target.
func (e *testEnv) loginToken(t *testing.T, username, password string) string {
	t.Helper()
	w := e.postForm("/login", url.Values{"username": {username}, "password": {password}}, "")
	require.Equal(t, http.StatusSeeOther, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	token := loc.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}
