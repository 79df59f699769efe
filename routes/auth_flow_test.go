package routes

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-demo/config"
)

func TestLogin_credentialRules(t *testing.T) {
	tests := []struct {
		username string
		password string
		ok       bool
	}{
		{"admin", "password", true},
		{"admin", "Password", false},
		{"user7", "Password7", true},
		{"user7", "Password8", false},
		{"user07", "Password07", false},
		{"user123", "Password123", true},
		{"user0", "Password0", false},
		{"alice", "Password1", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.username+"/"+tt.password, func(t *testing.T) {
			env := newTestEnv(t, config.AuthModeCookie)
			w := env.postForm("/login", url.Values{
				"username": {tt.username}, "password": {tt.password},
			}, "")

			if tt.ok {
				assert.Equal(t, http.StatusSeeOther, w.Code)
				assert.Equal(t, "/menu", w.Header().Get("Location"))
			} else {
				// Failed logins are a 200 page, not an error status.
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), "Invalid username or password")
			}
		})
	}
}

func TestLogin_cookieModeSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	w := env.postForm("/login", url.Values{"username": {"user7"}, "password": {"Password7"}}, "")
	require.Equal(t, http.StatusSeeOther, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "reservation_user", cookies[0].Name)
	assert.Equal(t, "user7", cookies[0].Value)
}

func TestLogin_tokenModeRedirectCarriesToken(t *testing.T) {
	env := newTestEnv(t, config.AuthModeToken)

	token := env.loginToken(t, "user7", "Password7")
	assert.Equal(t, "user7", env.ids.ResolveToken(token))

	// The token works on a protected route.
	w := env.get("/menu?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user7")
	// Outbound links keep carrying the token.
	assert.Contains(t, w.Body.String(), "/overview?token="+token)
}

func TestProtectedRoutes_redirectWithoutIdentity(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	for _, path := range []string{"/menu", "/rooms", "/rooms/1", "/reserve", "/overview"} {
		w := env.get(path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestRootRedirectsWhenIdentified(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	w := env.get("/", "user7")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/menu", w.Header().Get("Location"))

	// Without identity the login page renders.
	w = env.get("/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/login"`)
}

func TestLogout_cookieMode(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	require.Equal(t, "user7", env.ids.ResolveCookie("user7"))
	w := env.get("/logout", "user7")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Zero(t, env.ids.SessionCount())

	// The cookie is cleared.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "reservation_user", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestLogout_tokenMode(t *testing.T) {
	env := newTestEnv(t, config.AuthModeToken)

	token := env.loginToken(t, "user7", "Password7")
	w := env.get("/logout?token="+token, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "", env.ids.ResolveToken(token))
}

func TestRoomRoutes(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	w := env.get("/rooms", "user7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deluxe King")

	w = env.get("/rooms/2", "user7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spacious king room")

	w = env.get("/rooms/99", "user7")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.get("/rooms/banana", "user7")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageRoute_rejectsNonImageExtensions(t *testing.T) {
	env := newTestEnv(t, config.AuthModeCookie)

	w := env.get("/img/room.txt", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Right extension, no such file: still 404.
	w = env.get("/img/missing.png", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
