package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-demo/config"
)

func newIdentityService(mode string) (*IdentityService, *config.Runtime) {
	s := config.DefaultSettings()
	s.AuthMode = mode
	cfg := config.NewRuntime(s)
	return NewIdentityService(cfg), cfg
}

func TestIdentityService_tokenLoginAndResolve(t *testing.T) {
	ids, _ := newIdentityService(config.AuthModeToken)

	token, err := ids.Login("user7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "user7-"))
	assert.Len(t, strings.TrimPrefix(token, "user7-"), 32)

	assert.Equal(t, "user7", ids.ResolveToken(token))
	assert.Equal(t, "", ids.ResolveToken("user7-0000000000000000000000000000dead"))
	assert.Equal(t, "", ids.ResolveToken(""))
}

func TestIdentityService_tokensAreFreshPerLogin(t *testing.T) {
	ids, _ := newIdentityService(config.AuthModeToken)

	t1, err := ids.Login("user7")
	require.NoError(t, err)
	t2, err := ids.Login("user7")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
	// Both remain valid until logged out.
	assert.Equal(t, "user7", ids.ResolveToken(t1))
	assert.Equal(t, "user7", ids.ResolveToken(t2))
}

func TestIdentityService_logoutInvalidatesToken(t *testing.T) {
	ids, _ := newIdentityService(config.AuthModeToken)

	token, err := ids.Login("user7")
	require.NoError(t, err)

	ids.Logout("user7", token)
	assert.Equal(t, "", ids.ResolveToken(token))
}

func TestIdentityService_cookieLoginAndLogout(t *testing.T) {
	ids, _ := newIdentityService(config.AuthModeCookie)

	token, err := ids.Login("admin")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, 1, ids.SessionCount())

	// Resolution upserts even identities never seen at login; the cookie
	// value is trusted verbatim.
	assert.Equal(t, "user3", ids.ResolveCookie("user3"))
	assert.Equal(t, 2, ids.SessionCount())

	ids.Logout("admin", "")
	assert.Equal(t, 1, ids.SessionCount())
}

func TestIdentityService_switchModeClearsEverything(t *testing.T) {
	ids, cfg := newIdentityService(config.AuthModeToken)

	token, err := ids.Login("user7")
	require.NoError(t, err)

	ids.SwitchMode(config.AuthModeCookie)
	assert.Equal(t, config.AuthModeCookie, cfg.AuthMode())
	assert.Zero(t, ids.TokenCount())
	assert.Zero(t, ids.SessionCount())

	// A pre-switch token resolves to no identity after switching back.
	ids.SwitchMode(config.AuthModeToken)
	assert.Equal(t, "", ids.ResolveToken(token))
}

func TestIdentityService_linkBuilding(t *testing.T) {
	ids, _ := newIdentityService(config.AuthModeToken)
	assert.Equal(t, "/menu?token=abc", ids.Link("/menu", "abc"))
	assert.Equal(t, "/menu", ids.Link("/menu", ""))

	ids.SwitchMode(config.AuthModeCookie)
	assert.Equal(t, "/menu", ids.Link("/menu", "abc"))
}
