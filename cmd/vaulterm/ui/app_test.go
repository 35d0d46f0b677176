package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func TestLandingPageLoggedOut(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	app := NewApp(deps)
	assert.Equal(t, PageLogin, app.Current())
}

func TestLandingPageUser(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	require.NoError(t, deps.Session.Save("tok", api.User{Email: "u@x.com"}))
	app := NewApp(deps)
	assert.Equal(t, PageDashboard, app.Current())
}

func TestLandingPageAdmin(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	require.NoError(t, deps.Session.Save("tok", api.User{Email: "a@x.com", IsAdmin: true}))
	app := NewApp(deps)
	assert.Equal(t, PageAdminDashboard, app.Current())
}

func TestProtectedPageRedirectsToLogin(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	app := NewApp(deps)

	for _, p := range []Page{PageDashboard, PageInvest, PageDeposit, PageWithdraw, PageHistory, PageProfile} {
		app.Update(navMsg{page: p})
		assert.Equal(t, PageLogin, app.Current(), "page %d must require a session", p)
	}
}

func TestAdminPageRedirectsNonAdmin(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	require.NoError(t, deps.Session.Save("tok", api.User{Email: "u@x.com"}))
	app := NewApp(deps)

	for _, p := range []Page{PageAdminDashboard, PageAdminUsers, PageAdminTransactions, PageAdminSettings} {
		app.Update(navMsg{page: p})
		assert.Equal(t, PageDashboard, app.Current(), "page %d must require the admin flag", p)
	}
}

func TestPublicPagesReachableLoggedOut(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	app := NewApp(deps)

	app.Update(navMsg{page: PageRegister})
	assert.Equal(t, PageRegister, app.Current())

	app.Update(navMsg{page: PageAdminLogin})
	assert.Equal(t, PageAdminLogin, app.Current())
}

func TestSessionExpiryClearsAndRoutesToLogin(t *testing.T) {
	deps := testDeps(t, &fakeService{})
	require.NoError(t, deps.Session.Save("tok", api.User{Email: "u@x.com"}))
	app := NewApp(deps)
	require.Equal(t, PageDashboard, app.Current())

	app.Update(sessionExpiredMsg{})
	assert.Equal(t, PageLogin, app.Current())
	assert.False(t, deps.Session.IsAuthenticated())
	assert.Contains(t, app.View(), "Sessão expirada")
}

func TestSessionGuard(t *testing.T) {
	assert.Nil(t, sessionGuard(nil))
	assert.Nil(t, sessionGuard(assert.AnError))

	cmd := sessionGuard(&api.APIError{Status: 401})
	require.NotNil(t, cmd)
	assert.IsType(t, sessionExpiredMsg{}, cmd())
}
