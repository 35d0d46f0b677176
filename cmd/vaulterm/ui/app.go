package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vaulterm/internal/api"
)

// Page identifies one view of the application.
type Page int

const (
	PageLogin Page = iota
	PageAdminLogin
	PageRegister
	PageDashboard
	PageInvest
	PageDeposit
	PageWithdraw
	PageReferrals
	PageHistory
	PageProfile
	PageAdminDashboard
	PageAdminUsers
	PageAdminTransactions
	PageAdminSettings
)

// public reports whether a page may be visited without a session.
func (p Page) public() bool {
	switch p {
	case PageLogin, PageAdminLogin, PageRegister:
		return true
	}
	return false
}

// adminOnly reports whether a page requires the admin flag.
func (p Page) adminOnly() bool {
	switch p {
	case PageAdminDashboard, PageAdminUsers, PageAdminTransactions, PageAdminSettings:
		return true
	}
	return false
}

// navMsg asks the router to switch pages.
type navMsg struct{ page Page }

// Navigate builds a command that switches to the given page.
func Navigate(p Page) tea.Cmd {
	return func() tea.Msg { return navMsg{page: p} }
}

// sessionExpiredMsg is emitted when any API call comes back 401. The
// router clears to the login page no matter which page was active.
type sessionExpiredMsg struct{}

// sessionGuard converts an unauthorized API error into the global
// session-expired signal. Returns nil for every other error.
func sessionGuard(err error) tea.Cmd {
	if api.IsUnauthorized(err) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return nil
}

// page is the contract every view implements. Update returns the page
// itself (possibly replaced) plus any follow-up command.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View() string
	SetSize(w, h int)
}

// App is the root bubbletea model: it owns the pages and routes between
// them, enforcing the auth and admin guards on every switch.
type App struct {
	deps    Deps
	current Page
	pages   map[Page]page
	width   int
	height  int
	notice  string // one-shot banner shown above the current page
}

// NewApp wires the pages and picks the landing page from session state:
// logged-out users land on login, admins on the admin dashboard.
func NewApp(deps Deps) *App {
	a := &App{
		deps: deps,
		pages: map[Page]page{
			PageLogin:             newLoginPage(deps, false),
			PageAdminLogin:        newLoginPage(deps, true),
			PageRegister:          newRegisterPage(deps),
			PageDashboard:         newDashboardPage(deps),
			PageInvest:            newInvestPage(deps),
			PageDeposit:           newDepositPage(deps),
			PageWithdraw:          newWithdrawPage(deps),
			PageReferrals:         newReferralsPage(deps),
			PageHistory:           newHistoryPage(deps),
			PageProfile:           newProfilePage(deps),
			PageAdminDashboard:    newAdminDashboardPage(deps),
			PageAdminUsers:        newAdminUsersPage(deps),
			PageAdminTransactions: newAdminTransactionsPage(deps),
			PageAdminSettings:     newAdminSettingsPage(deps),
		},
	}
	a.current = a.resolve(a.landingPage())
	return a
}

func (a *App) landingPage() Page {
	if !a.deps.Session.IsAuthenticated() {
		return PageLogin
	}
	if a.deps.Session.IsAdmin() {
		return PageAdminDashboard
	}
	return PageDashboard
}

// resolve applies the routing guards: unauthenticated visits to protected
// pages go to login, non-admin visits to admin pages go to the dashboard.
func (a *App) resolve(p Page) Page {
	if !p.public() && !a.deps.Session.IsAuthenticated() {
		return PageLogin
	}
	if p.adminOnly() && !a.deps.Session.IsAdmin() {
		return PageDashboard
	}
	return p
}

// Current returns the active page, for tests.
func (a *App) Current() Page {
	return a.current
}

// Init starts the landing page's initial fetch.
func (a *App) Init() tea.Cmd {
	return a.pages[a.current].Init()
}

// Update routes messages: navigation and session expiry are handled here,
// everything else goes to the active page.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, p := range a.pages {
			p.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case navMsg:
		a.notice = ""
		a.current = a.resolve(msg.page)
		return a, a.pages[a.current].Init()

	case sessionExpiredMsg:
		// The API layer has already dropped the stored session; route to
		// login regardless of which page tripped the 401.
		a.deps.Session.Clear()
		a.notice = "Sessão expirada. Faça login novamente."
		a.current = PageLogin
		return a, a.pages[a.current].Init()
	}

	p, cmd := a.pages[a.current].Update(msg)
	a.pages[a.current] = p
	return a, cmd
}

// View renders the active page with the one-shot notice above it.
func (a *App) View() string {
	out := a.pages[a.current].View()
	if a.notice != "" {
		return a.deps.Styles.Warning.Render(a.notice) + "\n\n" + out
	}
	return out
}
