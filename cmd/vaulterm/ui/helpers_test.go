package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
	"vaulterm/internal/session"
)

// fakeService records calls and returns canned data. Individual tests
// override the function fields they care about; everything else succeeds
// with zero values.
type fakeService struct {
	settings  api.Settings
	dashboard api.Dashboard

	deposits    []api.DepositRequest
	withdrawals []api.WithdrawalRequest
	investments []api.InvestmentRequest

	loginFn func(req api.LoginRequest) (api.LoginResponse, error)
}

func (f *fakeService) Register(ctx context.Context, req api.RegisterRequest) (api.MessageResponse, error) {
	return api.MessageResponse{Message: "ok"}, nil
}

func (f *fakeService) Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(req)
	}
	return api.LoginResponse{}, nil
}

func (f *fakeService) AdminLogin(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error) {
	return f.Login(ctx, req)
}

func (f *fakeService) Me(ctx context.Context) (api.User, error) {
	return api.User{}, nil
}

func (f *fakeService) Dashboard(ctx context.Context) (api.Dashboard, error) {
	return f.dashboard, nil
}

func (f *fakeService) UpdateProfile(ctx context.Context, req api.ProfileUpdate) (api.User, error) {
	return api.User{FullName: req.FullName}, nil
}

func (f *fakeService) Plans(ctx context.Context) ([]api.InvestmentPlan, error) {
	return nil, nil
}

func (f *fakeService) CreateInvestment(ctx context.Context, req api.InvestmentRequest) (api.Investment, error) {
	f.investments = append(f.investments, req)
	return api.Investment{}, nil
}

func (f *fakeService) Investments(ctx context.Context) ([]api.Investment, error) {
	return nil, nil
}

func (f *fakeService) CreateDeposit(ctx context.Context, req api.DepositRequest) (api.Transaction, error) {
	f.deposits = append(f.deposits, req)
	return api.Transaction{}, nil
}

func (f *fakeService) CreateWithdrawal(ctx context.Context, req api.WithdrawalRequest) (api.WithdrawalResponse, error) {
	f.withdrawals = append(f.withdrawals, req)
	return api.WithdrawalResponse{Message: "Saque solicitado"}, nil
}

func (f *fakeService) Transactions(ctx context.Context) ([]api.Transaction, error) {
	return nil, nil
}

func (f *fakeService) Referrals(ctx context.Context) (api.ReferralSummary, error) {
	return api.ReferralSummary{}, nil
}

func (f *fakeService) Settings(ctx context.Context) (api.Settings, error) {
	return f.settings, nil
}

func (f *fakeService) AdminDashboard(ctx context.Context) (api.AdminDashboard, error) {
	return api.AdminDashboard{}, nil
}

func (f *fakeService) AdminUsers(ctx context.Context, status api.UserStatus) ([]api.User, error) {
	return nil, nil
}

func (f *fakeService) ApproveUser(ctx context.Context, userID string) error { return nil }

func (f *fakeService) RejectUser(ctx context.Context, userID string) error { return nil }

func (f *fakeService) UpdateUser(ctx context.Context, userID string, req api.AdminUserUpdate) (api.User, error) {
	return api.User{}, nil
}

func (f *fakeService) AdjustBalance(ctx context.Context, userID string, req api.BalanceAdjustment) error {
	return nil
}

func (f *fakeService) AdminTransactions(ctx context.Context, txType api.TransactionType, status api.TransactionStatus) ([]api.Transaction, error) {
	return nil, nil
}

func (f *fakeService) ApproveTransaction(ctx context.Context, txID string) error { return nil }

func (f *fakeService) RejectTransaction(ctx context.Context, txID, reason string) error { return nil }

func (f *fakeService) UpdateWithdrawalStatus(ctx context.Context, txID string, status api.TransactionStatus) error {
	return nil
}

func (f *fakeService) UpdateSettings(ctx context.Context, s api.Settings) error { return nil }

func (f *fakeService) AdminInvestments(ctx context.Context) ([]api.Investment, error) {
	return nil, nil
}

var _ Service = (*fakeService)(nil)

// testDeps builds Deps around a fake service and a temp-dir session store.
func testDeps(t *testing.T, svc Service) Deps {
	t.Helper()
	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	return Deps{
		Client:    svc,
		Session:   store,
		ServerURL: "http://localhost:8000",
		Styles:    NewStyles(DarkTheme()),
	}
}
