package ui

import (
	"context"

	"vaulterm/internal/api"
	"vaulterm/internal/session"
)

// Service is the slice of the API client the pages depend on. Tests swap in
// a fake; production wires *api.Client, which satisfies it.
type Service interface {
	Register(ctx context.Context, req api.RegisterRequest) (api.MessageResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
	AdminLogin(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
	Me(ctx context.Context) (api.User, error)

	Dashboard(ctx context.Context) (api.Dashboard, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdate) (api.User, error)

	Plans(ctx context.Context) ([]api.InvestmentPlan, error)
	CreateInvestment(ctx context.Context, req api.InvestmentRequest) (api.Investment, error)
	Investments(ctx context.Context) ([]api.Investment, error)

	CreateDeposit(ctx context.Context, req api.DepositRequest) (api.Transaction, error)
	CreateWithdrawal(ctx context.Context, req api.WithdrawalRequest) (api.WithdrawalResponse, error)
	Transactions(ctx context.Context) ([]api.Transaction, error)

	Referrals(ctx context.Context) (api.ReferralSummary, error)
	Settings(ctx context.Context) (api.Settings, error)

	AdminDashboard(ctx context.Context) (api.AdminDashboard, error)
	AdminUsers(ctx context.Context, status api.UserStatus) ([]api.User, error)
	ApproveUser(ctx context.Context, userID string) error
	RejectUser(ctx context.Context, userID string) error
	UpdateUser(ctx context.Context, userID string, req api.AdminUserUpdate) (api.User, error)
	AdjustBalance(ctx context.Context, userID string, req api.BalanceAdjustment) error
	AdminTransactions(ctx context.Context, txType api.TransactionType, status api.TransactionStatus) ([]api.Transaction, error)
	ApproveTransaction(ctx context.Context, txID string) error
	RejectTransaction(ctx context.Context, txID, reason string) error
	UpdateWithdrawalStatus(ctx context.Context, txID string, status api.TransactionStatus) error
	UpdateSettings(ctx context.Context, s api.Settings) error
	AdminInvestments(ctx context.Context) ([]api.Investment, error)
}

var _ Service = (*api.Client)(nil)

// Deps is everything a page needs to do its work.
type Deps struct {
	Client    Service
	Session   *session.Store
	ServerURL string
	Styles    Styles
}
