package api

import "time"

// UserStatus is the account lifecycle state as reported by the server.
type UserStatus string

const (
	UserPending   UserStatus = "pending"
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserRejected  UserStatus = "rejected"
)

// TransactionType classifies ledger entries.
type TransactionType string

const (
	TxDeposit         TransactionType = "deposit"
	TxWithdrawal      TransactionType = "withdrawal"
	TxInvestment      TransactionType = "investment"
	TxProfit          TransactionType = "profit"
	TxReferralBonus   TransactionType = "referral_bonus"
	TxAdminAdjustment TransactionType = "admin_adjustment"
)

// TransactionStatus is the approval state of a ledger entry.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxApproved  TransactionStatus = "approved"
	TxRejected  TransactionStatus = "rejected"
	TxCompleted TransactionStatus = "completed"
)

// PaymentMethod identifies a payment rail.
type PaymentMethod string

const (
	MethodPIX      PaymentMethod = "pix"
	MethodUSDT     PaymentMethod = "usdt"
	MethodBybitUID PaymentMethod = "bybit_uid"
)

// InvestmentStatus is the lifecycle state of a placement.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// Withdrawal fee collection modes reported by platform settings.
const (
	FeeRequireDeposit    = "require_deposit"
	FeeDeductFromBalance = "deduct_from_balance"
)

// User is the profile object returned by /auth/me, login and admin listings.
// All balances are server-owned; the client never derives them locally.
type User struct {
	ID                     string     `json:"id"`
	Email                  string     `json:"email"`
	FullName               string     `json:"full_name"`
	Username               string     `json:"username"`
	Country                string     `json:"country,omitempty"`
	Phone                  string     `json:"phone,omitempty"`
	CPF                    string     `json:"cpf,omitempty"`
	PixKey                 string     `json:"pix_key,omitempty"`
	USDTWallet             string     `json:"usdt_wallet,omitempty"`
	Status                 UserStatus `json:"status"`
	BRLBalance             float64    `json:"brl_balance"`
	AvailableForWithdrawal float64    `json:"available_for_withdrawal"`
	TotalInvested          float64    `json:"total_invested"`
	TotalReturns           float64    `json:"total_returns"`
	ReferralBonus          float64    `json:"referral_bonus"`
	ReferralCode           string     `json:"referral_code"`
	ReferredBy             string     `json:"referred_by,omitempty"`
	KYCVerified            bool       `json:"kyc_verified"`
	KYCPercentage          int        `json:"kyc_percentage"`
	IsAdmin                bool       `json:"is_admin,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	MemberSince            time.Time  `json:"member_since"`
}

// Balance is the balance block of the dashboard payload.
type Balance struct {
	BRLBalance             float64 `json:"brl_balance"`
	AvailableForWithdrawal float64 `json:"available_for_withdrawal"`
	TotalInvested          float64 `json:"total_invested"`
	TotalReturns           float64 `json:"total_returns"`
	ReferralBonus          float64 `json:"referral_bonus"`
}

// DashboardStats is the stats block of the dashboard payload.
type DashboardStats struct {
	ActiveInvestments int `json:"active_investments"`
	TotalReferrals    int `json:"total_referrals"`
}

// Dashboard is the aggregate returned by GET /users/dashboard.
type Dashboard struct {
	Balance            Balance        `json:"balance"`
	Stats              DashboardStats `json:"stats"`
	RecentTransactions []Transaction  `json:"recent_transactions"`
}

// InvestmentPlan is read-only reference data for the purchase flow.
// Bounds are range hints only; the server validates authoritatively.
type InvestmentPlan struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	LockHours           int     `json:"lock_hours"`
	MinAmount           float64 `json:"min_amount"`
	MaxAmount           float64 `json:"max_amount"`
	ProfitRate          float64 `json:"profit_rate"`
	ProfitIntervalHours int     `json:"profit_interval_hours"`
	Popular             bool    `json:"popular"`
	Active              bool    `json:"active"`
}

// Investment is a user's placement against a plan.
type Investment struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	PlanID          string           `json:"plan_id"`
	PlanName        string           `json:"plan_name"`
	Amount          float64          `json:"amount"`
	TotalProfit     float64          `json:"total_profit"`
	ProfitPerCycle  float64          `json:"profit_per_cycle"`
	TotalCycles     int              `json:"total_cycles"`
	CompletedCycles int              `json:"completed_cycles"`
	Status          InvestmentStatus `json:"status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Transaction is one ledger entry.
type Transaction struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Amount        float64           `json:"amount"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method,omitempty"`
	PaymentProof  string            `json:"payment_proof,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	ProcessedBy   string            `json:"processed_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
}

// Referral is one node of the commission tree, as listed by GET /referrals.
type Referral struct {
	ID              string    `json:"id"`
	ReferrerID      string    `json:"referrer_id"`
	ReferredUserID  string    `json:"referred_user_id"`
	Level           int       `json:"level"`
	Status          string    `json:"status"`
	TotalCommission float64   `json:"total_commission"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReferralSummary is the aggregate returned by GET /referrals.
type ReferralSummary struct {
	ReferralCode    string     `json:"referral_code"`
	TotalReferrals  int        `json:"total_referrals"`
	TotalCommission float64    `json:"total_commission"`
	Referrals       []Referral `json:"referrals"`
}

// PaymentMethods is the platform payment directory shown during deposits.
type PaymentMethods struct {
	PixCPF          string `json:"pix_cpf,omitempty"`
	PixBank         string `json:"pix_bank,omitempty"`
	PixName         string `json:"pix_name,omitempty"`
	USDTWalletTRC20 string `json:"usdt_wallet_trc20,omitempty"`
	USDTWalletBEP20 string `json:"usdt_wallet_bep20,omitempty"`
	BybitUID        string `json:"bybit_uid,omitempty"`
	WhatsappSupport string `json:"whatsapp_support,omitempty"`
}

// Settings is the platform fee/limit configuration. Read-only for users,
// read-write for admins via PUT /admin/settings.
type Settings struct {
	WithdrawalFee       float64        `json:"withdrawal_fee"`
	WithdrawalFeeMethod string         `json:"withdrawal_fee_method"`
	MinDeposit          float64        `json:"min_deposit"`
	MaxDeposit          float64        `json:"max_deposit"`
	MinWithdrawal       float64        `json:"min_withdrawal"`
	PaymentMethods      PaymentMethods `json:"payment_methods"`
}

// FeeStepRequired reports whether the withdrawal wizard must collect a fee
// payment proof before submission.
func (s Settings) FeeStepRequired() bool {
	return s.WithdrawalFeeMethod != FeeDeductFromBalance
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Country      string `json:"country,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// LoginRequest is the body of POST /auth/login and /auth/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the cached user object.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MessageResponse is the generic {message} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileUpdate is the body of PUT /users/profile.
type ProfileUpdate struct {
	FullName   string `json:"full_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CPF        string `json:"cpf,omitempty"`
	PixKey     string `json:"pix_key,omitempty"`
	USDTWallet string `json:"usdt_wallet,omitempty"`
}

// InvestmentRequest is the body of POST /investments.
type InvestmentRequest struct {
	PlanID string  `json:"plan_id"`
	Amount float64 `json:"amount"`
}

// DepositRequest is the body of POST /deposits.
type DepositRequest struct {
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentProof  string        `json:"payment_proof,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// WithdrawalRequest is the body of POST /withdrawals.
type WithdrawalRequest struct {
	Amount          float64       `json:"amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	FeePaymentProof string        `json:"fee_payment_proof,omitempty"`
}

// WithdrawalResponse echoes the fee the server applied to the request.
type WithdrawalResponse struct {
	Message       string  `json:"message"`
	WithdrawalFee float64 `json:"withdrawal_fee"`
}

// BalanceAdjustment is the body of POST /admin/users/{id}/balance.
type BalanceAdjustment struct {
	AdjustmentType string  `json:"adjustment_type"` // add, subtract, set
	BalanceType    string  `json:"balance_type"`    // brl_balance, available_for_withdrawal, referral_bonus
	Amount         float64 `json:"amount"`
	Notes          string  `json:"notes,omitempty"`
}

// AdminUserUpdate is the body of PUT /admin/users/{id}.
type AdminUserUpdate struct {
	FullName   string     `json:"full_name,omitempty"`
	Username   string     `json:"username,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	CPF        string     `json:"cpf,omitempty"`
	PixKey     string     `json:"pix_key,omitempty"`
	USDTWallet string     `json:"usdt_wallet,omitempty"`
	Country    string     `json:"country,omitempty"`
	Status     UserStatus `json:"status,omitempty"`
}

// AdminDashboard is the summary returned by GET /admin/dashboard.
type AdminDashboard struct {
	Users struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Active    int `json:"active"`
		Suspended int `json:"suspended"`
	} `json:"users"`
	Investments struct {
		Total       int     `json:"total"`
		Active      int     `json:"active"`
		TotalAmount float64 `json:"total_amount"`
	} `json:"investments"`
	Transactions struct {
		PendingDeposits    int     `json:"pending_deposits"`
		PendingWithdrawals int     `json:"pending_withdrawals"`
		TotalDeposited     float64 `json:"total_deposited"`
		TotalWithdrawn     float64 `json:"total_withdrawn"`
	} `json:"transactions"`
}
