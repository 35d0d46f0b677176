package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vaulterm/cmd/vaulterm/ui"
	"vaulterm/internal/api"
	"vaulterm/internal/config"
	"vaulterm/internal/money"
	"vaulterm/internal/session"
)

var version = "1.0.0"

var (
	// Global flags
	configPath string
	serverURL  string
	themeFlag  string
	verbose    bool

	// Logger for the non-interactive commands
	logger *zap.Logger
)

// env is the resolved runtime wiring shared by every command.
type env struct {
	cfg    config.Config
	store  *session.Store
	client *api.Client
	styles ui.Styles
}

// buildEnv loads config, opens the session store and wires the API client.
// A 401 on any request drops the stored session on the spot.
func buildEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}

	store, err := session.NewStore("")
	if err != nil {
		return nil, err
	}

	client := api.New(api.Config{
		BaseURL:        cfg.ServerURL,
		Timeout:        cfg.RequestTimeout,
		TokenSource:    store.Token,
		OnUnauthorized: store.Clear,
	})

	if logger != nil {
		logger.Debug("configuration resolved",
			zap.String("server_url", cfg.ServerURL),
			zap.String("theme", cfg.Theme),
			zap.Duration("request_timeout", cfg.RequestTimeout),
			zap.Bool("authenticated", store.IsAuthenticated()))
	}

	return &env{
		cfg:    cfg,
		store:  store,
		client: client,
		styles: ui.NewStyles(ui.ThemeFor(cfg.Theme)),
	}, nil
}

func (e *env) deps() ui.Deps {
	return ui.Deps{
		Client:    e.client,
		Session:   e.store,
		ServerURL: e.cfg.ServerURL,
		Styles:    e.styles,
	}
}

// logFailure records a failed API call before the error is surfaced.
func logFailure(op string, err error) error {
	if err != nil && logger != nil {
		logger.Warn("request failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

// requireLogin fails fast for the commands that need a session; the
// interactive app handles this with its own login page instead.
func (e *env) requireLogin() error {
	if !e.store.IsAuthenticated() {
		return fmt.Errorf("not logged in; run 'vaulterm login' or start the interactive app")
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "vaulterm",
	Short: "vaulterm - terminal client for the Vault investment platform",
	Long: `vaulterm is a terminal client for the Vault investment platform.

Run without arguments to start the interactive interface: dashboard,
investments, deposits, withdrawals, referrals and the admin console.

Subcommands cover the scriptable basics: login, logout, whoami, plans,
history and referrals.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive app owns the terminal; no logger there.
		if cmd.Use == "vaulterm" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		app := ui.NewApp(e.deps())
		_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and store the session token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		if len(args) > 0 {
			email = args[0]
		}
		password, _ := cmd.Flags().GetString("password")
		admin, _ := cmd.Flags().GetBool("admin")

		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Print("Senha: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		ctx, cancel := commandContext(e)
		defer cancel()

		req := api.LoginRequest{Email: email, Password: password}
		var resp api.LoginResponse
		if admin {
			resp, err = e.client.AdminLogin(ctx, req)
		} else {
			resp, err = e.client.Login(ctx, req)
		}
		if err != nil {
			return logFailure("login", err)
		}
		if err := e.store.Save(resp.Token, resp.User); err != nil {
			return err
		}
		logger.Debug("session saved", zap.String("email", resp.User.Email))
		fmt.Printf("Logado como %s (%s)\n", resp.User.FullName, resp.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		e.store.Clear()
		fmt.Println("Sessão encerrada.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		if err := e.requireLogin(); err != nil {
			return err
		}

		ctx, cancel := commandContext(e)
		defer cancel()

		user, err := e.client.Me(ctx)
		if err != nil {
			return logFailure("me", err)
		}
		// Keep the cached copy current.
		_ = e.store.UpdateUser(user)

		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		fmt.Printf("Status: %s    Código de indicação: %s\n", user.Status, user.ReferralCode)
		fmt.Printf("Saldo: %s    Disponível para saque: %s\n",
			money.FormatBRL(user.BRLBalance), money.FormatBRL(user.AvailableForWithdrawal))
		if exp, ok := e.store.TokenExpiry(); ok {
			fmt.Printf("Sessão expira em: %s\n", exp.Local().Format("02/01/2006 15:04"))
		}
		return nil
	},
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the available investment plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		if err := e.requireLogin(); err != nil {
			return err
		}

		ctx, cancel := commandContext(e)
		defer cancel()

		plans, err := e.client.Plans(ctx)
		if err != nil {
			return logFailure("plans", err)
		}

		table := ui.NewSimpleTable("Planos de Investimento", "Plano", "Mínimo", "Máximo", "Taxa", "Bloqueio")
		table.Empty = "Nenhum plano disponível"
		for _, p := range plans {
			name := p.Name
			if p.Popular {
				name += " *"
			}
			table.AddRow(name,
				money.FormatBRL(p.MinAmount),
				money.FormatBRL(p.MaxAmount),
				fmt.Sprintf("%.1f%%", p.ProfitRate),
				fmt.Sprintf("%dh", p.LockHours))
		}
		fmt.Print(table.View(e.styles))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the transaction history",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		if err := e.requireLogin(); err != nil {
			return err
		}

		ctx, cancel := commandContext(e)
		defer cancel()

		txns, err := e.client.Transactions(ctx)
		if err != nil {
			return logFailure("transactions", err)
		}

		table := ui.NewSimpleTable("Histórico", "Data", "Tipo", "Valor", "Status")
		table.Empty = "Nenhuma transação"
		for _, t := range txns {
			table.AddRow(
				t.CreatedAt.Format("02/01/2006 15:04"),
				string(t.Type),
				money.FormatSigned(t.Type, t.Amount),
				string(t.Status))
		}
		fmt.Print(table.View(e.styles))
		return nil
	},
}

var referralsCmd = &cobra.Command{
	Use:   "referrals",
	Short: "Show the referral code, link and network",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		if err := e.requireLogin(); err != nil {
			return err
		}

		ctx, cancel := commandContext(e)
		defer cancel()

		summary, err := e.client.Referrals(ctx)
		if err != nil {
			return logFailure("referrals", err)
		}

		fmt.Printf("Código: %s\n", summary.ReferralCode)
		fmt.Printf("Link:   %s\n", api.ReferralLink(e.cfg.ServerURL, summary.ReferralCode))
		fmt.Printf("Indicados: %d    Comissão total: %s\n\n",
			summary.TotalReferrals, money.FormatBRL(summary.TotalCommission))

		table := ui.NewSimpleTable("Rede", "Nível", "Status", "Comissão")
		table.Empty = "Nenhum indicado ainda"
		for _, r := range summary.Referrals {
			table.AddRow(fmt.Sprintf("%d", r.Level), r.Status, money.FormatBRL(r.TotalCommission))
		}
		fmt.Print(table.View(e.styles))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vaulterm %s\n", version)
	},
}

// commandContext bounds one-shot commands with the configured timeout.
func commandContext(e *env) (context.Context, context.CancelFunc) {
	if e.cfg.RequestTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	// Leave headroom over the per-request timeout.
	return context.WithTimeout(context.Background(), e.cfg.RequestTimeout+5*time.Second)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.vaulterm/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "platform server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme: auto, light or dark")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
	loginCmd.Flags().Bool("admin", false, "log in against the admin endpoint")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, plansCmd, historyCmd, referralsCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
