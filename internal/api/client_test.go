package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// The shared http transport keeps idle connections around.
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

// newTestServer builds a fake backend and a client pointed at it. The
// handler func gets the mux router to install routes on.
func newTestServer(t *testing.T, install func(r *mux.Router), cfg Config) (*Client, *httptest.Server) {
	t.Helper()
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	install(api)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	return New(cfg), srv
}

func TestBaseURLNormalization(t *testing.T) {
	c := New(Config{BaseURL: "https://host/"})
	assert.Equal(t, "https://host/api", c.BaseURL())

	c = New(Config{BaseURL: "https://host"})
	assert.Equal(t, "https://host/api", c.BaseURL())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/me", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			gotReqID = req.Header.Get("X-Request-ID")
			json.NewEncoder(w).Encode(User{Email: "u@example.com"})
		})
	}, Config{TokenSource: func() string { return "tok123" }})

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "u@example.com", user.Email)
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			json.NewEncoder(w).Encode(LoginResponse{Token: "t"})
		})
	}, Config{TokenSource: func() string { return "" }})

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresHookAndIsDetectable(t *testing.T) {
	hookFired := false
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/users/dashboard", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token expirado"})
		})
	}, Config{OnUnauthorized: func() { hookFired = true }})

	_, err := client.Dashboard(context.Background())
	require.Error(t, err)
	assert.True(t, hookFired, "401 must fire the unauthorized hook")
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Token expirado", err.Error())
}

func TestServerDetailSurfacedVerbatim(t *testing.T) {
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/investments", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Saldo insuficiente"})
		})
	}, Config{})

	_, err := client.CreateInvestment(context.Background(), InvestmentRequest{PlanID: "p1", Amount: 100})
	require.Error(t, err)
	assert.Equal(t, "Saldo insuficiente", err.Error())
	assert.False(t, IsUnauthorized(err))
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/investment-plans", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
	}, Config{})

	_, err := client.Plans(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "500")
}

func TestAdminUsersStatusQuery(t *testing.T) {
	var gotStatus string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/admin/users", func(w http.ResponseWriter, req *http.Request) {
			gotStatus = req.URL.Query().Get("status")
			json.NewEncoder(w).Encode([]User{{Email: "p@x.com", Status: UserPending}})
		})
	}, Config{})

	users, err := client.AdminUsers(context.Background(), UserPending)
	require.NoError(t, err)
	assert.Equal(t, "pending", gotStatus)
	require.Len(t, users, 1)
}

func TestAdminTransactionFilters(t *testing.T) {
	var gotType, gotStatus string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/admin/transactions", func(w http.ResponseWriter, req *http.Request) {
			gotType = req.URL.Query().Get("type")
			gotStatus = req.URL.Query().Get("status")
			json.NewEncoder(w).Encode([]Transaction{})
		})
	}, Config{})

	_, err := client.AdminTransactions(context.Background(), TxWithdrawal, TxPending)
	require.NoError(t, err)
	assert.Equal(t, "withdrawal", gotType)
	assert.Equal(t, "pending", gotStatus)
}

func TestRejectTransactionReason(t *testing.T) {
	var gotReason string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/admin/transactions/{id}/reject", func(w http.ResponseWriter, req *http.Request) {
			gotReason = req.URL.Query().Get("reason")
			assert.Equal(t, "tx9", mux.Vars(req)["id"])
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodPut)
	}, Config{})

	err := client.RejectTransaction(context.Background(), "tx9", "comprovante inválido")
	require.NoError(t, err)
	assert.Equal(t, "comprovante inválido", gotReason)
}

func TestUpdateWithdrawalStatus(t *testing.T) {
	var gotStatus string
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/admin/transactions/{id}/status", func(w http.ResponseWriter, req *http.Request) {
			gotStatus = req.URL.Query().Get("status")
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodPut)
	}, Config{})

	err := client.UpdateWithdrawalStatus(context.Background(), "tx1", TxCompleted)
	require.NoError(t, err)
	assert.Equal(t, "completed", gotStatus)
}

func TestWithdrawalResponseFeeEcho(t *testing.T) {
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/withdrawals", func(w http.ResponseWriter, req *http.Request) {
			var body WithdrawalRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, 500.0, body.Amount)
			assert.Equal(t, MethodPIX, body.PaymentMethod)
			json.NewEncoder(w).Encode(WithdrawalResponse{Message: "Saque solicitado", WithdrawalFee: 25})
		}).Methods(http.MethodPost)
	}, Config{})

	resp, err := client.CreateWithdrawal(context.Background(), WithdrawalRequest{
		Amount:        500,
		PaymentMethod: MethodPIX,
	})
	require.NoError(t, err)
	assert.Equal(t, "Saque solicitado", resp.Message)
	assert.Equal(t, 25.0, resp.WithdrawalFee)
}
