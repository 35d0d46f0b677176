package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestDashboardPayload(t *testing.T) {
	want := Dashboard{
		Balance: Balance{
			BRLBalance:             1500.50,
			AvailableForWithdrawal: 800,
			TotalInvested:          500,
			TotalReturns:           200.50,
			ReferralBonus:          75,
		},
		Stats: DashboardStats{ActiveInvestments: 2, TotalReferrals: 3},
		RecentTransactions: []Transaction{
			{ID: "t1", Type: TxDeposit, Amount: 100, Status: TxApproved},
		},
	}

	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/users/dashboard", func(w http.ResponseWriter, req *http.Request) {
			json.NewEncoder(w).Encode(want)
		})
	}, Config{})

	got, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dashboard mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateProfileSendsBody(t *testing.T) {
	var got ProfileUpdate
	client, _ := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/users/profile", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			json.NewEncoder(w).Encode(User{FullName: got.FullName})
		}).Methods(http.MethodPut)
	}, Config{})

	user, err := client.UpdateProfile(context.Background(), ProfileUpdate{
		FullName: "Maria Silva",
		PixKey:   "maria@pix.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Maria Silva", got.FullName)
	require.Equal(t, "maria@pix.com", got.PixKey)
	require.Equal(t, "Maria Silva", user.FullName)
}
