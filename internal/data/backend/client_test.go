package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := NewClient(utils.BackendConfig{URL: ts.URL, TimeoutSeconds: 5}, zap.NewNop())
	return client, ts
}

func TestMeSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/me" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if c, err := r.Cookie("session"); err != nil || c.Value != "tok-1" {
			t.Errorf("session cookie not forwarded, got %v (%v)", c, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"email":"alice@example.com","role":"admin"}}`))
	}))

	sess, err := client.Me(context.Background(), []*http.Cookie{{Name: "session", Value: "tok-1"}})
	if err != nil {
		t.Fatalf("Me() error: %v", err)
	}
	if sess.Email != "alice@example.com" || string(sess.Role) != "admin" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestMeUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))

	if _, err := client.Me(context.Background(), nil); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestMeMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing user", `{"message":"hi"}`},
		{"empty user", `{"user":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			if _, err := client.Me(context.Background(), nil); err == nil {
				t.Fatal("expected error for malformed payload")
			}
		})
	}
}

func TestErrorEnvelopeExtraction(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Email already registered"}`))
	}))

	err := client.Register(context.Background(), "a@b.com", "Abc123!", "user", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Email already registered" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", apiErr.Status)
	}
}

func TestErrorEnvelopeAbsent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))

	err := client.Logout(context.Background(), nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "" {
		t.Errorf("expected empty message for non-envelope body, got %q", apiErr.Message)
	}
}

func TestLoginReturnsSetCookies(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "fresh-token", Path: "/"})
		w.Write([]byte(`{"message":"Login successful"}`))
	}))

	cookies, err := client.Login(context.Background(), "alice@example.com", "Abc123!", nil)
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if len(cookies) != 1 || cookies[0].Name != "session" || cookies[0].Value != "fresh-token" {
		t.Fatalf("expected relayed session cookie, got %v", cookies)
	}
}

func TestWalletEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"id":3,"wallet_name":"LTC Wallet","balance":7.89,"customer_id":12}`))
	}))

	ctx := context.Background()

	if _, err := client.UpdateWallet(ctx, 3, WalletFields{WalletName: "LTC Wallet", Balance: 7.89}, nil); err != nil {
		t.Fatalf("UpdateWallet() error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/wallets/3" {
		t.Errorf("update hit %s %s", gotMethod, gotPath)
	}

	if err := client.DeleteWallet(ctx, 3, nil); err != nil {
		t.Fatalf("DeleteWallet() error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/wallets/3" {
		t.Errorf("delete hit %s %s", gotMethod, gotPath)
	}
}

func TestListWalletsScopedToCustomer(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/customers/12/wallets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"wallet_name":"BTC","balance":0.5,"customer_id":12}]`))
	}))

	wallets, err := client.ListWallets(context.Background(), 12, nil)
	if err != nil {
		t.Fatalf("ListWallets() error: %v", err)
	}
	if len(wallets) != 1 || wallets[0].WalletName != "BTC" {
		t.Fatalf("unexpected wallets: %+v", wallets)
	}
}

func TestNetworkErrorWrapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	client := NewClient(utils.BackendConfig{URL: ts.URL, TimeoutSeconds: 1}, zap.NewNop())
	if _, err := client.ListCustomers(context.Background(), nil); err == nil {
		t.Fatal("expected network error")
	}
}
