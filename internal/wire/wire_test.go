package wire

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// fakeBank is an in-memory stand-in for the CryptoBank REST backend,
// faithful to its cookie sessions and error envelopes.
type fakeBank struct {
	mu sync.Mutex

	users     map[string]fakeUser
	sessions  map[string]string // token -> email
	customers []entity.Customer
	wallets   []entity.Wallet
	nextID    int64
	nextToken int

	meCalls     int
	deleteCalls int
	failLogout  bool
}

type fakeUser struct {
	password string
	role     entity.Role
}

func newFakeBank() *fakeBank {
	return &fakeBank{
		users:    make(map[string]fakeUser),
		sessions: make(map[string]string),
		nextID:   100,
	}
}

func (b *fakeBank) addUser(email, password string, role entity.Role) {
	b.users[email] = fakeUser{password: password, role: role}
}

func (b *fakeBank) addCustomer(name, email string) int64 {
	b.nextID++
	b.customers = append(b.customers, entity.Customer{ID: b.nextID, Name: name, Email: email})
	return b.nextID
}

func (b *fakeBank) currentUser(r *http.Request) (string, entity.Role, bool) {
	cookie, err := r.Cookie("session")
	if err != nil {
		return "", "", false
	}
	email, ok := b.sessions[cookie.Value]
	if !ok {
		return "", "", false
	}
	return email, b.users[email].role, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (b *fakeBank) router() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/api/me", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.meCalls++

		email, role, ok := b.currentUser(req)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"email": email, "role": string(role)},
		})
	})

	r.Post("/api/login", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		var creds struct{ Email, Password string }
		json.NewDecoder(req.Body).Decode(&creds)

		user, ok := b.users[creds.Email]
		if !ok || user.password != creds.Password {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		b.nextToken++
		token := fmt.Sprintf("tok-%d", b.nextToken)
		b.sessions[token] = creds.Email
		http.SetCookie(w, &http.Cookie{Name: "session", Value: token, Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	})

	r.Post("/api/register", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		var reg struct {
			Email, Password string
			Role            entity.Role
		}
		json.NewDecoder(req.Body).Decode(&reg)

		if _, exists := b.users[reg.Email]; exists {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		b.users[reg.Email] = fakeUser{password: reg.Password, role: reg.Role}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Registration successful"})
	})

	r.Post("/api/logout", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		if b.failLogout {
			writeError(w, http.StatusInternalServerError, "session store down")
			return
		}
		if cookie, err := req.Cookie("session"); err == nil {
			delete(b.sessions, cookie.Value)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	})

	r.Get("/api/customers", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.customers)
	})

	r.Post("/api/customers", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		var fields entity.Customer
		json.NewDecoder(req.Body).Decode(&fields)
		b.nextID++
		fields.ID = b.nextID
		b.customers = append(b.customers, fields)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(fields)
	})

	r.Delete("/api/customers/{id}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deleteCalls++

		_, role, ok := b.currentUser(req)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if role != entity.RoleAdmin {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		for i := range b.customers {
			if b.customers[i].ID == id {
				b.customers = append(b.customers[:i], b.customers[i+1:]...)
				json.NewEncoder(w).Encode(map[string]string{"message": "Customer deleted"})
				return
			}
		}
		writeError(w, http.StatusNotFound, "Not found")
	})

	r.Get("/api/customers/{id}/wallets", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		wallets := []entity.Wallet{}
		for _, wallet := range b.wallets {
			if wallet.CustomerID == id {
				wallets = append(wallets, wallet)
			}
		}
		json.NewEncoder(w).Encode(wallets)
	})

	r.Post("/api/wallets", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		var fields entity.Wallet
		json.NewDecoder(req.Body).Decode(&fields)
		b.nextID++
		fields.ID = b.nextID
		b.wallets = append(b.wallets, fields)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(fields)
	})

	r.Put("/api/wallets/{id}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		var fields entity.Wallet
		json.NewDecoder(req.Body).Decode(&fields)

		for i := range b.wallets {
			if b.wallets[i].ID == id {
				b.wallets[i].WalletName = fields.WalletName
				b.wallets[i].Balance = fields.Balance
				json.NewEncoder(w).Encode(b.wallets[i])
				return
			}
		}
		writeError(w, http.StatusNotFound, "Not found")
	})

	r.Delete("/api/wallets/{id}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deleteCalls++

		_, role, ok := b.currentUser(req)
		if !ok || role != entity.RoleAdmin {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		for i := range b.wallets {
			if b.wallets[i].ID == id {
				b.wallets = append(b.wallets[:i], b.wallets[i+1:]...)
				json.NewEncoder(w).Encode(map[string]string{"message": "Wallet deleted"})
				return
			}
		}
		writeError(w, http.StatusNotFound, "Not found")
	})

	return r
}

// fixture wires the full app against a fake backend and returns a
// browser-like client with a cookie jar.
func fixture(t *testing.T, bank *fakeBank) (*http.Client, string) {
	t.Helper()

	backendServer := httptest.NewServer(bank.router())
	t.Cleanup(backendServer.Close)

	config := &utils.Config{
		App:     utils.AppConfig{Name: "crypto-bank-web", Port: "0"},
		Backend: utils.BackendConfig{URL: backendServer.URL, TimeoutSeconds: 5},
		Session: utils.SessionConfig{CookieName: "session", ProbeTTLSeconds: 60},
	}

	log := zap.NewNop()
	client := backend.NewClient(config.Backend, log)
	store := session.NewStore(client, config.Session, log)

	app, err := Wiring(client, store, config, log)
	if err != nil {
		t.Fatalf("Wiring() error: %v", err)
	}

	front := httptest.NewServer(app.Router)
	t.Cleanup(front.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}

	return &http.Client{Jar: jar}, front.URL
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()
	status, body := postForm(t, client, baseURL+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if status != http.StatusOK || !strings.Contains(body, email) {
		t.Fatalf("login as %s failed: status %d", email, status)
	}
}

func TestGuardedRoutesRequireLogin(t *testing.T) {
	bank := newFakeBank()
	bank.addCustomer("Satoshi", "satoshi@example.com")
	client, baseURL := fixture(t, bank)

	for _, path := range []string{"/customers", "/wallets"} {
		status, body := get(t, client, baseURL+path)
		if status != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, status)
		}
		if !strings.Contains(body, "log in") {
			t.Errorf("GET %s missing login prompt", path)
		}
		if strings.Contains(body, "Satoshi") || strings.Contains(body, "Add Customer") {
			t.Errorf("GET %s leaked guarded content", path)
		}
	}
}

func TestLoginRendersGuardedViews(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	bank.addCustomer("Satoshi", "satoshi@example.com")
	client, baseURL := fixture(t, bank)

	login(t, client, baseURL, "user@example.com", "Abc123!")

	status, body := get(t, client, baseURL+"/customers")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "Satoshi") || !strings.Contains(body, "Add Customer") {
		t.Fatalf("guarded view incomplete")
	}
	if strings.Contains(body, "You must") {
		t.Fatalf("login prompt rendered alongside guarded view")
	}
}

func TestLoginFailureShowsServerError(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	client, baseURL := fixture(t, bank)

	status, body := postForm(t, client, baseURL+"/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"wrong"},
	})
	if status != http.StatusOK || !strings.Contains(body, "Invalid credentials") {
		t.Fatalf("expected verbatim backend error on login page, status %d", status)
	}
}

func TestDeleteControlsFollowRole(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	bank.addUser("admin@example.com", "Abc123!", entity.RoleAdmin)
	custID := bank.addCustomer("Satoshi", "satoshi@example.com")
	bank.wallets = append(bank.wallets, entity.Wallet{ID: 1, WalletName: "BTC", Balance: 0.5, CustomerID: custID})
	walletsPath := fmt.Sprintf("/wallets?customer=%d", custID)

	userClient, baseURL := fixture(t, bank)
	login(t, userClient, baseURL, "user@example.com", "Abc123!")

	_, body := get(t, userClient, baseURL+"/customers")
	if strings.Contains(body, "Delete") {
		t.Error("regular user sees customer delete control")
	}
	_, body = get(t, userClient, baseURL+walletsPath)
	if strings.Contains(body, "Delete") {
		t.Error("regular user sees wallet delete control")
	}
	if !strings.Contains(body, "Edit") {
		t.Error("edit control must be available to regular users")
	}

	adminClient, adminURL := fixture(t, bank)
	login(t, adminClient, adminURL, "admin@example.com", "Abc123!")

	_, body = get(t, adminClient, adminURL+"/customers")
	if !strings.Contains(body, "Delete") {
		t.Error("admin missing customer delete control")
	}
	_, body = get(t, adminClient, adminURL+walletsPath)
	if !strings.Contains(body, "Delete") {
		t.Error("admin missing wallet delete control")
	}
}

func TestWalletCreateDisplaysFourDecimals(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	custID := bank.addCustomer("Satoshi", "satoshi@example.com")
	client, baseURL := fixture(t, bank)

	login(t, client, baseURL, "user@example.com", "Abc123!")

	status, body := postForm(t, client, baseURL+"/wallets", url.Values{
		"customer_id": {fmt.Sprintf("%d", custID)},
		"wallet_name": {"LTC Wallet"},
		"balance":     {"7.89"},
	})
	if status != http.StatusOK {
		t.Fatalf("wallet create status = %d", status)
	}
	if !strings.Contains(body, "LTC Wallet") || !strings.Contains(body, "7.8900") {
		t.Fatalf("wallet list missing created entry with 4-decimal balance")
	}
}

func TestDeleteConfirmationDoesNotIssueRequest(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("admin@example.com", "Abc123!", entity.RoleAdmin)
	custID := bank.addCustomer("Satoshi", "satoshi@example.com")
	client, baseURL := fixture(t, bank)

	login(t, client, baseURL, "admin@example.com", "Abc123!")

	confirmPath := fmt.Sprintf("%s/customers/%d/delete", baseURL, custID)
	status, body := get(t, client, confirmPath)
	if status != http.StatusOK || !strings.Contains(body, "Are you sure") {
		t.Fatalf("confirm page not rendered, status %d", status)
	}
	if bank.deleteCalls != 0 {
		t.Fatalf("confirm page issued %d delete requests", bank.deleteCalls)
	}

	// Declining is just navigating away: record must still exist
	_, body = get(t, client, baseURL+"/customers")
	if !strings.Contains(body, "Satoshi") {
		t.Fatal("record vanished without confirmation")
	}

	// The confirming POST performs the delete
	_, body = postForm(t, client, confirmPath, url.Values{})
	if bank.deleteCalls != 1 {
		t.Fatalf("expected one delete request after confirmation, got %d", bank.deleteCalls)
	}
	if strings.Contains(body, "Satoshi") {
		t.Fatal("record still listed after confirmed delete")
	}
}

func TestLogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	client, baseURL := fixture(t, bank)

	login(t, client, baseURL, "user@example.com", "Abc123!")

	bank.failLogout = true

	status, body := postForm(t, client, baseURL+"/logout", url.Values{})
	if status != http.StatusOK || !strings.Contains(body, "Login") {
		t.Fatalf("logout did not land on login page, status %d", status)
	}

	// Cookie is gone, so guarded routes are blocked again
	status, _ = get(t, client, baseURL+"/customers")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", status)
	}
}

func TestProbeCacheAvoidsRedundantMeCalls(t *testing.T) {
	bank := newFakeBank()
	bank.addUser("user@example.com", "Abc123!", entity.RoleUser)
	client, baseURL := fixture(t, bank)

	login(t, client, baseURL, "user@example.com", "Abc123!")

	bank.mu.Lock()
	bank.meCalls = 0
	bank.mu.Unlock()

	get(t, client, baseURL+"/customers")
	get(t, client, baseURL+"/customers")
	get(t, client, baseURL+"/")

	bank.mu.Lock()
	calls := bank.meCalls
	bank.mu.Unlock()

	// The post-login navigation already warmed the cache, so repeated
	// navigations need at most one fresh probe
	if calls > 1 {
		t.Fatalf("expected cached probes across navigations, got %d", calls)
	}
}

func TestRegisterFlowEstablishesSession(t *testing.T) {
	bank := newFakeBank()
	client, baseURL := fixture(t, bank)

	status, body := postForm(t, client, baseURL+"/register", url.Values{
		"email":    {"new@example.com"},
		"password": {"Abc123!"},
		"role":     {"admin"},
	})
	if status != http.StatusOK || !strings.Contains(body, "new@example.com") {
		t.Fatalf("register flow did not land authenticated, status %d", status)
	}

	status, _ = get(t, client, baseURL+"/customers")
	if status != http.StatusOK {
		t.Fatalf("expected authorized after registration, got %d", status)
	}
}

func TestWeakPasswordBlockedOnRegisterPage(t *testing.T) {
	bank := newFakeBank()
	client, baseURL := fixture(t, bank)

	status, body := postForm(t, client, baseURL+"/register", url.Values{
		"email":    {"new@example.com"},
		"password": {"abc"},
		"role":     {"user"},
	})
	if status != http.StatusOK || !strings.Contains(body, "Password must be at least 6 characters") {
		t.Fatalf("expected fixed password message, status %d", status)
	}
	if len(bank.users) != 0 {
		t.Fatal("weak password reached the backend")
	}
}

func TestHealthEndpoint(t *testing.T) {
	bank := newFakeBank()
	client, baseURL := fixture(t, bank)

	status, body := get(t, client, baseURL+"/health")
	if status != http.StatusOK || body != "OK" {
		t.Fatalf("health = %d %q", status, body)
	}
}
