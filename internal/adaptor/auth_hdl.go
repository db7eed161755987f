package adaptor

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/response"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/internal/usecase"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	store    *session.Store
	renderer *Renderer
	config   utils.SessionConfig
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, store *session.Store, renderer *Renderer, config utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		store:    store,
		renderer: renderer,
		config:   config,
		log:      log,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	_, sess := h.store.Resolve(r.Context(), r.Cookies())

	h.renderer.Render(w, http.StatusOK, "login", response.LoginView{
		BaseView: response.BaseView{Title: "Login", User: sess},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "login", response.LoginView{
			BaseView: response.BaseView{Title: "Login", Error: "Invalid form submission"},
		})
		return
	}

	form := request.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	setCookies, err := h.service.Login(r.Context(), &form, r.Cookies())
	if err != nil {
		h.renderer.Render(w, http.StatusOK, "login", response.LoginView{
			BaseView: response.BaseView{Title: "Login", Error: err.Error()},
			Email:    form.Email,
		})
		return
	}

	// Relay the backend session cookie to the browser, then land on home
	relayCookies(w, setCookies)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	_, sess := h.store.Resolve(r.Context(), r.Cookies())

	h.renderer.Render(w, http.StatusOK, "register", response.RegisterView{
		BaseView: response.BaseView{Title: "Register", User: sess},
		Role:     "user",
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "register", response.RegisterView{
			BaseView: response.BaseView{Title: "Register", Error: "Invalid form submission"},
			Role:     "user",
		})
		return
	}

	form := request.RegisterForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	setCookies, err := h.service.Register(r.Context(), &form, r.Cookies())
	if err != nil {
		h.renderer.Render(w, http.StatusOK, "register", response.RegisterView{
			BaseView: response.BaseView{Title: "Register", Error: err.Error()},
			Email:    form.Email,
			Role:     form.Role,
		})
		return
	}

	relayCookies(w, setCookies)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. Best effort: the browser cookie is
// expired and the user sent to /login regardless of what the backend
// answered.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), r.Cookies()); err != nil {
		h.log.Warn("Logout backend call failed", zap.Error(err))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func relayCookies(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		http.SetCookie(w, cookie)
	}
}
