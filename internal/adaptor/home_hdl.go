package adaptor

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/dto/response"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"

	"go.uber.org/zap"
)

type HomeHandler struct {
	store    *session.Store
	renderer *Renderer
	log      *zap.Logger
}

func NewHomeHandler(store *session.Store, renderer *Renderer, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		store:    store,
		renderer: renderer,
		log:      log,
	}
}

// Home handles GET /. Public, but the navbar still reflects the probed
// session.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	_, sess := h.store.Resolve(r.Context(), r.Cookies())

	h.renderer.Render(w, http.StatusOK, "home", response.HomeView{
		BaseView: response.BaseView{Title: "Home", User: sess},
	})
}

// Unauthorized renders the login prompt the gate shows instead of any
// guarded view.
func (h *HomeHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusUnauthorized, "unauthorized", response.BaseView{
		Title: "Log in required",
	})
}
