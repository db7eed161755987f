package adaptor

import (
	"net/http"
	"strconv"

	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/response"
	"github.com/cnedd11/Crypto-Bank-App/internal/policy"
	"github.com/cnedd11/Crypto-Bank-App/internal/usecase"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service  usecase.CustomerService
	renderer *Renderer
	log      *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, renderer *Renderer, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// List handles GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "", request.CustomerForm{})
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderList(w, r, "Invalid form submission", request.CustomerForm{})
		return
	}

	form := request.CustomerForm{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Phone: r.PostFormValue("phone"),
	}

	if _, err := h.service.Create(r.Context(), &form, r.Cookies()); err != nil {
		// Keep the submitted values so the form stays re-submittable
		h.renderList(w, r, err.Error(), form)
		return
	}

	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

// ConfirmDelete handles GET /customers/{id}/delete. It only renders the
// yes/no page; no delete request is issued until the confirming POST.
func (h *CustomerHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.Redirect(w, r, "/customers", http.StatusSeeOther)
		return
	}

	customer, err := h.service.Get(r.Context(), id, r.Cookies())
	if err != nil {
		h.renderList(w, r, err.Error(), request.CustomerForm{})
		return
	}

	h.renderer.Render(w, http.StatusOK, "confirm_delete", response.ConfirmDeleteView{
		BaseView:    response.BaseView{Title: "Delete customer", User: sess},
		Kind:        "customer",
		Name:        customer.Name,
		ConfirmPath: r.URL.Path,
		CancelPath:  "/customers",
	})
}

// Delete handles POST /customers/{id}/delete
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Redirect(w, r, "/customers", http.StatusSeeOther)
		return
	}

	if err := h.service.Delete(r.Context(), id, r.Cookies()); err != nil {
		h.renderList(w, r, err.Error(), request.CustomerForm{})
		return
	}

	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *CustomerHandler) renderList(w http.ResponseWriter, r *http.Request, errMsg string, form request.CustomerForm) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		h.renderer.Render(w, http.StatusUnauthorized, "unauthorized", response.BaseView{Title: "Log in required"})
		return
	}

	view := response.CustomersView{
		BaseView: response.BaseView{Title: "Customers", User: sess, Error: errMsg},
		Actions:  policy.ActionsFor(sess.Role),
		Form:     form,
	}

	customers, err := h.service.List(r.Context(), r.Cookies())
	if err != nil {
		if view.Error == "" {
			view.Error = err.Error()
		}
	} else {
		view.Customers = customers
	}

	h.renderer.Render(w, http.StatusOK, "customers", view)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
