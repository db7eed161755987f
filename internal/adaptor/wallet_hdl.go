package adaptor

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/response"
	"github.com/cnedd11/Crypto-Bank-App/internal/policy"
	"github.com/cnedd11/Crypto-Bank-App/internal/usecase"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

type WalletHandler struct {
	service   usecase.WalletService
	customers usecase.CustomerService
	renderer  *Renderer
	log       *zap.Logger
}

func NewWalletHandler(service usecase.WalletService, customers usecase.CustomerService, renderer *Renderer, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service:   service,
		customers: customers,
		renderer:  renderer,
		log:       log,
	}
}

// List handles GET /wallets?customer={id}&edit={wallet_id}. Without a
// selected customer only the selector renders; selecting one replaces
// the wallet listing wholesale. The edit parameter switches the form
// into edit mode for exactly one wallet.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderWallets(w, r, "", nil)
}

// Create handles POST /wallets
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderWallets(w, r, "Invalid form submission", nil)
		return
	}

	form := h.walletForm(r)

	created, err := h.service.Create(r.Context(), &form, r.Cookies())
	if err != nil {
		h.renderWallets(w, r, err.Error(), &form)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/wallets?customer=%d", created.CustomerID), http.StatusSeeOther)
}

// Update handles POST /wallets/{id}/edit
func (h *WalletHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderWallets(w, r, "Invalid form submission", nil)
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Redirect(w, r, "/wallets", http.StatusSeeOther)
		return
	}

	form := h.walletForm(r)

	if _, err := h.service.Update(r.Context(), id, &form, r.Cookies()); err != nil {
		h.renderWallets(w, r, err.Error(), &form)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/wallets?customer=%d", form.CustomerID), http.StatusSeeOther)
}

// ConfirmDelete handles GET /wallets/{id}/delete?customer={id}. Renders
// the yes/no page only; declining just navigates back.
func (h *WalletHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.Redirect(w, r, "/wallets", http.StatusSeeOther)
		return
	}

	customerID, _ := strconv.ParseInt(r.URL.Query().Get("customer"), 10, 64)

	wallet, err := h.service.Find(r.Context(), customerID, id, r.Cookies())
	if err != nil {
		h.renderWallets(w, r, err.Error(), nil)
		return
	}

	cancel := fmt.Sprintf("/wallets?customer=%d", customerID)
	h.renderer.Render(w, http.StatusOK, "confirm_delete", response.ConfirmDeleteView{
		BaseView:    response.BaseView{Title: "Delete wallet", User: sess},
		Kind:        "wallet",
		Name:        wallet.WalletName,
		ConfirmPath: fmt.Sprintf("/wallets/%d/delete?customer=%d", id, customerID),
		CancelPath:  cancel,
	})
}

// Delete handles POST /wallets/{id}/delete?customer={id}
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Redirect(w, r, "/wallets", http.StatusSeeOther)
		return
	}

	customerID, _ := strconv.ParseInt(r.URL.Query().Get("customer"), 10, 64)

	if err := h.service.Delete(r.Context(), id, r.Cookies()); err != nil {
		h.renderWallets(w, r, err.Error(), nil)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/wallets?customer=%d", customerID), http.StatusSeeOther)
}

func (h *WalletHandler) walletForm(r *http.Request) request.WalletForm {
	customerID, _ := strconv.ParseInt(r.PostFormValue("customer_id"), 10, 64)
	return request.WalletForm{
		WalletName: r.PostFormValue("wallet_name"),
		Balance:    r.PostFormValue("balance"),
		CustomerID: customerID,
	}
}

// renderWallets rebuilds the whole wallets page: customer selector,
// wallet listing for the selected customer and the add/edit form. A
// failed mutation re-renders with the submitted form preserved.
func (h *WalletHandler) renderWallets(w http.ResponseWriter, r *http.Request, errMsg string, form *request.WalletForm) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		h.renderer.Render(w, http.StatusUnauthorized, "unauthorized", response.BaseView{Title: "Log in required"})
		return
	}

	view := response.WalletsView{
		BaseView: response.BaseView{Title: "Crypto Wallets", User: sess, Error: errMsg},
		Actions:  policy.ActionsFor(sess.Role),
	}
	if form != nil {
		view.Form = *form
	}

	customers, err := h.customers.List(r.Context(), r.Cookies())
	if err != nil {
		if view.Error == "" {
			view.Error = err.Error()
		}
		h.renderer.Render(w, http.StatusOK, "wallets", view)
		return
	}
	view.Customers = customers

	// Selected customer comes from the query, or from the submitted form
	// when re-rendering after a failed mutation
	selectedID, _ := strconv.ParseInt(r.URL.Query().Get("customer"), 10, 64)
	if selectedID == 0 && form != nil {
		selectedID = form.CustomerID
	}
	for i := range customers {
		if customers[i].ID == selectedID {
			view.Selected = &customers[i]
			break
		}
	}

	if view.Selected == nil {
		h.renderer.Render(w, http.StatusOK, "wallets", view)
		return
	}

	wallets, err := h.service.List(r.Context(), view.Selected.ID, r.Cookies())
	if err != nil {
		if view.Error == "" {
			view.Error = err.Error()
		}
		h.renderer.Render(w, http.StatusOK, "wallets", view)
		return
	}
	view.Wallets = response.WalletsToView(wallets)

	// One active edit target at a time, mutually exclusive with add mode
	if editID, _ := strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64); editID != 0 {
		for i := range view.Wallets {
			if view.Wallets[i].ID == editID {
				view.Editing = &view.Wallets[i]
				break
			}
		}
		if view.Editing != nil && form == nil {
			view.Form = request.WalletForm{
				WalletName: view.Editing.WalletName,
				Balance:    formatBalanceInput(view.Editing.Balance),
				CustomerID: view.Selected.ID,
			}
		}
	}

	h.renderer.Render(w, http.StatusOK, "wallets", view)
}

// formatBalanceInput pre-fills the edit form the way the balance was
// typed, not the 4-decimal display rounding.
func formatBalanceInput(balance float64) string {
	return strconv.FormatFloat(balance, 'f', -1, 64)
}
