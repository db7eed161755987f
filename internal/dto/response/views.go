// Package response holds the view models handed to the HTML templates.
package response

import (
	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/internal/policy"
)

// BaseView is embedded by every page view. User drives the navbar: nil
// renders the login/register links, non-nil the greeting and logout.
type BaseView struct {
	Title string
	User  *entity.Session
	Error string
}

type HomeView struct {
	BaseView
}

type LoginView struct {
	BaseView
	Email string
}

type RegisterView struct {
	BaseView
	Email string
	Role  string
}

type CustomersView struct {
	BaseView
	Customers []entity.Customer
	Actions   policy.Actions
	Form      request.CustomerForm
}

type WalletView struct {
	entity.Wallet
	DisplayBalance string
}

type WalletsView struct {
	BaseView
	Customers []entity.Customer
	Selected  *entity.Customer
	Wallets   []WalletView
	Actions   policy.Actions
	Form      request.WalletForm
	Editing   *WalletView
}

// ConfirmDeleteView backs the interactive yes/no step that must precede
// every delete request.
type ConfirmDeleteView struct {
	BaseView
	Kind        string
	Name        string
	ConfirmPath string
	CancelPath  string
}

func WalletToView(w entity.Wallet) WalletView {
	return WalletView{
		Wallet:         w,
		DisplayBalance: w.DisplayBalance(),
	}
}

func WalletsToView(wallets []entity.Wallet) []WalletView {
	views := make([]WalletView, len(wallets))
	for i, w := range wallets {
		views[i] = WalletToView(w)
	}
	return views
}
