package entity

import "strconv"

type Wallet struct {
	ID         int64   `json:"id"`
	WalletName string  `json:"wallet_name"`
	Balance    float64 `json:"balance"`
	CustomerID int64   `json:"customer_id"`
}

// DisplayBalance renders the balance fixed to 4 decimal places, matching
// how balances have always been shown. Balances stay binary floating
// point end to end; see DESIGN.md before changing this.
func (w *Wallet) DisplayBalance() string {
	return strconv.FormatFloat(w.Balance, 'f', 4, 64)
}
