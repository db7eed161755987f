package request

// WalletForm carries the raw form fields. Balance stays a string until
// the service parses it, mirroring how the form submits it.
type WalletForm struct {
	WalletName string `json:"wallet_name" validate:"required,max=120"`
	Balance    string `json:"balance" validate:"required,numeric"`
	CustomerID int64  `json:"customer_id" validate:"omitempty,gt=0"`
}
