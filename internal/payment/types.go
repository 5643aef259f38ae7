// Package payment composes multi-item purchase submissions and drives the
// settlement retry protocol against the upstream billing API.
package payment

// StatusSuccess is the terminal-success settlement status.
const StatusSuccess = "SUCCESS"

// DefaultTokenIndex selects the upstream's default confirmation token
// (the primary line item's) instead of an explicit item index.
const DefaultTokenIndex = -1

// PackageOption is a purchasable package as listed by the store endpoints.
// ConfirmationToken is the opaque per-package credential required to charge
// this specific option.
type PackageOption struct {
	OptionCode        string
	Name              string
	VariantName       string
	Price             int64
	ConfirmationToken string
	Validity          string
	ParentCode        string
	PaymentFor        string
	Order             int
}

// LineItem is one entry in a settlement submission. A payment request
// carries 1..N line items: the primary package plus any decoys, each with its
// own confirmation token.
type LineItem struct {
	ItemCode          string `json:"item_code"`
	ItemName          string `json:"item_name"`
	ItemPrice         int64  `json:"item_price"`
	Tax               int64  `json:"tax"`
	ProductType       string `json:"product_type"`
	ConfirmationToken string `json:"token_confirmation"`
}

// Request is one settlement submission. Amount is the declared total; when
// zero the composed item total is used. TokenIndex picks which line item's
// confirmation token acknowledges the charge (DefaultTokenIndex for the
// upstream default). RetryTokenIndex is the index to switch to on the single
// corrective resubmission; flows that first submit with an explicit index
// typically retry with DefaultTokenIndex.
type Request struct {
	Items           []LineItem
	PaymentFor      string
	Amount          int64
	TokenIndex      int
	RetryTokenIndex int
}

// Result is the upstream's settlement verdict. Any status other than
// SUCCESS is a rejection; Message may carry a parsable corrected amount.
type Result struct {
	Status  string
	Message string
}

// Success reports terminal success.
func (r *Result) Success() bool {
	return r != nil && r.Status == StatusSuccess
}
