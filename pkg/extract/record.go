package extract

// Status is the detected outcome of the payment shown on the screenshot.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
	StatusPending Status = "Pending"
	StatusUnknown Status = "Unknown"
)

// App is the payment application inferred from brand keywords.
type App string

const (
	AppPaytm     App = "Paytm"
	AppPhonePe   App = "PhonePe"
	AppGooglePay App = "GooglePay"
	AppUnknown   App = "Unknown"
)

// Record is the structured output of extraction. Every field is independently
// optional: a pattern miss leaves the field nil, never an error.
type Record struct {
	Amount *float64 `json:"amount"`
	Status Status   `json:"status"`

	TransactionID         *string `json:"transaction_id"`
	UPIRefNo              *string `json:"upi_ref_no"`
	OrderID               *string `json:"order_id"`
	UTR                   *string `json:"utr"`
	ProviderTransactionID *string `json:"provider_transaction_id"`
	ProviderRefID         *string `json:"provider_ref_id"`

	FromPerson *string `json:"from_person"`
	FromHandle *string `json:"from_handle"`
	FromPhone  *string `json:"from_phone"`
	FromBank   *string `json:"from_bank"`
	ToPerson   *string `json:"to_person"`
	ToHandle   *string `json:"to_handle"`
	ToPhone    *string `json:"to_phone"`
	ToBankName *string `json:"to_bank_name"`

	Date *string `json:"date"`
	Time *string `json:"time"`

	PaymentApp App `json:"payment_app"`

	// TamperDetected is supplied by the image-metadata collaborator, not
	// computed here; it rides on the record so the scorer sees one input.
	TamperDetected bool `json:"tamper_detected"`

	RawText string `json:"raw_text"`
}

// HasReference reports whether any of the identifier kinds was found.
func (r *Record) HasReference() bool {
	for _, id := range []*string{
		r.TransactionID, r.UPIRefNo, r.OrderID,
		r.UTR, r.ProviderTransactionID, r.ProviderRefID,
	} {
		if id != nil {
			return true
		}
	}
	return false
}
