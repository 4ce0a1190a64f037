package charge

type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Media string `json:"media,omitempty"`
	Type  string `json:"type,omitempty"`
}

type OrderAmount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency,omitempty"`
}

type QRCode struct {
	ID             string      `json:"id"`
	ExpirationDate string      `json:"expiration_date"`
	Amount         OrderAmount `json:"amount"`
	Text           string      `json:"text"`
	Links          []Link      `json:"links,omitempty"`
}

type BoletoInfo struct {
	ID               string `json:"id"`
	Barcode          string `json:"barcode"`
	FormattedBarcode string `json:"formatted_barcode"`
	DueDate          string `json:"due_date"`
}

type PaymentMethod struct {
	Type   string      `json:"type"`
	Boleto *BoletoInfo `json:"boleto,omitempty"`
}

type Charge struct {
	ID            string        `json:"id"`
	ReferenceID   string        `json:"reference_id"`
	Status        string        `json:"status"`
	Description   string        `json:"description,omitempty"`
	Amount        OrderAmount   `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Links         []Link        `json:"links,omitempty"`
}

// Order is PagSeguro's answer to an order creation.
type Order struct {
	ID          string   `json:"id"`
	ReferenceID string   `json:"reference_id"`
	CreatedAt   string   `json:"created_at"`
	QRCodes     []QRCode `json:"qr_codes,omitempty"`
	Charges     []Charge `json:"charges,omitempty"`
	Links       []Link   `json:"links,omitempty"`
}
