package pix

import "github.com/gest-dev/pagseguro-go/internal/domain/charge"

// ExpirationLayout is the timestamp shape PagSeguro wants for QR code
// expiration: seconds precision with a numeric UTC offset.
const ExpirationLayout = "2006-01-02T15:04:05-07:00"

type amount struct {
	Value string `json:"value"`
}

type qrCode struct {
	Amount         amount `json:"amount"`
	ExpirationDate string `json:"expiration_date"`
}

type shipping struct {
	Address charge.Address `json:"address"`
}

type payload struct {
	ReferenceID      string            `json:"reference_id"`
	Customer         charge.Customer   `json:"customer"`
	QRCodes          []qrCode          `json:"qr_codes"`
	Shipping         shipping          `json:"shipping"`
	Items            []charge.LineItem `json:"items"`
	NotificationURLs []string          `json:"notification_urls"`
}

func newPayload(d *charge.Draft) payload {
	return payload{
		ReferenceID: d.Reference(),
		Customer:    d.Customer(),
		QRCodes: []qrCode{{
			Amount:         amount{Value: d.Amount().Wire()},
			ExpirationDate: d.DueDate().Format(ExpirationLayout),
		}},
		Shipping:         shipping{Address: d.Address()},
		Items:            d.Items(),
		NotificationURLs: []string{d.NotificationURL()},
	}
}
