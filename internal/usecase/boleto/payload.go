package boleto

import "github.com/gest-dev/pagseguro-go/internal/domain/charge"

const (
	// DueDateLayout is the calendar date PagSeguro expects for boleto due
	// dates.
	DueDateLayout = "2006-01-02"

	Currency   = "BRL"
	MethodType = "BOLETO"
)

type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type instructionLines struct {
	Line1 string `json:"line_1"`
}

type holder struct {
	Name    string         `json:"name"`
	TaxID   string         `json:"tax_id"`
	Email   string         `json:"email"`
	Address charge.Address `json:"address"`
}

type boletoMethod struct {
	DueDate          string           `json:"due_date"`
	InstructionLines instructionLines `json:"instruction_lines"`
	Holder           holder           `json:"holder"`
}

type paymentMethod struct {
	Type   string       `json:"type"`
	Boleto boletoMethod `json:"boleto"`
}

type chargeEntry struct {
	ReferenceID   string        `json:"reference_id"`
	Description   string        `json:"description"`
	Amount        amount        `json:"amount"`
	PaymentMethod paymentMethod `json:"payment_method"`
}

type shipping struct {
	Address charge.Address `json:"address"`
}

type payload struct {
	ReferenceID      string            `json:"reference_id"`
	Customer         charge.Customer   `json:"customer"`
	Items            []charge.LineItem `json:"items"`
	Shipping         shipping          `json:"shipping"`
	NotificationURLs []string          `json:"notification_urls"`
	Charges          []chargeEntry     `json:"charges"`
}

func newPayload(d *charge.Draft) payload {
	customer := d.Customer()
	return payload{
		ReferenceID:      d.Reference(),
		Customer:         customer,
		Items:            d.Items(),
		Shipping:         shipping{Address: d.Address()},
		NotificationURLs: []string{d.NotificationURL()},
		Charges: []chargeEntry{{
			ReferenceID: d.Reference(),
			Description: d.Description(),
			Amount:      amount{Value: d.Amount().Wire(), Currency: Currency},
			PaymentMethod: paymentMethod{
				Type: MethodType,
				Boleto: boletoMethod{
					DueDate:          d.DueDate().Format(DueDateLayout),
					InstructionLines: instructionLines{Line1: d.Instructions()},
					Holder: holder{
						Name:    customer.Name,
						TaxID:   customer.TaxID,
						Email:   customer.Email,
						Address: d.Address(),
					},
				},
			},
		}},
	}
}
