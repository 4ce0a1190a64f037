package checkout

import (
	"errors"
	"time"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

type Customer struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	TaxID string `json:"tax_id" yaml:"tax_id"`
}

type Item struct {
	Name       string `json:"name" yaml:"name"`
	UnitAmount string `json:"unit_amount" yaml:"unit_amount"`
	Quantity   int    `json:"quantity" yaml:"quantity"`
}

type Address struct {
	Street     string `json:"street" yaml:"street"`
	Number     string `json:"number" yaml:"number"`
	Complement string `json:"complement" yaml:"complement"`
	Locality   string `json:"locality" yaml:"locality"`
	City       string `json:"city" yaml:"city"`
	RegionCode string `json:"region_code" yaml:"region_code"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
}

// Charge is the caller-facing description of a charge, shared by the HTTP
// gateway and the command line client.
type Charge struct {
	ReferenceID      string     `json:"reference_id" yaml:"reference_id"`
	Amount           string     `json:"amount" yaml:"amount"`
	DueDate          *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	NumberOfPayments string     `json:"number_of_payments,omitempty" yaml:"number_of_payments,omitempty"`
	Description      string     `json:"description,omitempty" yaml:"description,omitempty"`
	Instructions     string     `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Customer         Customer   `json:"customer" yaml:"customer"`
	Items            []Item     `json:"items" yaml:"items"`
	Address          Address    `json:"address" yaml:"address"`
	NotificationURL  string     `json:"notification_url" yaml:"notification_url"`
}

// Fill runs every setter of d with the values of c. Unlike a single setter
// it keeps going after a failed group and reports all violations together,
// prefixed with the group name.
func (c Charge) Fill(d *charge.Draft) error {
	var violations []charge.Violation
	collect := func(group string, err error) error {
		if err == nil {
			return nil
		}
		var vErr *charge.ValidationError
		if !errors.As(err, &vErr) {
			return err
		}
		for _, v := range vErr.Violations {
			if group != "" {
				v.Field = group + "." + v.Field
			}
			violations = append(violations, v)
		}
		return nil
	}

	d.SetReference(c.ReferenceID)
	d.SetNumberOfPayments(c.NumberOfPayments)
	d.SetDescription(c.Description)
	d.SetInstructions(c.Instructions)
	if c.DueDate != nil {
		d.SetFirstDueDate(*c.DueDate)
	}

	items := make([]charge.LineItemInput, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, charge.LineItemInput{Name: it.Name, UnitAmount: it.UnitAmount, Quantity: it.Quantity})
	}

	steps := []struct {
		group string
		err   error
	}{
		{"", d.SetAmount(c.Amount)},
		{"customer", d.SetCustomerInfo(charge.CustomerInput{
			Name:  c.Customer.Name,
			Email: c.Customer.Email,
			TaxID: c.Customer.TaxID,
		})},
		{"", d.SetItems(items)},
		{"address", d.SetCustomerAddress(charge.AddressInput{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			Complement: c.Address.Complement,
			Locality:   c.Address.Locality,
			City:       c.Address.City,
			RegionCode: c.Address.RegionCode,
			PostalCode: c.Address.PostalCode,
		})},
		{"notification", d.SetNotificationURL(c.NotificationURL)},
	}
	for _, s := range steps {
		if err := collect(s.group, s.err); err != nil {
			return err
		}
	}

	if len(violations) > 0 {
		return &charge.ValidationError{Violations: violations}
	}
	return nil
}
