package charge

import "strings"

// Country is the only country PagSeguro accepts for shipping addresses.
const Country = "BRA"

type CustomerInput struct {
	Name  string
	Email string
	TaxID string
}

type Customer struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"required,email,max=60"`
	TaxID string `json:"tax_id" validate:"required,numeric,len=11"`
}

func NewCustomer(in CustomerInput) (Customer, error) {
	c := Customer{
		Name:  Sanitize(in.Name),
		Email: Sanitize(in.Email),
		TaxID: SanitizeNumber(in.TaxID),
	}
	if err := c.Validate(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Validate() error {
	return check(c)
}

type AddressInput struct {
	Street     string
	Number     string
	Complement string
	Locality   string
	City       string
	RegionCode string
	PostalCode string
}

type Address struct {
	Street     string `json:"street" validate:"required,max=80"`
	Number     string `json:"number" validate:"required,max=20"`
	Complement string `json:"complement" validate:"omitempty,max=40"`
	Locality   string `json:"locality" validate:"required,max=60"`
	PostalCode string `json:"postal_code" validate:"required,numeric,len=8"`
	City       string `json:"city" validate:"required,min=2,max=60"`
	RegionCode string `json:"region_code" validate:"required,len=2"`
	Country    string `json:"country"`
}

// NewAddress normalizes in: region code upper-cased, country fixed.
func NewAddress(in AddressInput) (Address, error) {
	a := Address{
		Street:     Sanitize(in.Street),
		Number:     Sanitize(in.Number),
		Complement: Sanitize(in.Complement),
		Locality:   Sanitize(in.Locality),
		PostalCode: SanitizeNumber(in.PostalCode),
		City:       Sanitize(in.City),
		RegionCode: strings.ToUpper(Sanitize(in.RegionCode)),
		Country:    Country,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error {
	return check(a)
}

type LineItemInput struct {
	Name       string
	UnitAmount string
	Quantity   int
}

type LineItem struct {
	Name       string `json:"name" validate:"required,max=100"`
	UnitAmount Money  `json:"unit_amount" validate:"required,numeric,amount"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=999"`
}

type lineItemBatch struct {
	Items []LineItem `json:"items" validate:"dive"`
}

// NewLineItems converts the whole batch or nothing. Violations are reported
// as items[i].field.
func NewLineItems(in []LineItemInput) ([]LineItem, error) {
	items := make([]LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, LineItem{
			Name:       Sanitize(it.Name),
			UnitAmount: ParseMoney(it.UnitAmount),
			Quantity:   it.Quantity,
		})
	}
	if err := check(lineItemBatch{Items: items}); err != nil {
		return nil, err
	}
	return items, nil
}

type NotificationTarget struct {
	URL string `json:"url" validate:"required,url"`
}

func NewNotificationTarget(raw string) (NotificationTarget, error) {
	n := NotificationTarget{URL: Sanitize(raw)}
	if err := check(n); err != nil {
		return NotificationTarget{}, err
	}
	return n, nil
}

type amountField struct {
	Amount Money `json:"amount" validate:"required,numeric,amount"`
}

// NewAmount sanitizes raw and checks it against the Money rules.
func NewAmount(raw string) (Money, error) {
	m := ParseMoney(raw)
	if err := check(amountField{Amount: m}); err != nil {
		return Money{}, err
	}
	return m, nil
}
