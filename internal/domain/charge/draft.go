package charge

import "time"

// DefaultDueDays is how many calendar days ahead the due date lands when
// none was set.
const DefaultDueDays = 3

// Draft accumulates the fields every transaction kind shares. Each group is
// sanitized and validated when it is set; a failed set leaves the previous
// value untouched.
type Draft struct {
	reference        string
	amount           Money
	dueDate          time.Time
	numberOfPayments string
	description      string
	instructions     string
	customer         Customer
	address          Address
	items            []LineItem
	itemsCount       int
	notification     NotificationTarget
}

func (d *Draft) SetReference(text string) {
	d.reference = Sanitize(text)
}

func (d *Draft) SetAmount(raw string) error {
	m, err := NewAmount(raw)
	if err != nil {
		return err
	}
	d.amount = m
	return nil
}

func (d *Draft) SetFirstDueDate(t time.Time) {
	d.dueDate = t.Truncate(time.Second)
}

func (d *Draft) SetNumberOfPayments(raw string) {
	d.numberOfPayments = SanitizeNumber(raw)
}

func (d *Draft) SetDescription(text string) {
	d.description = Sanitize(text)
}

func (d *Draft) SetInstructions(text string) {
	d.instructions = Sanitize(text)
}

func (d *Draft) SetCustomerInfo(in CustomerInput) error {
	c, err := NewCustomer(in)
	if err != nil {
		return err
	}
	d.customer = c
	return nil
}

func (d *Draft) SetItems(in []LineItemInput) error {
	items, err := NewLineItems(in)
	if err != nil {
		return err
	}
	d.items = items
	d.itemsCount = len(items)
	return nil
}

func (d *Draft) SetCustomerAddress(in AddressInput) error {
	a, err := NewAddress(in)
	if err != nil {
		return err
	}
	d.address = a
	return nil
}

func (d *Draft) SetNotificationURL(raw string) error {
	n, err := NewNotificationTarget(raw)
	if err != nil {
		return err
	}
	d.notification = n
	return nil
}

// DefaultDueDate sets the due date to now+DefaultDueDays unless one is
// already present. Once set it never moves.
func (d *Draft) DefaultDueDate(now time.Time) {
	if d.dueDate.IsZero() {
		d.SetFirstDueDate(now.AddDate(0, 0, DefaultDueDays))
	}
}

type sendCheck struct {
	Customer Customer `json:"customer"`
	Address  Address  `json:"address"`
}

// Revalidate re-runs the customer and address rules before sending. Items
// were checked when set and are not checked again here.
func (d *Draft) Revalidate() error {
	return check(sendCheck{Customer: d.customer, Address: d.address})
}

func (d *Draft) Reference() string        { return d.reference }
func (d *Draft) Amount() Money            { return d.amount }
func (d *Draft) DueDate() time.Time       { return d.dueDate }
func (d *Draft) NumberOfPayments() string { return d.numberOfPayments }
func (d *Draft) Description() string      { return d.description }
func (d *Draft) Instructions() string     { return d.instructions }
func (d *Draft) Customer() Customer       { return d.customer }
func (d *Draft) Address() Address         { return d.address }
func (d *Draft) ItemsCount() int          { return d.itemsCount }
func (d *Draft) NotificationURL() string  { return d.notification.URL }

func (d *Draft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}
