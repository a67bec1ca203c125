package request

import (
	"strings"
	"time"

	"parkgate/internal/domain/booking"
)

// Property names carrying the reservation window on the primary line item.
const (
	PropBookingStart  = "booking-start"
	PropBookingFinish = "booking-finish"
)

// OrderWebhook is the Shopify "order created" payload, trimmed to the fields
// this service reads. Unknown fields are ignored on bind.
type OrderWebhook struct {
	ID             int64           `json:"id"`
	OrderNumber    int             `json:"order_number"`
	CreatedAt      time.Time       `json:"created_at"`
	Email          string          `json:"email"`
	Customer       *Customer       `json:"customer"`
	BillingAddress *BillingAddress `json:"billing_address"`
	LineItems      []LineItem      `json:"line_items"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Province  string `json:"province"`
	Country   string `json:"country"`
}

type LineItem struct {
	Title      string             `json:"title"`
	Name       string             `json:"name"`
	Price      string             `json:"price"`
	Quantity   int                `json:"quantity"`
	Properties []LineItemProperty `json:"properties"`
}

type LineItemProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BookingWindow extracts the reservation window from the primary line item's
// free-form properties. Timestamps are ISO-8601.
func (w OrderWebhook) BookingWindow() (booking.Window, error) {
	if len(w.LineItems) == 0 {
		return booking.Window{}, booking.ErrMissingTimes
	}

	var start, end time.Time
	for _, prop := range w.LineItems[0].Properties {
		switch strings.ToLower(strings.TrimSpace(prop.Name)) {
		case PropBookingStart:
			start, _ = time.Parse(time.RFC3339, prop.Value)
		case PropBookingFinish:
			end, _ = time.Parse(time.RFC3339, prop.Value)
		}
	}

	return booking.NewWindow(start, end)
}

func (w OrderWebhook) guest() (booking.Guest, error) {
	var first, last, email, phone string
	if w.Customer != nil {
		first = w.Customer.FirstName
		last = w.Customer.LastName
		email = w.Customer.Email
		phone = w.Customer.Phone
	}
	if email == "" {
		email = w.Email
	}
	if (first == "" || last == "") && w.BillingAddress != nil {
		if first == "" {
			first = w.BillingAddress.FirstName
		}
		if last == "" {
			last = w.BillingAddress.LastName
		}
	}
	return booking.NewGuest(first, last, email, phone)
}

func (w OrderWebhook) address() booking.Address {
	if w.BillingAddress == nil {
		return booking.Address{}
	}
	name := strings.TrimSpace(w.BillingAddress.FirstName + " " + w.BillingAddress.LastName)
	return booking.Address{
		Name:     name,
		Company:  w.BillingAddress.Company,
		Address1: w.BillingAddress.Address1,
		Address2: w.BillingAddress.Address2,
		City:     w.BillingAddress.City,
		Zip:      w.BillingAddress.Zip,
		Province: w.BillingAddress.Province,
		Country:  w.BillingAddress.Country,
	}
}

func (w OrderWebhook) ToDomain(passPrefix string, passLength int) (*booking.Booking, error) {
	window, err := w.BookingWindow()
	if err != nil {
		return nil, err
	}

	guest, err := w.guest()
	if err != nil {
		return nil, err
	}

	pass, err := booking.NewPassNumber(passPrefix, w.OrderNumber, passLength)
	if err != nil {
		return nil, err
	}

	var item booking.LineItem
	if len(w.LineItems) > 0 {
		li := w.LineItems[0]
		name := li.Title
		if name == "" {
			name = li.Name
		}
		item = booking.LineItem{Name: name, Price: li.Price, Quantity: li.Quantity}
	}

	return booking.NewBooking(w.OrderNumber, w.CreatedAt, guest, window, pass, w.address(), item), nil
}
