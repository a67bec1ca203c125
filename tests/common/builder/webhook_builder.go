//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkgate/internal/handler/dto/request"
)

type OrderWebhookBuilder struct {
	ID          int64
	OrderNumber int
	CreatedAt   time.Time
	Email       string
	FirstName   string
	LastName    string
	Phone       string
	Company     string
	Address1    string
	Address2    string
	City        string
	Zip         string
	Province    string
	Country     string
	ItemTitle   string
	ItemPrice   string
	Quantity    int
	Start       time.Time
	End         time.Time
}

func NewOrderWebhookBuilder() *OrderWebhookBuilder {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &OrderWebhookBuilder{
		ID:          450789469,
		OrderNumber: 1234,
		CreatedAt:   start.Add(-48 * time.Hour),
		Email:       "guest@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		Phone:       "+15551234567",
		Address1:    "12 Harbour St",
		City:        "Auckland",
		Zip:         "1010",
		Province:    "Auckland",
		Country:     "New Zealand",
		ItemTitle:   "Covered Parking - Daily",
		ItemPrice:   "25.00",
		Quantity:    1,
		Start:       start,
		End:         start.Add(8 * time.Hour),
	}
}

func (b *OrderWebhookBuilder) WithOrderNumber(n int) *OrderWebhookBuilder {
	b.OrderNumber = n
	return b
}

func (b *OrderWebhookBuilder) WithEmail(email string) *OrderWebhookBuilder {
	b.Email = email
	return b
}

func (b *OrderWebhookBuilder) WithPhone(phone string) *OrderWebhookBuilder {
	b.Phone = phone
	return b
}

func (b *OrderWebhookBuilder) WithWindow(start, end time.Time) *OrderWebhookBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *OrderWebhookBuilder) WithAddress2(address2 string) *OrderWebhookBuilder {
	b.Address2 = address2
	return b
}

func (b *OrderWebhookBuilder) WithoutTimes() *OrderWebhookBuilder {
	b.Start = time.Time{}
	b.End = time.Time{}
	return b
}

func (b *OrderWebhookBuilder) Build() reqdto.OrderWebhook {
	var props []reqdto.LineItemProperty
	if !b.Start.IsZero() {
		props = append(props, reqdto.LineItemProperty{
			Name:  reqdto.PropBookingStart,
			Value: b.Start.Format(time.RFC3339),
		})
	}
	if !b.End.IsZero() {
		props = append(props, reqdto.LineItemProperty{
			Name:  reqdto.PropBookingFinish,
			Value: b.End.Format(time.RFC3339),
		})
	}

	return reqdto.OrderWebhook{
		ID:          b.ID,
		OrderNumber: b.OrderNumber,
		CreatedAt:   b.CreatedAt,
		Email:       b.Email,
		Customer: &reqdto.Customer{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Email:     b.Email,
			Phone:     b.Phone,
		},
		BillingAddress: &reqdto.BillingAddress{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Company:   b.Company,
			Address1:  b.Address1,
			Address2:  b.Address2,
			City:      b.City,
			Zip:       b.Zip,
			Province:  b.Province,
			Country:   b.Country,
		},
		LineItems: []reqdto.LineItem{
			{
				Title:      b.ItemTitle,
				Price:      b.ItemPrice,
				Quantity:   b.Quantity,
				Properties: props,
			},
		},
	}
}

// BuildWithoutCustomer drops guest identity entirely; parsing should report
// missing data.
func (b *OrderWebhookBuilder) BuildWithoutCustomer() reqdto.OrderWebhook {
	w := b.Build()
	w.Customer = nil
	w.BillingAddress = nil
	w.Email = ""
	return w
}
