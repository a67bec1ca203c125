package booking

import (
	"time"
)

// Booking is the reservation extracted from one "order created" webhook
// delivery. Transient; nothing here is persisted beyond the dedup marker.
type Booking struct {
	orderNumber int
	createdAt   time.Time
	guest       Guest
	window      Window
	pass        PassNumber
	address     Address
	itemName    string
	itemPrice   string
	quantity    int
}

type LineItem struct {
	Name     string
	Price    string
	Quantity int
}

func NewBooking(
	orderNumber int,
	createdAt time.Time,
	guest Guest,
	window Window,
	pass PassNumber,
	address Address,
	item LineItem,
) *Booking {
	return &Booking{
		orderNumber: orderNumber,
		createdAt:   createdAt,
		guest:       guest,
		window:      window,
		pass:        pass,
		address:     address,
		itemName:    item.Name,
		itemPrice:   item.Price,
		quantity:    item.Quantity,
	}
}

func (b *Booking) OrderNumber() int     { return b.orderNumber }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) Guest() Guest         { return b.guest }
func (b *Booking) Window() Window       { return b.window }
func (b *Booking) Pass() PassNumber     { return b.pass }
func (b *Booking) Address() Address     { return b.address }
func (b *Booking) ItemName() string     { return b.itemName }
func (b *Booking) ItemPrice() string    { return b.itemPrice }
func (b *Booking) Quantity() int        { return b.quantity }
