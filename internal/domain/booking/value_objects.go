package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingTimes  = errors.New("booking start or finish time missing")
	ErrInvalidWindow = errors.New("booking start must be before finish")
	ErrMissingGuest  = errors.New("guest identity or contact missing")
	ErrInvalidPass   = errors.New("invalid gate pass number")
)

// Window is the reservation time span carried on the order line item as the
// booking-start / booking-finish properties.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, ErrMissingTimes
	}
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// PassNumber identifies the reservation towards the gate-access system: a
// fixed numeric prefix followed by the order number, zero-padded to a fixed
// total length.
type PassNumber struct {
	value string
}

func NewPassNumber(prefix string, orderNumber int, length int) (PassNumber, error) {
	if orderNumber <= 0 {
		return PassNumber{}, ErrInvalidPass
	}
	digits := length - len(prefix)
	order := fmt.Sprintf("%0*d", digits, orderNumber)
	if digits <= 0 || len(order) > digits {
		return PassNumber{}, ErrInvalidPass
	}
	return PassNumber{value: prefix + order}, nil
}

func (p PassNumber) String() string {
	return p.value
}

type Guest struct {
	firstName string
	lastName  string
	email     string
	phone     string
}

// NewGuest requires at least a name and one contact channel. Which channel
// must be present depends on the notify channel and is checked at delivery
// time, not here.
func NewGuest(firstName, lastName, email, phone string) (Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if firstName == "" && lastName == "" {
		return Guest{}, ErrMissingGuest
	}
	if email == "" && phone == "" {
		return Guest{}, ErrMissingGuest
	}
	return Guest{firstName: firstName, lastName: lastName, email: email, phone: phone}, nil
}

func (g Guest) FirstName() string { return g.firstName }
func (g Guest) LastName() string  { return g.lastName }
func (g Guest) Email() string     { return g.email }
func (g Guest) Phone() string     { return g.phone }

func (g Guest) FullName() string {
	return strings.TrimSpace(g.firstName + " " + g.lastName)
}

// Address is the billing address as received from the commerce platform.
// Purely presentational, so no validation beyond what the platform sends.
type Address struct {
	Name     string
	Company  string
	Address1 string
	Address2 string
	City     string
	Zip      string
	Province string
	Country  string
}

func (a Address) IsZero() bool {
	return a == Address{}
}
