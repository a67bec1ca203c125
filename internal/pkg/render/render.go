package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"parkgate/internal/pkg/errs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// DisplayTimeFormat is how booking times are shown to guests in email, SMS
// and the QR view page.
const DisplayTimeFormat = "Mon, 02 Jan 2006 15:04"

func FormatTime(t time.Time) string {
	return t.Format(DisplayTimeFormat)
}

// Address is the billing address as shown in the confirmation email. Empty
// optional fields are omitted entirely, no blank lines are emitted.
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

func AddressHTML(a Address) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "address.html.tmpl", a); err != nil {
		return "", errs.Wrap(err, "failed to render billing address")
	}
	return template.HTML(buf.String()), nil //nolint:gosec // template output, not user input
}

type ConfirmationData struct {
	GuestName   string
	OrderNumber int
	OrderDate   string
	PassNumber  string
	Start       string
	End         string
	ItemName    string
	Price       string
	Quantity    int
	AddressHTML template.HTML
	LogoDataURL string
	QRDataURL   string
}

func ConfirmationHTML(d ConfirmationData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "confirmation.html.tmpl", d); err != nil {
		return "", errs.Wrap(err, "failed to render confirmation email")
	}
	return buf.String(), nil
}

// ConfirmationText is the plain-text alternative body for clients that do
// not display HTML.
func ConfirmationText(d ConfirmationData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nYour parking reservation for order #%d is confirmed.\n",
		d.GuestName, d.OrderNumber)
	if d.OrderDate != "" {
		fmt.Fprintf(&b, "Ordered: %s\n", d.OrderDate)
	}
	fmt.Fprintf(&b, "Arrival: %s\nDeparture: %s\nGate pass: %s\n\n"+
		"Show the attached QR code at the gate.\n",
		d.Start, d.End, d.PassNumber)
	return b.String()
}

type QRViewData struct {
	Start     string
	End       string
	QRDataURL string
}

func QRViewHTML(d QRViewData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "qrview.html.tmpl", d); err != nil {
		return "", errs.Wrap(err, "failed to render qr view page")
	}
	return buf.String(), nil
}

// SMSText is the fixed-template text message pointing at the hosted QR view
// page.
func SMSText(orderNumber int, viewURL string) string {
	return fmt.Sprintf(
		"Your parking reservation for order #%d is confirmed. Show this pass at the gate: %s",
		orderNumber, viewURL,
	)
}
