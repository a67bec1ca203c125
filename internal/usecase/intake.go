package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"parkgate/internal/domain/booking"
	reqdto "parkgate/internal/handler/dto/request"
	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/config"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/pkg/qr"
	"parkgate/internal/pkg/render"
)

var (
	// Error markers for categorization in logs
	ErrDedupCheckFailed = errors.New("dedup check failed")
	ErrDedupWriteFailed = errors.New("dedup record write failed")
	ErrDeliveryFailed   = errors.New("notification delivery failed")
)

// Notification channels
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// DedupStore records previously processed webhook delivery ids. Records are
// existence markers with no expiry; they are written once and never updated.
type DedupStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Email struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SendResult is the mail transport's per-recipient outcome.
type SendResult struct {
	Accepted []string
	Rejected []string
}

type Mailer interface {
	Send(ctx context.Context, email Email) (*SendResult, error)
}

type SMSResult struct {
	Status    string
	ErrorCode *int
}

type SMSSender interface {
	Send(ctx context.Context, to, body string) (*SMSResult, error)
}

// GateRecord is the reservation record destined for the legacy gate-access
// server. Constructed fresh per event, never stored locally.
type GateRecord struct {
	PassNumber string
	Start      time.Time
	End        time.Time
	FirstName  string
	LastName   string
}

type GateUploader interface {
	Upload(ctx context.Context, rec GateRecord) error
}

type LogoStore interface {
	FetchLogo(ctx context.Context) ([]byte, error)
}

type Result struct {
	Message string
}

type IntakeUseCase interface {
	ProcessOrder(ctx context.Context, req reqdto.OrderWebhook, deliveryID string) Result
}

type intakeUseCaseImpl struct {
	dedup  DedupStore
	mailer Mailer
	sms    SMSSender
	gate   GateUploader
	logos  LogoStore
	clock  clock.Clock
	cfg    config.Config
}

func NewIntakeUseCase(
	dedup DedupStore,
	mailer Mailer,
	sms SMSSender,
	gate GateUploader,
	logos LogoStore,
	clock clock.Clock,
	cfg config.Config,
) IntakeUseCase {
	return &intakeUseCaseImpl{
		dedup:  dedup,
		mailer: mailer,
		sms:    sms,
		gate:   gate,
		logos:  logos,
		clock:  clock,
		cfg:    cfg,
	}
}

// ProcessOrder runs the full intake flow for one webhook delivery: validate,
// enrich, dedup-check, optionally upload the gate record, deliver the
// notification with one retry, then record the delivery id. Every terminal
// state maps to one of the Msg constants; the method never returns an error
// because the caller always answers 201.
func (u *intakeUseCaseImpl) ProcessOrder(ctx context.Context, req reqdto.OrderWebhook, deliveryID string) (result Result) {
	// The upstream platform treats 201 as acceptance, so a single bad event
	// must never take the process down. Anything unexpected degrades to the
	// generic failure message.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unhandled failure while processing webhook",
				"delivery_id", deliveryID, "order_number", req.OrderNumber, "panic", r)
			result = Result{Message: MsgProcessingFailed}
		}
	}()

	if req.CreatedAt.IsZero() {
		req.CreatedAt = u.clock.Now()
	}

	b, err := req.ToDomain(u.cfg.Webhook.PassPrefix, u.cfg.Webhook.PassLength)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingTimes), errors.Is(err, booking.ErrInvalidWindow):
			return Result{Message: MsgMissingTimeInfo}
		default:
			return Result{Message: MsgDataMissing}
		}
	}

	enr := u.enrich(ctx, b)

	// Check-then-act: this get and the set after delivery are not atomic, so
	// two concurrent deliveries of the same id can both pass the check and
	// both notify. The platform's redeliveries arrive seconds apart, which
	// is the window this guards.
	_, seen, err := u.dedup.Get(ctx, deliveryID)
	if err != nil {
		slog.Error("dedup lookup failed",
			"delivery_id", deliveryID, "error", errs.Mark(err, ErrDedupCheckFailed))
		return Result{Message: MsgProcessingFailed}
	}
	if seen {
		return Result{Message: MsgAlreadyLogged}
	}

	if u.cfg.Webhook.UploadToGateServer {
		if uploadErr := u.uploadGateRecord(ctx, b); uploadErr != nil {
			slog.Error("gate server upload failed",
				"pass", b.Pass().String(), "error", uploadErr)
			if u.cfg.Webhook.GateUploadFatal {
				return Result{Message: MsgGateUploadFailed}
			}
		}
	}

	if deliverErr := u.deliver(ctx, b, enr); deliverErr != nil {
		slog.Warn("notification delivery failed, retrying once",
			"delivery_id", deliveryID, "error", deliverErr)
		if retryErr := u.deliver(ctx, b, enr); retryErr != nil {
			// Dedup record intentionally withheld so a redelivery of the
			// same id is retried from scratch.
			slog.Error("notification delivery failed after retry",
				"delivery_id", deliveryID,
				"error", errs.Mark(retryErr, ErrDeliveryFailed),
				"stack", errs.ExtractStackLines(retryErr, 5))
			return Result{Message: MsgNotSent}
		}
	}

	slog.Info("reservation confirmation delivered",
		"delivery_id", deliveryID,
		"order_number", b.OrderNumber(),
		"pass", b.Pass().String(),
		"window_duration", b.Window().Duration())

	if writeErr := u.dedup.Set(ctx, deliveryID, deliveryID); writeErr != nil {
		// The notification is already out; only the at-most-once marker is
		// at risk, so operators get a distinct message.
		slog.Error("dedup record write failed after successful delivery",
			"delivery_id", deliveryID, "error", errs.Mark(writeErr, ErrDedupWriteFailed))
		return Result{Message: MsgSentNotLogged}
	}

	return Result{Message: MsgSuccess}
}

// enrichment holds the best-effort extras for the notification. Every field
// may be empty; a failed fetch degrades the output, never the flow.
type enrichment struct {
	logoDataURL string
	qrPayload   string
	qrPNG       []byte
	addressHTML template.HTML
}

func (u *intakeUseCaseImpl) enrich(ctx context.Context, b *booking.Booking) enrichment {
	var enr enrichment

	payload := qr.Payload{
		OrderNumber: b.OrderNumber(),
		StartTime:   b.Window().Start().Format(time.RFC3339),
		EndTime:     b.Window().End().Format(time.RFC3339),
	}
	encoded, err := payload.Encode()
	if err != nil {
		slog.Warn("qr payload encoding failed", "order_number", b.OrderNumber(), "error", err)
	} else {
		enr.qrPayload = encoded
		if png, pngErr := qr.PNG(encoded); pngErr != nil {
			slog.Warn("qr code generation failed", "order_number", b.OrderNumber(), "error", pngErr)
		} else {
			enr.qrPNG = png
		}
	}

	if logo, logoErr := u.logos.FetchLogo(ctx); logoErr != nil {
		slog.Warn("logo fetch failed, sending without branding", "error", logoErr)
	} else if len(logo) > 0 {
		enr.logoDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(logo)
	}

	if !b.Address().IsZero() {
		addr := b.Address()
		html, addrErr := render.AddressHTML(render.Address{
			Name:     addr.Name,
			Company:  addr.Company,
			Address1: addr.Address1,
			Address2: addr.Address2,
			City:     addr.City,
			Zip:      addr.Zip,
			Province: addr.Province,
			Country:  addr.Country,
		})
		if addrErr != nil {
			slog.Warn("billing address rendering failed", "error", addrErr)
		} else {
			enr.addressHTML = html
		}
	}

	return enr
}

func (u *intakeUseCaseImpl) deliver(ctx context.Context, b *booking.Booking, enr enrichment) error {
	switch u.cfg.Webhook.NotifyChannel {
	case ChannelSMS:
		return u.deliverSMS(ctx, b, enr)
	default:
		return u.deliverEmail(ctx, b, enr)
	}
}

func (u *intakeUseCaseImpl) deliverEmail(ctx context.Context, b *booking.Booking, enr enrichment) error {
	to := b.Guest().Email()
	if to == "" {
		return errs.New("guest has no email address")
	}

	data := render.ConfirmationData{
		GuestName:   b.Guest().FullName(),
		OrderNumber: b.OrderNumber(),
		OrderDate:   render.FormatTime(b.CreatedAt()),
		PassNumber:  b.Pass().String(),
		Start:       render.FormatTime(b.Window().Start()),
		End:         render.FormatTime(b.Window().End()),
		ItemName:    b.ItemName(),
		Price:       b.ItemPrice(),
		Quantity:    b.Quantity(),
		AddressHTML: enr.addressHTML,
		LogoDataURL: enr.logoDataURL,
	}
	if len(enr.qrPNG) > 0 {
		data.QRDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(enr.qrPNG)
	}

	html, err := render.ConfirmationHTML(data)
	if err != nil {
		return err
	}

	email := Email{
		To:      to,
		Subject: u.cfg.Mail.Subject,
		HTML:    html,
		Text:    render.ConfirmationText(data),
	}
	if len(enr.qrPNG) > 0 {
		email.Attachments = append(email.Attachments, Attachment{
			Filename:    "gate-pass.png",
			ContentType: "image/png",
			Data:        enr.qrPNG,
		})
	}

	res, err := u.mailer.Send(ctx, email)
	if err != nil {
		return errs.Wrap(err, "mail transport error")
	}
	if !EmailDelivered(res, to) {
		return errs.New("recipient not accepted by mail provider")
	}
	return nil
}

func (u *intakeUseCaseImpl) deliverSMS(ctx context.Context, b *booking.Booking, enr enrichment) error {
	to := b.Guest().Phone()
	if to == "" {
		return errs.New("guest has no phone number")
	}

	body := render.SMSText(b.OrderNumber(), u.qrViewURL(b, enr))
	res, err := u.sms.Send(ctx, to, body)
	if err != nil {
		return errs.Wrap(err, "sms transport error")
	}
	if !SMSDelivered(res) {
		return errs.New("sms provider reported failure")
	}
	return nil
}

func (u *intakeUseCaseImpl) qrViewURL(b *booking.Booking, enr enrichment) string {
	q := url.Values{}
	q.Set("startTime", b.Window().Start().Format(time.RFC3339))
	q.Set("endTime", b.Window().End().Format(time.RFC3339))
	q.Set("qrcodeData", enr.qrPayload)
	return strings.TrimRight(u.cfg.Server.PublicBaseURL, "/") + "/qr/view?" + q.Encode()
}

func (u *intakeUseCaseImpl) uploadGateRecord(ctx context.Context, b *booking.Booking) error {
	return u.gate.Upload(ctx, GateRecord{
		PassNumber: b.Pass().String(),
		Start:      b.Window().Start(),
		End:        b.Window().End(),
		FirstName:  b.Guest().FirstName(),
		LastName:   b.Guest().LastName(),
	})
}

// EmailDelivered checks the transport's per-recipient result: the recipient
// must appear in accepted and the rejected list must be empty. A missing
// result object or an empty accepted list counts as failure.
func EmailDelivered(res *SendResult, recipient string) bool {
	if res == nil {
		return false
	}
	if len(res.Rejected) > 0 {
		return false
	}
	if len(res.Accepted) == 0 {
		return false
	}
	for _, addr := range res.Accepted {
		if strings.EqualFold(addr, recipient) {
			return true
		}
	}
	return false
}

// Provider statuses counted as in-flight or delivered.
var smsOKStatuses = map[string]struct{}{
	"queued":    {},
	"accepted":  {},
	"sending":   {},
	"sent":      {},
	"delivered": {},
}

func SMSDelivered(res *SMSResult) bool {
	if res == nil {
		return false
	}
	if res.ErrorCode != nil && *res.ErrorCode != 0 {
		return false
	}
	_, ok := smsOKStatuses[strings.ToLower(res.Status)]
	return ok
}
