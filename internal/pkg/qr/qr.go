package qr

import (
	"encoding/base64"
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"

	"parkgate/internal/pkg/errs"
)

// Symbol size in pixels for PNG output. Gate scanners only need short
// payloads, so level L keeps the symbol compact.
const pngSize = 256

// Payload is the string encoded into the QR image. Downstream gate-access
// systems use it to look up the reservation.
type Payload struct {
	OrderNumber int    `json:"order_number"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (p Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr payload")
	}
	return string(data), nil
}

func ParsePayload(s string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Payload{}, errs.Wrap(err, "failed to parse qr payload")
	}
	return p, nil
}

func PNG(payload string) ([]byte, error) {
	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build qr code")
	}
	png, err := code.PNG(pngSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render qr png")
	}
	return png, nil
}

func DataURL(payload string) (string, error) {
	png, err := PNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
