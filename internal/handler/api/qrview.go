package api

import (
	"net/http"
	"time"

	"parkgate/internal/pkg/qr"
	"parkgate/internal/pkg/render"

	"github.com/gin-gonic/gin"
)

// QRViewHandler serves the hosted gate-pass page linked from SMS
// notifications. Stateless: the QR code is regenerated from the query
// parameters on every request.
type QRViewHandler struct{}

func NewQRViewHandler() *QRViewHandler {
	return &QRViewHandler{}
}

// @Summary View gate pass
// @Description Regenerate and display the reservation QR code
// @Tags qr
// @Produce html
// @Param startTime query string true "Reservation start (RFC3339)"
// @Param endTime query string true "Reservation end (RFC3339)"
// @Param qrcodeData query string true "QR payload"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "not found"
// @Router /qr/view [get]
func (h *QRViewHandler) Show(c *gin.Context) {
	startTime := c.Query("startTime")
	endTime := c.Query("endTime")
	qrcodeData := c.Query("qrcodeData")

	if startTime == "" || endTime == "" || qrcodeData == "" {
		c.String(http.StatusNotFound, "not found")
		return
	}

	dataURL, err := qr.DataURL(qrcodeData)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	html, err := render.QRViewHTML(render.QRViewData{
		Start:     formatQueryTime(startTime),
		End:       formatQueryTime(endTime),
		QRDataURL: dataURL,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Shows the raw parameter when it is not a parseable timestamp; the page is
// purely informational.
func formatQueryTime(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return render.FormatTime(t)
	}
	return s
}
