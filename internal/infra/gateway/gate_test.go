//go:build unit

package gateway_test

import (
	"strings"
	"testing"
	"time"

	"parkgate/internal/infra/gateway"
	"parkgate/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestFormatGateRecord(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 17, 30, 0, 0, time.UTC)

	t.Run("フィールド幅が固定長で維持される", func(t *testing.T) {
		line := gateway.FormatGateRecord(usecase.GateRecord{
			PassNumber: "7700001234",
			Start:      start,
			End:        end,
			FirstName:  "Jane",
			LastName:   "Doe",
		})

		assert.True(t, strings.HasSuffix(line, "\r\n"))
		body := strings.TrimSuffix(line, "\r\n")
		assert.Len(t, body, 12+14+14+20+20)

		assert.Equal(t, "7700001234  ", body[:12])
		assert.Equal(t, "20260901090000", body[12:26])
		assert.Equal(t, "20260901173000", body[26:40])
		assert.Equal(t, "Doe", strings.TrimRight(body[40:60], " "))
		assert.Equal(t, "Jane", strings.TrimRight(body[60:80], " "))
	})

	t.Run("長い名前はフィールド幅で切り詰められる", func(t *testing.T) {
		line := gateway.FormatGateRecord(usecase.GateRecord{
			PassNumber: "7700001234",
			Start:      start,
			End:        end,
			FirstName:  strings.Repeat("a", 30),
			LastName:   strings.Repeat("b", 30),
		})

		body := strings.TrimSuffix(line, "\r\n")
		assert.Len(t, body, 12+14+14+20+20)
		assert.Equal(t, strings.Repeat("b", 20), body[40:60])
		assert.Equal(t, strings.Repeat("a", 20), body[60:80])
	})
}
