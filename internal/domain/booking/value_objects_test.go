//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkgate/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 3, 18, 30, 0, 0, time.UTC)

	t.Run("基本成功ケース", func(t *testing.T) {
		w, err := booking.NewWindow(start, end)
		require.NoError(t, err)
		assert.Equal(t, start, w.Start())
		assert.Equal(t, end, w.End())
		assert.Equal(t, end.Sub(start), w.Duration())
	})

	t.Run("開始時刻なしNG", func(t *testing.T) {
		_, err := booking.NewWindow(time.Time{}, end)
		assert.ErrorIs(t, err, booking.ErrMissingTimes)
	})

	t.Run("終了時刻なしNG", func(t *testing.T) {
		_, err := booking.NewWindow(start, time.Time{})
		assert.ErrorIs(t, err, booking.ErrMissingTimes)
	})

	t.Run("開始が終了より後NG", func(t *testing.T) {
		_, err := booking.NewWindow(end, start)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("開始と終了が同一NG", func(t *testing.T) {
		_, err := booking.NewWindow(start, start)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})
}

func TestNewPassNumber(t *testing.T) {
	t.Run("固定プレフィックス+ゼロ埋め", func(t *testing.T) {
		p, err := booking.NewPassNumber("77", 1042, 10)
		require.NoError(t, err)
		assert.Equal(t, "7700001042", p.String())
	})

	t.Run("桁あふれNG", func(t *testing.T) {
		_, err := booking.NewPassNumber("77", 123456789, 10)
		assert.ErrorIs(t, err, booking.ErrInvalidPass)
	})

	t.Run("注文番号ゼロNG", func(t *testing.T) {
		_, err := booking.NewPassNumber("77", 0, 10)
		assert.ErrorIs(t, err, booking.ErrInvalidPass)
	})

	t.Run("プレフィックスが長すぎるNG", func(t *testing.T) {
		_, err := booking.NewPassNumber("7777777777", 1, 10)
		assert.ErrorIs(t, err, booking.ErrInvalidPass)
	})
}

func TestNewGuest(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		g, err := booking.NewGuest("Taro", "Yamada", "taro@example.com", "+818012345678")
		require.NoError(t, err)
		assert.Equal(t, "Taro Yamada", g.FullName())
	})

	t.Run("名前なしNG", func(t *testing.T) {
		_, err := booking.NewGuest("", "", "taro@example.com", "")
		assert.ErrorIs(t, err, booking.ErrMissingGuest)
	})

	t.Run("連絡先なしNG", func(t *testing.T) {
		_, err := booking.NewGuest("Taro", "Yamada", "", "")
		assert.ErrorIs(t, err, booking.ErrMissingGuest)
	})

	t.Run("電話番号のみOK", func(t *testing.T) {
		g, err := booking.NewGuest("Taro", "", "", "+818012345678")
		require.NoError(t, err)
		assert.Equal(t, "Taro", g.FullName())
		assert.Empty(t, g.Email())
	})

	t.Run("空白はトリムされる", func(t *testing.T) {
		g, err := booking.NewGuest(" Taro ", " Yamada ", " taro@example.com ", "")
		require.NoError(t, err)
		assert.Equal(t, "taro@example.com", g.Email())
		assert.Equal(t, "Taro Yamada", g.FullName())
	})
}
