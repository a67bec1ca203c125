//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/config"
	"parkgate/internal/usecase"
	"parkgate/tests/common/builder"
	usecasemock "parkgate/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntakeUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockDedup *usecasemock.MockDedupStore
	mockMail  *usecasemock.MockMailer
	mockSMS   *usecasemock.MockSMSSender
	mockGate  *usecasemock.MockGateUploader
	mockLogos *usecasemock.MockLogoStore
	clock     *clock.MockClock
	cfg       config.Config
}

func (s *IntakeUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDedup = usecasemock.NewMockDedupStore(s.mockCtrl)
	s.mockMail = usecasemock.NewMockMailer(s.mockCtrl)
	s.mockSMS = usecasemock.NewMockSMSSender(s.mockCtrl)
	s.mockGate = usecasemock.NewMockGateUploader(s.mockCtrl)
	s.mockLogos = usecasemock.NewMockLogoStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()

	// Branding is best-effort and fetched on every event
	s.mockLogos.EXPECT().FetchLogo(gomock.Any()).Return(nil, errors.New("not configured")).AnyTimes()
}

func (s *IntakeUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntakeUseCaseSuite(t *testing.T) {
	suite.Run(t, new(IntakeUseCaseTestSuite))
}

func (s *IntakeUseCaseTestSuite) newUseCase() usecase.IntakeUseCase {
	return usecase.NewIntakeUseCase(s.mockDedup, s.mockMail, s.mockSMS, s.mockGate, s.mockLogos, s.clock, s.cfg)
}

func accepted(to string) *usecase.SendResult {
	return &usecase.SendResult{Accepted: []string{to}}
}

// ================================================================================
// TestProcessOrder
// ================================================================================

func (s *IntakeUseCaseTestSuite) TestProcessOrder() {
	ctx := context.Background()
	deliveryID := "wh-delivery-001"

	s.Run("正常系: 初回配信は通知送信と記録の両方が成功する", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email usecase.Email) (*usecase.SendResult, error) {
				s.Equal("guest@example.com", email.To)
				s.NotEmpty(email.HTML)
				s.NotEmpty(email.Text)
				return accepted(email.To), nil
			})
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})

	s.Run("正常系: 処理済みIDは通知せずに重複として返す", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return(deliveryID, true, nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgAlreadyLogged, result.Message)
	})

	s.Run("正常系: 初回送信失敗後のリトライ成功は成功として扱う", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		first := s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("smtp timeout"))
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(accepted("guest@example.com"), nil).After(first)
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})

	s.Run("異常系: リトライも失敗した場合は記録を残さない", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("smtp down")).Times(2)
		// Set must never be called so a redelivery retries from scratch

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgNotSent, result.Message)
	})

	s.Run("異常系: 送信成功後の記録失敗は専用メッセージを返す", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(accepted("guest@example.com"), nil)
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).
			Return(errors.New("redis write failed"))

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSentNotLogged, result.Message)
	})

	s.Run("異常系: 予約時刻が無い場合はストアに触れず検証エラーを返す", func() {
		req := builder.NewOrderWebhookBuilder().WithoutTimes().Build()

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgMissingTimeInfo, result.Message)
	})

	s.Run("異常系: 顧客情報が無い場合はデータ不足を返す", func() {
		req := builder.NewOrderWebhookBuilder().BuildWithoutCustomer()

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgDataMissing, result.Message)
	})

	s.Run("異常系: 重複チェック自体の失敗は汎用エラーを返す", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).
			Return("", false, errors.New("redis unreachable"))

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgProcessingFailed, result.Message)
	})

	s.Run("正常系: 受信時刻が無い場合は現在時刻で補完して処理を続ける", func() {
		req := builder.NewOrderWebhookBuilder().Build()
		req.CreatedAt = time.Time{}

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email usecase.Email) (*usecase.SendResult, error) {
				// The backfilled timestamp surfaces as the order date
				s.Contains(email.Text, "Ordered: Sat, 29 Aug 2026 12:00")
				return accepted(email.To), nil
			})
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})
}

// ================================================================================
// TestProcessOrder_SMS
// ================================================================================

func (s *IntakeUseCaseTestSuite) TestProcessOrderSMS() {
	ctx := context.Background()
	deliveryID := "wh-delivery-sms"
	s.cfg.Webhook.NotifyChannel = usecase.ChannelSMS

	s.Run("正常系: SMSチャネルは電話番号宛にリンク付き本文を送る", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockSMS.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string) (*usecase.SMSResult, error) {
				s.Contains(body, "/qr/view?")
				s.Contains(body, "1234")
				return &usecase.SMSResult{Status: "queued"}, nil
			})
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})

	s.Run("異常系: プロバイダの失敗ステータスはリトライ後に未送信となる", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		code := 30007
		s.mockSMS.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).
			Return(&usecase.SMSResult{Status: "failed", ErrorCode: &code}, nil).Times(2)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgNotSent, result.Message)
	})
}

// ================================================================================
// TestProcessOrder_GateUpload
// ================================================================================

func (s *IntakeUseCaseTestSuite) TestProcessOrderGateUpload() {
	ctx := context.Background()
	deliveryID := "wh-delivery-gate"
	s.cfg.Webhook.UploadToGateServer = true

	s.Run("正常系: ゲートサーバーへ整形済みパス番号をアップロードする", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockGate.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec usecase.GateRecord) error {
				s.Equal("7700001234", rec.PassNumber)
				s.Equal("Jane", rec.FirstName)
				s.Equal("Doe", rec.LastName)
				return nil
			})
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(accepted("guest@example.com"), nil)
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})

	s.Run("正常系: アップロード失敗は既定では処理を止めない", func() {
		req := builder.NewOrderWebhookBuilder().Build()

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockGate.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(errors.New("ftp connection refused"))
		s.mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(accepted("guest@example.com"), nil)
		s.mockDedup.EXPECT().Set(gomock.Any(), deliveryID, deliveryID).Return(nil)

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgSuccess, result.Message)
	})

	s.Run("異常系: fatal設定時はアップロード失敗で通知せず打ち切る", func() {
		req := builder.NewOrderWebhookBuilder().Build()
		s.cfg.Webhook.GateUploadFatal = true

		s.mockDedup.EXPECT().Get(gomock.Any(), deliveryID).Return("", false, nil)
		s.mockGate.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(errors.New("ftp connection refused"))

		result := s.newUseCase().ProcessOrder(ctx, req, deliveryID)
		s.Equal(usecase.MsgGateUploadFailed, result.Message)
	})
}

// ================================================================================
// Delivery result predicates
// ================================================================================

func TestEmailDelivered(t *testing.T) {
	recipient := "guest@example.com"

	tests := []struct {
		name string
		res  *usecase.SendResult
		want bool
	}{
		{name: "受理済みに宛先が含まれる", res: &usecase.SendResult{Accepted: []string{recipient}}, want: true},
		{name: "宛先の大文字小文字は無視する", res: &usecase.SendResult{Accepted: []string{"Guest@Example.com"}}, want: true},
		{name: "結果がnil", res: nil, want: false},
		{name: "受理リストが空", res: &usecase.SendResult{}, want: false},
		{name: "拒否リストに1件でもあれば失敗", res: &usecase.SendResult{Accepted: []string{recipient}, Rejected: []string{"other@example.com"}}, want: false},
		{name: "別の宛先だけ受理された", res: &usecase.SendResult{Accepted: []string{"other@example.com"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecase.EmailDelivered(tt.res, recipient); got != tt.want {
				t.Errorf("EmailDelivered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSMSDelivered(t *testing.T) {
	code := 21614

	tests := []struct {
		name string
		res  *usecase.SMSResult
		want bool
	}{
		{name: "queued", res: &usecase.SMSResult{Status: "queued"}, want: true},
		{name: "delivered", res: &usecase.SMSResult{Status: "delivered"}, want: true},
		{name: "ステータスの大文字は許容", res: &usecase.SMSResult{Status: "Sent"}, want: true},
		{name: "結果がnil", res: nil, want: false},
		{name: "failedステータス", res: &usecase.SMSResult{Status: "failed"}, want: false},
		{name: "エラーコード付きは失敗", res: &usecase.SMSResult{Status: "queued", ErrorCode: &code}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecase.SMSDelivered(tt.res); got != tt.want {
				t.Errorf("SMSDelivered() = %v, want %v", got, tt.want)
			}
		})
	}
}
