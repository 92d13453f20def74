package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"

	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/internal/domain/value"
	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out provider_mock.gen.go . Provider:ProviderMock

// Provider внешний сервис, который отправляет SMS и проверяет коды.
type Provider interface {
	StartVerification(context.Context, entity.VerificationRequest) (entity.Verification, error)
	CheckVerification(context.Context, entity.VerificationCheckRequest) (entity.Verification, error)
}

// Service проксирует верификацию номера провайдеру. Состояния не хранит:
// сроки жизни кода, повторы и защита от перебора на стороне провайдера.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
	}
}

// Start запускает SMS верификацию номера.
func (s *Service) Start(ctx context.Context, phone value.Phone) (entity.Verification, error) {
	if phone == "" {
		return entity.Verification{}, invalidArgument(domain.ErrEmptyPhone, errcodes.InvalidPhoneNumber)
	}

	request := entity.VerificationRequest{
		Phone:   phone,
		Channel: value.ChannelSMS,
	}

	start := time.Now()
	verification, err := s.provider.StartVerification(ctx, request)
	providerRequestDurationHist.WithLabelValues(operationStart).Observe(time.Since(start).Seconds())

	if err != nil {
		providerErrorsCounter.WithLabelValues(operationStart).Inc()

		return entity.Verification{}, fmt.Errorf("provider.StartVerification: %w", err)
	}

	verificationsStartedCounter.WithLabelValues(verification.Status.String()).Inc()

	logger(ctx).Info(
		"verification code sent",
		logx.Stringer(logx.FieldPhone, phone),
		logx.Stringer(logx.FieldVerifyStatus, verification.Status),
		slog.String(logx.FieldVerificationSID, verification.SID),
	)

	return verification, nil
}

// Check проверяет код. Неверный код не ошибка: вызывающий смотрит на
// Status, ошибка возвращается только при сбое провайдера.
func (s *Service) Check(ctx context.Context, phone value.Phone, code value.VerificationCode) (entity.Verification, error) {
	if phone == "" {
		return entity.Verification{}, invalidArgument(domain.ErrEmptyPhone, errcodes.InvalidPhoneNumber)
	}

	if code == "" {
		return entity.Verification{}, invalidArgument(domain.ErrEmptyCode, errcodes.InvalidVerifyCode)
	}

	request := entity.VerificationCheckRequest{
		Phone: phone,
		Code:  code,
	}

	start := time.Now()
	verification, err := s.provider.CheckVerification(ctx, request)
	providerRequestDurationHist.WithLabelValues(operationCheck).Observe(time.Since(start).Seconds())

	if err != nil {
		providerErrorsCounter.WithLabelValues(operationCheck).Inc()

		return entity.Verification{}, fmt.Errorf("provider.CheckVerification: %w", err)
	}

	if verification.Status.IsApproved() {
		verificationChecksCounter.WithLabelValues(resultApproved).Inc()
		logger(ctx).Info("verification code approved", logx.Stringer(logx.FieldPhone, phone))
	} else {
		verificationChecksCounter.WithLabelValues(resultRejected).Inc()
		logger(ctx).Info(
			"verification code rejected",
			logx.Stringer(logx.FieldPhone, phone),
			logx.Stringer(logx.FieldVerifyStatus, verification.Status),
		)
	}

	return verification, nil
}

func invalidArgument(err error, code failure.ErrorCode) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(code),
		failure.WithDescription(err.Error()),
	)
}
