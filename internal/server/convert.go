package server

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/internal/domain/value"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/rest"
)

const invalidCodeMessage = "Invalid code"

func newDomainPhone(phone string) (value.Phone, error) {
	result, err := value.ParsePhone(phone)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParsePhone: %w", err),
			failure.WithCode(errcodes.InvalidPhoneNumber),
			failure.WithDescription(describe(err, domain.ErrEmptyPhone, domain.ErrPhoneWithoutPrefix, domain.ErrInvalidPhone)),
		)
	}

	return result, nil
}

func newDomainVerificationCode(code string) (value.VerificationCode, error) {
	result, err := value.ParseVerificationCode(code)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseVerificationCode: %w", err),
			failure.WithCode(errcodes.InvalidVerifyCode),
			failure.WithDescription(describe(err, domain.ErrEmptyCode)),
		)
	}

	return result, nil
}

func newRESTVerificationSent(verification entity.Verification) rest.VerificationResponse {
	return rest.VerificationResponse{
		Success: true,
		Status:  verification.Status.String(),
	}
}

// newRESTVerificationChecked отрицательный результат проверки это не ошибка
// транспорта: ответ идёт с 200, результат только в Success.
func newRESTVerificationChecked(verification entity.Verification) rest.VerificationResponse {
	if verification.Status.IsApproved() {
		return rest.VerificationResponse{Success: true}
	}

	return rest.VerificationResponse{
		Success: false,
		Error:   invalidCodeMessage,
	}
}

func newRESTPrices(fixture entity.PricingFixture) rest.Prices {
	prices := make(rest.Prices, len(fixture))

	for product, pricing := range fixture {
		prices[product] = rest.ProductPricing{
			Base:   pricing.Base,
			Factor: pricing.Factor,
		}
	}

	return prices
}

func verificationError(message string) any {
	return rest.VerificationResponse{
		Success: false,
		Error:   message,
	}
}

func pricesError(message string) any {
	return rest.PricesResponse{
		OK:    false,
		Error: message,
	}
}

// describe возвращает текст первой известной ошибки из цепочки.
func describe(err error, known ...error) string {
	for _, target := range known {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return err.Error()
}
