package value

import (
	"strings"

	"verify_gateway/internal/domain"
)

// Channel канал доставки кода. Шлюз использует только SMS.
type Channel string

const ChannelSMS Channel = "sms"

func (c Channel) String() string {
	return string(c)
}

// VerificationCode код, введённый пользователем. Формат кода проверяет провайдер.
type VerificationCode string

func (c VerificationCode) String() string {
	return string(c)
}

func ParseVerificationCode(input string) (VerificationCode, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", domain.ErrEmptyCode
	}

	return VerificationCode(input), nil
}
