package value

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"verify_gateway/internal/domain"
)

// Phone номер телефона в формате E.164.
type Phone string

func (p Phone) String() string {
	return string(p)
}

// ParsePhone принимает только международные номера: обязателен ведущий '+',
// допускаются пробелы, дефисы, точки и скобки. Принадлежность номера
// реальному плану нумерации проверяет провайдер, здесь только разбор.
func ParsePhone(input string) (Phone, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", domain.ErrEmptyPhone
	}

	if !strings.HasPrefix(input, "+") {
		return "", domain.ErrPhoneWithoutPrefix
	}

	for i, r := range input {
		switch {
		case r == '+' && i == 0:
		case r >= '0' && r <= '9', r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return "", fmt.Errorf("unexpected character %q: %w", r, domain.ErrInvalidPhone)
		}
	}

	num, err := phonenumbers.Parse(input, "")
	if err != nil {
		return "", fmt.Errorf("phonenumbers.Parse: %w: %w", err, domain.ErrInvalidPhone)
	}

	return Phone(phonenumbers.Format(num, phonenumbers.E164)), nil
}
