package entity

import "verify_gateway/internal/domain/value"

// VerificationStatus статус верификации у провайдера. Список не закрытый:
// провайдер может вернуть любое значение, шлюз сравнивает только с Approved.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusCanceled VerificationStatus = "canceled"
	VerificationStatusExpired  VerificationStatus = "expired"
)

func (s VerificationStatus) String() string {
	return string(s)
}

func (s VerificationStatus) IsApproved() bool {
	return s == VerificationStatusApproved
}

type VerificationRequest struct {
	Phone   value.Phone
	Channel value.Channel
}

type VerificationCheckRequest struct {
	Phone value.Phone
	Code  value.VerificationCode
}

// Verification результат вызова провайдера.
type Verification struct {
	SID    string
	Phone  value.Phone
	Status VerificationStatus
}
