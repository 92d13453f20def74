package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	TimeoutExceeded        failure.ErrorCode = "TimeoutExceeded"
	ValidationError        failure.ErrorCode = "ValidationError"
	NotFound               failure.ErrorCode = "NotFound"
	InvalidPhoneNumber     failure.ErrorCode = "InvalidPhoneNumber"
	InvalidVerifyCode      failure.ErrorCode = "InvalidVerifyCode"
	ProviderError          failure.ErrorCode = "ProviderError"
	ProviderUnavailable    failure.ErrorCode = "ProviderUnavailable"
	PricingSourceError     failure.ErrorCode = "PricingSourceError"
	PricingStoreError      failure.ErrorCode = "PricingStoreError"
	PricesNotFound         failure.ErrorCode = "PricesNotFound"
	InvalidPricingSnapshot failure.ErrorCode = "InvalidPricingSnapshot"
)
