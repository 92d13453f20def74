// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// SendCodeRequest Запрос на отправку кода подтверждения
type SendCodeRequest struct {
	// Phone Номер телефона в международном формате (+...)
	Phone string `json:"phone" validate:"required"`
}

// CheckCodeRequest Запрос на проверку кода подтверждения
type CheckCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code"  validate:"required"`
}

// VerificationResponse Ответ эндпоинтов верификации.
// Success отражает бизнес-результат и не зависит от HTTP статуса.
type VerificationResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PricesResponse Ответ эндпоинтов цен
type PricesResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ProductPricing Цены продукта
type ProductPricing struct {
	// Base Базовая цена по размеру
	Base map[string]int `json:"base"`

	// Factor Надбавка по возрастной категории
	Factor map[string]int `json:"factor"`
}

// Prices Таблица цен по ключу продукта
type Prices map[string]ProductPricing
