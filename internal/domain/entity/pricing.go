package entity

import (
	"sort"

	"github.com/samber/lo"
)

// ProductPricing цены одного продукта: базовая цена по размеру
// и надбавка по возрастной категории.
type ProductPricing struct {
	Base   map[string]int
	Factor map[string]int
}

// PricingFixture таблица цен по ключу продукта.
type PricingFixture map[string]ProductPricing

// Products возвращает ключи продуктов в стабильном порядке.
func (f PricingFixture) Products() []string {
	products := lo.Keys(f)
	sort.Strings(products)

	return products
}
