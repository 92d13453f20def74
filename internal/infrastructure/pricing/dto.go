package pricing

import "verify_gateway/internal/domain/entity"

// productSchema формат продукта в файле снимка.
type productSchema struct {
	Base   map[string]int `json:"base"`
	Factor map[string]int `json:"factor"`
}

type pricesSchema map[string]productSchema

func newPricesSchema(fixture entity.PricingFixture) pricesSchema {
	schema := make(pricesSchema, len(fixture))

	for product, pricing := range fixture {
		schema[product] = productSchema{
			Base:   pricing.Base,
			Factor: pricing.Factor,
		}
	}

	return schema
}

func (s pricesSchema) toDomain() entity.PricingFixture {
	fixture := make(entity.PricingFixture, len(s))

	for product, pricing := range s {
		fixture[product] = entity.ProductPricing{
			Base:   pricing.Base,
			Factor: pricing.Factor,
		}
	}

	return fixture
}
