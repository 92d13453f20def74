package server

import (
	"context"
	"fmt"
	"net/http"

	"verify_gateway/internal/domain/entity"
	"verify_gateway/pkg/httpx/reply"
	"verify_gateway/pkg/rest"
)

const pricesUpdatedMessage = "Prices updated successfully"

type pricingService interface {
	Refresh(context.Context) (entity.PricingFixture, error)
	Current(context.Context) (entity.PricingFixture, error)
}

type PricingServer struct {
	pricingService pricingService
}

func NewPricingServer(pricingService pricingService) PricingServer {
	return PricingServer{
		pricingService: pricingService,
	}
}

func (s PricingServer) postUpdatePrices(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if _, err := s.pricingService.Refresh(ctx); err != nil {
		return fmt.Errorf("pricingService.Refresh: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.PricesResponse{
		OK:      true,
		Message: pricesUpdatedMessage,
	})

	return nil
}

func (s PricingServer) getPrices(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	fixture, err := s.pricingService.Current(ctx)
	if err != nil {
		return fmt.Errorf("pricingService.Current: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrices(fixture))

	return nil
}
