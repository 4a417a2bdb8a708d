package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
)

// CalculateEmpireCOGMQuery asks for the per-unit cost of every output of an
// empire plan
type CalculateEmpireCOGMQuery struct {
	Plan         *cost.EmpirePlan
	ExchangeCode string
}

// CalculateEmpireCOGMResponse carries the empire report
type CalculateEmpireCOGMResponse struct {
	Result *cost.CalculatedEmpireCOGM
}

// CalculateEmpireCOGMHandler handles the CalculateEmpireCOGM query
type CalculateEmpireCOGMHandler struct {
	projector *services.COGMProjector
	prices    market.PriceRepository
}

// NewCalculateEmpireCOGMHandler creates a new CalculateEmpireCOGMHandler
func NewCalculateEmpireCOGMHandler(projector *services.COGMProjector, prices market.PriceRepository) *CalculateEmpireCOGMHandler {
	return &CalculateEmpireCOGMHandler{
		projector: projector,
		prices:    prices,
	}
}

// Handle executes the CalculateEmpireCOGM query
func (h *CalculateEmpireCOGMHandler) Handle(ctx context.Context, request mediator.Request) (response mediator.Response, err error) {
	query, ok := request.(*CalculateEmpireCOGMQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CalculateEmpireCOGMQuery")
	}
	if query.Plan == nil {
		return nil, fmt.Errorf("empire plan is required")
	}

	start := time.Now()
	defer func() { observe("empire_cogm", start, err) }()

	prices := newPriceBook(h.prices, query.ExchangeCode, query.Plan.MaterialBuyPrices)
	result, err := h.projector.CalculateEmpireCOGM(ctx, prices, query.Plan)
	if err != nil {
		return nil, err
	}
	result.CachedPrices = prices.CachedPrices()

	return &CalculateEmpireCOGMResponse{Result: result}, nil
}
