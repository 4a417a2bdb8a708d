package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// ExpertProgressQuery asks how long a category takes to earn experts
type ExpertProgressQuery struct {
	CurrentExperts int
	TargetExperts  int
	Buildings      int
}

// ExpertProgressResponse reports expert spawn timings and bonuses
type ExpertProgressResponse struct {
	CurrentBonus     float64
	TargetBonus      float64
	DaysToNextExpert float64
	DaysToTarget     float64
}

// ExpertProgressHandler handles the ExpertProgress query
type ExpertProgressHandler struct{}

// NewExpertProgressHandler creates a new ExpertProgressHandler
func NewExpertProgressHandler() *ExpertProgressHandler {
	return &ExpertProgressHandler{}
}

// Handle executes the ExpertProgress query
func (h *ExpertProgressHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ExpertProgressQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExpertProgressQuery")
	}
	if query.CurrentExperts < 0 || query.TargetExperts < 0 {
		return nil, fmt.Errorf("expert counts cannot be negative")
	}

	target := query.TargetExperts
	if target == 0 {
		target = production.MaxExpertsPerCategory
	}

	toTarget := production.TotalDaysForExperts(target, query.Buildings) -
		production.TotalDaysForExperts(query.CurrentExperts, query.Buildings)
	if toTarget < 0 {
		toTarget = 0
	}

	return &ExpertProgressResponse{
		CurrentBonus:     production.ExpertBonus(query.CurrentExperts),
		TargetBonus:      production.ExpertBonus(target),
		DaysToNextExpert: production.DaysToNextExpert(query.CurrentExperts, query.Buildings),
		DaysToTarget:     toTarget,
	}, nil
}
