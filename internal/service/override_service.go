package service

import (
	"context"
	"fmt"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/model"
	"github.com/TuringTechX/openfoodnetwork/internal/repository"
	"github.com/TuringTechX/openfoodnetwork/internal/worker"

	"github.com/rs/zerolog/log"
)

// OverrideService maintains hub variant overrides. Every mutation enqueues a
// cache invalidation for the hub so stale catalog pages never outlive an
// override change by more than the queue latency.
type OverrideService interface {
	Upsert(ctx context.Context, hubID int64, req dto.UpsertOverrideRequest) (*dto.OverrideResponse, error)
	Delete(ctx context.Context, hubID, variantID int64) error
	List(ctx context.Context, hubID int64) ([]dto.OverrideResponse, error)
}

type overrideService struct {
	repo       repository.OverrideRepository
	hubs       repository.HubRepository
	dispatcher *worker.Dispatcher
}

func NewOverrideService(repo repository.OverrideRepository, hubs repository.HubRepository, dispatcher *worker.Dispatcher) OverrideService {
	return &overrideService{repo: repo, hubs: hubs, dispatcher: dispatcher}
}

func (s *overrideService) Upsert(ctx context.Context, hubID int64, req dto.UpsertOverrideRequest) (*dto.OverrideResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, fmt.Errorf("hub %d: %w", hubID, err)
	}

	o := &model.VariantOverride{
		HubID:       hubID,
		VariantID:   req.VariantID,
		CountOnHand: req.CountOnHand,
		OnDemand:    req.OnDemand,
		Price:       req.Price,
		Tags:        req.Tags,
	}
	if err := s.repo.Upsert(ctx, o); err != nil {
		return nil, fmt.Errorf("upsert override: %w", err)
	}

	s.invalidate(ctx, hubID)
	return overrideToResponse(o), nil
}

func (s *overrideService) Delete(ctx context.Context, hubID, variantID int64) error {
	if err := s.repo.Delete(ctx, hubID, variantID); err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	s.invalidate(ctx, hubID)
	return nil
}

func (s *overrideService) List(ctx context.Context, hubID int64) ([]dto.OverrideResponse, error) {
	overrides, err := s.repo.ListForHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OverrideResponse, 0, len(overrides))
	for i := range overrides {
		resp = append(resp, *overrideToResponse(&overrides[i]))
	}
	return resp, nil
}

// invalidate is best-effort: a failed enqueue leaves a stale cache entry that
// still expires by TTL, so it is logged rather than failing the mutation.
func (s *overrideService) invalidate(ctx context.Context, hubID int64) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueCatalogInvalidation(ctx, hubID); err != nil {
		log.Warn().Err(err).Int64("hub_id", hubID).Msg("failed to enqueue cache invalidation")
	}
}

func overrideToResponse(o *model.VariantOverride) *dto.OverrideResponse {
	return &dto.OverrideResponse{
		ID:          o.ID,
		HubID:       o.HubID,
		VariantID:   o.VariantID,
		CountOnHand: o.CountOnHand,
		OnDemand:    o.OnDemand,
		Price:       o.Price,
		Tags:        o.Tags,
	}
}
