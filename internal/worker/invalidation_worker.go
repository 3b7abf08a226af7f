package worker

import (
	"context"
	"encoding/json"

	"github.com/TuringTechX/openfoodnetwork/internal/repository"

	"github.com/rs/zerolog/log"
)

// InvalidatePayload asks for one hub's cached catalog pages to be purged.
type InvalidatePayload struct {
	HubID int64 `json:"hub_id"`
}

// InvalidationWorker purges cached catalog pages after override mutations.
type InvalidationWorker struct {
	cache *repository.CatalogCache
}

func NewInvalidationWorker(cache *repository.CatalogCache) *InvalidationWorker {
	return &InvalidationWorker{cache: cache}
}

func (w *InvalidationWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var p InvalidatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	if err := w.cache.PurgeHub(ctx, p.HubID); err != nil {
		return err
	}
	log.Debug().Int64("hub_id", p.HubID).Msg("catalog cache purged")
	return nil
}
