package repository

import (
	"context"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// StatsRepository reads the dashboard counters.
type StatsRepository struct {
	db DBTX
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// Stats returns entity counts and parcel counts per status.
func (r *StatsRepository) Stats(ctx context.Context) (*model.Stats, error) {
	query := `
	SELECT
		(SELECT COUNT(*) FROM clients),
		(SELECT COUNT(*) FROM produits),
		(SELECT COUNT(*) FROM colis),
		(SELECT COUNT(*) FROM colis WHERE statut = ?),
		(SELECT COUNT(*) FROM colis WHERE statut = ?),
		(SELECT COUNT(*) FROM colis WHERE statut = ?);
	`
	var s model.Stats
	err := r.db.QueryRowContext(ctx, query,
		model.StatusEnPreparation, model.StatusExpedie, model.StatusLivre).
		Scan(&s.Clients, &s.Produits, &s.Colis, &s.ColisEnPreparation, &s.ColisExpedies, &s.ColisLivres)
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return &s, nil
}
