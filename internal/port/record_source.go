package port

import (
	"context"

	"vosul/internal/domain"
)

// RecordSource fetches the raw ledger rows the dataset is prepared from.
type RecordSource interface {
	Fetch(ctx context.Context) ([]domain.RawRecord, error)
}

// DatasetProvider exposes the currently published Dataset snapshot. Current
// returns nil until a Dataset has been loaded.
type DatasetProvider interface {
	Current() *domain.Dataset
}
