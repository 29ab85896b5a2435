package port

import (
	"context"

	"vosul/internal/domain"
)

// TableExporter writes report tables and dataset dumps to durable storage and
// returns the location they were written to.
type TableExporter interface {
	Export(ctx context.Context, filename string, table domain.Table) (string, error)
	ExportDataset(ctx context.Context, filename string, ds *domain.Dataset) (string, error)
}
