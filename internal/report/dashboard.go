package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"vosul/internal/domain"
)

// Dashboard runs the metrics, responsible-party and province aggregations
// concurrently over the same Dataset and combines their results. Only the
// query's date range is used.
func (e *Engine) Dashboard(ctx context.Context, ds *domain.Dataset, q domain.ReportQuery) (*domain.Dashboard, error) {
	q = domain.ReportQuery{StartDate: q.StartDate, EndDate: q.EndDate}

	var out domain.Dashboard
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return Guard("metrics", func() { out.Metrics = e.Metrics(ds, q) })
	})
	g.Go(func() error {
		return Guard("responsible party table", func() { out.ResponsiblePartyTable = e.ResponsibleTable(ds, q) })
	})
	g.Go(func() error {
		return Guard("province table", func() { out.ProvinceTable = e.ProvinceTable(ds, q) })
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Guard runs fn and converts a panic into an ErrComputationFailed error.
func Guard(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", domain.ErrComputationFailed, name, r)
		}
	}()
	fn()
	return nil
}
