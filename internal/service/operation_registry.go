package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vosul/internal/domain"
	"vosul/internal/report"
)

// Params is the flat parameter mapping of an operation call.
type Params map[string]any

// String returns the parameter as text. Missing, null and blank values
// report false.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	s, isString := v.(string)
	if !isString {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Operation is a named report operation callable through the registry.
type Operation struct {
	Name     string
	Required []string
	Run      func(ctx context.Context, p Params) (any, error)
}

// OperationRegistry maps operation names to Operations.
type OperationRegistry struct {
	ops map[string]Operation
}

// NewOperationRegistry creates an empty OperationRegistry.
func NewOperationRegistry() *OperationRegistry {
	return &OperationRegistry{ops: make(map[string]Operation)}
}

// Register adds an operation to the registry.
func (r *OperationRegistry) Register(op Operation) {
	r.ops[op.Name] = op
}

// Get returns the operation with the given name.
func (r *OperationRegistry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns all registered operation names in sorted order.
func (r *OperationRegistry) Names() []string {
	out := make([]string, 0, len(r.ops))
	for name := range r.ops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Invoke runs the named operation. Unknown names wrap ErrUnknownOperation,
// absent required parameters wrap ErrMissingParameter and a panic inside the
// operation wraps ErrComputationFailed.
func (r *OperationRegistry) Invoke(ctx context.Context, name string, params Params) (any, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, name)
	}
	for _, key := range op.Required {
		if _, ok := params.String(key); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingParameter, key)
		}
	}

	var (
		out    any
		runErr error
	)
	if err := report.Guard(name, func() { out, runErr = op.Run(ctx, params) }); err != nil {
		return nil, err
	}
	return out, runErr
}

func queryFrom(p Params) domain.ReportQuery {
	var q domain.ReportQuery
	q.StartDate, _ = p.String("start_date")
	q.EndDate, _ = p.String("end_date")
	q.Province, _ = p.String("province")
	q.OutPath, _ = p.String("out_path")
	return q
}

// NewReportRegistry registers every report operation backed by svc.
func NewReportRegistry(svc ReportService) *OperationRegistry {
	r := NewOperationRegistry()
	dates := []string{"start_date", "end_date"}

	r.Register(Operation{
		Name:     "calculate_metrics",
		Required: dates,
		Run: func(ctx context.Context, p Params) (any, error) {
			return svc.Metrics(ctx, queryFrom(p))
		},
	})
	r.Register(Operation{
		Name:     "calc_dashboard_table",
		Required: dates,
		Run: func(ctx context.Context, p Params) (any, error) {
			return svc.ResponsibleTable(ctx, queryFrom(p))
		},
	})
	r.Register(Operation{
		Name:     "calc_province_table",
		Required: dates,
		Run: func(ctx context.Context, p Params) (any, error) {
			return svc.ProvinceTable(ctx, queryFrom(p))
		},
	})
	r.Register(Operation{
		Name:     "get_dashboard_data",
		Required: dates,
		Run: func(ctx context.Context, p Params) (any, error) {
			q := queryFrom(p)
			return svc.Dashboard(ctx, domain.ReportQuery{StartDate: q.StartDate, EndDate: q.EndDate})
		},
	})
	r.Register(Operation{
		Name: "count_by_status",
		Run: func(ctx context.Context, _ Params) (any, error) {
			// Most frequent status first; a JSON object would lose the order
			return svc.CountByStatus(ctx)
		},
	})
	r.Register(Operation{
		Name:     "filter_by_date",
		Required: []string{"selected_date"},
		Run: func(ctx context.Context, p Params) (any, error) {
			date, _ := p.String("selected_date")
			column := domain.DateColumnDue
			if name, ok := p.String("column_name"); ok {
				col, known := domain.ParseDateColumn(name)
				if !known {
					return nil, fmt.Errorf("%w: column_name %q", domain.ErrInvalidParameter, name)
				}
				column = col
			}
			recs, err := svc.FilterByDate(ctx, date, column)
			if err != nil {
				return nil, err
			}
			out := make([]map[string]any, len(recs))
			for i := range recs {
				out[i] = RecordValues(&recs[i])
			}
			return out, nil
		},
	})
	r.Register(Operation{
		Name: "export",
		Run: func(ctx context.Context, p Params) (any, error) {
			path, _ := p.String("path")
			written, err := svc.ExportDataset(ctx, path)
			if err != nil {
				return nil, err
			}
			return map[string]string{"path": written}, nil
		},
	})
	return r
}
