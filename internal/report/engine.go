// Package report implements the date-range aggregations behind the
// collection dashboard. Every function reads the Dataset it is given and
// never modifies it, so one Dataset can serve any number of concurrent
// reports.
package report

import (
	"vosul/internal/domain"
)

// Engine computes reports against a fixed set of business rules.
type Engine struct {
	rules domain.BusinessRules
}

// NewEngine creates an Engine for the given target and province maps.
func NewEngine(rules domain.BusinessRules) *Engine {
	if rules.Targets == nil {
		rules.Targets = map[string]float64{}
	}
	if rules.ProvinceResponsible == nil {
		rules.ProvinceResponsible = map[string]string{}
	}
	return &Engine{rules: rules}
}

// Rules returns the business rules the engine was built with.
func (e *Engine) Rules() domain.BusinessRules {
	return e.rules
}

func records(ds *domain.Dataset) []domain.Record {
	if ds == nil {
		return nil
	}
	return ds.Records
}
