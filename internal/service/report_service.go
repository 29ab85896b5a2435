package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"vosul/internal/calendar"
	"vosul/internal/domain"
	"vosul/internal/port"
	"vosul/internal/report"
)

// ReportFiles names the workbooks written as a side effect of table reports.
type ReportFiles struct {
	Responsible string
	Province    string
	Dataset     string
}

// ReportService runs report operations against the currently published
// Dataset.
type ReportService interface {
	Metrics(ctx context.Context, q domain.ReportQuery) (*domain.Metrics, error)
	ResponsibleTable(ctx context.Context, q domain.ReportQuery) ([]domain.ResponsiblePartyRow, error)
	ProvinceTable(ctx context.Context, q domain.ReportQuery) ([]domain.ProvinceRow, error)
	Dashboard(ctx context.Context, q domain.ReportQuery) (*domain.Dashboard, error)
	Table(ctx context.Context, kind domain.TableKind, q domain.ReportQuery) (domain.Table, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	FilterByDate(ctx context.Context, date string, column domain.DateColumn) ([]domain.Record, error)
	ExportDataset(ctx context.Context, filename string) (string, error)
}

type reportService struct {
	datasets port.DatasetProvider
	engine   *report.Engine
	exporter port.TableExporter
	files    ReportFiles
	log      zerolog.Logger
}

// NewReportService creates a ReportService. exporter may be nil, in which
// case table reports skip the workbook side effect.
func NewReportService(datasets port.DatasetProvider, engine *report.Engine, exporter port.TableExporter, files ReportFiles, log zerolog.Logger) ReportService {
	return &reportService{
		datasets: datasets,
		engine:   engine,
		exporter: exporter,
		files:    files,
		log:      log,
	}
}

func (s *reportService) dataset() (*domain.Dataset, error) {
	ds := s.datasets.Current()
	if ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return ds, nil
}

func (s *reportService) Metrics(_ context.Context, q domain.ReportQuery) (*domain.Metrics, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	var m domain.Metrics
	if err := report.Guard("calculate_metrics", func() { m = s.engine.Metrics(ds, q) }); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *reportService) ResponsibleTable(ctx context.Context, q domain.ReportQuery) ([]domain.ResponsiblePartyRow, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	var rows []domain.ResponsiblePartyRow
	if err := report.Guard("calc_dashboard_table", func() { rows = s.engine.ResponsibleTable(ds, q) }); err != nil {
		return nil, err
	}
	s.export(ctx, pick(q.OutPath, s.files.Responsible), domain.NewResponsibleTable(rows))
	return rows, nil
}

func (s *reportService) ProvinceTable(ctx context.Context, q domain.ReportQuery) ([]domain.ProvinceRow, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	var rows []domain.ProvinceRow
	if err := report.Guard("calc_province_table", func() { rows = s.engine.ProvinceTable(ds, q) }); err != nil {
		return nil, err
	}
	s.export(ctx, pick(q.OutPath, s.files.Province), domain.NewProvinceTable(rows))
	return rows, nil
}

func (s *reportService) Dashboard(ctx context.Context, q domain.ReportQuery) (*domain.Dashboard, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	out, err := s.engine.Dashboard(ctx, ds, q)
	if err != nil {
		return nil, err
	}
	s.export(ctx, s.files.Responsible, domain.NewResponsibleTable(out.ResponsiblePartyTable))
	s.export(ctx, s.files.Province, domain.NewProvinceTable(out.ProvinceTable))
	return out, nil
}

// Table computes a breakdown table without writing it to the export
// directory. It backs file downloads.
func (s *reportService) Table(_ context.Context, kind domain.TableKind, q domain.ReportQuery) (domain.Table, error) {
	ds, err := s.dataset()
	if err != nil {
		return domain.Table{}, err
	}
	var table domain.Table
	err = report.Guard(string(kind)+" table", func() {
		switch kind {
		case domain.TableResponsible:
			table = domain.NewResponsibleTable(s.engine.ResponsibleTable(ds, q))
		case domain.TableProvince:
			table = domain.NewProvinceTable(s.engine.ProvinceTable(ds, q))
		}
	})
	if err != nil {
		return domain.Table{}, err
	}
	if table.Kind == "" {
		return domain.Table{}, fmt.Errorf("%w: %q", domain.ErrUnknownTable, kind)
	}
	return table, nil
}

func (s *reportService) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return report.CountByStatus(ds), nil
}

func (s *reportService) FilterByDate(_ context.Context, date string, column domain.DateColumn) ([]domain.Record, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}
	day, ok := calendar.Parse(date)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	return report.FilterByDate(ds, column, day), nil
}

func (s *reportService) ExportDataset(ctx context.Context, filename string) (string, error) {
	ds, err := s.dataset()
	if err != nil {
		return "", err
	}
	if s.exporter == nil {
		return "", fmt.Errorf("%w: no exporter configured", domain.ErrExportFailed)
	}
	return s.exporter.ExportDataset(ctx, pick(filename, s.files.Dataset), ds)
}

// export writes table as a workbook. Failures are logged and never reach the
// caller.
func (s *reportService) export(ctx context.Context, filename string, table domain.Table) {
	if s.exporter == nil || filename == "" {
		return
	}
	path, err := s.exporter.Export(ctx, filename, table)
	if err != nil {
		s.log.Warn().Err(err).Str("table", string(table.Kind)).Str("file", filename).Msg("table export failed")
		return
	}
	s.log.Debug().Str("table", string(table.Kind)).Str("path", path).Msg("table exported")
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
