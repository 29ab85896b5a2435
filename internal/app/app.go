// Package app wires configuration into the dataset store, report engine and
// report service shared by the HTTP server and the CLI.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"vosul/internal/config"
	"vosul/internal/dataset"
	"vosul/internal/port"
	"vosul/internal/report"
	"vosul/internal/service"
	"vosul/internal/source/xlsx"
	s3storage "vosul/internal/storage/s3"
	"vosul/internal/tableexport"
)

// App holds the long-lived components built from a Config.
type App struct {
	Store    *dataset.Store
	Reports  service.ReportService
	Registry *service.OperationRegistry
	Reloader *dataset.Reloader
}

// Build creates every component. The dataset is not loaded; call
// App.Store.Load before serving reports.
func Build(cfg *config.Config, log zerolog.Logger) (*App, error) {
	rules, err := config.LoadBusinessRules(cfg.Business.RulesFile)
	if err != nil {
		return nil, err
	}

	var storage port.ObjectStorage
	if cfg.NeedsS3() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	var source port.RecordSource
	if cfg.Data.Remote() {
		source = xlsx.NewS3Source(storage, cfg.Data.S3Bucket, cfg.Data.S3Key, cfg.Data.Sheet)
	} else {
		source = xlsx.NewFileSource(cfg.Data.Path, cfg.Data.Sheet)
	}

	store := dataset.NewStore(source, dataset.Options{MinCode: cfg.Data.MinCode}, log)
	engine := report.NewEngine(rules)
	exporter := tableexport.NewFileExporter(cfg.Export.Dir, storage, cfg.Export.S3Bucket, cfg.Export.S3Prefix, log)
	reports := service.NewReportService(store, engine, exporter, service.ReportFiles{
		Responsible: cfg.Export.ResponsibleFile,
		Province:    cfg.Export.ProvinceFile,
		Dataset:     cfg.Export.DatasetFile,
	}, log)

	a := &App{
		Store:    store,
		Reports:  reports,
		Registry: service.NewReportRegistry(reports),
	}

	if cfg.Data.ReloadSchedule != "" {
		a.Reloader, err = dataset.NewReloader(store, cfg.Data.ReloadSchedule, cfg.Data.ReloadTimeout, log)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}
