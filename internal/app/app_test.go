package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vosul/internal/app"
	"vosul/internal/config"
	"vosul/internal/domain"
	"vosul/internal/source/xlsx"
)

func writeLedger(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "data"))

	headers := xlsx.Headers()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	require.NoError(t, f.SetSheetRow("data", "A1", &header))

	row := make([]any, len(headers))
	for i := range row {
		row[i] = ""
	}
	row[0] = "60001"
	row[3] = "1000"
	require.NoError(t, f.SetSheetRow("data", "A2", &row))
	require.NoError(t, f.SaveAs(path))
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Data: config.DataConfig{
			Path:    filepath.Join(dir, "data.xlsx"),
			Sheet:   "data",
			MinCode: domain.DefaultMinCode,
		},
		Export: config.ExportConfig{
			Dir:             filepath.Join(dir, "exports"),
			ResponsibleFile: "dashboard_table.xlsx",
			ProvinceFile:    "province_table.xlsx",
			DatasetFile:     "exported_data.xlsx",
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

func TestBuild_LocalWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeLedger(t, filepath.Join(dir, "data.xlsx"))

	a, err := app.Build(testConfig(dir), zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, a.Reloader)

	ds, err := a.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	counts, err := a.Reports.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Contains(t, a.Registry.Names(), "calculate_metrics")
}

func TestBuild_WithReloadSchedule(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Data.ReloadSchedule = "@every 1h"

	a, err := app.Build(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, a.Reloader)
}

func TestBuild_InvalidSchedule(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Data.ReloadSchedule = "every now and then"

	_, err := app.Build(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestBuild_MissingRulesFile(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Business.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := app.Build(cfg, zerolog.Nop())
	assert.Error(t, err)
}
