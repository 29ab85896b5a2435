package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vosul/internal/domain"
	"vosul/internal/service"
	"vosul/mocks"
)

func TestReportRegistry_Names(t *testing.T) {
	reg := service.NewReportRegistry(new(mocks.MockReportService))

	assert.Equal(t, []string{
		"calc_dashboard_table",
		"calc_province_table",
		"calculate_metrics",
		"count_by_status",
		"export",
		"filter_by_date",
		"get_dashboard_data",
	}, reg.Names())
}

func TestRegistry_UnknownOperation(t *testing.T) {
	reg := service.NewReportRegistry(new(mocks.MockReportService))

	_, err := reg.Invoke(context.Background(), "total_amount", service.Params{})
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestRegistry_MissingParameter(t *testing.T) {
	svc := new(mocks.MockReportService)
	reg := service.NewReportRegistry(svc)

	_, err := reg.Invoke(context.Background(), "calculate_metrics", service.Params{"start_date": "1402/06/01"})
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
	assert.Contains(t, err.Error(), "end_date")

	_, err = reg.Invoke(context.Background(), "calc_province_table", service.Params{"start_date": " ", "end_date": "1402/06/31"})
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
	svc.AssertNotCalled(t, "ProvinceTable", mock.Anything, mock.Anything)
}

func TestRegistry_CalculateMetrics(t *testing.T) {
	svc := new(mocks.MockReportService)
	want := domain.ReportQuery{StartDate: "1402/06/01", EndDate: "1402/06/31", Province: "تهران"}
	svc.On("Metrics", mock.Anything, want).Return(&domain.Metrics{TotalCollection: 10}, nil)

	reg := service.NewReportRegistry(svc)
	out, err := reg.Invoke(context.Background(), "calculate_metrics", service.Params{
		"start_date": "1402/06/01",
		"end_date":   "1402/06/31",
		"province":   "تهران",
		"unused":     "ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.Metrics{TotalCollection: 10}, out)
	svc.AssertExpectations(t)
}

func TestRegistry_DashboardUsesOnlyDates(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("Dashboard", mock.Anything, shahrivar).Return(&domain.Dashboard{}, nil)

	reg := service.NewReportRegistry(svc)
	_, err := reg.Invoke(context.Background(), "get_dashboard_data", service.Params{
		"start_date": "1402/06/01",
		"end_date":   "1402/06/31",
		"province":   "قم",
		"out_path":   "x.xlsx",
	})

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestRegistry_CountByStatus(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("CountByStatus", mock.Anything).Return([]domain.StatusCount{
		{FinalStatus: domain.FinalStatusCollected, Count: 4},
		{FinalStatus: domain.FinalStatusNotCollected, Count: 1},
	}, nil)

	out, err := service.NewReportRegistry(svc).Invoke(context.Background(), "count_by_status", nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.StatusCount{
		{FinalStatus: domain.FinalStatusCollected, Count: 4},
		{FinalStatus: domain.FinalStatusNotCollected, Count: 1},
	}, out)
}

func TestRegistry_FilterByDate(t *testing.T) {
	days := 3
	svc := new(mocks.MockReportService)
	svc.On("FilterByDate", mock.Anything, "1402/06/05", domain.DateColumnCollection).Return([]domain.Record{
		{Code: 60001, Amount: 1000, CollectionDate: jalali("1402/06/05"), FollowUpToCollectionDays: &days},
	}, nil)

	out, err := service.NewReportRegistry(svc).Invoke(context.Background(), "filter_by_date", service.Params{
		"selected_date": "1402/06/05",
		"column_name":   "تاریخ وصول",
	})

	require.NoError(t, err)
	rows, ok := out.([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(60001), rows[0]["code"])
	assert.Equal(t, "2023-08-27", rows[0]["collection_date"])
	assert.Nil(t, rows[0]["due_date"])
	assert.Equal(t, 3, rows[0]["follow_up_to_collection_days"])
}

func TestRegistry_FilterByDate_UnknownColumn(t *testing.T) {
	svc := new(mocks.MockReportService)

	_, err := service.NewReportRegistry(svc).Invoke(context.Background(), "filter_by_date", service.Params{
		"selected_date": "1402/06/05",
		"column_name":   "ستون",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestRegistry_Export(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("ExportDataset", mock.Anything, "").Return("exports/exported_data.xlsx", nil)

	out, err := service.NewReportRegistry(svc).Invoke(context.Background(), "export", service.Params{})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"path": "exports/exported_data.xlsx"}, out)
}

func TestRegistry_RecoversPanic(t *testing.T) {
	reg := service.NewOperationRegistry()
	reg.Register(service.Operation{
		Name: "broken",
		Run: func(context.Context, service.Params) (any, error) {
			var m map[string]int
			m["x"] = 1
			return nil, nil
		},
	})

	_, err := reg.Invoke(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, domain.ErrComputationFailed)
}

func TestParams_String(t *testing.T) {
	p := service.Params{"s": " a ", "n": 60001, "f": 1.5, "nil": nil, "blank": ""}

	v, ok := p.String("s")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = p.String("n")
	assert.True(t, ok)
	assert.Equal(t, "60001", v)

	v, _ = p.String("f")
	assert.Equal(t, "1.5", v)

	_, ok = p.String("nil")
	assert.False(t, ok)
	_, ok = p.String("blank")
	assert.False(t, ok)
	_, ok = p.String("absent")
	assert.False(t, ok)
}
