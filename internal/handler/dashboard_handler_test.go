package handler_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vosul/internal/domain"
	"vosul/internal/handler"
	"vosul/internal/tableexport"
	"vosul/mocks"
)

func newDashboardHandler() (*handler.DashboardHandler, *mocks.MockReportService) {
	svc := new(mocks.MockReportService)
	return handler.NewDashboardHandler(svc, zerolog.Nop()), svc
}

func provinceTable() domain.Table {
	return domain.NewProvinceTable([]domain.ProvinceRow{
		{Province: "تهران", ReturnsCreated: 1500, Collected: 500, CollectedToCreatedRatio: 33.33},
		{Province: domain.TotalRowLabel, IsTotal: true, ReturnsCreated: 1500, Collected: 500, CollectedToCreatedRatio: 33.33},
	})
}

func TestDashboardHandler_Dashboard_Success(t *testing.T) {
	h, svc := newDashboardHandler()

	q := domain.ReportQuery{StartDate: "1402/06/01", EndDate: "1402/06/31"}
	svc.On("Dashboard", mock.Anything, q).Return(&domain.Dashboard{
		Metrics: domain.Metrics{TotalCollection: 1000},
		ProvinceTable: []domain.ProvinceRow{
			{Province: domain.TotalRowLabel, IsTotal: true},
		},
	}, nil)

	body, _ := json.Marshal(map[string]string{"start_date": "1402/06/01", "end_date": "1402/06/31"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/dashboard", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)

	var data domain.Dashboard
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 1000.0, data.Metrics.TotalCollection)
	require.Len(t, data.ProvinceTable, 1)
	assert.True(t, data.ProvinceTable[0].IsTotal)
	svc.AssertExpectations(t)
}

func TestDashboardHandler_Dashboard_MissingDates(t *testing.T) {
	h, svc := newDashboardHandler()

	body, _ := json.Marshal(map[string]string{"start_date": "1402/06/01"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/dashboard", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Dashboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Missing dates", resp.Error.Message)
	svc.AssertNotCalled(t, "Dashboard", mock.Anything, mock.Anything)
}

func TestDashboardHandler_ExportTable_CSV(t *testing.T) {
	h, svc := newDashboardHandler()

	q := domain.ReportQuery{StartDate: "1402/06/01", EndDate: "1402/06/31"}
	svc.On("Table", mock.Anything, domain.TableProvince, q).Return(provinceTable(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/reports/province/export?start_date=1402/06/01&end_date=1402/06/31", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "province"}}

	h.ExportTable(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "province_1402_06_01_1402_06_31.csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, tableexport.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, tableexport.ProvinceLabelHeader, records[0][0])
	assert.Equal(t, "تهران", records[1][0])
	assert.Equal(t, "1500.00", records[1][1])
	assert.Equal(t, domain.TotalRowLabel, records[2][0])
	svc.AssertExpectations(t)
}

func TestDashboardHandler_ExportTable_XLSX(t *testing.T) {
	h, svc := newDashboardHandler()

	q := domain.ReportQuery{StartDate: "1402/06/01", EndDate: "1402/06/31"}
	svc.On("Table", mock.Anything, domain.TableProvince, q).Return(provinceTable(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/reports/province/export?start_date=1402/06/01&end_date=1402/06/31&format=xlsx", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "province"}}

	h.ExportTable(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	table, err := tableexport.ReadXLSXFrom(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, domain.TableProvince, table.Kind)
	assert.Equal(t, []string{"تهران", domain.TotalRowLabel}, table.Labels)
	assert.InDelta(t, 500.0, table.Column("collected")[0], 1e-9)
}

func TestDashboardHandler_ExportTable_UnsupportedFormat(t *testing.T) {
	h, svc := newDashboardHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/reports/province/export?start_date=1402/06/01&end_date=1402/06/31&format=pdf", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "province"}}

	h.ExportTable(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
	svc.AssertNotCalled(t, "Table", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardHandler_ExportTable_UnknownTable(t *testing.T) {
	h, svc := newDashboardHandler()

	q := domain.ReportQuery{StartDate: "1402/06/01", EndDate: "1402/06/31"}
	svc.On("Table", mock.Anything, domain.TableKind("bank"), q).Return(domain.Table{}, domain.ErrUnknownTable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/reports/bank/export?start_date=1402/06/01&end_date=1402/06/31", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "bank"}}

	h.ExportTable(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "TABLE_NOT_FOUND", resp.Error.Code)
}
