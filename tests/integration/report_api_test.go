// Package integration exercises the report API end to end: sqlite-backed
// record sources, the report service and the HTTP layer in one process.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	reportapp "github.com/tradeconsole/backend/internal/application/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
	"github.com/tradeconsole/backend/internal/infrastructure/auth"
	"github.com/tradeconsole/backend/internal/infrastructure/config"
	"github.com/tradeconsole/backend/internal/infrastructure/persistence"
	"github.com/tradeconsole/backend/internal/interfaces/http/handler"
	"github.com/tradeconsole/backend/internal/interfaces/http/middleware"
	"github.com/tradeconsole/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testStack struct {
	engine *gin.Engine
	token  string
}

func newTestStack(t *testing.T) (*gorm.DB, *testStack) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&trading.Currency{},
		&trading.Customer{},
		&trading.Rep{},
		&trading.Warehouse{},
		&trading.Product{},
		&trading.ProductPrice{},
		&trading.Invoice{},
		&trading.SalesReturn{},
		&trading.PaymentVoucher{},
		&trading.StockLine{},
		&trading.RepVisit{},
		&trading.Account{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	service := reportapp.NewService(persistence.NewSources(db))

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "integration-test-secret-key-material",
		AccessTokenExpiration: time.Hour,
		Issuer:                "tradeconsole-test",
	})
	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "admin", "manager")
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.JWTAuthMiddleware(jwtService))

	r := router.NewRouter(engine)
	r.Register(handler.NewReportHandler(service))
	r.Setup()

	return db, &testStack{engine: engine, token: token}
}

func (s *testStack) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func seedVouchers(t *testing.T, db *gorm.DB) (repA trading.Rep, acme trading.Customer) {
	t.Helper()

	usd := trading.Currency{ID: uuid.New(), Code: "USD", Name: "US Dollar"}
	lbp := trading.Currency{ID: uuid.New(), Code: "LBP", Name: "Lebanese Pound"}
	acme = trading.Customer{ID: uuid.New(), Name: "Acme Traders"}
	beta := trading.Customer{ID: uuid.New(), Name: "Beta Goods"}
	repA = trading.Rep{ID: uuid.New(), Name: "Rep A"}
	repB := trading.Rep{ID: uuid.New(), Name: "Rep B"}
	for _, m := range []any{&usd, &lbp, &acme, &beta, &repA, &repB} {
		require.NoError(t, db.Create(m).Error)
	}

	vouchers := []trading.PaymentVoucher{
		{
			ID: uuid.New(), VoucherNumber: "PV-1",
			CustomerID: acme.ID, RepID: repA.ID, CurrencyID: usd.ID,
			VoucherDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Method:      "cash", Amount: decimal.NewFromInt(100),
		},
		{
			ID: uuid.New(), VoucherNumber: "PV-2",
			CustomerID: beta.ID, RepID: repB.ID, CurrencyID: usd.ID,
			VoucherDate: time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			Method:      "bank", Amount: decimal.NewFromInt(250),
		},
		{
			ID: uuid.New(), VoucherNumber: "PV-3",
			CustomerID: acme.ID, RepID: repA.ID, CurrencyID: lbp.ID,
			VoucherDate: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			Method:      "cash", Amount: decimal.NewFromInt(75),
		},
	}
	for i := range vouchers {
		require.NoError(t, db.Create(&vouchers[i]).Error)
	}
	return repA, acme
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestReportAPI_RequiresAuthentication(t *testing.T) {
	_, stack := newTestStack(t)

	w := httptest.NewRecorder()
	stack.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportAPI_Catalog(t *testing.T) {
	_, stack := newTestStack(t)

	w := stack.get(t, "/api/v1/admin/reports")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	var reports []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reports))
	assert.Len(t, reports, 10)
	assert.Equal(t, "sales", reports[0].Name)
}

func TestReportAPI_VoucherFlow(t *testing.T) {
	db, stack := newTestStack(t)
	repA, _ := seedVouchers(t, db)

	t.Run("options are derived from the records", func(t *testing.T) {
		w := stack.get(t, "/api/v1/admin/reports/vouchers/options")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		var options map[string][]struct {
			Label string `json:"label"`
			Value any    `json:"value"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &options))
		assert.Len(t, options["customer"], 2)
		assert.Len(t, options["rep"], 2)
		assert.Len(t, options["method"], 2)
	})

	t.Run("default range spans the data", func(t *testing.T) {
		w := stack.get(t, "/api/v1/admin/reports/vouchers/range")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-01-10")
	})

	t.Run("unfiltered run totals by currency", func(t *testing.T) {
		w := stack.get(t, "/api/v1/admin/reports/vouchers")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		var result struct {
			Rows             []map[string]any   `json:"rows"`
			GrandTotal       float64            `json:"grand_total"`
			TotalsByCurrency map[string]float64 `json:"totals_by_currency"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Len(t, result.Rows, 3)
		assert.InDelta(t, 425, result.GrandTotal, 1e-9)
		assert.InDelta(t, 350, result.TotalsByCurrency["USD"], 1e-9)
		assert.InDelta(t, 75, result.TotalsByCurrency["LBP"], 1e-9)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		w := stack.get(t, "/api/v1/admin/reports/vouchers?rep="+repA.ID.String()+"&from_date=2024-02-01")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		var result struct {
			Rows []map[string]any `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "PV-3", result.Rows[0]["voucher_no"])
	})

	t.Run("malformed date bound is rejected", func(t *testing.T) {
		w := stack.get(t, "/api/v1/admin/reports/vouchers?from_date=20-01-2024")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportAPI_DynamicPriceList(t *testing.T) {
	db, stack := newTestStack(t)

	usd := trading.Currency{ID: uuid.New(), Code: "USD", Name: "US Dollar"}
	require.NoError(t, db.Create(&usd).Error)
	product := trading.Product{
		ID: uuid.New(), SKU: "SKU-1", Name: "Crate", Unit: "pc",
		Prices: []trading.ProductPrice{
			{ID: uuid.New(), CurrencyID: usd.ID, PriceType: "general", Value: decimal.NewFromInt(10)},
			{ID: uuid.New(), CurrencyID: usd.ID, PriceType: "retail", Value: decimal.NewFromInt(12)},
		},
	}
	require.NoError(t, db.Create(&product).Error)

	w := stack.get(t, "/api/v1/admin/reports/price-list")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	var result struct {
		Rows    []map[string]any `json:"rows"`
		Columns []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.Len(t, result.Columns, 2)
	assert.Equal(t, "general:USD:0", result.Columns[0].Key)
	assert.Equal(t, "General (US Dollar)", result.Columns[0].Label)

	require.Len(t, result.Rows, 1)
	assert.InDelta(t, 10, result.Rows[0]["general:USD:0"].(float64), 1e-9)
	assert.InDelta(t, 12, result.Rows[0]["retail:USD:0"].(float64), 1e-9)
}
