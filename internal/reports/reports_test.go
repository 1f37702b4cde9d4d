package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorahq/vendora/internal/domain"
	"github.com/vendorahq/vendora/internal/store"
)

func fixtureDoc() domain.Document {
	doc := domain.NewDocument()
	doc.Locations = []domain.Location{
		{ID: "l1", Name: "Corner Shop"},
		{ID: "l2", Name: "Market Stall"},
	}
	doc.Products = []domain.Product{
		{ID: "p1", Name: "Hot Sauce", CostPrice: 2},
		{ID: "p2", Name: "Chips", CostPrice: 1},
	}
	doc.Deliveries = []domain.Delivery{
		{ID: "d1", LocationID: "l1", Date: "2026-07-01", IsPaid: true,
			Items: []domain.DeliveryItem{{ProductID: "p1", Quantity: 20, PricePerUnit: 3}}},
		{ID: "d2", LocationID: "l2", Date: "2026-07-02",
			Items: []domain.DeliveryItem{{ProductID: "p2", Quantity: 50, PricePerUnit: 1.5}}},
	}
	doc.Orders = []domain.Order{
		{ID: "o1", LocationID: "l1", Date: "2026-07-03", Status: domain.OrderPending,
			Items: []domain.OrderItem{{ProductID: "p1", Quantity: 10}}},
		{ID: "o2", LocationID: "l2", Date: "2026-07-04", Status: domain.OrderDelivered,
			Items: []domain.OrderItem{{ProductID: "p2", Quantity: 5}}},
	}
	doc.Sales = []domain.Sale{
		{ID: "s1", LocationID: "l1", Date: "2026-08-05",
			Items: []domain.SaleItem{{ProductID: "p1", Quantity: 5, PricePerUnit: 4}}}, // 20
		{ID: "s2", LocationID: "l2", Date: "2026-08-10",
			Items: []domain.SaleItem{{ProductID: "p2", Quantity: 10, PricePerUnit: 2}}}, // 20
		{ID: "s3", LocationID: "l1", Date: "2026-07-20",
			Items: []domain.SaleItem{{ProductID: "p1", Quantity: 1, PricePerUnit: 4}}}, // 4
		{ID: "s4", LocationID: "ghost", Date: "2026-08-11",
			Items: []domain.SaleItem{{ProductID: "gone", Quantity: 7, PricePerUnit: 1}}}, // 7
	}
	return doc
}

func TestDashboardCounts(t *testing.T) {
	ds := Dashboard(fixtureDoc())

	assert.Equal(t, 2, ds.LocationCount)
	assert.Equal(t, 2, ds.ProductCount)
	assert.Equal(t, 2, ds.DeliveryCount)
	assert.Equal(t, 2, ds.OrderCount)
	assert.Equal(t, 4, ds.SaleCount)
	assert.Equal(t, 1, ds.PendingOrders)
	assert.Equal(t, 1, ds.UnpaidDeliveries)
}

func TestDashboardTopProducts(t *testing.T) {
	ds := Dashboard(fixtureDoc())

	require.Len(t, ds.TopProducts, 3)
	assert.Equal(t, TopProduct{ID: "p2", Name: "Chips", QuantitySold: 10}, ds.TopProducts[0])
	// A deleted product still ranks, under the sentinel name.
	assert.Equal(t, TopProduct{ID: "gone", Name: store.UnknownProduct, QuantitySold: 7}, ds.TopProducts[1])
	assert.Equal(t, TopProduct{ID: "p1", Name: "Hot Sauce", QuantitySold: 6}, ds.TopProducts[2])
}

func TestDashboardSaleStats(t *testing.T) {
	ds := Dashboard(fixtureDoc())

	// Sale totals: 20, 20, 4, 7.
	assert.InDelta(t, 12.75, ds.MeanSaleValue, 1e-9)
	assert.InDelta(t, 13.5, ds.MedianSaleValue, 1e-9)
}

func TestDashboardEmptyDocument(t *testing.T) {
	ds := Dashboard(domain.NewDocument())
	assert.Zero(t, ds.SaleCount)
	assert.Zero(t, ds.MeanSaleValue)
	assert.Empty(t, ds.TopProducts)
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	out := monthlyRevenueAt(fixtureDoc(), 3, now)

	require.Len(t, out, 3)
	assert.Equal(t, MonthRevenue{Month: "2026-06", Revenue: 0}, out[0])
	assert.Equal(t, MonthRevenue{Month: "2026-07", Revenue: 4}, out[1])
	assert.Equal(t, MonthRevenue{Month: "2026-08", Revenue: 47}, out[2])
}

func TestMonthlyRevenueSkipsUnparseableDates(t *testing.T) {
	doc := domain.NewDocument()
	doc.Sales = []domain.Sale{
		{ID: "s1", LocationID: "l1", Date: "not a date",
			Items: []domain.SaleItem{{ProductID: "p1", Quantity: 1, PricePerUnit: 100}}},
		{ID: "s2", LocationID: "l1", Date: "2026-08-01",
			Items: []domain.SaleItem{{ProductID: "p1", Quantity: 1, PricePerUnit: 5}}},
	}
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	out := monthlyRevenueAt(doc, 1, now)

	require.Len(t, out, 1)
	assert.InDelta(t, 5, out[0].Revenue, 1e-9)
}

func TestMonthlyRevenueShortMonthAnchor(t *testing.T) {
	// March 31 minus one month must land in February, not normalize to March.
	now := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	out := monthlyRevenueAt(domain.NewDocument(), 2, now)

	require.Len(t, out, 2)
	assert.Equal(t, "2026-02", out[0].Month)
	assert.Equal(t, "2026-03", out[1].Month)
}

func TestProductPerformance(t *testing.T) {
	rows := ProductPerformance(fixtureDoc(), Filter{})

	require.Len(t, rows, 3)
	// Sorted by revenue descending.
	assert.Equal(t, "p1", rows[0].ID)
	assert.InDelta(t, 24, rows[0].Revenue, 1e-9) // 5*4 + 1*4
	assert.InDelta(t, 12, rows[0].Cost, 1e-9)    // 6 units at cost 2
	assert.InDelta(t, 12, rows[0].Profit, 1e-9)

	assert.Equal(t, "p2", rows[1].ID)
	assert.InDelta(t, 20, rows[1].Revenue, 1e-9)

	// Deleted product: sentinel name, zero cost basis.
	assert.Equal(t, "gone", rows[2].ID)
	assert.Equal(t, store.UnknownProduct, rows[2].Name)
	assert.InDelta(t, 7, rows[2].Revenue, 1e-9)
	assert.Zero(t, rows[2].Cost)
}

func TestLocationPerformanceSkipsUnknownLocations(t *testing.T) {
	rows := LocationPerformance(fixtureDoc(), Filter{})

	require.Len(t, rows, 2)
	assert.Equal(t, "l1", rows[0].ID)
	assert.InDelta(t, 24, rows[0].Revenue, 1e-9)
	assert.Equal(t, 2, rows[0].SaleCount)
	assert.Equal(t, "l2", rows[1].ID)
	assert.InDelta(t, 20, rows[1].Revenue, 1e-9)
}

func TestFilterByMonth(t *testing.T) {
	rows := ProductPerformance(fixtureDoc(), Filter{Month: "2026-07"})

	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ID)
	assert.InDelta(t, 4, rows[0].Revenue, 1e-9)
}

func TestFilterByLocation(t *testing.T) {
	rows := ProductPerformance(fixtureDoc(), Filter{LocationID: "l2"})

	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ID)
}

func TestFilterCombined(t *testing.T) {
	rows := ProductPerformance(fixtureDoc(), Filter{LocationID: "l1", Month: "2026-08"})

	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ID)
	assert.InDelta(t, 20, rows[0].Revenue, 1e-9)
}

func TestBuildSummary(t *testing.T) {
	sum := BuildSummary(fixtureDoc(), Filter{})

	assert.InDelta(t, 51, sum.TotalRevenue, 1e-9) // 24 + 20 + 7
	assert.InDelta(t, 22, sum.TotalCost, 1e-9)    // 12 + 10
	assert.InDelta(t, 29, sum.Profit, 1e-9)
	assert.Equal(t, "p1", sum.TopProduct.ID)
	assert.Equal(t, "l1", sum.TopLocation.ID)
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := BuildSummary(domain.NewDocument(), Filter{})
	assert.Zero(t, sum.TotalRevenue)
	assert.Empty(t, sum.TopProduct.ID)
	assert.Empty(t, sum.TopLocation.ID)
}
