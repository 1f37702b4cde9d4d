// Package reports aggregates the tracker document into dashboard and
// report rows. Everything here is a pure function over a document
// snapshot; rendering is up to the caller.
package reports

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/montanaflynn/stats"

	"github.com/vendorahq/vendora/internal/domain"
	"github.com/vendorahq/vendora/internal/store"
)

// TopProduct is one row of the dashboard's best-seller list.
type TopProduct struct {
	ID           string
	Name         string
	QuantitySold int
}

// DashboardStats are the headline numbers shown on the dashboard.
type DashboardStats struct {
	LocationCount    int
	ProductCount     int
	DeliveryCount    int
	OrderCount       int
	SaleCount        int
	PendingOrders    int
	UnpaidDeliveries int
	TopProducts      []TopProduct
	MeanSaleValue    float64
	MedianSaleValue  float64
}

// MonthRevenue is the revenue bucket for one calendar month.
type MonthRevenue struct {
	Month   string // YYYY-MM
	Revenue float64
}

// Dashboard computes the headline stats over the whole document. Products
// deleted after being sold still rank in the best-seller list under the
// sentinel name.
func Dashboard(doc domain.Document) DashboardStats {
	ds := DashboardStats{
		LocationCount: len(doc.Locations),
		ProductCount:  len(doc.Products),
		DeliveryCount: len(doc.Deliveries),
		OrderCount:    len(doc.Orders),
		SaleCount:     len(doc.Sales),
		TopProducts:   []TopProduct{},
	}
	for _, o := range doc.Orders {
		if o.Status == domain.OrderPending {
			ds.PendingOrders++
		}
	}
	for _, d := range doc.Deliveries {
		if !d.IsPaid {
			ds.UnpaidDeliveries++
		}
	}

	sold := map[string]int{}
	for _, sale := range doc.Sales {
		for _, it := range sale.Items {
			sold[it.ProductID] += it.Quantity
		}
	}
	names := map[string]string{}
	for _, p := range doc.Products {
		names[p.ID] = p.Name
	}
	for id, qty := range sold {
		name, ok := names[id]
		if !ok {
			name = store.UnknownProduct
		}
		ds.TopProducts = append(ds.TopProducts, TopProduct{ID: id, Name: name, QuantitySold: qty})
	}
	sort.Slice(ds.TopProducts, func(i, j int) bool {
		a, b := ds.TopProducts[i], ds.TopProducts[j]
		if a.QuantitySold != b.QuantitySold {
			return a.QuantitySold > b.QuantitySold
		}
		return a.ID < b.ID
	})
	if len(ds.TopProducts) > 5 {
		ds.TopProducts = ds.TopProducts[:5]
	}

	if len(doc.Sales) > 0 {
		totals := make([]float64, 0, len(doc.Sales))
		for _, sale := range doc.Sales {
			totals = append(totals, sale.Total())
		}
		ds.MeanSaleValue, _ = stats.Mean(totals)
		ds.MedianSaleValue, _ = stats.Median(totals)
	}
	return ds
}

// MonthlyRevenue buckets sale revenue into the last `months` calendar
// months, oldest first. Sales outside the window, or with dates that do not
// parse, are ignored.
func MonthlyRevenue(doc domain.Document, months int) []MonthRevenue {
	return monthlyRevenueAt(doc, months, time.Now())
}

func monthlyRevenueAt(doc domain.Document, months int, now time.Time) []MonthRevenue {
	if months <= 0 {
		return []MonthRevenue{}
	}
	buckets := map[string]float64{}
	keys := make([]string, 0, months)
	// Anchor on the first of the month so subtracting months never
	// normalizes across a short month.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		key := base.AddDate(0, -i, 0).Format("2006-01")
		keys = append(keys, key)
		buckets[key] = 0
	}
	for _, sale := range doc.Sales {
		t, err := dateparse.ParseAny(sale.Date)
		if err != nil {
			continue
		}
		key := t.Format("2006-01")
		if _, ok := buckets[key]; ok {
			buckets[key] += sale.Total()
		}
	}
	out := make([]MonthRevenue, 0, months)
	for _, key := range keys {
		out = append(out, MonthRevenue{Month: key, Revenue: buckets[key]})
	}
	return out
}
