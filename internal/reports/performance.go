package reports

import (
	"sort"
	"strings"

	"github.com/vendorahq/vendora/internal/domain"
	"github.com/vendorahq/vendora/internal/store"
)

// Filter narrows report aggregation. Zero values mean "all": an empty
// LocationID spans every location, an empty Month spans all time. Month
// matches the date string's YYYY-MM prefix.
type Filter struct {
	LocationID string
	Month      string
}

func (f Filter) matches(locationID, date string) bool {
	if f.LocationID != "" && locationID != f.LocationID {
		return false
	}
	if f.Month != "" && !strings.HasPrefix(date, f.Month) {
		return false
	}
	return true
}

// ProductRow is per-product sales performance.
type ProductRow struct {
	ID       string
	Name     string
	Quantity int
	Revenue  float64
	Cost     float64
	Profit   float64
}

// LocationRow is per-location sales performance.
type LocationRow struct {
	ID        string
	Name      string
	Revenue   float64
	SaleCount int
}

// Summary totals a filtered slice of the sales history.
type Summary struct {
	TotalRevenue float64
	TotalCost    float64
	Profit       float64
	TopProduct   ProductRow
	TopLocation  LocationRow
}

// ProductPerformance aggregates revenue, cost and profit per product over
// the filtered sales. Sales of deleted products still count: the row keeps
// the sentinel name and a zero cost basis, matching the display-layer
// fallback.
func ProductPerformance(doc domain.Document, f Filter) []ProductRow {
	products := map[string]domain.Product{}
	for _, p := range doc.Products {
		products[p.ID] = p
	}
	rows := map[string]*ProductRow{}
	for _, sale := range doc.Sales {
		if !f.matches(sale.LocationID, sale.Date) {
			continue
		}
		for _, it := range sale.Items {
			row, ok := rows[it.ProductID]
			if !ok {
				name := store.UnknownProduct
				if p, known := products[it.ProductID]; known {
					name = p.Name
				}
				row = &ProductRow{ID: it.ProductID, Name: name}
				rows[it.ProductID] = row
			}
			row.Quantity += it.Quantity
			row.Revenue += float64(it.Quantity) * it.PricePerUnit
			if p, known := products[it.ProductID]; known {
				row.Cost += float64(it.Quantity) * p.CostPrice
			}
		}
	}
	out := make([]ProductRow, 0, len(rows))
	for _, row := range rows {
		row.Profit = row.Revenue - row.Cost
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// LocationPerformance aggregates revenue and sale count per location over
// the filtered sales. Sales referencing a deleted location are skipped.
func LocationPerformance(doc domain.Document, f Filter) []LocationRow {
	locations := map[string]domain.Location{}
	for _, l := range doc.Locations {
		locations[l.ID] = l
	}
	rows := map[string]*LocationRow{}
	for _, sale := range doc.Sales {
		if !f.matches(sale.LocationID, sale.Date) {
			continue
		}
		loc, known := locations[sale.LocationID]
		if !known {
			continue
		}
		row, ok := rows[loc.ID]
		if !ok {
			row = &LocationRow{ID: loc.ID, Name: loc.Name}
			rows[loc.ID] = row
		}
		row.Revenue += sale.Total()
		row.SaleCount++
	}
	out := make([]LocationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BuildSummary totals the filtered sales and names the best performing
// product and location.
func BuildSummary(doc domain.Document, f Filter) Summary {
	var sum Summary
	productRows := ProductPerformance(doc, f)
	for _, row := range productRows {
		sum.TotalRevenue += row.Revenue
		sum.TotalCost += row.Cost
	}
	sum.Profit = sum.TotalRevenue - sum.TotalCost
	if len(productRows) > 0 {
		sum.TopProduct = productRows[0]
	}
	if locationRows := LocationPerformance(doc, f); len(locationRows) > 0 {
		sum.TopLocation = locationRows[0]
	}
	return sum
}
