package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/reports"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show headline stats, best sellers and the revenue trend",
	RunE:  runDashboard,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show sales performance per product and per location",
	RunE:  runReport,
}

var reportFlags struct {
	month    string
	location string
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.month, "month", "", "restrict to one calendar month, YYYY-MM")
	f.StringVar(&reportFlags.location, "location", "", "restrict to one location ID")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	doc := vendoraApp.Store().Snapshot()
	ds := reports.Dashboard(doc)

	fmt.Printf("Locations:  %d\n", ds.LocationCount)
	fmt.Printf("Products:   %d\n", ds.ProductCount)
	fmt.Printf("Deliveries: %d (%d unpaid)\n", ds.DeliveryCount, ds.UnpaidDeliveries)
	fmt.Printf("Orders:     %d (%d pending)\n", ds.OrderCount, ds.PendingOrders)
	fmt.Printf("Sales:      %d\n", ds.SaleCount)
	if ds.SaleCount > 0 {
		fmt.Printf("Sale value: mean %s, median %s\n", money(ds.MeanSaleValue), money(ds.MedianSaleValue))
	}

	if len(ds.TopProducts) > 0 {
		fmt.Println("\nBest sellers:")
		w := newTable()
		fmt.Fprintln(w, "  PRODUCT\tSOLD")
		for _, tp := range ds.TopProducts {
			fmt.Fprintf(w, "  %s\t%d\n", tp.Name, tp.QuantitySold)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Println("\nRevenue, last 6 months:")
	w := newTable()
	for _, mr := range reports.MonthlyRevenue(doc, 6) {
		fmt.Fprintf(w, "  %s\t%s\n", mr.Month, money(mr.Revenue))
	}
	return w.Flush()
}

func runReport(cmd *cobra.Command, args []string) error {
	doc := vendoraApp.Store().Snapshot()
	f := reports.Filter{LocationID: reportFlags.location, Month: reportFlags.month}

	sum := reports.BuildSummary(doc, f)
	fmt.Printf("Revenue: %s   Cost: %s   Profit: %s\n", money(sum.TotalRevenue), money(sum.TotalCost), money(sum.Profit))
	if sum.TopProduct.ID != "" {
		fmt.Printf("Top product:  %s (%s revenue)\n", sum.TopProduct.Name, money(sum.TopProduct.Revenue))
	}
	if sum.TopLocation.ID != "" {
		fmt.Printf("Top location: %s (%s revenue)\n", sum.TopLocation.Name, money(sum.TopLocation.Revenue))
	}

	productRows := reports.ProductPerformance(doc, f)
	if len(productRows) == 0 {
		fmt.Println("\nNo sales match the filter.")
		return nil
	}
	fmt.Println("\nBy product:")
	w := newTable()
	fmt.Fprintln(w, "  PRODUCT\tQTY\tREVENUE\tCOST\tPROFIT")
	for _, row := range productRows {
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\t%s\n", row.Name, row.Quantity, money(row.Revenue), money(row.Cost), money(row.Profit))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	locationRows := reports.LocationPerformance(doc, f)
	if len(locationRows) == 0 {
		return nil
	}
	fmt.Println("\nBy location:")
	w = newTable()
	fmt.Fprintln(w, "  LOCATION\tSALES\tREVENUE")
	for _, row := range locationRows {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", row.Name, row.SaleCount, money(row.Revenue))
	}
	return w.Flush()
}
