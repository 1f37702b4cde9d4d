package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/domain"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Manage completed sales",
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sales",
	RunE:  runSaleList,
}

var saleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a sale, or update one by passing --id",
	RunE:  runSaleAdd,
}

var saleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a sale",
	Args:  cobra.ExactArgs(1),
	RunE:  runSaleRm,
}

var saleFlags struct {
	id       string
	location string
	date     string
	items    []string
	notes    string
}

func init() {
	f := saleAddCmd.Flags()
	f.StringVar(&saleFlags.id, "id", "", "sale ID (set to update an existing record)")
	f.StringVar(&saleFlags.location, "location", "", "location ID (required)")
	f.StringVar(&saleFlags.date, "date", "", "sale date YYYY-MM-DD (default today)")
	f.StringArrayVar(&saleFlags.items, "item", nil, "line item productID:quantity:pricePerUnit (repeatable, required)")
	f.StringVar(&saleFlags.notes, "notes", "", "free-form notes")

	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleAddCmd)
	saleCmd.AddCommand(saleRmCmd)
}

func runSaleList(cmd *cobra.Command, args []string) error {
	st := vendoraApp.Store()
	sales := st.Sales()
	if len(sales) == 0 {
		fmt.Println("No sales yet.")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tLOCATION\tITEMS\tTOTAL")
	for _, sale := range sales {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			sale.ID, sale.Date, st.LocationName(sale.LocationID), len(sale.Items), money(sale.Total()))
	}
	return w.Flush()
}

func runSaleAdd(cmd *cobra.Command, args []string) error {
	if saleFlags.location == "" {
		return errors.New("--location is required")
	}
	if len(saleFlags.items) == 0 {
		return errors.New("at least one --item is required")
	}
	items := make([]domain.SaleItem, 0, len(saleFlags.items))
	for _, raw := range saleFlags.items {
		productID, qty, price, err := parsePricedItem(raw)
		if err != nil {
			return err
		}
		items = append(items, domain.SaleItem{ProductID: productID, Quantity: qty, PricePerUnit: price})
	}
	date := saleFlags.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	st := vendoraApp.Store()
	sale := domain.Sale{
		ID:         saleFlags.id,
		LocationID: saleFlags.location,
		Date:       date,
		Items:      items,
		Notes:      saleFlags.notes,
	}
	if sale.ID == "" {
		sale.ID = st.GenerateID()
	}
	created, err := st.SaveSale(sale)
	if err != nil {
		return err
	}
	fmt.Printf("Sale %s: %s at %s, total %s\n", savedWord(created), sale.ID, st.LocationName(sale.LocationID), money(sale.Total()))
	return nil
}

func runSaleRm(cmd *cobra.Command, args []string) error {
	if err := vendoraApp.Store().DeleteSale(args[0]); err != nil {
		return err
	}
	fmt.Printf("Sale deleted: %s\n", args[0])
	return nil
}
