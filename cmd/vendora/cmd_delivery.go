package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/domain"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery",
	Short: "Manage deliveries to locations",
}

var deliveryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all deliveries",
	RunE:  runDeliveryList,
}

var deliveryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a delivery, or update one by passing --id",
	RunE:  runDeliveryAdd,
}

var deliveryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a delivery",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeliveryRm,
}

var deliveryPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark a delivery as paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeliveryPay,
}

var deliveryFlags struct {
	id       string
	location string
	date     string
	items    []string
	notes    string
	paid     bool
}

func init() {
	f := deliveryAddCmd.Flags()
	f.StringVar(&deliveryFlags.id, "id", "", "delivery ID (set to update an existing record)")
	f.StringVar(&deliveryFlags.location, "location", "", "location ID (required)")
	f.StringVar(&deliveryFlags.date, "date", "", "delivery date YYYY-MM-DD (default today)")
	f.StringArrayVar(&deliveryFlags.items, "item", nil, "line item productID:quantity:pricePerUnit (repeatable, required)")
	f.StringVar(&deliveryFlags.notes, "notes", "", "free-form notes")
	f.BoolVar(&deliveryFlags.paid, "paid", false, "mark the delivery as already paid")

	deliveryCmd.AddCommand(deliveryListCmd)
	deliveryCmd.AddCommand(deliveryAddCmd)
	deliveryCmd.AddCommand(deliveryRmCmd)
	deliveryCmd.AddCommand(deliveryPayCmd)
}

func runDeliveryList(cmd *cobra.Command, args []string) error {
	st := vendoraApp.Store()
	deliveries := st.Deliveries()
	if len(deliveries) == 0 {
		fmt.Println("No deliveries yet.")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tLOCATION\tITEMS\tTOTAL\tPAID")
	for _, d := range deliveries {
		paid := "no"
		if d.IsPaid {
			paid = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			d.ID, d.Date, st.LocationName(d.LocationID), len(d.Items), money(d.Total()), paid)
	}
	return w.Flush()
}

func runDeliveryAdd(cmd *cobra.Command, args []string) error {
	if deliveryFlags.location == "" {
		return errors.New("--location is required")
	}
	if len(deliveryFlags.items) == 0 {
		return errors.New("at least one --item is required")
	}
	items := make([]domain.DeliveryItem, 0, len(deliveryFlags.items))
	for _, raw := range deliveryFlags.items {
		productID, qty, price, err := parsePricedItem(raw)
		if err != nil {
			return err
		}
		items = append(items, domain.DeliveryItem{ProductID: productID, Quantity: qty, PricePerUnit: price})
	}
	date := deliveryFlags.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	st := vendoraApp.Store()
	d := domain.Delivery{
		ID:         deliveryFlags.id,
		LocationID: deliveryFlags.location,
		Date:       date,
		Items:      items,
		Notes:      deliveryFlags.notes,
		IsPaid:     deliveryFlags.paid,
	}
	if d.ID == "" {
		d.ID = st.GenerateID()
	}
	created, err := st.SaveDelivery(d)
	if err != nil {
		return err
	}
	fmt.Printf("Delivery %s: %s to %s, total %s\n", savedWord(created), d.ID, st.LocationName(d.LocationID), money(d.Total()))
	return nil
}

func runDeliveryRm(cmd *cobra.Command, args []string) error {
	if err := vendoraApp.Store().DeleteDelivery(args[0]); err != nil {
		return err
	}
	fmt.Printf("Delivery deleted: %s\n", args[0])
	return nil
}

func runDeliveryPay(cmd *cobra.Command, args []string) error {
	st := vendoraApp.Store()
	d, ok := st.DeliveryByID(args[0])
	if !ok {
		return errors.Errorf("delivery %s not found", args[0])
	}
	if d.IsPaid {
		fmt.Printf("Delivery %s is already paid.\n", d.ID)
		return nil
	}
	d.IsPaid = true
	if _, err := st.SaveDelivery(d); err != nil {
		return err
	}
	fmt.Printf("Delivery %s marked as paid.\n", d.ID)
	return nil
}
