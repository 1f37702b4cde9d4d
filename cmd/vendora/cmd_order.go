package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/domain"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage purchase orders",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE:  runOrderList,
}

var orderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an order, or update one by passing --id",
	RunE:  runOrderAdd,
}

var orderRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderRm,
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <id> <pending|delivered|cancelled>",
	Short: "Change an order's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrderStatus,
}

var orderFlags struct {
	id       string
	location string
	date     string
	items    []string
	status   string
	notes    string
}

func init() {
	f := orderAddCmd.Flags()
	f.StringVar(&orderFlags.id, "id", "", "order ID (set to update an existing record)")
	f.StringVar(&orderFlags.location, "location", "", "location ID (required)")
	f.StringVar(&orderFlags.date, "date", "", "order date YYYY-MM-DD (default today)")
	f.StringArrayVar(&orderFlags.items, "item", nil, "line item productID:quantity (repeatable, required)")
	f.StringVar(&orderFlags.status, "status", domain.OrderPending, "order status: pending, delivered or cancelled")
	f.StringVar(&orderFlags.notes, "notes", "", "free-form notes")

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderRmCmd)
	orderCmd.AddCommand(orderStatusCmd)
}

func runOrderList(cmd *cobra.Command, args []string) error {
	st := vendoraApp.Store()
	orders := st.Orders()
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tLOCATION\tITEMS\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			o.ID, o.Date, st.LocationName(o.LocationID), len(o.Items), o.Status)
	}
	return w.Flush()
}

func runOrderAdd(cmd *cobra.Command, args []string) error {
	if orderFlags.location == "" {
		return errors.New("--location is required")
	}
	if len(orderFlags.items) == 0 {
		return errors.New("at least one --item is required")
	}
	if !domain.ValidOrderStatus(orderFlags.status) {
		return errors.Errorf("invalid status %q", orderFlags.status)
	}
	items := make([]domain.OrderItem, 0, len(orderFlags.items))
	for _, raw := range orderFlags.items {
		productID, qty, err := parseQtyItem(raw)
		if err != nil {
			return err
		}
		items = append(items, domain.OrderItem{ProductID: productID, Quantity: qty})
	}
	date := orderFlags.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	st := vendoraApp.Store()
	o := domain.Order{
		ID:         orderFlags.id,
		LocationID: orderFlags.location,
		Date:       date,
		Items:      items,
		Status:     orderFlags.status,
		Notes:      orderFlags.notes,
	}
	if o.ID == "" {
		o.ID = st.GenerateID()
	}
	created, err := st.SaveOrder(o)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s: %s for %s (%s)\n", savedWord(created), o.ID, st.LocationName(o.LocationID), o.Status)
	return nil
}

func runOrderRm(cmd *cobra.Command, args []string) error {
	if err := vendoraApp.Store().DeleteOrder(args[0]); err != nil {
		return err
	}
	fmt.Printf("Order deleted: %s\n", args[0])
	return nil
}

func runOrderStatus(cmd *cobra.Command, args []string) error {
	id, status := args[0], args[1]
	if !domain.ValidOrderStatus(status) {
		return errors.Errorf("invalid status %q", status)
	}
	st := vendoraApp.Store()
	o, ok := st.OrderByID(id)
	if !ok {
		return errors.Errorf("order %s not found", id)
	}
	o.Status = status
	if _, err := st.SaveOrder(o); err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s.\n", o.ID, o.Status)
	return nil
}
