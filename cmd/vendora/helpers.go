package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// parseQtyItem parses a repeatable --item value of the form
// "productID:quantity" (orders capture no price).
func parseQtyItem(raw string) (productID string, qty int, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", 0, errors.Errorf("item %q: want productID:quantity", raw)
	}
	qty, err = strconv.Atoi(parts[1])
	if err != nil || qty <= 0 {
		return "", 0, errors.Errorf("item %q: quantity must be a positive integer", raw)
	}
	if parts[0] == "" {
		return "", 0, errors.Errorf("item %q: product ID is required", raw)
	}
	return parts[0], qty, nil
}

// parsePricedItem parses a repeatable --item value of the form
// "productID:quantity:pricePerUnit" for deliveries and sales.
func parsePricedItem(raw string) (productID string, qty int, price float64, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return "", 0, 0, errors.Errorf("item %q: want productID:quantity:pricePerUnit", raw)
	}
	qty, err = strconv.Atoi(parts[1])
	if err != nil || qty <= 0 {
		return "", 0, 0, errors.Errorf("item %q: quantity must be a positive integer", raw)
	}
	price, err = strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", 0, 0, errors.Errorf("item %q: invalid price", raw)
	}
	if parts[0] == "" {
		return "", 0, 0, errors.Errorf("item %q: product ID is required", raw)
	}
	return parts[0], qty, price, nil
}

// newTable returns a tabwriter on stdout; call Flush when done.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func savedWord(created bool) string {
	if created {
		return "added"
	}
	return "updated"
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
