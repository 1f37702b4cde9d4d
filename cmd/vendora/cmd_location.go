package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/domain"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage point-of-sale locations",
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all locations",
	RunE:  runLocationList,
}

var locationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a location, or update one by passing --id",
	RunE:  runLocationAdd,
}

var locationRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationRm,
}

var locationFlags struct {
	id      string
	name    string
	address string
	contact string
	phone   string
	notes   string
}

func init() {
	f := locationAddCmd.Flags()
	f.StringVar(&locationFlags.id, "id", "", "location ID (set to update an existing record)")
	f.StringVar(&locationFlags.name, "name", "", "location name (required)")
	f.StringVar(&locationFlags.address, "address", "", "street address")
	f.StringVar(&locationFlags.contact, "contact", "", "contact person")
	f.StringVar(&locationFlags.phone, "phone", "", "contact phone")
	f.StringVar(&locationFlags.notes, "notes", "", "free-form notes")

	locationCmd.AddCommand(locationListCmd)
	locationCmd.AddCommand(locationAddCmd)
	locationCmd.AddCommand(locationRmCmd)
}

func runLocationList(cmd *cobra.Command, args []string) error {
	locations := vendoraApp.Store().Locations()
	if len(locations) == 0 {
		fmt.Println("No locations yet.")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tCONTACT\tPHONE")
	for _, l := range locations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Address, l.ContactName, l.ContactPhone)
	}
	return w.Flush()
}

func runLocationAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(locationFlags.name)
	if name == "" {
		return errors.New("--name is required")
	}
	st := vendoraApp.Store()
	loc := domain.Location{
		ID:           locationFlags.id,
		Name:         name,
		Address:      locationFlags.address,
		ContactName:  locationFlags.contact,
		ContactPhone: locationFlags.phone,
		Notes:        locationFlags.notes,
	}
	if loc.ID == "" {
		loc.ID = st.GenerateID()
	}
	created, err := st.SaveLocation(loc)
	if err != nil {
		return err
	}
	fmt.Printf("Location %s: %s (%s)\n", savedWord(created), loc.Name, loc.ID)
	return nil
}

func runLocationRm(cmd *cobra.Command, args []string) error {
	if err := vendoraApp.Store().DeleteLocation(args[0]); err != nil {
		return err
	}
	fmt.Printf("Location deleted: %s\n", args[0])
	return nil
}
