package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full dataset as JSON",
	Long:  "Writes every collection as a single JSON document. Pass a file path, use --stdout, or let it pick a dated file name.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the full dataset from a JSON export",
	Long:  "Reads a previously exported document and replaces everything in the store with it. Pass - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportToStdout bool

func init() {
	exportCmd.Flags().BoolVar(&exportToStdout, "stdout", false, "write the export to stdout instead of a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := vendoraApp.Store().Export()
	if err != nil {
		return err
	}
	if exportToStdout {
		fmt.Println(data)
		return nil
	}
	path := fmt.Sprintf("vendora-export-%s.json", time.Now().Format("2006-01-02"))
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return errors.Wrap(err, "write export file")
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return errors.Wrap(err, "read import data")
	}
	if err := vendoraApp.Store().Import(string(data)); err != nil {
		return err
	}
	doc := vendoraApp.Store().Snapshot()
	fmt.Printf("Imported %d locations, %d products, %d deliveries, %d orders, %d sales.\n",
		len(doc.Locations), len(doc.Products), len(doc.Deliveries), len(doc.Orders), len(doc.Sales))
	return nil
}
