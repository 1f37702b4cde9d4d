package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vendorahq/vendora/internal/domain"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductList,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product, or update one by passing --id",
	RunE:  runProductAdd,
}

var productRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductRm,
}

var productCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct product categories in use",
	RunE:  runProductCategories,
}

var productFlags struct {
	id          string
	name        string
	category    string
	cost        float64
	wholesale   float64
	retail      float64
	description string
	imageURL    string
}

func init() {
	f := productAddCmd.Flags()
	f.StringVar(&productFlags.id, "id", "", "product ID (set to update an existing record)")
	f.StringVar(&productFlags.name, "name", "", "product name (required)")
	f.StringVar(&productFlags.category, "category", "", "category label")
	f.Float64Var(&productFlags.cost, "cost", 0, "cost price")
	f.Float64Var(&productFlags.wholesale, "wholesale", 0, "wholesale price")
	f.Float64Var(&productFlags.retail, "retail", 0, "suggested retail price")
	f.StringVar(&productFlags.description, "description", "", "description")
	f.StringVar(&productFlags.imageURL, "image-url", "", "image URL")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productRmCmd)
	productCmd.AddCommand(productCategoriesCmd)
}

func runProductList(cmd *cobra.Command, args []string) error {
	products := vendoraApp.Store().Products()
	if len(products) == 0 {
		fmt.Println("No products yet.")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOST\tWHOLESALE\tRETAIL")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category,
			money(p.CostPrice), money(p.WholesalePrice), money(p.SuggestedRetailPrice))
	}
	return w.Flush()
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(productFlags.name)
	if name == "" {
		return errors.New("--name is required")
	}
	st := vendoraApp.Store()
	p := domain.Product{
		ID:                   productFlags.id,
		Name:                 name,
		Category:             productFlags.category,
		CostPrice:            productFlags.cost,
		WholesalePrice:       productFlags.wholesale,
		SuggestedRetailPrice: productFlags.retail,
		Description:          productFlags.description,
		ImageURL:             productFlags.imageURL,
	}
	if p.ID == "" {
		p.ID = st.GenerateID()
	}
	created, err := st.SaveProduct(p)
	if err != nil {
		return err
	}
	fmt.Printf("Product %s: %s (%s)\n", savedWord(created), p.Name, p.ID)
	return nil
}

func runProductRm(cmd *cobra.Command, args []string) error {
	if err := vendoraApp.Store().DeleteProduct(args[0]); err != nil {
		return err
	}
	fmt.Printf("Product deleted: %s\n", args[0])
	return nil
}

func runProductCategories(cmd *cobra.Command, args []string) error {
	for _, c := range vendoraApp.Store().ProductCategories() {
		fmt.Println(c)
	}
	return nil
}
