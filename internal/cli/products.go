package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/poolshark1904/gestao-produtos/internal/app"
	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored products",
		Args:  cobra.NoArgs,
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app.Application) error {
			products := a.Store.Products().Filter(id)
			if len(products) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No products.")
				return nil
			}
			return printProducts(cmd.OutOrStdout(), products)
		}),
	}

	cmd.Flags().StringVar(&id, "id", "", "Show only the product with this id")
	return cmd
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var title, description, price, quantity string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product and its QR code",
		Args:  cobra.NoArgs,
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app.Application) error {
			draft, err := domain.ParseDraft(title, description, price, quantity)
			if err != nil {
				return fmt.Errorf("create product: %w", err)
			}

			product, err := a.Store.Create(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("create product: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Product created successfully!")
			printProduct(out, product)
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "Name of the product")
	cmd.Flags().StringVar(&description, "description", "", "A brief description of the product")
	cmd.Flags().StringVar(&price, "price", "", "Price, in euros")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Initial inventory amount")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	var title, description, price, quantity string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit the fields of an existing product",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app.Application) error {
			edited, ok := a.Store.Get(args[0])
			if !ok {
				return fmt.Errorf("edit product: product %s not found", args[0])
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				edited.Title = title
			}
			if flags.Changed("description") {
				edited.Description = description
			}
			if flags.Changed("price") {
				p, err := domain.ParsePrice(price)
				if err != nil {
					return fmt.Errorf("edit product: %w", err)
				}
				edited.Price = p
			}
			if flags.Changed("quantity") {
				q, err := domain.ParseQuantity(quantity)
				if err != nil {
					return fmt.Errorf("edit product: %w", err)
				}
				edited.Quantity = q
			}

			if _, err := a.Store.Update(cmd.Context(), edited); err != nil {
				return fmt.Errorf("edit product: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Product edited successfully!")
			printProduct(out, edited)
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&price, "price", "", "New price, in euros")
	cmd.Flags().StringVar(&quantity, "quantity", "", "New inventory amount")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app.Application) error {
			products, err := a.Store.Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s, %d product(s) left.\n", args[0], len(products))
			return nil
		}),
	}
}

func printProducts(w io.Writer, products domain.ProductList) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQUANTITY\tDESCRIPTION")
	for _, p := range products {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%s\n", p.ID, p.Title, p.Price, p.Quantity, p.Description)
	}
	return tw.Flush()
}

func printProduct(w io.Writer, p domain.Product) {
	_, _ = fmt.Fprintf(w, "  id:          %s\n", p.ID)
	_, _ = fmt.Fprintf(w, "  title:       %s\n", p.Title)
	_, _ = fmt.Fprintf(w, "  description: %s\n", p.Description)
	_, _ = fmt.Fprintf(w, "  price:       %.2f\n", p.Price)
	_, _ = fmt.Fprintf(w, "  quantity:    %d\n", p.Quantity)
	_, _ = fmt.Fprintf(w, "  qr payload:  %s\n", p.QRCodeText)
	_, _ = fmt.Fprintf(w, "  qr image:    %s\n", p.QRCode)
}
