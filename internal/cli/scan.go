package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poolshark1904/gestao-produtos/internal/app"
	"github.com/poolshark1904/gestao-produtos/internal/core/service"
)

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <payload>",
		Short: "Resolve a decoded QR payload to a stored product",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app.Application) error {
			session := service.NewScanSession()
			if err := session.Begin(); err != nil {
				return err
			}

			res, err := session.Complete(args[0], a.Store.Products())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, res.Prompt())
			if res.Matched {
				printProduct(out, res.Product)
				_, _ = fmt.Fprintf(out, "Edit with: inventory edit %s\n", res.Product.ID)
			} else {
				_, _ = fmt.Fprintln(out, "Create with: inventory create --title ... --price ... --quantity ...")
			}
			return nil
		}),
	}
}
