package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"aviationops/config"
	"aviationops/services"
)

// Deps are what the quote commands need from the host binary. Config is
// loaded lazily so flags parsed by the root command are honoured.
type Deps struct {
	Catalog   *services.Catalog
	Clipboard services.Clipboard
	Config    func() (*config.Config, error)
}

// NewQuoteCommand returns the "quote" command with its subcommands.
func NewQuoteCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Build airport service quotes from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if deps.Config == nil {
				return nil
			}
			cfg, err := deps.Config()
			if err != nil {
				return err
			}
			return config.SetupLogging(cfg.Logging)
		},
	}

	cmd.AddCommand(pricesCmd(deps))
	cmd.AddCommand(receiptCmd(deps))
	return cmd
}

func pricesCmd(deps Deps) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "List the price table",
		Long:  `List every catalog item grouped by category, or one category with --category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := deps.Catalog.Categories()
			if category != "" {
				found := false
				for _, c := range cats {
					if strings.EqualFold(c, category) {
						cats, found = []string{c}, true
						break
					}
				}
				if !found {
					return fmt.Errorf("unknown category %q", category)
				}
			}

			out := cmd.OutOrStdout()
			for i, c := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, titleStyle.Render(c))

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				// tabwriter counts escape codes as width, so the header stays unstyled.
				fmt.Fprintln(w, "ID\tSERVIÇO\tUNIDADE\tPREÇO")
				for _, it := range deps.Catalog.ByCategory(c) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.Service, it.Unit, services.FormatUSD(it.Price))
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if c == services.CategoryParking {
					fmt.Fprintln(out, subtleStyle.Render("+ 15% Taxa de Serviço e 16,62% de Impostos Federais"))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list this category")
	return cmd
}

func receiptCmd(deps Deps) *cobra.Command {
	var (
		items       []string
		info        services.ClientInfo
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "receipt",
		Short:   "Print the plain-text quote for the given items",
		Example: `  quote receipt --item 1=500 --item 7=2 --name "João" --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := buildSelection(deps.Catalog, items)
			if err != nil {
				return err
			}
			selected := sel.Items()
			slog.Debug("rendering receipt", "items", len(selected), "total", sel.Totals().Total)

			number := services.GenerateQuoteNumber(time.Now())
			var text string
			if toClipboard {
				if deps.Clipboard == nil {
					return services.ErrClipboardUnsupported
				}
				text, err = services.CopyReceipt(deps.Clipboard, info, selected, number)
				if err != nil {
					return fmt.Errorf("copy receipt: %w", err)
				}
			} else {
				text = services.RenderReceipt(info, selected, sel.Totals(), number)
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if toClipboard {
				fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render("Cotação copiada para a área de transferência"))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "catalog item as id or id=quantity (repeatable)")
	cmd.Flags().StringVar(&info.Name, "name", "", "client name")
	cmd.Flags().StringVar(&info.Company, "company", "", "client company")
	cmd.Flags().StringVar(&info.Aircraft, "aircraft", "", "aircraft type")
	cmd.Flags().StringVar(&info.Registration, "registration", "", "aircraft registration")
	cmd.Flags().StringVar(&info.Date, "date", "", "quote date (yyyy-mm-dd)")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "also copy the receipt to the system clipboard")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

// buildSelection turns "id" or "id=qty" arguments into a selection. Repeated
// ids add up.
func buildSelection(catalog *services.Catalog, specs []string) (*services.Selection, error) {
	sel := services.NewSelection()
	for _, spec := range specs {
		id, qtyStr, hasQty := strings.Cut(strings.TrimSpace(spec), "=")
		qty := 1
		if hasQty {
			n, err := strconv.Atoi(strings.TrimSpace(qtyStr))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid quantity in %q: must be a whole number of at least 1", spec)
			}
			qty = n
		}

		item, ok := catalog.Find(strings.TrimSpace(id))
		if !ok {
			return nil, fmt.Errorf("unknown item %q", id)
		}
		if sel.IsSelected(item.ID) {
			sel.UpdateQuantity(item.ID, qty)
			continue
		}
		sel.Toggle(item)
		sel.UpdateQuantity(item.ID, qty-1)
	}
	return sel, nil
}
