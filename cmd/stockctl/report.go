package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tair/stockwatch/internal/inventory"
	"github.com/tair/stockwatch/internal/inventory/reorder"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/internal/inventory/usecase/query"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusStyles = map[stock.Status]lipgloss.Style{
		stock.StatusSafe:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		stock.StatusWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		stock.StatusUrgent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
)

func reportCmd() *cobra.Command {
	var q query.ListItemsQuery

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print today's stock outlook for every item",
		Long: `Evaluate every item for today and print its daily requirement, stock
duration, status and order advice. Search, status filter and sort are
applied in that order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			handler, err := inventory.InitializeListItemsHandler(store.Repo, cfg)
			if err != nil {
				return err
			}

			res, err := handler.Handle(ctx, q)
			if err != nil {
				return err
			}

			return renderReport(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&q.Search, "search", "", "case-insensitive substring of the item name")
	cmd.Flags().StringVar(&q.Status, "status", string(stock.FilterAll), "ALL, SAFE, WARNING or URGENT")
	cmd.Flags().StringVar(&q.Sort, "sort", string(stock.SortDefault), "default, stock_asc, stock_desc, duration_asc, duration_desc, lead_time_asc or lead_time_desc")

	return cmd
}

func renderReport(out io.Writer, res *query.ListItemsResult) error {
	fmt.Fprintln(out, titleStyle.Render("Stock report "+res.Today.Format("2006-01-02")))
	fmt.Fprintln(out)

	switch {
	case res.IsInventoryEmpty():
		fmt.Fprintln(out, mutedStyle.Render("No items in stock yet. Run 'stockctl seed' to load sample data."))
		return nil
	case res.NoMatches():
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("No items match the current filters (%d items in stock).", res.TotalCount)))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headers := []string{"ID", "Item", "Stock", "Daily", "Days left", "Lead", "Status", "Empty on", "Advice"}
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))

	for _, a := range res.Items {
		eval := a.Evaluation
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			a.Item.ID,
			a.Item.Name,
			reorder.FormatQuantity(a.Item.CurrentStock), a.Item.Unit,
			reorder.FormatQuantity(eval.DailyRequirement),
			formatDuration(eval),
			a.Item.LeadTime,
			statusStyles[eval.Status].Render(string(eval.Status)),
			formatEmptyDate(a),
			eval.Recommendation,
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	counts := stock.CountByStatus(res.Items)
	fmt.Fprintln(out)
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d of %d items shown: %d safe, %d warning, %d urgent",
		len(res.Items), res.TotalCount,
		counts[stock.StatusSafe], counts[stock.StatusWarning], counts[stock.StatusUrgent])))

	return nil
}

func formatDuration(eval stock.Evaluation) string {
	if !eval.DurationBounded() {
		return "∞"
	}
	return strconv.FormatFloat(eval.StockDurationDays, 'f', 1, 64)
}

func formatEmptyDate(a stock.Assessed) string {
	if a.PredictedEmptyDate == nil {
		return "-"
	}
	return a.PredictedEmptyDate.Format("2006-01-02")
}
