package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	historyQueries "github.com/felixgeelhaar/serendip/internal/history/application/queries"
)

var (
	historyLimit int
	summaryMonth string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show accepted suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		entries, err := app.ListHistoryHandler.Handle(cmd.Context(), historyQueries.ListHistoryQuery{
			UserID: app.CurrentUserID,
			Limit:  historyLimit,
		})
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No accepted suggestions yet.")
			return nil
		}

		fmt.Printf("\n  History\n")
		fmt.Println(strings.Repeat("-", 52))
		for _, entry := range entries {
			fmt.Printf("  %s  [%-10s] %s (%s)\n",
				entry.AcceptedAt.Format("Jan 02 15:04"),
				entry.Category,
				entry.Title,
				formatMinutes(entry.DurationMinutes),
			)
		}
		fmt.Println()
		return nil
	},
}

var historySummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Tally accepted suggestions per category for a month",
	Long: `Tally accepted suggestions per category for a month.

Examples:
  serendip history summary                  # current month
  serendip history summary --month 2026-07  # a specific month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		year, month, err := resolveMonth(summaryMonth)
		if err != nil {
			return err
		}

		summary, err := app.CategorySummaryHandler.Handle(cmd.Context(), historyQueries.CategorySummaryQuery{
			UserID: app.CurrentUserID,
			Year:   year,
			Month:  month,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n  %s %d: %d accepted\n", summary.Month, summary.Year, summary.Total)
		fmt.Println(strings.Repeat("-", 52))
		for _, count := range summary.Categories {
			fmt.Printf("  %-12s %3d\n", count.Category, count.Count)
		}
		fmt.Println()
		return nil
	},
}

func resolveMonth(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q, want YYYY-MM", value)
	}
	return parsed.Year(), parsed.Month(), nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "number of entries to show")
	historySummaryCmd.Flags().StringVar(&summaryMonth, "month", "", "month to summarize (YYYY-MM, default current)")
	historyCmd.AddCommand(historySummaryCmd)
	rootCmd.AddCommand(historyCmd)
}
