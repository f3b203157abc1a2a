package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	schedulingQueries "github.com/felixgeelhaar/serendip/internal/scheduling/application/queries"
)

var (
	slotsFrom    string
	slotsDays    int
	slotsMinimum int
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List free time slots",
	Long: `Find the free gaps between calendar events inside your active
hours.

Examples:
  serendip slots                    # today
  serendip slots --days 3           # today through the day after tomorrow
  serendip slots --from 2026-09-05  # a specific day
  serendip slots --min 60           # only gaps of an hour or more`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		start, err := resolveFromDate(slotsFrom)
		if err != nil {
			return err
		}
		days := slotsDays
		if days < 1 {
			days = 1
		}

		slots, err := app.FindFreeSlotsHandler.Handle(cmd.Context(), schedulingQueries.FindFreeSlotsQuery{
			UserID:         app.CurrentUserID,
			RangeStart:     start,
			RangeEnd:       start.AddDate(0, 0, days),
			MinimumMinutes: slotsMinimum,
		})
		if err != nil {
			return err
		}

		if len(slots) == 0 {
			fmt.Println("No free slots found.")
			return nil
		}

		fmt.Printf("\n  Free slots\n")
		fmt.Println(strings.Repeat("-", 52))
		for _, slot := range slots {
			fmt.Printf("  %s  %s - %s  (%s)\n",
				slot.Start.Format("Mon Jan 02"),
				slot.Start.Format("15:04"),
				slot.End.Format("15:04"),
				formatMinutes(slot.DurationMinutes),
			)
		}
		fmt.Println()
		return nil
	},
}

func resolveFromDate(from string) (time.Time, error) {
	if from == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --from date %q, want YYYY-MM-DD", from)
	}
	return start, nil
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

func init() {
	slotsCmd.Flags().StringVar(&slotsFrom, "from", "", "start date (YYYY-MM-DD, default today)")
	slotsCmd.Flags().IntVar(&slotsDays, "days", 1, "number of days to scan")
	slotsCmd.Flags().IntVar(&slotsMinimum, "min", 0, "minimum slot length in minutes (default from preferences)")
	rootCmd.AddCommand(slotsCmd)
}
