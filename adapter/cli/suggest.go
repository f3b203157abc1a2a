package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	schedulingQueries "github.com/felixgeelhaar/serendip/internal/scheduling/application/queries"
	suggestionCommands "github.com/felixgeelhaar/serendip/internal/suggestions/application/commands"
	suggestionQueries "github.com/felixgeelhaar/serendip/internal/suggestions/application/queries"
)

var (
	suggestStart        string
	suggestEnd          string
	suggestAccept       bool
	suggestAlternatives bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest an activity for a free slot",
	Long: `Pick a free slot and propose an activity for it, weighted by
your history, the weather, and the time of day.

Without --start/--end the next free slot of the day is used.

Examples:
  serendip suggest
  serendip suggest --start 14:00 --end 16:00
  serendip suggest --alternatives
  serendip suggest --accept`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		start, end, err := resolveSlot(cmd, app)
		if err != nil {
			return err
		}

		suggestion, err := app.GenerateSuggestionHandler.Handle(cmd.Context(), suggestionQueries.GenerateSuggestionQuery{
			UserID:    app.CurrentUserID,
			SlotStart: start,
			SlotEnd:   end,
			Location:  app.WeatherLocation,
		})
		if err != nil {
			return err
		}

		printSuggestion(suggestion)

		if suggestAlternatives {
			alternatives, err := app.ListAlternativesHandler.Handle(cmd.Context(), suggestionQueries.ListAlternativesQuery{
				UserID:    app.CurrentUserID,
				SlotStart: start,
				SlotEnd:   end,
				Location:  app.WeatherLocation,
				Excluding: suggestion.Category,
			})
			if err != nil {
				return err
			}
			if len(alternatives) > 0 {
				fmt.Println("  Alternatives:")
				for _, alt := range alternatives {
					fmt.Printf("    [%s] %s\n", alt.Category, alt.Title)
				}
				fmt.Println()
			}
		}

		if suggestAccept {
			err := app.AcceptSuggestionHandler.Handle(cmd.Context(), suggestionCommands.AcceptSuggestionCommand{
				UserID:         app.CurrentUserID,
				SuggestionID:   suggestion.ID,
				Category:       suggestion.Category,
				Title:          suggestion.Title,
				Description:    suggestion.Description,
				SlotStart:      suggestion.SlotStart,
				SlotEnd:        suggestion.SlotEnd,
				WeatherContext: suggestion.WeatherContext,
			})
			if err != nil {
				return err
			}
			fmt.Println("  Accepted. Enjoy!")
			fmt.Println()
		}

		return nil
	},
}

func resolveSlot(cmd *cobra.Command, app *App) (time.Time, time.Time, error) {
	if suggestStart != "" || suggestEnd != "" {
		start, err := parseClock(suggestStart)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
		end, err := parseClock(suggestEnd)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
		return start, end, nil
	}

	now := time.Now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	slots, err := app.FindFreeSlotsHandler.Handle(cmd.Context(), schedulingQueries.FindFreeSlotsQuery{
		UserID:     app.CurrentUserID,
		RangeStart: now,
		RangeEnd:   endOfDay,
	})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if len(slots) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("no free slot left today, try --start and --end")
	}
	return slots[0].Start, slots[0].End, nil
}

// parseClock accepts either HH:MM for today or a full RFC3339 timestamp.
func parseClock(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing value")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	clock, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("want HH:MM or RFC3339, got %q", value)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

func printSuggestion(s *suggestionQueries.SuggestionDTO) {
	fmt.Printf("\n  %s\n", s.Title)
	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("  Category:  %s\n", s.CategoryDisplay)
	fmt.Printf("  When:      %s - %s (%s)\n",
		s.SlotStart.Format("Mon Jan 02 15:04"),
		s.SlotEnd.Format("15:04"),
		formatMinutes(s.DurationMinutes),
	)
	if s.Description != "" {
		fmt.Printf("  What:      %s\n", s.Description)
	}
	if s.WeatherContext != "" {
		fmt.Printf("  Weather:   %s\n", s.WeatherContext)
	}
	fmt.Println()
}

func init() {
	suggestCmd.Flags().StringVar(&suggestStart, "start", "", "slot start (HH:MM or RFC3339)")
	suggestCmd.Flags().StringVar(&suggestEnd, "end", "", "slot end (HH:MM or RFC3339)")
	suggestCmd.Flags().BoolVar(&suggestAccept, "accept", false, "accept the suggestion immediately")
	suggestCmd.Flags().BoolVar(&suggestAlternatives, "alternatives", false, "also list one suggestion per other category")
	rootCmd.AddCommand(suggestCmd)
}
