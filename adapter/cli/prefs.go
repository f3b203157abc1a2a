package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	preferenceCommands "github.com/felixgeelhaar/serendip/internal/preferences/application/commands"
	preferenceQueries "github.com/felixgeelhaar/serendip/internal/preferences/application/queries"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

var (
	prefsWorkdayHours string
	prefsRestDayHours string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences and learned weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		prefs, err := app.GetPreferencesHandler.Handle(cmd.Context(), preferenceQueries.GetPreferencesQuery{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n  Preferences for %s\n", prefs.UserID)
		fmt.Println(strings.Repeat("-", 52))
		fmt.Printf("  Minimum free time:  %d min\n", prefs.MinimumFreeMinutes)
		fmt.Printf("  Workday hours:      %02d:00 - %02d:00\n", prefs.WorkdayStartHour, prefs.WorkdayEndHour)
		fmt.Printf("  Rest day hours:     %02d:00 - %02d:00\n", prefs.RestDayStartHour, prefs.RestDayEndHour)
		fmt.Println("\n  Categories (selections, learned weight):")

		categories := append([]string(nil), prefs.Categories...)
		sort.SliceStable(categories, func(i, j int) bool {
			return prefs.LearnedWeights[categories[i]] > prefs.LearnedWeights[categories[j]]
		})
		for _, category := range categories {
			fmt.Printf("    %-12s %3d  %.3f\n",
				category,
				prefs.SelectionCounts[category],
				prefs.LearnedWeights[category],
			)
		}
		fmt.Println()
		return nil
	},
}

var prefsCategoriesCmd = &cobra.Command{
	Use:   "categories <category>...",
	Short: "Set the enabled suggestion categories",
	Long: `Set the enabled suggestion categories. Categories not listed are
disabled; their selection history is kept and comes back when
re-enabled.

Known categories: ` + knownCategories() + `.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		err := app.UpdatePreferencesHandler.Handle(cmd.Context(), preferenceCommands.UpdatePreferencesCommand{
			UserID:     app.CurrentUserID,
			Categories: args,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Enabled categories: %s\n", strings.Join(args, ", "))
		return nil
	},
}

var prefsMinTimeCmd = &cobra.Command{
	Use:   "min-time <minutes>",
	Short: "Set the minimum slot length worth suggesting for",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid minutes %q", args[0])
		}

		err = app.UpdatePreferencesHandler.Handle(cmd.Context(), preferenceCommands.UpdatePreferencesCommand{
			UserID:             app.CurrentUserID,
			MinimumFreeMinutes: &minutes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Minimum free time set to %d min\n", minutes)
		return nil
	},
}

var prefsHoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Set active hours for workdays and rest days",
	Long: `Set the hours inside which free slots are searched,
as start-end hour pairs.

Examples:
  serendip prefs hours --workday 8-20
  serendip prefs hours --restday 10-22
  serendip prefs hours --workday 9-18 --restday 10-23`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		update := preferenceCommands.UpdatePreferencesCommand{UserID: app.CurrentUserID}
		changed := false

		if prefsWorkdayHours != "" {
			start, end, err := parseHourRange(prefsWorkdayHours)
			if err != nil {
				return fmt.Errorf("invalid --workday: %w", err)
			}
			update.WorkdayStartHour, update.WorkdayEndHour = &start, &end
			changed = true
		}
		if prefsRestDayHours != "" {
			start, end, err := parseHourRange(prefsRestDayHours)
			if err != nil {
				return fmt.Errorf("invalid --restday: %w", err)
			}
			update.RestDayStartHour, update.RestDayEndHour = &start, &end
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change, pass --workday and/or --restday")
		}

		if err := app.UpdatePreferencesHandler.Handle(cmd.Context(), update); err != nil {
			return err
		}
		fmt.Println("Active hours updated")
		return nil
	},
}

var prefsResetLearningCmd = &cobra.Command{
	Use:   "reset-learning",
	Short: "Forget all learned category weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		err := app.ResetLearningHandler.Handle(cmd.Context(), preferenceCommands.ResetLearningCommand{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return err
		}
		fmt.Println("Learning reset, all categories weigh the same again")
		return nil
	},
}

func parseHourRange(value string) (int, int, error) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want START-END, got %q", value)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start hour %q", parts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end hour %q", parts[1])
	}
	return start, end, nil
}

func knownCategories() string {
	names := make([]string, 0)
	for _, c := range suggestionsDomain.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func init() {
	prefsHoursCmd.Flags().StringVar(&prefsWorkdayHours, "workday", "", "workday active hours, e.g. 8-20")
	prefsHoursCmd.Flags().StringVar(&prefsRestDayHours, "restday", "", "rest day active hours, e.g. 10-22")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsCategoriesCmd)
	prefsCmd.AddCommand(prefsMinTimeCmd)
	prefsCmd.AddCommand(prefsHoursCmd)
	prefsCmd.AddCommand(prefsResetLearningCmd)
	rootCmd.AddCommand(prefsCmd)
}
