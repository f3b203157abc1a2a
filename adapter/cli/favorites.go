package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	favoriteCategory    string
	favoriteTitle       string
	favoriteDescription string
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Short:   "Manage saved activities",
	Aliases: []string{"fav"},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save an activity as a favorite",
	Long: `Save an activity as a favorite.

Examples:
  serendip favorites add --category cafe --title "Espresso at Krume"
  serendip favorites add --category walk --title "Canal loop" --description "45 minutes along the water"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		favorite, err := app.FavoritesService.Add(cmd.Context(), app.CurrentUserID, favoriteCategory, favoriteTitle, favoriteDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s (%s)\n", favorite.Title, favorite.ID)
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid favorite id %q", args[0])
		}
		if err := app.FavoritesService.Remove(cmd.Context(), app.CurrentUserID, id); err != nil {
			return err
		}
		fmt.Println("Removed")
		return nil
	},
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("not initialized, check your configuration")
		}

		favorites, err := app.FavoritesService.List(cmd.Context(), app.CurrentUserID)
		if err != nil {
			return err
		}

		if len(favorites) == 0 {
			fmt.Println("No favorites saved yet.")
			return nil
		}

		fmt.Printf("\n  Favorites\n")
		fmt.Println(strings.Repeat("-", 52))
		for _, favorite := range favorites {
			fmt.Printf("  [%-10s] %s\n", favorite.Category, favorite.Title)
			if favorite.Description != "" {
				fmt.Printf("               %s\n", favorite.Description)
			}
			fmt.Printf("               id: %s\n", favorite.ID)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	favoritesAddCmd.Flags().StringVar(&favoriteCategory, "category", "", "suggestion category")
	favoritesAddCmd.Flags().StringVar(&favoriteTitle, "title", "", "favorite title")
	favoritesAddCmd.Flags().StringVar(&favoriteDescription, "description", "", "optional description")
	_ = favoritesAddCmd.MarkFlagRequired("category")
	_ = favoritesAddCmd.MarkFlagRequired("title")

	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	rootCmd.AddCommand(favoritesCmd)
}
