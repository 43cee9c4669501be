package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// popularCmd represents the popular command
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most requested clans, players and tournaments",
	Long:  `Show the resources most requested through the API, ranked by request volume.`,
}

// popularClansCmd represents the popular clans command
var popularClansCmd = &cobra.Command{
	Use:   "clans",
	Short: "Show the most requested clans",
	Args:  cobra.NoArgs,
	RunE:  runPopularClans,
}

// popularPlayersCmd represents the popular players command
var popularPlayersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show the most requested players",
	Args:  cobra.NoArgs,
	RunE:  runPopularPlayers,
}

// popularTournamentsCmd represents the popular tournaments command
var popularTournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Show the most requested tournaments",
	Args:  cobra.NoArgs,
	RunE:  runPopularTournaments,
}

func init() {
	rootCmd.AddCommand(popularCmd)
	popularCmd.AddCommand(popularClansCmd)
	popularCmd.AddCommand(popularPlayersCmd)
	popularCmd.AddCommand(popularTournamentsCmd)
}

func runPopularClans(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	clans, err := client.GetPopularClans(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nPopular clans (%d):\n", len(clans))
	for i, clan := range clans {
		fmt.Printf("%3d. %s (#%s)\n", i+1, clan.Name, clan.Tag)
		fmt.Printf("     Score: %d | Members: %d/50 | %.1f requests/day\n",
			clan.Score, clan.MemberCount, clan.Popularity.HitsPerDayAvg)
	}

	return nil
}

func runPopularPlayers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	players, err := client.GetPopularPlayers(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nPopular players (%d):\n", len(players))
	for i, player := range players {
		fmt.Printf("%3d. %s (#%s)\n", i+1, player.Name, player.Tag)
		fmt.Printf("     Trophies: %d | %.1f requests/day\n",
			player.Trophies, player.Popularity.HitsPerDayAvg)
	}

	return nil
}

func runPopularTournaments(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tournaments, err := client.GetPopularTournaments(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nPopular tournaments (%d):\n", len(tournaments))
	for i, tournament := range tournaments {
		status := tournament.Status
		if tournament.Open {
			status += ", open"
		}
		fmt.Printf("%3d. %s (#%s)\n", i+1, tournament.Name, tournament.Tag)
		fmt.Printf("     Players: %d/%d | %s | %.1f requests/day\n",
			tournament.PlayerCount, tournament.MaxPlayers, status, tournament.Popularity.HitsPerDayAvg)
	}

	return nil
}
