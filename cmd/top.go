package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var location string

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show clan and player leaderboards",
}

// topClansCmd represents the top clans command
var topClansCmd = &cobra.Command{
	Use:   "clans",
	Short: "Show the clan leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runTopClans,
}

// topPlayersCmd represents the top players command
var topPlayersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show the player leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runTopPlayers,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.AddCommand(topClansCmd)
	topCmd.AddCommand(topPlayersCmd)

	topCmd.PersistentFlags().StringVarP(&location, "location", "l", "", "restrict the leaderboard to a location code (e.g. EU, US)")
}

func runTopClans(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	clans, err := client.GetTopClansByLocation(ctx, location)
	if err != nil {
		return err
	}

	printLeaderboardHeader("clans", location)
	for _, clan := range clans {
		fmt.Printf("%3d. %s (#%s)%s\n", clan.Rank, clan.Name, clan.Tag, rankChange(clan.Rank, clan.PreviousRank))
		fmt.Printf("     Score: %d | Members: %d/50\n", clan.Score, clan.MemberCount)
	}

	return nil
}

func runTopPlayers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	players, err := client.GetTopPlayersByLocation(ctx, location)
	if err != nil {
		return err
	}

	printLeaderboardHeader("players", location)
	for _, player := range players {
		fmt.Printf("%3d. %s (#%s)%s\n", player.Rank, player.Name, player.Tag, rankChange(player.Rank, player.PreviousRank))
		fmt.Printf("     Trophies: %d | Level: %d", player.Trophies, player.ExpLevel)
		if player.Clan != nil {
			fmt.Printf(" | Clan: %s", player.Clan.Name)
		}
		fmt.Println()
	}

	return nil
}

func printLeaderboardHeader(kind, location string) {
	if location == "" {
		fmt.Printf("\nTop %s worldwide:\n", kind)
		return
	}
	fmt.Printf("\nTop %s in %s:\n", kind, location)
}

// rankChange renders the movement since the previous ranking snapshot.
func rankChange(rank, previous int) string {
	switch {
	case previous <= 0 || previous == rank:
		return ""
	case rank < previous:
		return fmt.Sprintf(" (up %d)", previous-rank)
	default:
		return fmt.Sprintf(" (down %d)", rank-previous)
	}
}
