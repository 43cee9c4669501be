package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// tournamentCmd represents the tournament command
var tournamentCmd = &cobra.Command{
	Use:   "tournament <tag>",
	Short: "Show a tournament",
	Long:  `Show a tournament including its status, capacity and the current standings.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTournament,
}

func init() {
	rootCmd.AddCommand(tournamentCmd)
}

func runTournament(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tournament, err := client.GetTournaments(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (#%s)\n", tournament.Name, tournament.Tag)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Status:  %s\n", tournament.Status)

	entry := "closed"
	if tournament.Open {
		entry = "open"
	}
	fmt.Printf("Entry:   %s\n", entry)

	fmt.Printf("Players: %d/%d", tournament.PlayerCount, tournament.MaxPlayers)
	if tournament.IsFull() {
		fmt.Printf(" [FULL]")
	}
	fmt.Println()

	if tournament.Creator != nil {
		fmt.Printf("Creator: %s (#%s)\n", tournament.Creator.Name, tournament.Creator.Tag)
	}
	if tournament.Description != "" {
		fmt.Printf("\n%s\n", tournament.Description)
	}

	if len(tournament.Members) > 0 {
		limit := min(len(tournament.Members), 10)
		fmt.Printf("\nStandings (top %d of %d):\n", limit, len(tournament.Members))
		for _, participant := range tournament.Members[:limit] {
			fmt.Printf("%3d. %s (#%s) with %d\n",
				participant.Rank, participant.Name, participant.Tag, participant.Score)
		}
	}

	return nil
}
