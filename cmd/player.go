package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// playerCmd represents the player command
var playerCmd = &cobra.Command{
	Use:   "player <tag>",
	Short: "Show a player profile",
	Long:  `Show a player profile including trophies, clan membership, game statistics and the chest cycle.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	rootCmd.AddCommand(playerCmd)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	profile, err := client.GetProfileByTag(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (#%s)\n", profile.Name, profile.Tag)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Level:        %d\n", profile.Stats.Level)
	fmt.Printf("Arena:        %s\n", profile.Arena.Name)
	fmt.Printf("Trophies:     %d (best %d)\n", profile.Trophies, profile.Stats.MaxTrophies)
	if profile.GlobalRank > 0 {
		fmt.Printf("Global Rank:  %d\n", profile.GlobalRank)
	}

	if profile.Clan != nil {
		fmt.Printf("Clan:         %s (#%s) as %s\n", profile.Clan.Name, profile.Clan.Tag, profile.Clan.Role)
		fmt.Printf("Donations:    %d given / %d received this week\n",
			profile.Clan.Donations, profile.Clan.DonationsReceived)
	} else {
		fmt.Printf("Clan:         none\n")
	}

	fmt.Printf("\nGames:        %d (W %d / L %d / D %d)\n",
		profile.Games.Total, profile.Games.Wins, profile.Games.Losses, profile.Games.Draws)
	fmt.Printf("Win Rate:     %.1f%%\n", profile.Games.WinRate())
	if profile.Games.CurrentWinStreak > 0 {
		fmt.Printf("Win Streak:   %d\n", profile.Games.CurrentWinStreak)
	}
	fmt.Printf("Three Crowns: %d\n", profile.Stats.ThreeCrownWins)
	fmt.Printf("Max Challenge Wins: %d\n", profile.Stats.ChallengeMaxWins)
	if profile.Stats.FavoriteCard != "" {
		fmt.Printf("Favorite Card: %s\n", profile.Stats.FavoriteCard)
	}
	fmt.Printf("Total Donations: %d\n", profile.Stats.TotalDonations)

	fmt.Printf("\nChest Cycle (position %d):\n", profile.ChestCycle.Position)
	fmt.Printf("  Magical +%d | Giant +%d | Epic +%d\n",
		profile.ChestCycle.Magical, profile.ChestCycle.Giant, profile.ChestCycle.Epic)
	fmt.Printf("  Legendary +%d | Super Magical +%d\n",
		profile.ChestCycle.Legendary, profile.ChestCycle.SuperMagical)

	if len(profile.Deck) > 0 {
		names := make([]string, 0, len(profile.Deck))
		for _, card := range profile.Deck {
			names = append(names, card.Name)
		}
		fmt.Printf("\nCurrent Deck: %s\n", strings.Join(names, ", "))
		if profile.DeckLink != "" {
			fmt.Printf("Deck Link:    %s\n", profile.DeckLink)
		}
	}

	return nil
}
