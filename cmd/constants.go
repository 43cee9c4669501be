package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// constantsCmd represents the constants command
var constantsCmd = &cobra.Command{
	Use:   "constants [topic]",
	Short: "Show game configuration constants",
	Long: `Show game configuration constants. Without a topic a summary of every
resource is printed. Topics: alliance, arenas, badges, chests, countries,
rarities, cards, endpoints.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"alliance", "arenas", "badges", "chests", "countries", "rarities", "cards", "endpoints"},
	RunE:      runConstants,
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}

func runConstants(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	topic := ""
	if len(args) > 0 {
		topic = args[0]
	}

	switch topic {
	case "":
		constants, err := client.GetConstants(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Alliance roles: %s\n", strings.Join(constants.Alliance.Roles, ", "))
		fmt.Printf("Clan types:     %s\n", strings.Join(constants.Alliance.Types, ", "))
		fmt.Printf("Arenas:         %d\n", len(constants.Arenas))
		fmt.Printf("Badges:         %d\n", len(constants.Badges))
		fmt.Printf("Chest cycle:    %d chests\n", len(constants.ChestCycle.MainCycle))
		fmt.Printf("Countries:      %d\n", len(constants.CountryCodes))
		fmt.Printf("Rarities:       %d\n", len(constants.Rarities))
		fmt.Printf("Cards:          %d\n", len(constants.Cards))

	case "alliance":
		alliance, err := client.GetAllianceConstants(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Roles: %s\n", strings.Join(alliance.Roles, ", "))
		fmt.Printf("Types: %s\n", strings.Join(alliance.Types, ", "))

	case "arenas":
		arenas, err := client.GetArenasConstants(ctx)
		if err != nil {
			return err
		}
		for _, arena := range arenas {
			fmt.Printf("• %s (%s) from %d trophies\n", arena.Name, arena.Arena, arena.TrophyLimit)
		}

	case "badges":
		badges, err := client.GetBadgesConstants(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d badges:\n", len(badges))
		for _, badge := range badges {
			fmt.Printf("• %s (%s)\n", badge.Name, badge.Category)
		}

	case "chests":
		cycle, err := client.GetChestCycleConstants(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Chest cycle (%d chests):\n", len(cycle.MainCycle))
		for i, chest := range cycle.MainCycle {
			fmt.Printf("%3d. %s\n", i+1, chest)
		}

	case "countries":
		countries, err := client.GetCountryCodesConstants(ctx)
		if err != nil {
			return err
		}
		for _, country := range countries {
			kind := "region"
			if country.IsCountry {
				kind = "country"
			}
			fmt.Printf("• %s (%s)\n", country.Name, kind)
		}

	case "rarities":
		rarities, err := client.GetRaritiesConstants(ctx)
		if err != nil {
			return err
		}
		for _, rarity := range rarities {
			fmt.Printf("• %s: %d levels, donate capacity %d\n",
				rarity.Name, rarity.LevelCount, rarity.DonateCapacity)
		}

	case "cards":
		cards, err := client.GetCardsConstants(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d cards:\n", len(cards))
		for _, card := range cards {
			fmt.Printf("• %s (%s, %d elixir)\n", card.Name, card.Rarity, card.Elixir)
		}

	case "endpoints":
		endpoints, err := client.GetEndpoints(ctx)
		if err != nil {
			return err
		}
		for _, endpoint := range endpoints {
			fmt.Println(endpoint)
		}

	default:
		return fmt.Errorf("unknown topic '%s'", topic)
	}

	return nil
}
