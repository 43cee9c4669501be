package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/clashlens/clashlens/roster"
	"github.com/clashlens/clashlens/royale"
)

var (
	searchName       string
	searchScore      int
	searchMinMembers int
	searchMaxMembers int
)

// clanCmd represents the clan command
var clanCmd = &cobra.Command{
	Use:   "clan <tag>",
	Short: "Show a clan overview",
	Long:  `Show a clan overview, or use the subcommands to list members, battles, history or to search for clans.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runClanOverview,
}

// clanMembersCmd represents the clan members command
var clanMembersCmd = &cobra.Command{
	Use:   "members <tag>",
	Short: "List clan members",
	Long: `List the members of a clan, optionally enriched with full player profiles
and filtered with an expression.

Filters use either expr syntax (Trophies > 4000 and isLeadership()) or the
compact shorthand (role:"leader" AND trophies:>4000). Enrichment-only fields
like winRate() require --enrich.`,
	Args: cobra.ExactArgs(1),
	RunE: runClanMembers,
}

// clanBattlesCmd represents the clan battles command
var clanBattlesCmd = &cobra.Command{
	Use:   "battles <tag>",
	Short: "Show the clan battle feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runClanBattles,
}

// clanHistoryCmd represents the clan history command
var clanHistoryCmd = &cobra.Command{
	Use:   "history <tag>",
	Short: "Show tracked clan history snapshots",
	Args:  cobra.ExactArgs(1),
	RunE:  runClanHistory,
}

// clanSearchCmd represents the clan search command
var clanSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for clans",
	Long:  `Search for clans by name, score and member count. At least one criterion is required.`,
	Args:  cobra.NoArgs,
	RunE:  runClanSearch,
}

func init() {
	rootCmd.AddCommand(clanCmd)
	clanCmd.AddCommand(clanMembersCmd)
	clanCmd.AddCommand(clanBattlesCmd)
	clanCmd.AddCommand(clanHistoryCmd)
	clanCmd.AddCommand(clanSearchCmd)

	clanMembersCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	clanMembersCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	clanMembersCmd.Flags().BoolVarP(&enrich, "enrich", "e", false, "fetch full profiles for every member")
	clanMembersCmd.Flags().BoolVar(&showDetails, "details", false, "show donation and rank details")

	clanSearchCmd.Flags().StringVar(&searchName, "name", "", "clan name to search for")
	clanSearchCmd.Flags().IntVar(&searchScore, "score", 0, "minimum clan score")
	clanSearchCmd.Flags().IntVar(&searchMinMembers, "min-members", 0, "minimum member count")
	clanSearchCmd.Flags().IntVar(&searchMaxMembers, "max-members", 0, "maximum member count")
}

func runClanOverview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	clan, err := client.GetClanByTag(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(operations.Formatter().FormatClanOverview(clan))
	return nil
}

func runClanMembers(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var members []roster.MemberInfo
	if expression != "" {
		filterFunc, perr := memberPredicate(expression)
		if perr != nil {
			return perr
		}

		logger.Info().Str("filter", expression).Msg("Filtering clan members")
		members, err = operations.SearchMembers(ctx, args[0], enrich, filterFunc)
	} else {
		members, err = operations.FetchRoster(ctx, args[0], enrich)
	}
	if err != nil {
		return err
	}

	output := operations.Formatter().FormatMemberList(members, roster.FormatOptions{
		ShowDetails:    showDetails,
		ShowEnrichment: enrich,
	})
	fmt.Println(output)

	return nil
}

func runClanBattles(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	battles, err := client.GetClanBattles(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(operations.Formatter().FormatBattles(battles))
	return nil
}

func runClanHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	history, err := client.GetClanHistory(ctx, args[0])
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Println("No history available. The clan may not be tracked yet.")
		return nil
	}

	// Snapshots are keyed by timestamp, show them oldest first
	keys := make([]string, 0, len(history))
	for key := range history {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("\nHistory (%d snapshots):\n", len(keys))
	for _, key := range keys {
		entry := history[key]
		fmt.Printf("• %s: %d members, %d donations\n", key, entry.MemberCount, entry.Donations)
	}

	return nil
}

func runClanSearch(cmd *cobra.Command, args []string) error {
	if searchName == "" && searchScore == 0 && searchMinMembers == 0 && searchMaxMembers == 0 {
		return fmt.Errorf("at least one of --name, --score, --min-members or --max-members is required")
	}

	ctx := context.Background()

	req := &royale.ClanSearchRequest{
		Name:       searchName,
		Score:      searchScore,
		MinMembers: searchMinMembers,
		MaxMembers: searchMaxMembers,
	}

	clans, err := client.SearchClans(ctx, req)
	if err != nil {
		return err
	}

	if len(clans) == 0 {
		fmt.Println("No clans found matching the search criteria.")
		return nil
	}

	fmt.Printf("\nFound %d clans:\n", len(clans))
	for _, clan := range clans {
		fmt.Printf("• %s (#%s)\n", clan.Name, clan.Tag)
		fmt.Printf("  Score: %d | Members: %d/50 | Required: %d | Type: %s\n",
			clan.Score, clan.MemberCount, clan.RequiredScore, clan.Type)
		if clan.Location.Name != "" {
			fmt.Printf("  Location: %s\n", clan.Location.Name)
		}
	}

	return nil
}
