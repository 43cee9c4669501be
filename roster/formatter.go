package roster

import (
	"fmt"
	"strings"

	"github.com/clashlens/clashlens/royale"
)

// MemberFormatter defines the interface for formatting roster output
type MemberFormatter interface {
	FormatMemberList(members []MemberInfo, options FormatOptions) string
	FormatClanOverview(clan *royale.DetailedClan) string
	FormatBattles(battles []royale.Battle) string
}

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails    bool
	ShowEnrichment bool
}

// ConsoleFormatter provides console output formatting for rosters
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatMemberList formats a list of members for console display
func (f *ConsoleFormatter) FormatMemberList(members []MemberInfo, options FormatOptions) string {
	if len(members) == 0 {
		return "No members found"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nMember")
	if len(members) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(members))

	for i, member := range members {
		isLast := i == len(members)-1
		f.formatMember(&sb, member, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatMember formats a single member entry
func (f *ConsoleFormatter) formatMember(sb *strings.Builder, member MemberInfo, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	fmt.Fprintf(sb, "%s── %d. %s (#%s)\n", prefix, member.Rank, member.Name, member.Tag)

	indent := "│   "
	if isLast {
		indent = "    "
	}

	roleInfo := fmt.Sprintf("Role: %s | Trophies: %d", member.Role, member.Trophies)
	if member.Arena != "" {
		roleInfo += fmt.Sprintf(" (%s)", member.Arena)
	}
	fmt.Fprintf(sb, "%s%s\n", indent, roleInfo)

	if options.ShowDetails {
		fmt.Fprintf(sb, "%sDonations: %d given / %d received\n",
			indent, member.Donations, member.DonationsReceived)

		if member.PreviousRank != 0 && member.PreviousRank != member.Rank {
			fmt.Fprintf(sb, "%sRank change: %d -> %d\n", indent, member.PreviousRank, member.Rank)
		}
	}

	if options.ShowEnrichment && member.Enriched {
		fmt.Fprintf(sb, "%sWin rate: %.1f%% (%dW/%dL in %d games)\n",
			indent, member.WinRate, member.Wins, member.Losses, member.TotalGames)

		var statsParts []string
		if member.MaxTrophies > 0 {
			statsParts = append(statsParts, fmt.Sprintf("Max trophies: %d", member.MaxTrophies))
		}
		if member.FavoriteCard != "" {
			statsParts = append(statsParts, fmt.Sprintf("Favorite: %s", member.FavoriteCard))
		}
		if member.CurrentWinStreak > 0 {
			statsParts = append(statsParts, fmt.Sprintf("Streak: %d", member.CurrentWinStreak))
		}
		if len(statsParts) > 0 {
			fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(statsParts, " | "))
		}
	}
}

// FormatClanOverview formats a clan document for console display
func (f *ConsoleFormatter) FormatClanOverview(clan *royale.DetailedClan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s (#%s)\n", clan.Name, clan.Tag)

	if clan.Description != "" {
		fmt.Fprintf(&sb, "%s\n", clan.Description)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Score:     %d\n", clan.Score)
	fmt.Fprintf(&sb, "Members:   %d/50\n", clan.MemberCount)
	fmt.Fprintf(&sb, "Type:      %s\n", clan.Type)
	if clan.RequiredScore > 0 {
		fmt.Fprintf(&sb, "Required:  %d trophies\n", clan.RequiredScore)
	}
	fmt.Fprintf(&sb, "Donations: %d/week\n", clan.Donations)
	if clan.Location.Name != "" {
		fmt.Fprintf(&sb, "Location:  %s\n", clan.Location.Name)
	}

	return sb.String()
}

// FormatBattles formats a battle feed for console display
func (f *ConsoleFormatter) FormatBattles(battles []royale.Battle) string {
	if len(battles) == 0 {
		return "No recent battles"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nBattle")
	if len(battles) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(battles))

	for i, battle := range battles {
		isLast := i == len(battles)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		outcome := "DRAW"
		if battle.TeamWon() {
			outcome = "WIN"
		} else if !battle.IsDraw() {
			outcome = "LOSS"
		}

		fmt.Fprintf(&sb, "%s── [%s] %s %d - %d\n",
			prefix, outcome, battle.Mode.Name, battle.TeamCrowns, battle.OpponentCrowns)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		if len(battle.Team) > 0 && len(battle.Opponent) > 0 {
			fmt.Fprintf(&sb, "%s%s vs %s\n",
				indent, formatSide(battle.Team), formatSide(battle.Opponent))
		}
		if battle.Arena.Name != "" {
			fmt.Fprintf(&sb, "%sArena: %s\n", indent, battle.Arena.Name)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatSide joins one battle side's player names.
func formatSide(players []royale.BattlePlayer) string {
	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player.Name)
	}
	return strings.Join(names, " & ")
}
