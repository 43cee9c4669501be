package roster

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/clashlens/clashlens/royale"
)

// MemberInfo is one flattened clan-roster row: the member-list fields joined
// with profile-derived enrichment. Filters and formatters work on this type
// instead of the raw API documents.
type MemberInfo struct {
	Tag               string
	Name              string
	Role              royale.ClanRole
	Rank              int
	PreviousRank      int
	ExpLevel          int
	Trophies          int
	Arena             string
	Donations         int
	DonationsReceived int
	DonationsDelta    int
	DonationsPercent  float64

	// Profile enrichment, only populated when Enriched is true.
	Enriched         bool
	MaxTrophies      int
	TotalDonations   int
	ThreeCrownWins   int
	ChallengeMaxWins int
	FavoriteCard     string
	TotalGames       int
	Wins             int
	Losses           int
	WinRate          float64
	CurrentWinStreak int
	ChestPosition    int
	GlobalRank       int
	Level            int
}

// IsLeadership reports whether the member can manage the clan.
func (m MemberInfo) IsLeadership() bool {
	return m.Role.IsLeadership()
}

// DonationRatio returns donations given per donation received, 0 when the
// member has received nothing.
func (m MemberInfo) DonationRatio() float64 {
	if m.DonationsReceived == 0 {
		return 0
	}
	return float64(m.Donations) / float64(m.DonationsReceived)
}

// newMemberInfo flattens a member-list row into a MemberInfo.
func newMemberInfo(member royale.ClanMember) MemberInfo {
	return MemberInfo{
		Tag:               member.Tag,
		Name:              member.Name,
		Role:              member.Role,
		Rank:              member.Rank,
		PreviousRank:      member.PreviousRank,
		ExpLevel:          member.ExpLevel,
		Trophies:          member.Trophies,
		Arena:             member.Arena.Name,
		Donations:         member.Donations,
		DonationsReceived: member.DonationsReceived,
		DonationsDelta:    member.DonationsDelta,
		DonationsPercent:  member.DonationsPercent,
	}
}

// applyProfile copies the profile-derived fields into the row.
func (m *MemberInfo) applyProfile(profile *royale.Profile) {
	m.Enriched = true
	m.MaxTrophies = profile.Stats.MaxTrophies
	m.TotalDonations = profile.Stats.TotalDonations
	m.ThreeCrownWins = profile.Stats.ThreeCrownWins
	m.ChallengeMaxWins = profile.Stats.ChallengeMaxWins
	m.FavoriteCard = profile.Stats.FavoriteCard
	m.TotalGames = profile.Games.Total
	m.Wins = profile.Games.Wins
	m.Losses = profile.Games.Losses
	m.WinRate = profile.Games.WinRate()
	m.CurrentWinStreak = profile.Games.CurrentWinStreak
	m.ChestPosition = profile.ChestCycle.Position
	m.GlobalRank = profile.GlobalRank
	m.Level = profile.Stats.Level
}

// Operations handles clan roster fetch, enrichment and search operations
type Operations struct {
	client      royale.API
	logger      zerolog.Logger
	concurrency int
	formatter   MemberFormatter
}

// NewOperations creates a new Operations instance
func NewOperations(client royale.API, logger zerolog.Logger) *Operations {
	return &Operations{
		client:      client,
		logger:      logger,
		concurrency: DefaultConcurrency,
		formatter:   NewConsoleFormatter(),
	}
}

// SetConcurrency bounds the number of parallel profile fetches during
// enrichment. Values outside [1, MaxConcurrency] are clamped.
func (o *Operations) SetConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxConcurrency {
		n = MaxConcurrency
	}
	o.concurrency = n
}

// Formatter returns the console formatter used for roster output.
func (o *Operations) Formatter() MemberFormatter {
	return o.formatter
}

// FetchRoster returns the flattened member rows of a clan. With enrich set,
// each member's full profile is fetched concurrently and folded into the row;
// individual profile failures are logged and leave the row unenriched.
func (o *Operations) FetchRoster(ctx context.Context, tag string, enrich bool) ([]MemberInfo, error) {
	clan, err := o.client.GetClanByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	members := make([]MemberInfo, 0, len(clan.Members))
	for _, member := range clan.Members {
		members = append(members, newMemberInfo(member))
	}

	if enrich && len(members) > 0 {
		result := o.enrichProfiles(ctx, members)

		o.logger.Info().
			Int("enriched", len(result.Enriched)).
			Int("failed", len(result.Failed)).
			Msg("Roster enrichment complete")

		for _, failure := range result.Failed {
			o.logger.Warn().
				Err(failure.Err).
				Str("tag", failure.MemberTag).
				Str("name", failure.MemberName).
				Msg("Failed to enrich member")
		}
	}

	return members, nil
}

// SearchMembers returns the roster rows matching the filter, sorted by rank.
func (o *Operations) SearchMembers(ctx context.Context, tag string, enrich bool, filterFunc func(MemberInfo) bool) ([]MemberInfo, error) {
	members, err := o.FetchRoster(ctx, tag, enrich)
	if err != nil {
		return nil, err
	}

	var results []MemberInfo
	for _, member := range members {
		if filterFunc(member) {
			results = append(results, member)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})

	o.logger.Info().Msgf("Found %d members matching filter", len(results))
	return results, nil
}
