package royale

import "context"

// API is the full operation surface of the client, one method per upstream
// resource plus the raw-tag convenience forms. Consumers that want to stub
// the client in tests depend on this interface instead of *Client.
type API interface {
	GetVersion(ctx context.Context) (string, error)

	GetProfile(ctx context.Context, req ProfileRequest) (*Profile, error)
	GetProfileByTag(ctx context.Context, tag string) (*Profile, error)
	GetProfiles(ctx context.Context, req ProfilesRequest) ([]Profile, error)
	GetProfilesByTags(ctx context.Context, tags []string) ([]Profile, error)

	GetClan(ctx context.Context, req ClanRequest) (*DetailedClan, error)
	GetClanByTag(ctx context.Context, tag string) (*DetailedClan, error)
	GetClans(ctx context.Context, req ClansRequest) ([]DetailedClan, error)
	GetClansByTags(ctx context.Context, tags []string) ([]DetailedClan, error)
	SearchClans(ctx context.Context, req *ClanSearchRequest) ([]Clan, error)
	GetClanBattles(ctx context.Context, tag string) ([]Battle, error)
	GetClanHistory(ctx context.Context, tag string) (ClanHistory, error)

	GetTopClans(ctx context.Context) ([]TopClan, error)
	GetTopClansByLocation(ctx context.Context, location string) ([]TopClan, error)
	GetTopPlayers(ctx context.Context) ([]TopPlayer, error)
	GetTopPlayersByLocation(ctx context.Context, location string) ([]TopPlayer, error)

	GetTournaments(ctx context.Context, tag string) (*Tournament, error)

	GetPopularClans(ctx context.Context) ([]PopularClan, error)
	GetPopularPlayers(ctx context.Context) ([]PopularPlayer, error)
	GetPopularTournaments(ctx context.Context) ([]PopularTournament, error)

	GetConstants(ctx context.Context) (*Constants, error)
	GetAllianceConstants(ctx context.Context) (*Alliance, error)
	GetArenasConstants(ctx context.Context) ([]Arena, error)
	GetBadgesConstants(ctx context.Context) ([]Badge, error)
	GetChestCycleConstants(ctx context.Context) (*ChestCycleList, error)
	GetCountryCodesConstants(ctx context.Context) ([]CountryCode, error)
	GetRaritiesConstants(ctx context.Context) ([]Rarity, error)
	GetCardsConstants(ctx context.Context) ([]ConstantCard, error)
	GetEndpoints(ctx context.Context) (Endpoints, error)
}

var _ API = (*Client)(nil)
