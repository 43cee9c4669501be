package royale

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Client is the typed facade over the community Clash Royale API: one
// method per upstream resource. Every method validates its input before
// the transport is invoked and translates transport failures through the
// uniform error policy. A Client holds no mutable state, so a single
// instance may be shared by concurrent callers as long as its Transport is
// safe for concurrent use (the default one is).
type Client struct {
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a Client for the API at baseURL. The base URL is
// required; a developer key and other settings are supplied via options.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if options.devKeySet && strings.TrimSpace(options.devKey) == "" {
		return nil, fmt.Errorf("%w: developer key must not be empty", ErrInvalidConfig)
	}

	transport := options.transport
	if transport == nil {
		httpClient := options.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: options.timeout}
		}
		baseURL = strings.TrimRight(baseURL, "/")
		transport = newHTTPTransport(baseURL, options.devKey, options.userAgent, httpClient, logger)
	}

	return &Client{
		transport: transport,
		logger:    logger,
	}, nil
}

// translate applies the uniform error policy to a transport failure.
func (c *Client) translate(err error) error {
	return translateTransportError(err)
}

// GetVersion returns the API server version string.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	version, err := c.transport.GetVersion(ctx)
	if err != nil {
		return "", c.translate(err)
	}
	return version, nil
}

// GetProfile fetches a single player profile using a pre-built request.
func (c *Client) GetProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	profile, err := c.transport.GetProfile(ctx, req)
	if err != nil {
		return nil, c.translate(err)
	}
	return profile, nil
}

// GetProfileByTag fetches a single player profile by raw tag. The tag is
// normalized and validated before the request is built.
func (c *Client) GetProfileByTag(ctx context.Context, tag string) (*Profile, error) {
	req, err := NewProfileRequest(tag)
	if err != nil {
		return nil, err
	}
	return c.GetProfile(ctx, req)
}

// GetProfiles fetches a batch of player profiles in one round trip.
func (c *Client) GetProfiles(ctx context.Context, req ProfilesRequest) ([]Profile, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	profiles, err := c.transport.GetProfiles(ctx, req)
	if err != nil {
		return nil, c.translate(err)
	}
	return profiles, nil
}

// GetProfilesByTags fetches a batch of player profiles by raw tags.
func (c *Client) GetProfilesByTags(ctx context.Context, tags []string) ([]Profile, error) {
	req, err := NewProfilesRequest(tags)
	if err != nil {
		return nil, err
	}
	return c.GetProfiles(ctx, req)
}

// GetClan fetches a full clan document using a pre-built request.
func (c *Client) GetClan(ctx context.Context, req ClanRequest) (*DetailedClan, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	clan, err := c.transport.GetClan(ctx, req)
	if err != nil {
		return nil, c.translate(err)
	}
	return clan, nil
}

// GetClanByTag fetches a full clan document by raw tag.
func (c *Client) GetClanByTag(ctx context.Context, tag string) (*DetailedClan, error) {
	req, err := NewClanRequest(tag)
	if err != nil {
		return nil, err
	}
	return c.GetClan(ctx, req)
}

// GetClans fetches a batch of clan documents in one round trip.
func (c *Client) GetClans(ctx context.Context, req ClansRequest) ([]DetailedClan, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	clans, err := c.transport.GetClans(ctx, req)
	if err != nil {
		return nil, c.translate(err)
	}
	return clans, nil
}

// GetClansByTags fetches a batch of clan documents by raw tags.
func (c *Client) GetClansByTags(ctx context.Context, tags []string) ([]DetailedClan, error) {
	req, err := NewClansRequest(tags)
	if err != nil {
		return nil, err
	}
	return c.GetClans(ctx, req)
}

// SearchClans searches clans by name and member/score bounds. A nil request
// searches without filters.
func (c *Client) SearchClans(ctx context.Context, req *ClanSearchRequest) ([]Clan, error) {
	clans, err := c.transport.SearchClans(ctx, req)
	if err != nil {
		return nil, c.translate(err)
	}
	return clans, nil
}

// GetTopClans returns the worldwide clan leaderboard.
func (c *Client) GetTopClans(ctx context.Context) ([]TopClan, error) {
	return c.topClans(ctx, "")
}

// GetTopClansByLocation returns the clan leaderboard for a location key
// such as "EU". The location is passed through unvalidated.
func (c *Client) GetTopClansByLocation(ctx context.Context, location string) ([]TopClan, error) {
	return c.topClans(ctx, location)
}

func (c *Client) topClans(ctx context.Context, location string) ([]TopClan, error) {
	clans, err := c.transport.GetTopClans(ctx, location)
	if err != nil {
		return nil, c.translate(err)
	}
	return clans, nil
}

// GetTopPlayers returns the worldwide player leaderboard.
func (c *Client) GetTopPlayers(ctx context.Context) ([]TopPlayer, error) {
	return c.topPlayers(ctx, "")
}

// GetTopPlayersByLocation returns the player leaderboard for a location key.
func (c *Client) GetTopPlayersByLocation(ctx context.Context, location string) ([]TopPlayer, error) {
	return c.topPlayers(ctx, location)
}

func (c *Client) topPlayers(ctx context.Context, location string) ([]TopPlayer, error) {
	players, err := c.transport.GetTopPlayers(ctx, location)
	if err != nil {
		return nil, c.translate(err)
	}
	return players, nil
}

// GetTournaments fetches a tournament by tag.
func (c *Client) GetTournaments(ctx context.Context, tag string) (*Tournament, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return nil, ErrMissingTag
	}
	tournament, err := c.transport.GetTournaments(ctx, normalized)
	if err != nil {
		return nil, c.translate(err)
	}
	return tournament, nil
}

// GetConstants fetches the full game-configuration document.
func (c *Client) GetConstants(ctx context.Context) (*Constants, error) {
	constants, err := c.transport.GetConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return constants, nil
}

// GetAllianceConstants fetches the clan role and type lists.
func (c *Client) GetAllianceConstants(ctx context.Context) (*Alliance, error) {
	alliance, err := c.transport.GetAllianceConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return alliance, nil
}

// GetArenasConstants fetches the arena reference list.
func (c *Client) GetArenasConstants(ctx context.Context) ([]Arena, error) {
	arenas, err := c.transport.GetArenasConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return arenas, nil
}

// GetBadgesConstants fetches the clan badge reference list.
func (c *Client) GetBadgesConstants(ctx context.Context) ([]Badge, error) {
	badges, err := c.transport.GetBadgesConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return badges, nil
}

// GetChestCycleConstants fetches the chest order reference data.
func (c *Client) GetChestCycleConstants(ctx context.Context) (*ChestCycleList, error) {
	cycle, err := c.transport.GetChestCycleConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return cycle, nil
}

// GetCountryCodesConstants fetches the location reference list.
func (c *Client) GetCountryCodesConstants(ctx context.Context) ([]CountryCode, error) {
	codes, err := c.transport.GetCountryCodesConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return codes, nil
}

// GetRaritiesConstants fetches the card rarity reference list.
func (c *Client) GetRaritiesConstants(ctx context.Context) ([]Rarity, error) {
	rarities, err := c.transport.GetRaritiesConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return rarities, nil
}

// GetCardsConstants fetches the static card definitions.
func (c *Client) GetCardsConstants(ctx context.Context) ([]ConstantCard, error) {
	cards, err := c.transport.GetCardsConstants(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return cards, nil
}

// GetEndpoints lists the API paths the server advertises.
func (c *Client) GetEndpoints(ctx context.Context) (Endpoints, error) {
	endpoints, err := c.transport.GetEndpoints(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return endpoints, nil
}

// GetPopularClans returns the most requested clans.
func (c *Client) GetPopularClans(ctx context.Context) ([]PopularClan, error) {
	clans, err := c.transport.GetPopularClans(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return clans, nil
}

// GetPopularPlayers returns the most requested players.
func (c *Client) GetPopularPlayers(ctx context.Context) ([]PopularPlayer, error) {
	players, err := c.transport.GetPopularPlayers(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return players, nil
}

// GetPopularTournaments returns the most requested tournaments.
func (c *Client) GetPopularTournaments(ctx context.Context) ([]PopularTournament, error) {
	tournaments, err := c.transport.GetPopularTournaments(ctx)
	if err != nil {
		return nil, c.translate(err)
	}
	return tournaments, nil
}

// GetClanBattles fetches the recent battles of a clan's members.
func (c *Client) GetClanBattles(ctx context.Context, tag string) ([]Battle, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return nil, ErrMissingTag
	}
	battles, err := c.transport.GetClanBattles(ctx, normalized)
	if err != nil {
		return nil, c.translate(err)
	}
	return battles, nil
}

// GetClanHistory fetches the historical snapshots of a clan.
func (c *Client) GetClanHistory(ctx context.Context, tag string) (ClanHistory, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return nil, ErrMissingTag
	}
	history, err := c.transport.GetClanHistory(ctx, normalized)
	if err != nil {
		return nil, c.translate(err)
	}
	return history, nil
}
