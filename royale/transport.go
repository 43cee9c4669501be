package royale

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// Transport performs the HTTP round trip for one upstream resource and
// decodes the response, one method per resource. Implementations must be
// safe for concurrent use. Failures must either be typed (*HTTPError,
// *APIError) or end their message with ": <status>"; anything else is
// surfaced by the facade as an unknown transport failure.
type Transport interface {
	GetVersion(ctx context.Context) (string, error)
	GetProfile(ctx context.Context, req ProfileRequest) (*Profile, error)
	GetProfiles(ctx context.Context, req ProfilesRequest) ([]Profile, error)
	GetClan(ctx context.Context, req ClanRequest) (*DetailedClan, error)
	GetClans(ctx context.Context, req ClansRequest) ([]DetailedClan, error)
	SearchClans(ctx context.Context, req *ClanSearchRequest) ([]Clan, error)
	GetTopClans(ctx context.Context, location string) ([]TopClan, error)
	GetTopPlayers(ctx context.Context, location string) ([]TopPlayer, error)
	GetTournaments(ctx context.Context, tag string) (*Tournament, error)
	GetConstants(ctx context.Context) (*Constants, error)
	GetAllianceConstants(ctx context.Context) (*Alliance, error)
	GetArenasConstants(ctx context.Context) ([]Arena, error)
	GetBadgesConstants(ctx context.Context) ([]Badge, error)
	GetChestCycleConstants(ctx context.Context) (*ChestCycleList, error)
	GetCountryCodesConstants(ctx context.Context) ([]CountryCode, error)
	GetRaritiesConstants(ctx context.Context) ([]Rarity, error)
	GetCardsConstants(ctx context.Context) ([]ConstantCard, error)
	GetEndpoints(ctx context.Context) (Endpoints, error)
	GetPopularClans(ctx context.Context) ([]PopularClan, error)
	GetPopularPlayers(ctx context.Context) ([]PopularPlayer, error)
	GetPopularTournaments(ctx context.Context) ([]PopularTournament, error)
	GetClanBattles(ctx context.Context, tag string) ([]Battle, error)
	GetClanHistory(ctx context.Context, tag string) (ClanHistory, error)
}

// httpTransport is the default Transport: net/http against the public API.
type httpTransport struct {
	baseURL    string
	devKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func newHTTPTransport(baseURL, devKey, userAgent string, httpClient *http.Client, logger zerolog.Logger) *httpTransport {
	return &httpTransport{
		baseURL:    baseURL,
		devKey:     devKey,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// doRequest performs an HTTP request and returns the raw body. Non-2xx
// responses become an *HTTPError carrying the status code.
func (t *httpTransport) doRequest(ctx context.Context, method, endpoint string, params url.Values) ([]byte, error) {
	requestURL := t.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if t.devKey != "" {
		req.Header.Set("auth", t.devKey)
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	t.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("API request")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Status: resp.StatusCode,
			URL:    requestURL,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

// get performs a GET request and decodes the JSON body into out.
func (t *httpTransport) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := t.doRequest(ctx, http.MethodGet, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// tagsSegment joins tags into one comma-separated path segment. Tags are
// escaped individually so the commas survive as separators.
func tagsSegment(tags []string) string {
	escaped := make([]string, len(tags))
	for i, tag := range tags {
		escaped[i] = url.PathEscape(tag)
	}
	return strings.Join(escaped, ",")
}

// GetVersion returns the server version. The endpoint replies with plain
// text, not JSON.
func (t *httpTransport) GetVersion(ctx context.Context) (string, error) {
	body, err := t.doRequest(ctx, http.MethodGet, "/version", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (t *httpTransport) GetProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	var profile Profile
	if err := t.get(ctx, "/profile/"+url.PathEscape(req.Tag), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (t *httpTransport) GetProfiles(ctx context.Context, req ProfilesRequest) ([]Profile, error) {
	var profiles []Profile
	if err := t.get(ctx, "/profile/"+tagsSegment(req.Tags), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (t *httpTransport) GetClan(ctx context.Context, req ClanRequest) (*DetailedClan, error) {
	var clan DetailedClan
	if err := t.get(ctx, "/clan/"+url.PathEscape(req.Tag), nil, &clan); err != nil {
		return nil, err
	}
	return &clan, nil
}

func (t *httpTransport) GetClans(ctx context.Context, req ClansRequest) ([]DetailedClan, error) {
	var clans []DetailedClan
	if err := t.get(ctx, "/clan/"+tagsSegment(req.Tags), nil, &clans); err != nil {
		return nil, err
	}
	return clans, nil
}

func (t *httpTransport) SearchClans(ctx context.Context, req *ClanSearchRequest) ([]Clan, error) {
	var params url.Values
	if req != nil {
		v, err := query.Values(req)
		if err != nil {
			return nil, fmt.Errorf("failed to encode search filters: %w", err)
		}
		params = v
	}

	var clans []Clan
	if err := t.get(ctx, "/clan/search", params, &clans); err != nil {
		return nil, err
	}
	return clans, nil
}

func (t *httpTransport) GetTopClans(ctx context.Context, location string) ([]TopClan, error) {
	endpoint := "/top/clans"
	if location != "" {
		endpoint += "/" + url.PathEscape(location)
	}

	var clans []TopClan
	if err := t.get(ctx, endpoint, nil, &clans); err != nil {
		return nil, err
	}
	return clans, nil
}

func (t *httpTransport) GetTopPlayers(ctx context.Context, location string) ([]TopPlayer, error) {
	endpoint := "/top/players"
	if location != "" {
		endpoint += "/" + url.PathEscape(location)
	}

	var players []TopPlayer
	if err := t.get(ctx, endpoint, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (t *httpTransport) GetTournaments(ctx context.Context, tag string) (*Tournament, error) {
	var tournament Tournament
	if err := t.get(ctx, "/tournaments/"+url.PathEscape(tag), nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (t *httpTransport) GetConstants(ctx context.Context) (*Constants, error) {
	var constants Constants
	if err := t.get(ctx, "/constants", nil, &constants); err != nil {
		return nil, err
	}
	return &constants, nil
}

func (t *httpTransport) GetAllianceConstants(ctx context.Context) (*Alliance, error) {
	var alliance Alliance
	if err := t.get(ctx, "/constants/alliance", nil, &alliance); err != nil {
		return nil, err
	}
	return &alliance, nil
}

func (t *httpTransport) GetArenasConstants(ctx context.Context) ([]Arena, error) {
	var arenas []Arena
	if err := t.get(ctx, "/constants/arenas", nil, &arenas); err != nil {
		return nil, err
	}
	return arenas, nil
}

func (t *httpTransport) GetBadgesConstants(ctx context.Context) ([]Badge, error) {
	var badges []Badge
	if err := t.get(ctx, "/constants/badges", nil, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (t *httpTransport) GetChestCycleConstants(ctx context.Context) (*ChestCycleList, error) {
	var cycle ChestCycleList
	if err := t.get(ctx, "/constants/chestCycle", nil, &cycle); err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (t *httpTransport) GetCountryCodesConstants(ctx context.Context) ([]CountryCode, error) {
	var codes []CountryCode
	if err := t.get(ctx, "/constants/countryCodes", nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (t *httpTransport) GetRaritiesConstants(ctx context.Context) ([]Rarity, error) {
	var rarities []Rarity
	if err := t.get(ctx, "/constants/rarities", nil, &rarities); err != nil {
		return nil, err
	}
	return rarities, nil
}

func (t *httpTransport) GetCardsConstants(ctx context.Context) ([]ConstantCard, error) {
	var cards []ConstantCard
	if err := t.get(ctx, "/constants/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (t *httpTransport) GetEndpoints(ctx context.Context) (Endpoints, error) {
	var endpoints Endpoints
	if err := t.get(ctx, "/endpoints", nil, &endpoints); err != nil {
		return nil, err
	}
	return endpoints, nil
}

func (t *httpTransport) GetPopularClans(ctx context.Context) ([]PopularClan, error) {
	var clans []PopularClan
	if err := t.get(ctx, "/popular/clans", nil, &clans); err != nil {
		return nil, err
	}
	return clans, nil
}

func (t *httpTransport) GetPopularPlayers(ctx context.Context) ([]PopularPlayer, error) {
	var players []PopularPlayer
	if err := t.get(ctx, "/popular/players", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (t *httpTransport) GetPopularTournaments(ctx context.Context) ([]PopularTournament, error) {
	var tournaments []PopularTournament
	if err := t.get(ctx, "/popular/tournaments", nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (t *httpTransport) GetClanBattles(ctx context.Context, tag string) ([]Battle, error) {
	var battles []Battle
	if err := t.get(ctx, "/clan/"+url.PathEscape(tag)+"/battles", nil, &battles); err != nil {
		return nil, err
	}
	return battles, nil
}

func (t *httpTransport) GetClanHistory(ctx context.Context, tag string) (ClanHistory, error) {
	var history ClanHistory
	if err := t.get(ctx, "/clan/"+url.PathEscape(tag)+"/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
