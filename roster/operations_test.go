package roster

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clashlens/clashlens/royale"
)

// stubAPI implements the subset of royale.API the roster operations touch.
// Calls to any other method panic through the embedded nil interface.
type stubAPI struct {
	royale.API
	clan       *royale.DetailedClan
	clanErr    error
	profiles   map[string]*royale.Profile
	profileErr map[string]error

	mu           sync.Mutex
	profileCalls int
}

func (s *stubAPI) GetClanByTag(ctx context.Context, tag string) (*royale.DetailedClan, error) {
	if s.clanErr != nil {
		return nil, s.clanErr
	}
	return s.clan, nil
}

func (s *stubAPI) GetProfileByTag(ctx context.Context, tag string) (*royale.Profile, error) {
	s.mu.Lock()
	s.profileCalls++
	s.mu.Unlock()

	if err, ok := s.profileErr[tag]; ok {
		return nil, err
	}
	profile, ok := s.profiles[tag]
	if !ok {
		return nil, errors.New("no profile for " + tag)
	}
	return profile, nil
}

func testClan() *royale.DetailedClan {
	return &royale.DetailedClan{
		Tag:  "2CCCP",
		Name: "Royal Guard",
		Members: []royale.ClanMember{
			{
				Tag: "AAA", Name: "Alpha", Role: royale.RoleLeader,
				Rank: 1, Trophies: 5200, Donations: 300, DonationsReceived: 100,
				Arena: royale.Arena{Name: "League 3"},
			},
			{
				Tag: "BBB", Name: "Bravo", Role: royale.RoleMember,
				Rank: 2, Trophies: 4100, Donations: 40, DonationsReceived: 80,
				Arena: royale.Arena{Name: "League 1"},
			},
			{
				Tag: "CCC", Name: "Charlie", Role: royale.RoleElder,
				Rank: 3, Trophies: 3900, Donations: 0, DonationsReceived: 0,
			},
		},
	}
}

func TestFetchRosterWithoutEnrichment(t *testing.T) {
	stub := &stubAPI{clan: testClan()}
	ops := NewOperations(stub, zerolog.Nop())

	members, err := ops.FetchRoster(context.Background(), "2CCCP", false)
	if err != nil {
		t.Fatalf("FetchRoster() error = %v", err)
	}

	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	if members[0].Name != "Alpha" || members[0].Role != royale.RoleLeader {
		t.Errorf("first row = %s/%s, want Alpha/leader", members[0].Name, members[0].Role)
	}
	if members[0].Arena != "League 3" {
		t.Errorf("arena not flattened: got %q", members[0].Arena)
	}
	if members[1].Trophies != 4100 {
		t.Errorf("trophies = %d, want 4100", members[1].Trophies)
	}
	for _, m := range members {
		if m.Enriched {
			t.Errorf("member %s enriched without enrichment requested", m.Tag)
		}
	}
	if stub.profileCalls != 0 {
		t.Errorf("profile fetched %d times without enrichment requested", stub.profileCalls)
	}
}

func TestFetchRosterEnrichment(t *testing.T) {
	stub := &stubAPI{
		clan: testClan(),
		profiles: map[string]*royale.Profile{
			"AAA": {
				Tag:        "AAA",
				GlobalRank: 900,
				Stats:      royale.PlayerStats{MaxTrophies: 5500, FavoriteCard: "hog_rider", Level: 13},
				Games:      royale.PlayerGames{Total: 1000, Wins: 600, Losses: 350},
			},
			"BBB": {
				Tag:   "BBB",
				Stats: royale.PlayerStats{MaxTrophies: 4200},
				Games: royale.PlayerGames{Total: 10, Wins: 5, Losses: 5},
			},
			"CCC": {
				Tag: "CCC",
			},
		},
	}
	ops := NewOperations(stub, zerolog.Nop())

	members, err := ops.FetchRoster(context.Background(), "2CCCP", true)
	if err != nil {
		t.Fatalf("FetchRoster() error = %v", err)
	}

	if stub.profileCalls != 3 {
		t.Errorf("profile calls = %d, want 3", stub.profileCalls)
	}
	alpha := members[0]
	if !alpha.Enriched {
		t.Fatal("first row not enriched")
	}
	if alpha.MaxTrophies != 5500 || alpha.FavoriteCard != "hog_rider" {
		t.Errorf("enrichment not applied: %+v", alpha)
	}
	if alpha.WinRate < 59.9 || alpha.WinRate > 60.1 {
		t.Errorf("win rate = %.2f, want 60", alpha.WinRate)
	}
	if alpha.GlobalRank != 900 {
		t.Errorf("global rank = %d, want 900", alpha.GlobalRank)
	}
	// Clan-list fields survive enrichment.
	if alpha.Rank != 1 || alpha.Trophies != 5200 {
		t.Errorf("roster fields clobbered: %+v", alpha)
	}
}

func TestFetchRosterEnrichmentPartialFailure(t *testing.T) {
	stub := &stubAPI{
		clan: testClan(),
		profiles: map[string]*royale.Profile{
			"AAA": {Tag: "AAA", Games: royale.PlayerGames{Total: 4, Wins: 4}},
			"CCC": {Tag: "CCC"},
		},
		profileErr: map[string]error{
			"BBB": &royale.APIError{Code: 404, Message: "not tracked"},
		},
	}
	ops := NewOperations(stub, zerolog.Nop())

	members, err := ops.FetchRoster(context.Background(), "2CCCP", true)
	if err != nil {
		t.Fatalf("a single profile failure must not fail the roster, got %v", err)
	}

	if !members[0].Enriched {
		t.Error("Alpha should be enriched")
	}
	if members[1].Enriched {
		t.Error("Bravo should stay unenriched after its profile fetch failed")
	}
	if !members[2].Enriched {
		t.Error("Charlie should be enriched")
	}
}

func TestFetchRosterClanFailure(t *testing.T) {
	wantErr := &royale.APIError{Code: 404, Message: "no such clan"}
	stub := &stubAPI{clanErr: wantErr}
	ops := NewOperations(stub, zerolog.Nop())

	_, err := ops.FetchRoster(context.Background(), "NOPE", true)
	if !errors.Is(err, wantErr) {
		t.Fatalf("FetchRoster() error = %v, want %v", err, wantErr)
	}
	if stub.profileCalls != 0 {
		t.Errorf("profiles fetched despite clan failure")
	}
}

func TestSearchMembers(t *testing.T) {
	stub := &stubAPI{clan: testClan()}
	ops := NewOperations(stub, zerolog.Nop())

	results, err := ops.SearchMembers(context.Background(), "2CCCP", false, func(m MemberInfo) bool {
		return m.Trophies >= 4000
	})
	if err != nil {
		t.Fatalf("SearchMembers() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "Alpha" || results[1].Name != "Bravo" {
		t.Errorf("results out of rank order: %s, %s", results[0].Name, results[1].Name)
	}
}

func TestSearchMembersNoMatch(t *testing.T) {
	stub := &stubAPI{clan: testClan()}
	ops := NewOperations(stub, zerolog.Nop())

	results, err := ops.SearchMembers(context.Background(), "2CCCP", false, func(m MemberInfo) bool {
		return false
	})
	if err != nil {
		t.Fatalf("SearchMembers() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestSetConcurrencyClamps(t *testing.T) {
	ops := NewOperations(&stubAPI{}, zerolog.Nop())

	ops.SetConcurrency(0)
	if ops.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", ops.concurrency)
	}

	ops.SetConcurrency(100)
	if ops.concurrency != MaxConcurrency {
		t.Errorf("concurrency = %d, want %d", ops.concurrency, MaxConcurrency)
	}

	ops.SetConcurrency(5)
	if ops.concurrency != 5 {
		t.Errorf("concurrency = %d, want 5", ops.concurrency)
	}
}

func TestMemberInfoDonationRatio(t *testing.T) {
	tests := []struct {
		name     string
		member   MemberInfo
		expected float64
	}{
		{
			name:     "Nothing received",
			member:   MemberInfo{Donations: 100},
			expected: 0,
		},
		{
			name:     "Twice as much given",
			member:   MemberInfo{Donations: 100, DonationsReceived: 50},
			expected: 2,
		},
		{
			name:     "Pure taker",
			member:   MemberInfo{Donations: 0, DonationsReceived: 200},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.member.DonationRatio()
			if result != tt.expected {
				t.Errorf("DonationRatio() = %v, want %v", result, tt.expected)
			}
		})
	}
}
