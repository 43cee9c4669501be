package filter

import (
	"context"
	"testing"

	"github.com/clashlens/clashlens/roster"
	"github.com/clashlens/clashlens/royale"
)

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasRole("leader")`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasRole("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasRole("leader") and Trophies > 4000 and winRate() > 50.0`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if filter == nil {
					t.Errorf("expected filter but got nil")
				}
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	// Create test member
	member := roster.MemberInfo{
		Tag:               "2PP",
		Name:              "Alpha",
		Role:              royale.RoleLeader,
		Rank:              1,
		PreviousRank:      2,
		ExpLevel:          13,
		Trophies:          5200,
		Arena:             "Legendary Arena",
		Donations:         300,
		DonationsReceived: 100,
		Enriched:          true,
		MaxTrophies:       5500,
		FavoriteCard:      "hog_rider",
		TotalGames:        2000,
		Wins:              1200,
		Losses:            700,
		WinRate:           60.0,
	}

	tests := []struct {
		name       string
		expression string
		member     roster.MemberInfo
		expected   bool
	}{
		{
			name:       "has role",
			expression: `hasRole("leader")`,
			member:     member,
			expected:   true,
		},
		{
			name:       "does not have role",
			expression: `hasRole("member")`,
			member:     member,
			expected:   false,
		},
		{
			name:       "role check helper",
			expression: `isLeader()`,
			member:     member,
			expected:   true,
		},
		{
			name:       "not an elder",
			expression: `isElder()`,
			member:     member,
			expected:   false,
		},
		{
			name:       "leadership check",
			expression: `isLeadership()`,
			member:     member,
			expected:   true,
		},
		{
			name:       "trophy comparison",
			expression: `Trophies > 4000`,
			member:     member,
			expected:   true,
		},
		{
			name:       "donation ratio",
			expression: `donationRatio() > 2.5`,
			member:     member,
			expected:   true,
		},
		{
			name:       "win rate check",
			expression: `winRate() > 50.0`,
			member:     member,
			expected:   true,
		},
		{
			name:       "arena match",
			expression: `inArena("legendary")`,
			member:     member,
			expected:   true,
		},
		{
			name:       "name contains",
			expression: `contains(Name, "alp")`,
			member:     member,
			expected:   true,
		},
		{
			name:       "direct role property",
			expression: `Role == "leader"`,
			member:     member,
			expected:   true,
		},
		{
			name:       "enrichment gating",
			expression: `Enriched and MaxTrophies >= 5500`,
			member:     member,
			expected:   true,
		},
		{
			name:       "complex expression",
			expression: `hasRole("leader") and Trophies > 5000 and winRate() > 50.0`,
			member:     member,
			expected:   true,
		},
		{
			name:       "rank comparison",
			expression: `Rank <= 1 and PreviousRank == 2`,
			member:     member,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			result := filter.Evaluate(tt.member)
			if result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	// Generate test data
	members := generateTestMembers(1000)

	filter, err := CompileFilter(`hasRole("member") and Trophies > 4500`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	ctx := context.Background()
	evaluator := NewConcurrentEvaluator(WithWorkers(4))

	matches, err := evaluator.Evaluate(ctx, filter, members)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	// Verify results by sequential evaluation
	var expectedMatches []roster.MemberInfo
	for _, member := range members {
		if filter.Evaluate(member) {
			expectedMatches = append(expectedMatches, member)
		}
	}

	if len(matches) != len(expectedMatches) {
		t.Errorf("expected %d matches but got %d", len(expectedMatches), len(matches))
	}
}

func TestBatchEvaluation(t *testing.T) {
	members := generateTestMembers(500)

	filters := map[string]string{
		"leaders":   `isLeadership()`,
		"active":    `Donations > 0`,
		"topLadder": `Trophies >= 4800`,
	}

	ctx := context.Background()
	results, err := EvaluateFilters(ctx, filters, members)
	if err != nil {
		t.Fatalf("batch evaluation failed: %v", err)
	}

	// Verify we got results for all filters
	if len(results) != len(filters) {
		t.Errorf("expected %d filter results but got %d", len(filters), len(results))
	}

	// Verify each filter has reasonable results
	for name, matches := range results {
		if len(matches) == 0 {
			t.Logf("warning: filter %q matched no members", name)
		}
		t.Logf("filter %q matched %d members", name, len(matches))
	}
}

func TestFilterManager(t *testing.T) {
	manager := NewManager()
	ctx := context.Background()

	// Test registering filters
	filters := map[string]string{
		"leaders": `isLeadership()`,
		"active":  `Donations > 0`,
		"maxed":   `ExpLevel >= 13`,
	}

	err := manager.RegisterFilters(filters)
	if err != nil {
		t.Fatalf("failed to register filters: %v", err)
	}

	// Test listing filters
	names := manager.ListFilters()
	if len(names) != len(filters) {
		t.Errorf("expected %d filters but got %d", len(filters), len(names))
	}

	// Test getting a filter
	filter, exists := manager.GetFilter("leaders")
	if !exists {
		t.Error("expected filter 'leaders' to exist")
	}
	if filter == nil {
		t.Error("expected non-nil filter")
	}

	// Test evaluating with manager
	members := generateTestMembers(100)
	matches, err := manager.EvaluateFilter(ctx, "leaders", members)
	if err != nil {
		t.Fatalf("failed to evaluate filter: %v", err)
	}
	if len(matches) == 0 {
		t.Error("expected some matches")
	}

	// Test unregistering
	manager.UnregisterFilter("leaders")
	_, exists = manager.GetFilter("leaders")
	if exists {
		t.Error("expected filter 'leaders' to be removed")
	}
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(10))
	expression := `hasRole("leader") and Trophies > 4000`

	// First compilation - should miss cache
	_, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("first compilation failed: %v", err)
	}

	// Second compilation - should hit cache
	filter2, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("second compilation failed: %v", err)
	}
	if filter2 == nil {
		t.Error("expected non-nil filter from cache")
	}

	// Test cache size
	if cachingCompiler, ok := compiler.(CachingCompiler); ok {
		if cachingCompiler.Size() != 1 {
			t.Errorf("expected cache size 1 but got %d", cachingCompiler.Size())
		}

		// Test clear
		cachingCompiler.Clear()
		if cachingCompiler.Size() != 0 {
			t.Errorf("expected cache size 0 after clear but got %d", cachingCompiler.Size())
		}
	}
}

func TestConvertShorthandFilter(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		expected  string
	}{
		{
			name:      "role match",
			shorthand: `role:"leader"`,
			expected:  `hasRole("leader")`,
		},
		{
			name:      "negated role",
			shorthand: `role!:"member"`,
			expected:  `not hasRole("member")`,
		},
		{
			name:      "name match",
			shorthand: `name:"king"`,
			expected:  `contains(Name, "king")`,
		},
		{
			name:      "trophy bound",
			shorthand: `trophies:>=4000`,
			expected:  `Trophies >= 4000`,
		},
		{
			name:      "combined with AND",
			shorthand: `donations:>100 AND name:"king"`,
			expected:  `Donations > 100 and contains(Name, "king")`,
		},
		{
			name:      "received donations",
			shorthand: `donations_received:>50`,
			expected:  `DonationsReceived > 50`,
		},
		{
			name:      "win rate",
			shorthand: `win_rate:>55.5`,
			expected:  `winRate() > 55.5`,
		},
		{
			name:      "arena",
			shorthand: `arena:"hog mountain"`,
			expected:  `inArena("hog mountain")`,
		},
		{
			name:      "inactive flag",
			shorthand: `inactive`,
			expected:  `(Donations == 0 and DonationsDelta <= 0)`,
		},
		{
			name:      "leadership flag",
			shorthand: `leadership OR trophies:>5000`,
			expected:  `isLeadership() or Trophies > 5000`,
		},
		{
			name:      "empty",
			shorthand: "   ",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, err := ConvertShorthandFilter(tt.shorthand)
			if err != nil {
				t.Fatalf("conversion failed: %v", err)
			}
			if converted != tt.expected {
				t.Errorf("ConvertShorthandFilter(%q) = %q, want %q", tt.shorthand, converted, tt.expected)
			}
		})
	}
}

func TestShorthandRoundTrip(t *testing.T) {
	member := roster.MemberInfo{
		Name: "Alpha", Role: royale.RoleLeader, Trophies: 5200, Donations: 300,
	}

	converted, err := ConvertShorthandFilter(`role:"leader" AND trophies:>5000`)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	filter, err := CompileFilter(converted)
	if err != nil {
		t.Fatalf("converted filter does not compile: %v", err)
	}

	if !filter.Evaluate(member) {
		t.Errorf("expected member to match converted filter %q", converted)
	}
}

func TestIsShorthandFilter(t *testing.T) {
	tests := []struct {
		filter   string
		expected bool
	}{
		{`role:"leader"`, true},
		{`trophies:>4000`, true},
		{`inactive`, true},
		{`leadership`, true},
		{`Trophies > 4000`, false},
		{`hasRole("leader")`, false},
		{`Enriched and Donations > 0`, false},
		{``, false},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			if got := IsShorthandFilter(tt.filter); got != tt.expected {
				t.Errorf("IsShorthandFilter(%q) = %v, want %v", tt.filter, got, tt.expected)
			}
		})
	}
}

// Helper function
func contains(s, substr string) bool {
	return len(s) >= len(substr) && s[:len(substr)] == substr || len(s) > len(substr) && contains(s[1:], substr)
}
