package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/clashlens/clashlens/roster"
	"github.com/clashlens/clashlens/royale"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(CompiledFilter), nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow member properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	// Cache if enabled
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a member
func (f *exprFilter) Evaluate(member roster.MemberInfo) bool {
	env := createRuntimeEnvironment(member)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Members that cause evaluation errors are treated as non-matches
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 32)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(member roster.MemberInfo) map[string]any {
	// Pre-allocate with expected size
	env := make(map[string]any, 64)

	// Add helper functions
	addHelperFunctions(env)

	// Add member data
	env["Member"] = member

	// Add member-specific helper functions using closures for efficiency
	env["hasRole"] = createHasRoleFunc(member.Role)
	env["isLeader"] = createRoleCheckFunc(member.Role, royale.RoleLeader)
	env["isCoLeader"] = createRoleCheckFunc(member.Role, royale.RoleCoLeader)
	env["isElder"] = createRoleCheckFunc(member.Role, royale.RoleElder)
	env["isLeadership"] = createIsLeadershipFunc(member)
	env["donationRatio"] = createDonationRatioFunc(member)
	env["winRate"] = createWinRateFunc(member)
	env["inArena"] = createInArenaFunc(member.Arena)

	// Direct member properties for convenience
	env["Tag"] = member.Tag
	env["Name"] = member.Name
	env["Role"] = string(member.Role)
	env["Rank"] = member.Rank
	env["PreviousRank"] = member.PreviousRank
	env["ExpLevel"] = member.ExpLevel
	env["Trophies"] = member.Trophies
	env["Arena"] = member.Arena
	env["Donations"] = member.Donations
	env["DonationsReceived"] = member.DonationsReceived
	env["DonationsDelta"] = member.DonationsDelta
	env["DonationsPercent"] = member.DonationsPercent
	// Enrichment properties
	env["Enriched"] = member.Enriched
	env["MaxTrophies"] = member.MaxTrophies
	env["TotalDonations"] = member.TotalDonations
	env["ThreeCrownWins"] = member.ThreeCrownWins
	env["ChallengeMaxWins"] = member.ChallengeMaxWins
	env["FavoriteCard"] = member.FavoriteCard
	env["TotalGames"] = member.TotalGames
	env["Wins"] = member.Wins
	env["Losses"] = member.Losses
	env["WinRate"] = member.WinRate
	env["CurrentWinStreak"] = member.CurrentWinStreak
	env["ChestPosition"] = member.ChestPosition
	env["GlobalRank"] = member.GlobalRank
	env["Level"] = member.Level

	return env
}

// Helper factory functions for better performance through closures

func createHasRoleFunc(role royale.ClanRole) func(string) bool {
	lowerRole := strings.ToLower(string(role))
	return func(target string) bool {
		return lowerRole == strings.ToLower(target)
	}
}

func createRoleCheckFunc(role, target royale.ClanRole) func() bool {
	return func() bool {
		return role == target
	}
}

func createIsLeadershipFunc(member roster.MemberInfo) func() bool {
	return func() bool {
		return member.IsLeadership()
	}
}

func createDonationRatioFunc(member roster.MemberInfo) func() float64 {
	return func() float64 {
		return member.DonationRatio()
	}
}

func createWinRateFunc(member roster.MemberInfo) func() float64 {
	return func() float64 {
		return member.WinRate
	}
}

func createInArenaFunc(arena string) func(string) bool {
	lowerArena := strings.ToLower(arena)
	return func(target string) bool {
		return strings.Contains(lowerArena, strings.ToLower(target))
	}
}
