package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// ConvertShorthandFilter converts the compact roster filter syntax to expr
// syntax. Shorthand is what users type on the command line; expr is what the
// compiler understands.
func ConvertShorthandFilter(shorthand string) (string, error) {
	// Handle empty filter
	if strings.TrimSpace(shorthand) == "" {
		return "", nil
	}

	// First, handle logical operators
	filter := strings.ReplaceAll(shorthand, " AND ", " and ")
	filter = strings.ReplaceAll(filter, " OR ", " or ")
	filter = strings.ReplaceAll(filter, " NOT ", " not ")

	// Regular expressions for different filter patterns
	patterns := map[*regexp.Regexp]func([]string) string{
		// role:"value" or role!:"value"
		regexp.MustCompile(`role(!?):"([^"]+)"`): func(matches []string) string {
			if matches[1] == "!" {
				return fmt.Sprintf(`not hasRole("%s")`, matches[2])
			}
			return fmt.Sprintf(`hasRole("%s")`, matches[2])
		},

		// name:"value" or name!:"value"
		regexp.MustCompile(`name(!?):"([^"]+)"`): func(matches []string) string {
			if matches[1] == "!" {
				return fmt.Sprintf(`not contains(Name, "%s")`, matches[2])
			}
			return fmt.Sprintf(`contains(Name, "%s")`, matches[2])
		},

		// arena:"value"
		regexp.MustCompile(`arena:"([^"]+)"`): func(matches []string) string {
			return fmt.Sprintf(`inArena("%s")`, matches[1])
		},

		// favorite:"value"
		regexp.MustCompile(`favorite:"([^"]+)"`): func(matches []string) string {
			return fmt.Sprintf(`contains(FavoriteCard, "%s")`, matches[1])
		},

		// trophies:>N, trophies:>=N, ...
		regexp.MustCompile(`trophies:([><=]+)(\d+)`): func(matches []string) string {
			return fmt.Sprintf(`Trophies %s %s`, matches[1], matches[2])
		},

		// donations_received:>N
		regexp.MustCompile(`donations_received:([><=]+)(\d+)`): func(matches []string) string {
			return fmt.Sprintf(`DonationsReceived %s %s`, matches[1], matches[2])
		},

		// donations:>N
		regexp.MustCompile(`donations:([><=]+)(\d+)`): func(matches []string) string {
			return fmt.Sprintf(`Donations %s %s`, matches[1], matches[2])
		},

		// rank:<=N
		regexp.MustCompile(`rank:([><=]+)(\d+)`): func(matches []string) string {
			return fmt.Sprintf(`Rank %s %s`, matches[1], matches[2])
		},

		// level:>=N
		regexp.MustCompile(`level:([><=]+)(\d+)`): func(matches []string) string {
			return fmt.Sprintf(`ExpLevel %s %s`, matches[1], matches[2])
		},

		// win_rate:>N (requires enrichment)
		regexp.MustCompile(`win_rate:([><=]+)(\d+(?:\.\d+)?)`): func(matches []string) string {
			return fmt.Sprintf(`winRate() %s %s`, matches[1], matches[2])
		},

		// standalone flags
		regexp.MustCompile(`\binactive\b`): func(matches []string) string {
			return `(Donations == 0 and DonationsDelta <= 0)`
		},
		regexp.MustCompile(`\benriched\b`): func(matches []string) string {
			return `Enriched`
		},
		regexp.MustCompile(`\bleadership\b`): func(matches []string) string {
			return `isLeadership()`
		},
	}

	// Apply all pattern replacements
	for pattern, replacer := range patterns {
		filter = pattern.ReplaceAllStringFunc(filter, func(match string) string {
			matches := pattern.FindStringSubmatch(match)
			return replacer(matches)
		})
	}

	return filter, nil
}

// IsShorthandFilter checks if a filter uses the compact syntax
func IsShorthandFilter(filter string) bool {
	shorthandPatterns := []string{
		"role:",
		"role!:",
		"name:",
		"name!:",
		"arena:",
		"favorite:",
		"trophies:",
		"donations:",
		"donations_received:",
		"rank:",
		"level:",
		"win_rate:",
	}

	for _, pattern := range shorthandPatterns {
		if strings.Contains(filter, pattern) {
			return true
		}
	}

	return shorthandFlagPattern.MatchString(filter)
}

// shorthandFlagPattern matches the bare shorthand flags. Expr property and
// helper names are capitalized or camelCase, so lowercase whole words are
// unambiguous.
var shorthandFlagPattern = regexp.MustCompile(`\b(inactive|enriched|leadership)\b`)
