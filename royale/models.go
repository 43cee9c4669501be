package royale

// Model records mirror the JSON documents returned by the upstream API,
// one type per resource shape. They are plain value holders: nothing here
// is mutated after the transport returns it, and no record holds a live
// reference to another resource.

// ClanRole is the membership role within a clan.
type ClanRole string

// Clan roles as reported by the upstream API.
const (
	RoleMember   ClanRole = "member"
	RoleElder    ClanRole = "elder"
	RoleCoLeader ClanRole = "coLeader"
	RoleLeader   ClanRole = "leader"
)

// IsLeadership reports whether the role can manage the clan.
func (r ClanRole) IsLeadership() bool {
	return r == RoleLeader || r == RoleCoLeader
}

// Badge is a clan emblem.
type Badge struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	ID       int    `json:"id"`
	Image    string `json:"image"`
}

// Arena describes a trophy-gated arena.
type Arena struct {
	Name        string `json:"name"`
	Arena       string `json:"arena"`
	ArenaID     int    `json:"arenaID"`
	TrophyLimit int    `json:"trophyLimit"`
}

// Location is a country or region attached to a clan.
type Location struct {
	Name      string `json:"name"`
	IsCountry bool   `json:"isCountry"`
	Code      string `json:"code"`
}

// Card is a card instance in a player's collection or deck.
type Card struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Elixir      int    `json:"elixir"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Arena       int    `json:"arena"`
	Description string `json:"description"`
	ID          int    `json:"id"`
	Level       int    `json:"level"`
	Count       int    `json:"count"`
	Icon        string `json:"icon"`
}

// Profile is a full player profile.
type Profile struct {
	Tag         string      `json:"tag"`
	Name        string      `json:"name"`
	Trophies    int         `json:"trophies"`
	NameChanged bool        `json:"nameChanged"`
	GlobalRank  int         `json:"globalRank"`
	Clan        *PlayerClan `json:"clan,omitempty"`
	Arena       Arena       `json:"arena"`
	Stats       PlayerStats `json:"stats"`
	Games       PlayerGames `json:"games"`
	ChestCycle  ChestCycle  `json:"chestCycle"`
	DeckLink    string      `json:"deckLink"`
	Deck        []Card      `json:"currentDeck"`
}

// ClanTag returns the tag of the player's clan, or "" for clanless players.
func (p *Profile) ClanTag() string {
	if p.Clan == nil {
		return ""
	}
	return p.Clan.Tag
}

// PlayerClan is the clan summary embedded in a profile.
type PlayerClan struct {
	Tag               string   `json:"tag"`
	Name              string   `json:"name"`
	Role              ClanRole `json:"role"`
	Donations         int      `json:"donations"`
	DonationsReceived int      `json:"donationsReceived"`
	DonationsDelta    int      `json:"donationsDelta"`
	Badge             Badge    `json:"badge"`
}

// PlayerStats holds lifetime player statistics.
type PlayerStats struct {
	TournamentCardsWon int    `json:"tournamentCardsWon"`
	MaxTrophies        int    `json:"maxTrophies"`
	ThreeCrownWins     int    `json:"threeCrownWins"`
	CardsFound         int    `json:"cardsFound"`
	FavoriteCard       string `json:"favoriteCard"`
	TotalDonations     int    `json:"totalDonations"`
	ChallengeMaxWins   int    `json:"challengeMaxWins"`
	ChallengeCardsWon  int    `json:"challengeCardsWon"`
	Level              int    `json:"level"`
}

// PlayerGames holds game counters.
type PlayerGames struct {
	Total            int `json:"total"`
	TournamentGames  int `json:"tournamentGames"`
	Wins             int `json:"wins"`
	Losses           int `json:"losses"`
	Draws            int `json:"draws"`
	CurrentWinStreak int `json:"currentWinStreak"`
}

// WinRate returns the percentage of games won, 0 for players with no games.
func (g PlayerGames) WinRate() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Total) * 100
}

// ChestCycle holds the player's position in the chest cycle and the
// distance to each special chest.
type ChestCycle struct {
	Position     int `json:"position"`
	Magical      int `json:"magical"`
	Giant        int `json:"giant"`
	Epic         int `json:"epic"`
	Legendary    int `json:"legendary"`
	SuperMagical int `json:"superMagical"`
}

// Clan is the short clan form returned by search and ranking endpoints.
type Clan struct {
	Tag           string   `json:"tag"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Score         int      `json:"score"`
	MemberCount   int      `json:"memberCount"`
	RequiredScore int      `json:"requiredScore"`
	Donations     int      `json:"donations"`
	Badge         Badge    `json:"badge"`
	Location      Location `json:"location"`
}

// DetailedClan is the full clan document including the member list.
type DetailedClan struct {
	Tag           string       `json:"tag"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Type          string       `json:"type"`
	Score         int          `json:"score"`
	MemberCount   int          `json:"memberCount"`
	RequiredScore int          `json:"requiredScore"`
	Donations     int          `json:"donations"`
	Badge         Badge        `json:"badge"`
	Location      Location     `json:"location"`
	Members       []ClanMember `json:"members"`
}

// MemberTags returns the tags of all clan members in roster order.
func (c *DetailedClan) MemberTags() []string {
	tags := make([]string, 0, len(c.Members))
	for _, member := range c.Members {
		tags = append(tags, member.Tag)
	}
	return tags
}

// ClanMember is one row of a clan's member list.
type ClanMember struct {
	Name              string   `json:"name"`
	Tag               string   `json:"tag"`
	Role              ClanRole `json:"role"`
	ExpLevel          int      `json:"expLevel"`
	Trophies          int      `json:"trophies"`
	Donations         int      `json:"donations"`
	DonationsReceived int      `json:"donationsReceived"`
	DonationsDelta    int      `json:"donationsDelta"`
	DonationsPercent  float64  `json:"donationsPercent"`
	Arena             Arena    `json:"arena"`
	Rank              int      `json:"rank"`
	PreviousRank      int      `json:"previousRank"`
}

// ClanHistory maps snapshot timestamps to clan history entries.
type ClanHistory map[string]ClanHistoryEntry

// ClanHistoryEntry is one historical snapshot of a clan.
type ClanHistoryEntry struct {
	Donations   int                 `json:"donations"`
	MemberCount int                 `json:"memberCount"`
	Members     []ClanHistoryMember `json:"members"`
}

// ClanHistoryMember is a member row within a history snapshot.
type ClanHistoryMember struct {
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	Donations int    `json:"donations"`
}

// Battle is one battle from a clan's battle feed.
type Battle struct {
	Type           string         `json:"type"`
	UTCTime        int64          `json:"utcTime"`
	DeckType       string         `json:"deckType"`
	TeamSize       int            `json:"teamSize"`
	Winner         int            `json:"winner"`
	TeamCrowns     int            `json:"teamCrowns"`
	OpponentCrowns int            `json:"opponentCrowns"`
	Team           []BattlePlayer `json:"team"`
	Opponent       []BattlePlayer `json:"opponent"`
	Arena          Arena          `json:"arena"`
	Mode           BattleMode     `json:"mode"`
}

// IsDraw reports whether the battle ended with equal crowns.
func (b Battle) IsDraw() bool {
	return b.Winner == 0
}

// TeamWon reports whether the recorded team took more crowns.
func (b Battle) TeamWon() bool {
	return b.Winner > 0
}

// BattleMode describes the rules a battle was played under.
type BattleMode struct {
	Name            string `json:"name"`
	CardLevels      string `json:"cardLevels"`
	OvertimeSeconds int    `json:"overtimeSeconds"`
	SameDeck        bool   `json:"sameDeck"`
}

// BattlePlayer is one participant in a battle.
type BattlePlayer struct {
	Tag           string      `json:"tag"`
	Name          string      `json:"name"`
	CrownsEarned  int         `json:"crownsEarned"`
	StartTrophies int         `json:"startTrophies"`
	TrophyChange  int         `json:"trophyChange"`
	Clan          *BattleClan `json:"clan,omitempty"`
	Deck          []Card      `json:"deck"`
}

// BattleClan is the clan summary embedded in a battle participant.
type BattleClan struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Badge Badge  `json:"badge"`
}

// Tournament is a full tournament document.
type Tournament struct {
	Tag         string                  `json:"tag"`
	Open        bool                    `json:"open"`
	Status      string                  `json:"status"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	MaxPlayers  int                     `json:"maxPlayers"`
	PlayerCount int                     `json:"playerCount"`
	CreateTime  int64                   `json:"createTime"`
	PrepTime    int64                   `json:"prepTime"`
	StartTime   int64                   `json:"startTime"`
	EndTime     int64                   `json:"endTime"`
	Creator     *TournamentParticipant  `json:"creator,omitempty"`
	Members     []TournamentParticipant `json:"members"`
}

// IsFull reports whether the tournament has reached its capacity.
func (t *Tournament) IsFull() bool {
	return t.MaxPlayers > 0 && t.PlayerCount >= t.MaxPlayers
}

// TournamentParticipant is one entrant in a tournament.
type TournamentParticipant struct {
	Tag   string          `json:"tag"`
	Name  string          `json:"name"`
	Score int             `json:"score"`
	Rank  int             `json:"rank"`
	Clan  *TournamentClan `json:"clan,omitempty"`
}

// TournamentClan is the clan summary embedded in a tournament participant.
type TournamentClan struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Badge Badge  `json:"badge"`
}

// TopClan is one row of a clan leaderboard.
type TopClan struct {
	Tag          string   `json:"tag"`
	Name         string   `json:"name"`
	Score        int      `json:"score"`
	MemberCount  int      `json:"memberCount"`
	Rank         int      `json:"rank"`
	PreviousRank int      `json:"previousRank"`
	Badge        Badge    `json:"badge"`
	Location     Location `json:"location"`
}

// TopPlayer is one row of a player leaderboard.
type TopPlayer struct {
	Tag          string      `json:"tag"`
	Name         string      `json:"name"`
	ExpLevel     int         `json:"expLevel"`
	Trophies     int         `json:"trophies"`
	Rank         int         `json:"rank"`
	PreviousRank int         `json:"previousRank"`
	Clan         *PlayerClan `json:"clan,omitempty"`
	Arena        Arena       `json:"arena"`
}

// Popularity records how often a resource has been requested through the API.
type Popularity struct {
	Hits          int     `json:"hits"`
	HitsPerDayAvg float64 `json:"hitsPerDayAvg"`
}

// PopularClan is one entry of the most-requested-clans list.
type PopularClan struct {
	Popularity  Popularity `json:"popularity"`
	Tag         string     `json:"tag"`
	Name        string     `json:"name"`
	Score       int        `json:"score"`
	MemberCount int        `json:"memberCount"`
	Badge       Badge      `json:"badge"`
}

// PopularPlayer is one entry of the most-requested-players list.
type PopularPlayer struct {
	Popularity Popularity `json:"popularity"`
	Tag        string     `json:"tag"`
	Name       string     `json:"name"`
	Trophies   int        `json:"trophies"`
}

// PopularTournament is one entry of the most-requested-tournaments list.
type PopularTournament struct {
	Popularity  Popularity `json:"popularity"`
	Tag         string     `json:"tag"`
	Open        bool       `json:"open"`
	Status      string     `json:"status"`
	Name        string     `json:"name"`
	MaxPlayers  int        `json:"maxPlayers"`
	PlayerCount int        `json:"playerCount"`
}
