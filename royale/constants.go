package royale

// Static game-configuration resources. Each sub-resource is also reachable
// through its own endpoint, so the element types stand alone.

// Constants bundles every game-configuration sub-resource in one document.
type Constants struct {
	Alliance     Alliance       `json:"alliance"`
	Arenas       []Arena        `json:"arenas"`
	Badges       []Badge        `json:"badges"`
	ChestCycle   ChestCycleList `json:"chestCycle"`
	CountryCodes []CountryCode  `json:"countryCodes"`
	Rarities     []Rarity       `json:"rarities"`
	Cards        []ConstantCard `json:"cards"`
}

// Alliance lists the valid clan roles and clan types.
type Alliance struct {
	Roles []string `json:"roles"`
	Types []string `json:"types"`
}

// ChestCycleList is the fixed order chests are awarded in.
type ChestCycleList struct {
	MainCycle []string `json:"mainCycle"`
}

// CountryCode is one entry of the location reference list.
type CountryCode struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsCountry bool   `json:"isCountry"`
}

// Rarity describes the upgrade economics of a card rarity.
type Rarity struct {
	Name                 string `json:"name"`
	LevelCount           int    `json:"levelCount"`
	RelativeLevel        int    `json:"relativeLevel"`
	MirrorRelativeLevel  int    `json:"mirrorRelativeLevel"`
	CloneRelativeLevel   int    `json:"cloneRelativeLevel"`
	DonateCapacity       int    `json:"donateCapacity"`
	SortCapacity         int    `json:"sortCapacity"`
	UpgradeExp           []int  `json:"upgradeExp"`
	UpgradeMaterialCount []int  `json:"upgradeMaterialCount"`
	PowerLevelMultiplier []int  `json:"powerLevelMultiplier"`
	RefundGems           int    `json:"refundGems"`
}

// ConstantCard is the static definition of a card, independent of any
// player's collection.
type ConstantCard struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Elixir      int    `json:"elixir"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Arena       int    `json:"arena"`
	Description string `json:"description"`
	ID          int    `json:"id"`
}

// Endpoints is the list of API paths the server advertises.
type Endpoints []string
