package royale

import "strings"

// Request objects are immutable parameter bundles consumed by the transport.
// The factories normalize and validate; the facade re-validates before
// delegating so the empty-tag invariant holds even for literal construction.

// ProfileRequest identifies a single player profile.
type ProfileRequest struct {
	Tag string
}

// NewProfileRequest builds a ProfileRequest from a raw tag. The tag is
// normalized; a tag that normalizes to empty is a validation failure.
func NewProfileRequest(tag string) (ProfileRequest, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return ProfileRequest{}, ErrMissingTag
	}
	return ProfileRequest{Tag: normalized}, nil
}

func (r ProfileRequest) validate() error {
	if strings.TrimSpace(r.Tag) == "" {
		return ErrMissingTag
	}
	return nil
}

// ProfilesRequest identifies a batch of player profiles fetched in a single
// round trip.
type ProfilesRequest struct {
	Tags []string
}

// NewProfilesRequest builds a ProfilesRequest from raw tags.
func NewProfilesRequest(tags []string) (ProfilesRequest, error) {
	normalized, err := normalizeTags(tags)
	if err != nil {
		return ProfilesRequest{}, err
	}
	return ProfilesRequest{Tags: normalized}, nil
}

func (r ProfilesRequest) validate() error {
	return validateTags(r.Tags)
}

// ClanRequest identifies a single clan.
type ClanRequest struct {
	Tag string
}

// NewClanRequest builds a ClanRequest from a raw tag.
func NewClanRequest(tag string) (ClanRequest, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return ClanRequest{}, ErrMissingTag
	}
	return ClanRequest{Tag: normalized}, nil
}

func (r ClanRequest) validate() error {
	if strings.TrimSpace(r.Tag) == "" {
		return ErrMissingTag
	}
	return nil
}

// ClansRequest identifies a batch of clans fetched in a single round trip.
type ClansRequest struct {
	Tags []string
}

// NewClansRequest builds a ClansRequest from raw tags.
func NewClansRequest(tags []string) (ClansRequest, error) {
	normalized, err := normalizeTags(tags)
	if err != nil {
		return ClansRequest{}, err
	}
	return ClansRequest{Tags: normalized}, nil
}

func (r ClansRequest) validate() error {
	return validateTags(r.Tags)
}

// ClanSearchRequest carries the optional clan-search filters. A nil request
// means "no filter"; zero-valued fields are omitted from the query string.
type ClanSearchRequest struct {
	Name       string `url:"name,omitempty"`
	Score      int    `url:"score,omitempty"`
	MinMembers int    `url:"minMembers,omitempty"`
	MaxMembers int    `url:"maxMembers,omitempty"`
}

func normalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, ErrMissingTags
	}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		n := NormalizeTag(tag)
		if n == "" {
			return nil, ErrMissingTag
		}
		normalized = append(normalized, n)
	}
	return normalized, nil
}

func validateTags(tags []string) error {
	if len(tags) == 0 {
		return ErrMissingTags
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return ErrMissingTag
		}
	}
	return nil
}
