package royale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileRequest(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    string
		wantErr error
	}{
		{name: "plain tag", tag: "2PP", want: "2PP"},
		{name: "hash prefix is stripped", tag: "#2pp", want: "2PP"},
		{name: "surrounding whitespace", tag: "  #8qq  ", want: "8QQ"},
		{name: "letter O becomes zero", tag: "#oVoL", want: "0V0L"},
		{name: "empty tag", tag: "", wantErr: ErrMissingTag},
		{name: "blank tag", tag: "   ", wantErr: ErrMissingTag},
		{name: "hash only", tag: "###", wantErr: ErrMissingTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewProfileRequest(tt.tag)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Tag)
		})
	}
}

func TestNewProfilesRequest(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		want    []string
		wantErr error
	}{
		{name: "batch is normalized", tags: []string{"#2pp", "8qq"}, want: []string{"2PP", "8QQ"}},
		{name: "single entry", tags: []string{"abc"}, want: []string{"ABC"}},
		{name: "nil list", tags: nil, wantErr: ErrMissingTags},
		{name: "empty list", tags: []string{}, wantErr: ErrMissingTags},
		{name: "empty entry", tags: []string{"2pp", ""}, wantErr: ErrMissingTag},
		{name: "blank entry", tags: []string{"2pp", " # "}, wantErr: ErrMissingTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewProfilesRequest(tt.tags)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req.Tags)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Tags)
		})
	}
}

func TestNewClanRequest(t *testing.T) {
	req, err := NewClanRequest("#2cccp")
	require.NoError(t, err)
	assert.Equal(t, "2CCCP", req.Tag)

	_, err = NewClanRequest(" ")
	assert.ErrorIs(t, err, ErrMissingTag)
}

func TestNewClansRequest(t *testing.T) {
	req, err := NewClansRequest([]string{"#2cccp", "#2u2gg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2CCCP", "2U2GG"}, req.Tags)

	_, err = NewClansRequest(nil)
	assert.ErrorIs(t, err, ErrMissingTags)
}

// Requests built from equivalent raw input are interchangeable: two
// spellings of the same tag compare equal after construction.
func TestRequestEquality(t *testing.T) {
	a, err := NewProfileRequest("#2pp")
	require.NoError(t, err)
	b, err := NewProfileRequest("  2pp")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a == b, "single-tag requests are comparable")

	c, err := NewClanRequest("2CCCP")
	require.NoError(t, err)
	d, err := NewClanRequest("#2cccp")
	require.NoError(t, err)
	assert.Equal(t, c, d)

	batchA, err := NewProfilesRequest([]string{"#2pp", "8qq"})
	require.NoError(t, err)
	batchB, err := NewProfilesRequest([]string{"2PP", "#8QQ"})
	require.NoError(t, err)
	assert.Equal(t, batchA, batchB)

	assert.True(t, ClanSearchRequest{Name: "royal", MinMembers: 10} == ClanSearchRequest{Name: "royal", MinMembers: 10})
}
