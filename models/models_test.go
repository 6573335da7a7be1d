package models

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected QueryFlag
	}{
		{"true", FlagOn},
		{"", FlagOff},
		{"True", FlagOff},
		{"TRUE", FlagOff},
		{"1", FlagOff},
		{"yes", FlagOff},
		{"false", FlagOff},
		{" true", FlagOff},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseQueryFlag(tt.raw))
		})
	}
}

func TestParseServerListParams(t *testing.T) {
	t.Parallel()

	q, err := url.ParseQuery("category=Gaming&qty=5&by_user=true&by_serverid=42&with_num_members=True")
	require.NoError(t, err)

	params := ParseServerListParams(q)
	assert.Equal(t, "Gaming", params.Category)
	assert.Equal(t, "5", params.Qty)
	assert.True(t, params.ByUser.On())
	assert.Equal(t, "42", params.ByServerID)
	assert.False(t, params.WithNumMembers.On())

	empty := ParseServerListParams(url.Values{})
	assert.Equal(t, ServerListParams{}, empty)
}

func TestServer_NumMembersSerialization(t *testing.T) {
	t.Parallel()

	s := Server{ID: 1, Name: "A", OwnerID: "u1", Category: "Gaming", Members: []string{"u1"}}

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "num_members")

	zero := 0
	s.NumMembers = &zero
	raw, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"num_members":0`)
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{"valid", CreateUserRequest{Username: "alice_1", Password: "password123"}, false},
		{"short username", CreateUserRequest{Username: "al", Password: "password123"}, true},
		{"bad char", CreateUserRequest{Username: "al-ice", Password: "password123"}, true},
		{"short password", CreateUserRequest{Username: "alice", Password: "short"}, true},
		{"long display name", CreateUserRequest{
			Username: "alice", Password: "password123",
			DisplayName: "this display name is definitely too long",
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := tt.req
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
