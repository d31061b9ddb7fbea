package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sakura2024")
	require.NoError(t, err)
	assert.NotEqual(t, "Sakura2024", hash)

	assert.True(t, CheckPassword(hash, "Sakura2024"))
	assert.False(t, CheckPassword(hash, "sakura2024"))
}

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		strong   bool
	}{
		{"Sakura2024", true},
		{"Aa1bcdef", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.strong, IsPasswordStrong(tc.password), tc.password)
	}
}
