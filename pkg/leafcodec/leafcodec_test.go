package leafcodec

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Paris", "paris"},
		{"trim", "  paris  ", "paris"},
		{"collapse internal whitespace", "new\t york \n city", "new york city"},
		{"already canonical", "paris", "paris"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Canonicalize(tc.input))
		})
	}
}

func TestHashAnswerDeterministic(t *testing.T) {
	h1 := HashAnswer("Paris")
	h2 := HashAnswer("  paris ")
	require.Equal(t, h1, h2, "equivalent answers must hash to the same leaf")

	require.Equal(t, crypto.Keccak256Hash([]byte("paris")), h1)
}

func TestHashAnswerDistinguishesAnswers(t *testing.T) {
	require.NotEqual(t, HashAnswer("paris"), HashAnswer("london"))
}
