package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive with spaces",
			input: "as KH qD",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AxKs", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cards)
		})
	}
}

func TestCardNames(t *testing.T) {
	c := NewCard(Spades, Ace)
	assert.Equal(t, "A♠", c.String())
	assert.Equal(t, "Ace of Spades", c.Name())

	c = NewCard(Diamonds, Two)
	assert.Equal(t, "Two of Diamonds", c.Name())
	assert.True(t, c.IsRed())

	assert.Equal(t, "?", Rank(1).String())
	assert.Equal(t, "Unknown", Rank(15).Name())
}
