package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Léon: The Professional", "leon the professional"},
		{"SPY x FAMILY", "spy x family"},
		{"Tom & Jerry", "tom and jerry"},
		{"  Attack   on\tTitan ", "attack on titan"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestScore_ExactBeatsPartial(t *testing.T) {
	exact := Score("one piece", "One Piece")
	partial := Score("one piece", "One Punch Man")
	assert.Greater(t, exact, partial)
	assert.InDelta(t, 1.0, exact, 0.001)
}

type hit struct{ title string }

func TestRank_ClosestFirst(t *testing.T) {
	items := []hit{
		{"One Punch Man"},
		{"One Piece Film: Red"},
		{"One Piece"},
	}

	Rank("one piece", items, func(h hit) string { return h.title })

	assert.Equal(t, "One Piece", items[0].title)
}

func TestRank_StableOnTies(t *testing.T) {
	items := []hit{{"Naruto"}, {"Naruto"}, {"Naruto"}}
	before := make([]hit, len(items))
	copy(before, items)

	Rank("bleach", items, func(h hit) string { return h.title })

	assert.Equal(t, before, items)
}

func TestRank_EmptyQueryNoop(t *testing.T) {
	items := []hit{{"B"}, {"A"}}
	Rank("  ", items, func(h hit) string { return h.title })
	assert.Equal(t, []hit{{"B"}, {"A"}}, items)
}
