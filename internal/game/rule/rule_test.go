package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutfriends/scout-server/internal/apperrors"
	"github.com/scoutfriends/scout-server/internal/game/card"
)

// cards builds a hand from visible values; secondaries are filled with
// an arbitrary distinct value.
func cards(primaries ...int) []card.Card {
	out := make([]card.Card, len(primaries))
	for i, p := range primaries {
		s := p + 1
		if s > card.MaxValue {
			s = p - 1
		}
		out[i] = card.Card{Primary: p, Secondary: s}
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []card.Card
		want  Kind
	}{
		{"empty", nil, Invalid},
		{"single card is a set", cards(7), Set},
		{"pair set", cards(4, 4), Set},
		{"triple set", cards(9, 9, 9), Set},
		{"ascending run", cards(3, 4, 5), Run},
		{"descending run", cards(8, 7, 6), Run},
		{"two card run", cards(1, 2), Run},
		{"gap breaks run", cards(3, 5, 6), Invalid},
		{"direction change", cards(3, 4, 3), Invalid},
		{"mixed values", cards(2, 9, 5), Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.cards))
		})
	}
}

func TestClassify_RunIsOrderSensitive(t *testing.T) {
	t.Parallel()

	// A valid run reordered is no longer a run; a set reordered stays
	// a set.
	assert.Equal(t, Run, Classify(cards(4, 5, 6)))
	assert.Equal(t, Invalid, Classify(cards(5, 4, 6)))
	assert.Equal(t, Invalid, Classify(cards(6, 4, 5)))

	assert.Equal(t, Set, Classify(cards(4, 4, 4)))
}

func TestIsSequentialInHand(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		{Primary: 3, Secondary: 5},
		{Primary: 4, Secondary: 9},
		{Primary: 5, Secondary: 1},
		{Primary: 2, Secondary: 8},
	}

	t.Run("contiguous selection", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsSequentialInHand(hand, hand[1:3]))
		assert.True(t, IsSequentialInHand(hand, hand[:1]))
		assert.True(t, IsSequentialInHand(hand, hand))
	})

	t.Run("non-adjacent selection", func(t *testing.T) {
		t.Parallel()
		sel := []card.Card{hand[0], hand[2]}
		assert.False(t, IsSequentialInHand(hand, sel))
	})

	t.Run("empty or oversized selection", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsSequentialInHand(hand, nil))
		assert.False(t, IsSequentialInHand(hand[:2], hand))
	})

	t.Run("flipped card does not match", func(t *testing.T) {
		t.Parallel()
		sel := []card.Card{hand[1].Flip()}
		assert.False(t, IsSequentialInHand(hand, sel))
	})

	t.Run("card not in hand", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsSequentialInHand(hand, []card.Card{{Primary: 10, Secondary: 1}}))
	})
}

func TestBeats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prev    []card.Card
		next    []card.Card
		wantErr error
	}{
		{"anything beats empty table", nil, cards(2), nil},
		{"more cards always win", cards(9, 9), cards(2, 3, 4), nil},
		{"fewer cards always lose", cards(2, 3, 4), cards(9, 9), apperrors.ErrTooFewCards},
		{"set beats same length run", cards(3, 3), cards(4, 5), apperrors.ErrSetBeatsRun},
		{"run does not block set", cards(4, 5), cards(3, 3), nil},
		{"higher set wins", cards(3, 3), cards(5, 5), nil},
		{"equal set value loses", cards(5, 5), cards(5, 5), apperrors.ErrTooLow},
		{"lower set value loses", cards(7, 7), cards(6, 6), apperrors.ErrTooLow},
		{"higher run wins", cards(3, 4), cards(5, 6), nil},
		{"lower run loses", cards(5, 6), cards(3, 4), apperrors.ErrTooLow},
		{"single higher card wins", cards(4), cards(8), nil},
		{"single lower card loses", cards(8), cards(4), apperrors.ErrTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Beats(tt.prev, Classify(tt.prev), tt.next, Classify(tt.next))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBeats_CountDominatesShapeAndValue(t *testing.T) {
	t.Parallel()

	// A 3-card run of low value beats a 2-card set of high value.
	prev := cards(10, 10)
	next := cards(1, 2, 3)
	assert.NoError(t, Beats(prev, Classify(prev), next, Classify(next)))
}
