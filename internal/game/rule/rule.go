// Package rule holds the pure play-validation logic: what shapes a
// selection of cards may take and when one play beats another.
package rule

import (
	"github.com/scoutfriends/scout-server/internal/apperrors"
	"github.com/scoutfriends/scout-server/internal/game/card"
)

// Kind classifies a proposed play.
type Kind int

const (
	Invalid Kind = iota
	Set
	Run
)

func (k Kind) String() string {
	switch k {
	case Set:
		return "Set"
	case Run:
		return "Run"
	default:
		return "Invalid"
	}
}

// Classify decides whether cards form a Set (all visible values equal,
// one card counts), a Run (>=2 visible values strictly ascending or
// strictly descending by exactly 1, in selection order), or neither.
// A single card classifies as a Set.
func Classify(cards []card.Card) Kind {
	if len(cards) == 0 {
		return Invalid
	}

	isSet := true
	for _, c := range cards[1:] {
		if c.Primary != cards[0].Primary {
			isSet = false
			break
		}
	}
	if isSet {
		return Set
	}

	ascending, descending := true, true
	for i := 1; i < len(cards); i++ {
		if cards[i].Primary != cards[i-1].Primary+1 {
			ascending = false
		}
		if cards[i].Primary != cards[i-1].Primary-1 {
			descending = false
		}
		if !ascending && !descending {
			return Invalid
		}
	}
	return Run
}

// IsSequentialInHand reports whether selection appears as a contiguous
// subsequence of hand, anchored at the first occurrence of the first
// selected card. Matching is exact on both faces: a flipped copy of a
// hand card does not match.
func IsSequentialInHand(hand, selection []card.Card) bool {
	if len(selection) == 0 || len(hand) < len(selection) {
		return false
	}

	start := -1
	for i := 0; i <= len(hand)-len(selection); i++ {
		if hand[i] == selection[0] {
			start = i
			break
		}
	}
	if start == -1 {
		return false
	}

	for i := 1; i < len(selection); i++ {
		if hand[start+i] != selection[i] {
			return false
		}
	}
	return true
}

// Beats decides whether next may replace prev as the table play.
// nil means the new play stands. Card count dominates: a longer play
// always wins and a shorter one always loses. Only at equal count do
// the kind and top-value comparisons apply: a Set beats a same-length
// Run regardless of value, and between equal kinds the higher top
// visible value must win.
func Beats(prev []card.Card, prevKind Kind, next []card.Card, nextKind Kind) error {
	if len(next) < len(prev) {
		return apperrors.ErrTooFewCards
	}
	if len(next) > len(prev) {
		return nil
	}

	if prevKind == Set && nextKind != Set {
		return apperrors.ErrSetBeatsRun
	}
	if prevKind == nextKind && maxPrimary(prev) >= maxPrimary(next) {
		return apperrors.ErrTooLow
	}
	return nil
}

func maxPrimary(cards []card.Card) int {
	highest := 0
	for _, c := range cards {
		if c.Primary > highest {
			highest = c.Primary
		}
	}
	return highest
}
