// Package pack renders a solved move chain into the three-byte-per-step
// packed text format consumed by an external solution viewer. It is not
// behaviorally load-bearing for the solver itself; it exists only for
// interop with that viewer.
package pack

import (
	"github.com/shlomif/KlondikeSolver/internal/card"
	"github.com/shlomif/KlondikeSolver/internal/solitaire"
)

// remapPile translates this repository's pile numbering onto the
// external viewer's: tableau piles shift up by one slot, stock takes
// waste's code (0), and waste takes the first tableau's code (1).
func remapPile(id card.PileID) int {
	switch {
	case id >= card.Tableau1 && id <= card.Tableau7:
		return int(id) + 1
	case id == card.Stock:
		return int(card.Waste)
	case id == card.Waste:
		return int(card.Tableau1)
	default:
		return int(id)
	}
}

// Encode renders moves (root-to-leaf order, as returned in a search
// Result) as the packed string: a two-character header giving the
// total talon-draw-equivalent step count in base 24 (the stock+waste
// capacity), followed by three characters per talon draw consumed,
// three per stock recycle, and three per move.
func Encode(moves []solitaire.Move) string {
	total := packedHeaderCount(moves)

	buf := make([]byte, 0, 2+len(moves)*3)
	buf = append(buf, byte(total/24)+'0', byte(total%24)+'0')

	ss, ws := 24, 0
	for _, m := range moves {
		for val := m.Val; val > 0; val-- {
			if ss == 0 {
				buf = append(buf, '1', '0', byte(ws)+'0')
				ss = ws
				ws = 0
			}
			buf = append(buf, '0', '1', '1')
			ss--
			ws++
		}
		if m.From == card.Waste {
			ws--
		}
		from := remapPile(m.From)
		to := remapPile(m.To)
		buf = append(buf, byte(from)+'0', byte(to)+'0', byte(m.Cards)+'0')
	}
	return string(buf)
}

// packedHeaderCount computes the total step count the two-character
// header encodes: one unit per talon draw, per stock recycle, and per
// move, tracking recycles with the same stock/waste counters Encode's
// body uses.
func packedHeaderCount(moves []solitaire.Move) int {
	f := 0
	ss, ws := 24, 0
	for _, m := range moves {
		for val := m.Val; val > 0; val-- {
			if ss == 0 {
				f++
				ss = ws
				ws = 0
			}
			ss--
			ws++
		}
		if m.From == card.Waste {
			ws--
		}
		f += 1 + m.Val
	}
	return f
}
