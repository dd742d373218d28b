// Package pile implements the ordered card sequences that make up the
// thirteen piles of a Klondike layout: add, flip, single/run removal,
// and the talon's fused draw-with-recycle operation.
//
// A Pile stores pointers into a deck owned by the caller; it never
// allocates or frees Card values itself. Cards is ordered bottom (index
// 0) to top (index len-1). Top is the index of the bottom-most face-up
// card, or -1 when the pile holds no face-up card.
package pile

import "github.com/shlomif/KlondikeSolver/internal/card"

// Pile is an ordered sequence of card references plus the face-up
// boundary index.
type Pile struct {
	ID    card.PileID
	Cards []*card.Card
	Top   int
}

// New returns an empty pile with no face-up card.
func New(id card.PileID) *Pile {
	return &Pile{ID: id, Top: -1}
}

// Clear empties the pile.
func (p *Pile) Clear() {
	p.Cards = p.Cards[:0]
	p.Top = -1
}

// Add appends c face-down to the top of the pile.
func (p *Pile) Add(c *card.Card) {
	c.FaceUp = false
	p.Cards = append(p.Cards, c)
}

// Flip toggles the face-up state of the pile's top card and maintains
// Top accordingly. A self-move (from==to in a Move) calls this.
func (p *Pile) Flip() {
	if len(p.Cards) == 0 {
		return
	}
	top := p.Cards[len(p.Cards)-1]
	top.FaceUp = !top.FaceUp
	if top.FaceUp {
		p.Top = len(p.Cards) - 1
	} else {
		p.Top = -1
	}
}

// HighValue returns the Value of the bottom-most card, or -1 if empty.
// Used to sort tableau piles into canonical order.
func (p *Pile) HighValue() int {
	if len(p.Cards) == 0 {
		return -1
	}
	return p.Cards[0].Value
}

// TopRank returns the rank of the top card, or -1 if empty.
func (p *Pile) TopRank() int {
	if len(p.Cards) == 0 {
		return -1
	}
	return int(p.Cards[len(p.Cards)-1].Rank)
}

// TopCard returns the top card, or nil if empty.
func (p *Pile) TopCard() *card.Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return p.Cards[len(p.Cards)-1]
}

// FaceUpCount returns the number of face-up cards at the top of the pile.
func (p *Pile) FaceUpCount() int {
	if p.Top < 0 {
		return 0
	}
	return len(p.Cards) - p.Top
}

// Remove moves the single top card of p onto the top of to.
func (p *Pile) Remove(to *Pile) {
	if to.Top < 0 {
		to.Top = len(to.Cards)
	}
	n := len(p.Cards)
	c := p.Cards[n-1]
	p.Cards = p.Cards[:n-1]
	to.Cards = append(to.Cards, c)
	if p.Top == len(p.Cards) {
		p.Top = -1
	}
}

// RemoveN moves the top count cards of p, as a run, onto the top of to,
// preserving their relative order.
func (p *Pile) RemoveN(to *Pile, count int) {
	if to.Top < 0 {
		to.Top = len(to.Cards)
	}
	n := len(p.Cards)
	to.Cards = append(to.Cards, p.Cards[n-count:]...)
	p.Cards = p.Cards[:n-count]
	if p.Top >= len(p.Cards) {
		p.Top = -1
	}
}

// RemoveTop draws n cards from p (the stock) onto to (the waste),
// flipping each one face-up. If p does not hold enough cards (fewer
// than n, or exactly n when thru is set), p's cards are drawn out, to
// is recycled back onto p as a new round, and the draw continues from
// it; only the net result is applied, leaving n minus p's old size
// cards in to. thru exists
// purely so undo can force the same recycle the forward move performed
// even when the card counts would otherwise look ambiguous. Returns
// whether a recycle occurred.
func (p *Pile) RemoveTop(to *Pile, n int, thru bool) bool {
	size := len(p.Cards)
	if size > n || (size == n && !thru) {
		i := size - n
		for size > i {
			size--
			c := p.Cards[size]
			c.FaceUp = !c.FaceUp
			to.Cards = append(to.Cards, c)
		}
		p.Cards = p.Cards[:size]
		return false
	}

	remain := len(to.Cards) + size - n
	for remain > 0 {
		remain--
		idx := len(to.Cards) - 1
		c := to.Cards[idx]
		to.Cards = to.Cards[:idx]
		c.FaceUp = !c.FaceUp
		p.Cards = append(p.Cards, c)
	}
	return true
}
