// Package solitaire implements the Klondike game state: the deal, the
// legal-move generator, the admissible heuristic, and the canonical
// state key the search driver's transposition table is keyed on.
package solitaire

import (
	"fmt"

	"github.com/shlomif/KlondikeSolver/internal/card"
	"github.com/shlomif/KlondikeSolver/internal/pile"
)

// Game holds one deal's full state: the 52 cards (process-lifetime,
// mutated only through FaceUp), the 13 piles built over pointers into
// that array, the foundation-minima cache, and the move list the
// generator refills on every UpdateMoves call.
type Game struct {
	Cards [52]card.Card
	Piles [13]*pile.Pile
	Moves MoveList

	RedMin, BlackMin int
	Rounds           int
	FoundationCount  int

	rng   *Random
	order [7]card.PileID
}

// NewGame builds a game over a fresh 52-card deck in solved (unshuffled)
// order and deals it via Reset.
func NewGame() *Game {
	g := &Game{rng: NewRandom(1)}
	for v := 0; v < 52; v++ {
		g.Cards[v] = card.New(v)
	}
	for id := card.PileID(0); id < card.NumPiles; id++ {
		g.Piles[id] = pile.New(id)
	}
	g.Reset()
	return g
}

// Reset deals the standard Klondike layout from the current card
// identities in g.Cards: triangular tableau deal, stock loaded in
// reverse draw order, tableau tops flipped face-up.
func (g *Game) Reset() {
	g.RedMin, g.BlackMin = -1, -1
	g.Rounds = 0
	g.FoundationCount = 0
	for _, p := range g.Piles {
		p.Clear()
	}
	i := 0
	for j := card.Tableau1; j <= card.Tableau7; j++ {
		for k := j; k <= card.Tableau7; k++ {
			g.Piles[k].Add(&g.Cards[i])
			i++
		}
	}
	for v := 51; v >= 28; v-- {
		g.Piles[card.Stock].Add(&g.Cards[v])
	}
	for id := card.Tableau1; id <= card.Tableau7; id++ {
		g.Piles[id].Flip()
	}
}

// Shuffle randomizes card identities in place using the seeded mixer,
// then deals via Reset, and returns the seed actually used (the seed
// passed in, unless it is negative, in which case one is drawn from
// the generator's own stream so the draw itself stays reproducible
// given an outer seed).
func (g *Game) Shuffle(seed int) int {
	if seed < 0 {
		seed = g.rng.Next()
	}
	g.rng.SetSeed(seed)
	for x := 0; x < 250; x++ {
		k := g.rng.Next() % 52
		j := g.rng.Next() % 52
		a := g.Cards[k].Value
		g.Cards[k] = card.New(g.Cards[j].Value)
		g.Cards[j] = card.New(a)
	}
	g.Reset()
	return seed
}

// Load installs the 52 cards decoded from digits (see DecodeDeck) and
// deals via Reset.
func (g *Game) Load(digits string) error {
	values, err := DecodeDeck(digits)
	if err != nil {
		return err
	}
	for i, v := range values {
		g.Cards[i] = card.New(v)
	}
	g.Reset()
	return nil
}

// setFoundationMin recomputes the two foundation-minima caches. Suit
// ordering is fixed {0:clubs,1:diamonds,2:spades,3:hearts}; red lives
// in foundations 2 and 4 (diamonds, hearts), black in 1 and 3 (clubs,
// spades). Reordering suits means updating these index pairs.
func (g *Game) setFoundationMin() {
	one := g.Piles[card.Foundation2].TopRank()
	two := g.Piles[card.Foundation4].TopRank()
	if one <= two {
		g.RedMin = one
	} else {
		g.RedMin = two
	}
	one = g.Piles[card.Foundation1].TopRank()
	two = g.Piles[card.Foundation3].TopRank()
	if one <= two {
		g.BlackMin = one
	} else {
		g.BlackMin = two
	}
}

// MakeMove applies a single move and reports whether the talon draw it
// performed (if any) caused a stock recycle; UndoMove needs that thru
// bit to invert it exactly.
func (g *Game) MakeMove(from, to card.PileID, cards, val int) bool {
	thru := false
	if from != to {
		if val > 0 {
			if g.Piles[card.Stock].RemoveTop(g.Piles[card.Waste], val, false) {
				g.Rounds++
				thru = true
			}
		}
		if cards == 1 {
			g.Piles[from].Remove(g.Piles[to])
			if to.IsFoundation() {
				g.FoundationCount++
				g.setFoundationMin()
			} else if from.IsFoundation() {
				g.FoundationCount--
				g.setFoundationMin()
			}
		} else {
			g.Piles[from].RemoveN(g.Piles[to], cards)
		}
	} else {
		g.Piles[from].Flip()
	}
	return thru
}

// MakeMoveList applies a chain of moves linked by Next, root-to-leaf
// order as produced by path reconstruction (oldest move first).
func (g *Game) MakeMoveList(first *Move) {
	for m := first; m != nil; m = m.Next {
		if m.From != m.To {
			if m.Val > 0 {
				if g.Piles[card.Stock].RemoveTop(g.Piles[card.Waste], m.Val, false) {
					g.Rounds++
				}
			}
			if m.Cards == 1 {
				g.Piles[m.From].Remove(g.Piles[m.To])
				if m.To.IsFoundation() {
					g.FoundationCount++
					g.setFoundationMin()
				} else if m.From.IsFoundation() {
					g.FoundationCount--
					g.setFoundationMin()
				}
			} else {
				g.Piles[m.From].RemoveN(g.Piles[m.To], m.Cards)
			}
		} else {
			g.Piles[m.From].Flip()
		}
	}
}

// UndoMove reverses a single move applied by MakeMove, given the thru
// bit MakeMove returned.
func (g *Game) UndoMove(from, to card.PileID, cards, val int, thru bool) {
	if from != to {
		if cards == 1 {
			g.Piles[to].Remove(g.Piles[from])
			if to.IsFoundation() {
				g.FoundationCount--
				g.setFoundationMin()
			} else if from.IsFoundation() {
				g.FoundationCount++
				g.setFoundationMin()
			}
		} else {
			g.Piles[to].RemoveN(g.Piles[from], cards)
		}
		if val > 0 {
			if g.Piles[card.Waste].RemoveTop(g.Piles[card.Stock], val, thru) {
				g.Rounds--
			}
		}
	} else {
		g.Piles[to].Flip()
	}
}

// Key returns the canonical state fingerprint: the seven
// tableau piles sorted by HighValue to collapse their symmetry, then
// stock/waste tops, packed foundation sizes, and each sorted tableau's
// face-up run terminated by a byte that encodes its hidden-card count.
func (g *Game) Key() []byte {
	for i, id := range card.TableauPiles {
		g.order[i] = id
	}
	cur := 1
	for cur < 7 {
		curT := cur
		for {
			if g.Piles[g.order[curT-1]].HighValue() <= g.Piles[g.order[curT]].HighValue() {
				break
			}
			g.order[curT-1], g.order[curT] = g.order[curT], g.order[curT-1]
			curT--
			if curT <= 0 {
				break
			}
		}
		cur++
	}

	buf := make([]byte, 0, 32)
	stock := g.Piles[card.Stock]
	if len(stock.Cards) > 0 {
		buf = append(buf, byte(stock.Cards[len(stock.Cards)-1].Value+1))
	} else {
		buf = append(buf, 1)
	}
	waste := g.Piles[card.Waste]
	if len(waste.Cards) > 0 {
		buf = append(buf, byte(waste.Cards[len(waste.Cards)-1].Value+1))
	} else {
		buf = append(buf, 1)
	}
	buf = append(buf, byte((len(g.Piles[card.Foundation1].Cards)+1)<<4|(len(g.Piles[card.Foundation2].Cards)+1)))
	buf = append(buf, byte((len(g.Piles[card.Foundation3].Cards)+1)<<4|(len(g.Piles[card.Foundation4].Cards)+1)))

	for _, id := range g.order {
		p := g.Piles[id]
		if p.Top >= 0 {
			for i := p.Top; i < len(p.Cards); i++ {
				buf = append(buf, byte(p.Cards[i].Value+1))
			}
		}
		buf = append(buf, byte(120-p.Top))
	}
	buf = append(buf, 0)
	return buf
}

// String renders the whole layout plus the heuristic value. Not a
// stable format; for verbose diagnostics only.
func (g *Game) String() string {
	s := ""
	for i := 0; i < card.NumPiles; i++ {
		s += fmt.Sprintf("%2d: ", i)
		p := g.Piles[i]
		for j := len(p.Cards) - 1; j >= 0; j-- {
			s += p.Cards[j].Label()
		}
		s += "\n"
	}
	s += fmt.Sprintf("MinWinAt: %d\n", g.MinWinAt())
	return s
}
