package solitaire

import "github.com/shlomif/KlondikeSolver/internal/card"

// MinWinAt computes an admissible lower bound on the number of moves
// remaining to a win from the current state: every stock
// card must be drawn and later played, every waste card must be
// played, same-suit inversions in the waste or in a tableau pile each
// force one extra detour move, and every tableau card (plus its
// face-down prefix) must move at least once.
func (g *Game) MinWinAt() int {
	win := 2*len(g.Piles[card.Stock].Cards) + len(g.Piles[card.Waste].Cards)

	waste := g.Piles[card.Waste]
	for i := len(waste.Cards) - 1; i >= 0; i-- {
		c1 := waste.Cards[i]
		for j := i - 1; j >= 0; j-- {
			c2 := waste.Cards[j]
			if c1.Suit == c2.Suit && c1.Rank > c2.Rank {
				win++
				break
			}
		}
	}

	for _, id := range card.TableauPiles {
		p := g.Piles[id]
		size := len(p.Cards)
		win += size
		top := p.Top
		if top < 0 {
			top = size
		}
		win += top

		for i := size - 1; i >= 0; i-- {
			c1 := p.Cards[i]
			limit := i - 1
			if top < i {
				limit = top - 1
			}
			for j := limit; j >= 0; j-- {
				c2 := p.Cards[j]
				if c1.Suit == c2.Suit && c1.Rank > c2.Rank {
					win++
					if top < i {
						i = top
					}
					break
				}
			}
		}
	}
	return win
}
