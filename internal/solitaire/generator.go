package solitaire

import "github.com/shlomif/KlondikeSolver/internal/card"

// UpdateMoves refills g.Moves with every legal move from the current
// state, in a deterministic order for reproducible solves: flip; then,
// for each tableau source pile ascending, its tableau-to-foundation move
// followed by its tableau-to-tableau moves; waste, foundation-to-tableau,
// then stock-with-draw.
//
// Two short-circuits apply: a pending face-down tableau top forces an
// immediate flip with nothing else considered, and a "safe" auto-send
// to foundation clears every other candidate and emits only itself.
func (g *Game) UpdateMoves() {
	g.Moves.Clear()

	for _, id := range card.TableauPiles {
		p := g.Piles[id]
		if len(p.Cards) == 0 {
			continue
		}
		top := p.Cards[len(p.Cards)-1]
		if !top.FaceUp {
			g.Moves.AddLast(id, id, 0, 0)
			return
		}
	}

	wasteSize := len(g.Piles[card.Waste].Cards)
	stockSize := len(g.Piles[card.Stock].Cards)

	// Determine whether a king is waiting in the talon; this feeds the
	// "is moving this whole pile actually useful" test below.
	stockKing := false
	for _, c := range g.Piles[card.Stock].Cards {
		if c.Rank == 12 {
			stockKing = true
			break
		}
	}
	if !stockKing {
		for _, c := range g.Piles[card.Waste].Cards {
			if c.Rank == 12 {
				stockKing = true
				break
			}
		}
	}

	// amt == -5 means "not yet computed"; computed lazily the first time
	// a whole-pile-to-empty-column move is considered.
	amt := -5

	for _, srcID := range card.TableauPiles {
		src := g.Piles[srcID]
		srcSize := len(src.Cards)
		if srcSize == 0 {
			continue
		}
		card1 := src.Cards[srcSize-1]
		cardFoundation := card.FoundationFor(card1.Suit)
		if card1.Rank-card.Rank(g.Piles[cardFoundation].TopRank()) == 1 {
			min := oppositeMin(g, card1.Color) + 2
			if int(card1.Rank) <= min {
				g.Moves.Clear()
				g.Moves.AddLast(srcID, cardFoundation, 1, 0)
				return
			}
			g.Moves.AddLast(srcID, cardFoundation, 1, 0)
		}

		card2 := src.Cards[src.Top]
		runLen := int(card2.Rank-card1.Rank) + 1
		kingMoved := false

		for _, dstID := range card.TableauPiles {
			if dstID == srcID {
				continue
			}
			dst := g.Piles[dstID]
			dstSize := len(dst.Cards)
			if dstSize == 0 {
				if card2.Rank != 12 || srcSize == runLen || kingMoved {
					continue
				}
				g.Moves.AddLast(srcID, dstID, runLen, 0)
				kingMoved = true
				continue
			}
			card3 := dst.Cards[dstSize-1]
			if card1.Rank >= card3.Rank || int(card2.Rank)+1 < int(card3.Rank) ||
				((card3.Color^card1.Color)^(card3.Parity^card1.Parity)) != 0 {
				continue
			}
			moved := int(card3.Rank - card1.Rank)

			if moved == runLen {
				if srcSize == runLen {
					if amt == -5 {
						amt = wholePileMoveClass(g, stockKing)
					}
					if amt != 0 {
						continue
					}
					if stockKing {
						g.Moves.AddLast(srcID, dstID, moved, 0)
						continue
					}
					for _, z := range card.TableauPiles {
						if z == srcID {
							continue
						}
						if g.Piles[z].TopRank() == 12 && g.Piles[z].Top > 0 {
							g.Moves.AddLast(srcID, dstID, moved, 0)
							break
						}
					}
					continue
				}
				g.Moves.AddLast(srcID, dstID, moved, 0)
				continue
			}

			exposed := src.Cards[srcSize-moved-1]
			if int(exposed.Rank)-g.Piles[card.FoundationFor(exposed.Suit)].TopRank() == 1 {
				g.Moves.AddLast(srcID, dstID, moved, 0)
				continue
			}
		}
	}

	if wasteSize > 0 {
		waste := g.Piles[card.Waste]
		card1 := waste.Cards[wasteSize-1]
		wasteFoundation := card.FoundationFor(card1.Suit)
		if int(card1.Rank)-g.Piles[wasteFoundation].TopRank() == 1 {
			min := oppositeMin(g, card1.Color) + 2
			if int(card1.Rank) <= min {
				g.Moves.Clear()
				g.Moves.AddLast(card.Waste, wasteFoundation, 1, 0)
				return
			}
			g.Moves.AddLast(card.Waste, wasteFoundation, 1, 0)
		}
		for _, id := range card.TableauPiles {
			p := g.Piles[id]
			if len(p.Cards) != 0 {
				c := p.Cards[len(p.Cards)-1]
				if !c.FaceUp || int(c.Rank)-int(card1.Rank) != 1 || c.Color == card1.Color {
					continue
				}
				g.Moves.AddLast(card.Waste, id, 1, 0)
				continue
			}
			if card1.Rank != 12 {
				continue
			}
			g.Moves.AddLast(card.Waste, id, 1, 0)
			break
		}
	}

	for _, fid := range card.FoundationPiles {
		p := g.Piles[fid]
		size := len(p.Cards)
		if size == 0 {
			continue
		}
		card1 := p.Cards[size-1]
		min := oppositeMin(g, card1.Color) + 2
		if int(card1.Rank) <= min {
			continue
		}
		for _, tid := range card.TableauPiles {
			dst := g.Piles[tid]
			dstSize := len(dst.Cards)
			if dstSize == 0 {
				if card1.Rank == 12 {
					g.Moves.AddLast(fid, tid, 1, 0)
					break
				}
				continue
			}
			card2 := dst.Cards[dstSize-1]
			if !card2.FaceUp || int(card2.Rank)-int(card1.Rank) != 1 || card1.Color == card2.Color {
				continue
			}
			g.Moves.AddLast(fid, tid, 1, 0)
		}
	}

	stock := g.Piles[card.Stock]
	for j := stockSize - 1; j >= 0; j-- {
		card1 := stock.Cards[j]
		stockFoundation := card.FoundationFor(card1.Suit)
		draws := stockSize - j
		if int(card1.Rank)-g.Piles[stockFoundation].TopRank() == 1 {
			min := oppositeMin(g, card1.Color) + 2
			if int(card1.Rank) <= min {
				g.Moves.AddLast(card.Waste, stockFoundation, 1, draws)
				return
			}
			g.Moves.AddLast(card.Waste, stockFoundation, 1, draws)
		}
		g.addTalonToTableau(card1, draws)
	}

	waste := g.Piles[card.Waste]
	wasteSize--
	for j := 0; j < wasteSize; j++ {
		card1 := waste.Cards[j]
		stockFoundation := card.FoundationFor(card1.Suit)
		draws := stockSize + j + 1
		if int(card1.Rank)-g.Piles[stockFoundation].TopRank() == 1 {
			min := oppositeMin(g, card1.Color) + 2
			if int(card1.Rank) <= min {
				g.Moves.AddLast(card.Waste, stockFoundation, 1, draws)
				return
			}
			g.Moves.AddLast(card.Waste, stockFoundation, 1, draws)
		}
		g.addTalonToTableau(card1, draws)
	}
}

// addTalonToTableau emits the waste->tableau moves available for a
// talon card that would take draws card-draws to surface. An
// empty-column placement stops further scanning so at most one
// empty-spot move is emitted per card; returns true when that happened.
func (g *Game) addTalonToTableau(card1 *card.Card, draws int) bool {
	for _, id := range card.TableauPiles {
		p := g.Piles[id]
		if len(p.Cards) != 0 {
			c := p.Cards[len(p.Cards)-1]
			if !c.FaceUp || int(c.Rank)-int(card1.Rank) != 1 || c.Color == card1.Color {
				continue
			}
			g.Moves.AddLast(card.Waste, id, 1, draws)
			continue
		}
		if card1.Rank != 12 {
			continue
		}
		g.Moves.AddLast(card.Waste, id, 1, draws)
		return true
	}
	return false
}

// oppositeMin returns the foundation-minima cache for the color
// opposite clr (black=0, red=1), the value the safe-auto-send rule
// compares a candidate card's rank against.
func oppositeMin(g *Game, clr int) int {
	if clr == 0 {
		return g.RedMin
	}
	return g.BlackMin
}

// wholePileMoveClass computes the "amt" classification from the
// source: whether moving an entire tableau pile onto another pile
// (leaving its own column empty) is useful, given the current layout
// of empty columns, exposed kings, and buried cards. Returns 0 when
// such a move can be useful (the caller then still requires a king to
// be available for the emptied column) and non-zero when the move is
// rejected, for instance because an empty column already exists.
func wholePileMoveClass(g *Game, stockKing bool) int {
	amt := 1
	if stockKing {
		amt = -1
	}
	for _, id := range card.TableauPiles {
		p := g.Piles[id]
		switch {
		case len(p.Cards) == 0:
			return 1
		case p.Top == 0:
			if p.Cards[0].Rank != 12 {
				if amt < 0 {
					return 0
				}
				amt = 2
			}
		case p.Top > 0:
			if amt > 1 {
				return 0
			}
			amt = -1
		}
	}
	return amt
}
