// Package search wires the game state, the move arena, and the state
// fingerprint map together into the IDA* solve loop.
package search

import (
	"github.com/shlomif/KlondikeSolver/internal/arena"
	"github.com/shlomif/KlondikeSolver/internal/fingerprint"
	"github.com/shlomif/KlondikeSolver/internal/solitaire"
)

// MaxBound is the depth ceiling past which the search gives up and
// reports the best partial foundation count reached. Empirical, not
// load-bearing for correctness; exposed so solverconfig can override
// it instead of baking it in as an untunable constant.
const MaxBound = 256

// Progress is one reported line of solve progress: either a new-best
// report or a reopen report, mirroring the two stdout line shapes the
// CLI prints.
type Progress struct {
	Reopen     bool
	Bound      int
	Depth      int
	OpenPrev   int
	Open       int
	Top        int
	Closed     int
	Foundation int
}

// Result is what Solve returns: the best foundation count reached, the
// winning move chain (nil if not won), and its total cost.
type Result struct {
	FoundationCount int
	Moves           []solitaire.Move
	Cost            int
	Won             bool
}

// Solve runs IDA* from g's current deal. maxMoves is the starting bound
// on solution cost; each reopen raises it by one, and the search gives up
// once it passes maxBound. The first win found within the current bound
// is returned. onProgress, if non-nil, is called for each reported line
// the CLI would print.
func Solve(g *solitaire.Game, maxMoves int, maxBound int, onProgress func(Progress)) Result {
	bestF := 0
	mm := maxMoves
	closed := fingerprint.New(23)
	g.Reset()
	closed.AddGet(g.Key(), g.MinWinAt())

	open := arena.New(1 << 16)
	open.Add(-1, -1, -1, g.MinWinAt()<<12, -1)

	var best Result

	for open.Top() > 0 {
		parent := open.MoveFirstToLast()

		// Reconstruct the path from root to parent by walking parent
		// links, then replay it from a reset state.
		g.Reset()
		var chain []solitaire.Move
		idx := parent
		for {
			n := open.Get(idx)
			if n.Cards < 0 {
				break
			}
			chain = append(chain, solitaire.Move{From: n.From, To: n.To, Cards: n.Cards, Val: n.Val & 31})
			idx = n.Parent
		}
		// chain was built leaf-to-root; replay root-to-leaf.
		w := 0
		for i := len(chain) - 1; i >= 0; i-- {
			m := chain[i]
			g.MakeMove(m.From, m.To, m.Cards, m.Val)
			w += m.Val + 1
		}

		if g.FoundationCount > bestF || (g.FoundationCount == 52 && w <= mm) {
			bestF = g.FoundationCount
			if onProgress != nil {
				onProgress(Progress{
					Depth: w, Open: open.Size(), Top: open.Top(),
					Closed: closed.Size(), Foundation: bestF,
				})
			}
			if bestF == 52 && w <= mm {
				solved := make([]solitaire.Move, len(chain))
				for i, m := range chain {
					solved[len(chain)-1-i] = m
				}
				closed.Clear()
				return Result{FoundationCount: 52, Moves: solved, Cost: w, Won: true}
			}
		}

		g.UpdateMoves()
		added := 0
		for m := g.Moves.First; m != nil; m = m.Next {
			thru := g.MakeMove(m.From, m.To, m.Cards, m.Val)
			cost := w + m.Val + 1 + g.MinWinAt()
			if cost <= mm {
				key := g.Key()
				prevValue, existed := closed.AddGet(key, cost)
				added++
				if !existed || prevValue > cost {
					priority := (52-g.FoundationCount+g.Rounds)<<5 | m.Val
					open.Add(m.From, m.To, m.Cards, priority, parent)
					if existed {
						closed.Set(key, cost)
					}
				}
			}
			g.UndoMove(m.From, m.To, m.Cards, m.Val, thru)
		}
		if added == g.Moves.Size {
			open.SetUsed(parent)
		}

		if open.Top() == 0 && bestF < 52 {
			mm++
			if mm > maxBound {
				closed.Clear()
				best.FoundationCount = bestF
				return best
			}
			prevSize := open.Size()
			open.Prune()
			if onProgress != nil {
				onProgress(Progress{
					Reopen: true, Bound: mm, OpenPrev: prevSize,
					Open: open.Size(), Top: open.Top(), Closed: closed.Size(),
				})
			}
		}
	}

	closed.Clear()
	best.FoundationCount = bestF
	return best
}
