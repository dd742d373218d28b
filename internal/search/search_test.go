package search

import (
	"testing"

	"github.com/shlomif/KlondikeSolver/internal/solitaire"
)

func TestSolveNeverExceedsFoundationCount(t *testing.T) {
	g := solitaire.NewGame()
	result := Solve(g, g.MinWinAt(), 8, nil)
	if result.FoundationCount < 0 || result.FoundationCount > 52 {
		t.Fatalf("FoundationCount = %d, out of range", result.FoundationCount)
	}
}

func TestSolveReplaysToReportedFoundationCount(t *testing.T) {
	g := solitaire.NewGame()
	if err := g.Load(solitaire.SampleDeck); err != nil {
		t.Fatalf("Load(SampleDeck): %v", err)
	}
	result := Solve(g, g.MinWinAt(), MaxBound, nil)
	if !result.Won {
		// The sample deck is a known-winnable deal; a non-win here means
		// a generator or heuristic regression, not an expected outcome.
		t.Fatalf("expected the sample deck to be solved, got bestF=%d", result.FoundationCount)
	}

	replay := solitaire.NewGame()
	if err := replay.Load(solitaire.SampleDeck); err != nil {
		t.Fatalf("Load(SampleDeck) for replay: %v", err)
	}
	cost := 0
	for _, m := range result.Moves {
		replay.MakeMove(m.From, m.To, m.Cards, m.Val)
		cost += m.Val + 1
	}
	if replay.FoundationCount != 52 {
		t.Fatalf("replaying the solution reached foundationCount=%d, want 52", replay.FoundationCount)
	}
	if cost != result.Cost {
		t.Fatalf("replayed cost %d != reported cost %d", cost, result.Cost)
	}
}

func TestSolveReportsProgress(t *testing.T) {
	g := solitaire.NewGame()
	var lines []Progress
	Solve(g, g.MinWinAt(), 6, func(p Progress) { lines = append(lines, p) })
	for _, p := range lines {
		if p.Foundation < 0 || p.Foundation > 52 {
			t.Fatalf("progress line reported impossible foundation count: %+v", p)
		}
	}
}
