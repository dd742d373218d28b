package solitaire

import (
	"bytes"
	"testing"

	"github.com/shlomif/KlondikeSolver/internal/card"
)

func countAllCards(t *testing.T, g *Game) int {
	t.Helper()
	total := 0
	for _, p := range g.Piles {
		total += len(p.Cards)
	}
	return total
}

func TestResetDealsFiftyTwoCards(t *testing.T) {
	g := NewGame()
	if n := countAllCards(t, g); n != 52 {
		t.Fatalf("got %d cards across piles, want 52", n)
	}
	for id := card.Tableau1; id <= card.Tableau7; id++ {
		want := int(id) // TABLEAU1 gets 1 card, ... TABLEAU7 gets 7
		if got := len(g.Piles[id].Cards); got != want {
			t.Errorf("tableau pile %d has %d cards, want %d", id, got, want)
		}
		if g.Piles[id].Top != len(g.Piles[id].Cards)-1 {
			t.Errorf("tableau pile %d Top = %d, want %d", id, g.Piles[id].Top, len(g.Piles[id].Cards)-1)
		}
	}
	if len(g.Piles[card.Stock].Cards) != 24 {
		t.Fatalf("stock has %d cards, want 24", len(g.Piles[card.Stock].Cards))
	}
}

func TestMakeMoveUndoMoveRestoresKey(t *testing.T) {
	g := NewGame()
	before := g.Key()

	g.UpdateMoves()
	if g.Moves.First == nil {
		t.Fatal("expected at least one legal move from the initial deal")
	}
	m := g.Moves.First
	thru := g.MakeMove(m.From, m.To, m.Cards, m.Val)
	g.UndoMove(m.From, m.To, m.Cards, m.Val, thru)

	after := g.Key()
	if !bytes.Equal(before, after) {
		t.Fatalf("key changed after make+undo: %v != %v", before, after)
	}
	if n := countAllCards(t, g); n != 52 {
		t.Fatalf("card count drifted to %d after make+undo", n)
	}
}

func TestKeyDeterministic(t *testing.T) {
	g := NewGame()
	a := g.Key()
	b := g.Key()
	if !bytes.Equal(a, b) {
		t.Fatal("Key() is not idempotent")
	}
}

func TestKeyInvariantUnderTableauPermutation(t *testing.T) {
	g1 := NewGame()
	g2 := NewGame()
	// Swap the contents of TABLEAU1 and TABLEAU2 wholesale; the
	// canonical key sorts tableau piles by HighValue so this must not
	// change the key.
	g2.Piles[card.Tableau1], g2.Piles[card.Tableau2] = g2.Piles[card.Tableau2], g2.Piles[card.Tableau1]
	if !bytes.Equal(g1.Key(), g2.Key()) {
		t.Fatal("Key() is not invariant under tableau pile permutation")
	}
}

func TestShuffleReproducible(t *testing.T) {
	g1 := NewGame()
	g2 := NewGame()
	g1.Shuffle(0)
	g2.Shuffle(0)
	if !bytes.Equal(g1.Key(), g2.Key()) {
		t.Fatal("same seed produced different deals")
	}
	for i := range g1.Cards {
		if g1.Cards[i].Value != g2.Cards[i].Value {
			t.Fatalf("card %d differs: %d vs %d", i, g1.Cards[i].Value, g2.Cards[i].Value)
		}
	}
}

func TestForcingFlipShortCircuits(t *testing.T) {
	g := NewGame()
	for id := card.Tableau1; id <= card.Tableau7; id++ {
		g.Piles[id].Top = -1
		for _, c := range g.Piles[id].Cards {
			c.FaceUp = false
		}
	}
	g.UpdateMoves()
	if g.Moves.Size != 1 {
		t.Fatalf("Moves.Size = %d, want 1", g.Moves.Size)
	}
	if g.Moves.First.From != card.Tableau1 || g.Moves.First.To != card.Tableau1 {
		t.Fatalf("expected a flip of TABLEAU1, got %+v", g.Moves.First)
	}
}

func TestSafeAutoSendEmitsOnlyThatMove(t *testing.T) {
	g := NewGame()
	for _, p := range g.Piles {
		p.Clear()
	}
	ace1 := &g.Cards[0]  // clubs A
	ace1.FaceUp = true
	g.Piles[card.Foundation1].Add(ace1)
	g.Piles[card.Foundation1].Flip()

	ace3 := &g.Cards[26] // spades A
	ace3.FaceUp = true
	g.Piles[card.Foundation3].Add(ace3)
	g.Piles[card.Foundation3].Flip()

	g.setFoundationMin()

	two := &g.Cards[1] // clubs 2
	g.Piles[card.Waste].Add(two)
	g.Piles[card.Waste].Flip()

	g.UpdateMoves()
	if g.Moves.Size != 1 {
		t.Fatalf("Moves.Size = %d, want 1 (safe auto-send)", g.Moves.Size)
	}
	if g.Moves.First.From != card.Waste || g.Moves.First.To != card.Foundation1 {
		t.Fatalf("expected waste->FOUNDATION1, got %+v", g.Moves.First)
	}
}

func TestDecodeDeckSampleYieldsDistinctCards(t *testing.T) {
	values, err := DecodeDeck(SampleDeck)
	if err != nil {
		t.Fatalf("DecodeDeck(SampleDeck) error: %v", err)
	}
	seen := make(map[int]bool, 52)
	for _, v := range values {
		if v < 0 || v > 51 {
			t.Fatalf("decoded value out of range: %d", v)
		}
		if seen[v] {
			t.Fatalf("duplicate decoded value: %d", v)
		}
		seen[v] = true
	}
}

func TestLoadSampleDeckDealsFiftyTwo(t *testing.T) {
	g := NewGame()
	if err := g.Load(SampleDeck); err != nil {
		t.Fatalf("Load(SampleDeck) error: %v", err)
	}
	if n := countAllCards(t, g); n != 52 {
		t.Fatalf("got %d cards after Load, want 52", n)
	}
}

func TestExtractDigitsSkipsCommentsAndNonDigits(t *testing.T) {
	in := []byte("01 // comment with 99 digits\n023 more// trailing\n045")
	got := ExtractDigits(in)
	want := "01023045"
	if got != want {
		t.Fatalf("ExtractDigits = %q, want %q", got, want)
	}
}

func TestMinWinAtAdmissibleAtStart(t *testing.T) {
	g := NewGame()
	// The initial lower bound must be positive and stay under a loose
	// ceiling of 200 moves; it can exceed 52*2, since stock cards count
	// twice and face-down cards add their flip-throughs.
	if w := g.MinWinAt(); w <= 0 || w > 200 {
		t.Fatalf("MinWinAt() = %d, outside sane bounds", w)
	}
}
