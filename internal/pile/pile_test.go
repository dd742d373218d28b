package pile

import (
	"testing"

	"github.com/shlomif/KlondikeSolver/internal/card"
)

func makeCards(values ...int) []*card.Card {
	out := make([]*card.Card, len(values))
	for i, v := range values {
		c := card.New(v)
		out[i] = &c
	}
	return out
}

func TestAddFlip(t *testing.T) {
	p := New(card.Tableau1)
	cs := makeCards(0, 1, 2)
	for _, c := range cs {
		p.Add(c)
	}
	if p.Top != -1 {
		t.Fatalf("Top = %d, want -1 before flip", p.Top)
	}
	p.Flip()
	if p.Top != 2 {
		t.Fatalf("Top = %d, want 2 after flip", p.Top)
	}
	if !p.Cards[2].FaceUp {
		t.Fatal("top card not face-up after Flip")
	}
	p.Flip()
	if p.Top != -1 || p.Cards[2].FaceUp {
		t.Fatal("second Flip should flip back down")
	}
}

func TestHighValueTopRank(t *testing.T) {
	p := New(card.Tableau1)
	if p.HighValue() != -1 || p.TopRank() != -1 {
		t.Fatal("empty pile should report -1 for HighValue/TopRank")
	}
	for _, c := range makeCards(5, 10) {
		p.Add(c)
	}
	if p.HighValue() != 5 {
		t.Fatalf("HighValue = %d, want 5", p.HighValue())
	}
	if p.TopRank() != int(card.New(10).Rank) {
		t.Fatalf("TopRank = %d, want %d", p.TopRank(), card.New(10).Rank)
	}
}

func TestRemoveSingle(t *testing.T) {
	src := New(card.Tableau1)
	dst := New(card.Tableau2)
	for _, c := range makeCards(0, 1, 2) {
		src.Add(c)
	}
	src.Flip()
	src.Remove(dst)
	if len(src.Cards) != 2 || len(dst.Cards) != 1 {
		t.Fatalf("unexpected sizes after Remove: src=%d dst=%d", len(src.Cards), len(dst.Cards))
	}
	if dst.Cards[0].Value != 2 {
		t.Fatalf("moved wrong card: %+v", dst.Cards[0])
	}
}

func TestRemoveN(t *testing.T) {
	src := New(card.Tableau1)
	dst := New(card.Tableau2)
	for _, c := range makeCards(0, 1, 2, 3) {
		src.Add(c)
	}
	src.Top = 2 // last two cards face-up
	src.RemoveN(dst, 2)
	if len(src.Cards) != 2 || len(dst.Cards) != 2 {
		t.Fatalf("unexpected sizes after RemoveN: src=%d dst=%d", len(src.Cards), len(dst.Cards))
	}
	if dst.Cards[0].Value != 2 || dst.Cards[1].Value != 3 {
		t.Fatalf("RemoveN reordered cards: %+v", dst.Cards)
	}
	if src.Top != -1 {
		t.Fatalf("Top = %d, want -1 after removing the whole face-up run", src.Top)
	}
}

func TestRemoveTopNoRecycle(t *testing.T) {
	stock := New(card.Stock)
	waste := New(card.Waste)
	for _, c := range makeCards(0, 1, 2, 3, 4) {
		stock.Add(c)
	}
	recycled := stock.RemoveTop(waste, 2, false)
	if recycled {
		t.Fatal("expected no recycle")
	}
	if len(stock.Cards) != 3 || len(waste.Cards) != 2 {
		t.Fatalf("unexpected sizes: stock=%d waste=%d", len(stock.Cards), len(waste.Cards))
	}
	if !waste.Cards[0].FaceUp || !waste.Cards[1].FaceUp {
		t.Fatal("drawn cards must be face-up")
	}
	// drawn in stock order from the top: values 4 then 3
	if waste.Cards[0].Value != 4 || waste.Cards[1].Value != 3 {
		t.Fatalf("unexpected draw order: %+v", waste.Cards)
	}
}

func TestRemoveTopRecycle(t *testing.T) {
	stock := New(card.Stock)
	waste := New(card.Waste)
	for _, c := range makeCards(0, 1) {
		c.FaceUp = false
		stock.Add(c)
	}
	for _, c := range makeCards(2, 3, 4) {
		c.FaceUp = true
		waste.Cards = append(waste.Cards, c)
	}
	// stock has 2, need 4: draw both, recycle the 5-card waste, then draw
	// 2 more, leaving n(4) - size(2) = 2 in waste; the other
	// remain = len(waste)(3) + size(2) - n(4) = 1 waste card goes back to stock.
	recycled := stock.RemoveTop(waste, 4, false)
	if !recycled {
		t.Fatal("expected a recycle")
	}
	if len(waste.Cards) != 2 {
		t.Fatalf("waste size = %d, want 2", len(waste.Cards))
	}
	if len(stock.Cards) != 3 {
		t.Fatalf("stock size = %d, want 3", len(stock.Cards))
	}
	for _, c := range stock.Cards {
		if c.FaceUp {
			t.Fatal("recycled cards must be face-down")
		}
	}
}

func TestRemoveTopThru(t *testing.T) {
	stock := New(card.Stock)
	waste := New(card.Waste)
	for _, c := range makeCards(0, 1, 2) {
		c.FaceUp = false
		stock.Add(c)
	}
	recycled := stock.RemoveTop(waste, 3, true)
	if !recycled {
		t.Fatal("thru=true at exact count must force a recycle")
	}
	if len(stock.Cards) != 3 || len(waste.Cards) != 0 {
		t.Fatalf("unexpected sizes after thru recycle: stock=%d waste=%d", len(stock.Cards), len(waste.Cards))
	}
}

func TestFaceUpCount(t *testing.T) {
	p := New(card.Tableau1)
	for _, c := range makeCards(0, 1, 2) {
		p.Add(c)
	}
	if p.FaceUpCount() != 0 {
		t.Fatalf("FaceUpCount = %d, want 0", p.FaceUpCount())
	}
	p.Top = 1
	if p.FaceUpCount() != 2 {
		t.Fatalf("FaceUpCount = %d, want 2", p.FaceUpCount())
	}
}
