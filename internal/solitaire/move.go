package solitaire

import "github.com/shlomif/KlondikeSolver/internal/card"

// Move is a single generator-time candidate move: {from, to, cards, val}
// as described in the data model. Val carries the number of talon draws
// that must precede the move (0 if the source is not the talon). The
// arena package defines its own node type for the priority/status-bit
// overload the search driver needs; Move itself stays a plain record.
type Move struct {
	From, To card.PileID
	Cards    int
	Val      int
	Next     *Move
	Prev     *Move
}

// MoveList is a doubly-linked list of Move records with a free list
// (Extra) so the move generator's inner loop reuses emptied records
// instead of allocating on every call.
type MoveList struct {
	First, Last, Extra *Move
	Size               int
}

// Clear empties the list, splicing its records onto Extra for reuse.
func (l *MoveList) Clear() {
	if l.First != nil {
		l.Last.Next = l.Extra
		if l.Extra != nil {
			l.Extra.Prev = l.Last
		}
		l.Extra = l.First
	}
	l.Size = 0
	l.First = nil
	l.Last = nil
}

// Get returns the pos-th move (0-indexed) from the front of the list.
func (l *MoveList) Get(pos int) *Move {
	ret := l.First
	for pos > 0 {
		ret = ret.Next
		pos--
	}
	return ret
}

// AddLast appends a move, reusing a free-listed record when available.
func (l *MoveList) AddLast(from, to card.PileID, cards, val int) {
	l.Size++
	var m *Move
	if l.Extra != nil {
		m = l.Extra
		l.Extra = l.Extra.Next
		m.From, m.To, m.Cards, m.Val = from, to, cards, val
	} else {
		m = &Move{From: from, To: to, Cards: cards, Val: val}
	}
	m.Next = nil
	if l.Last != nil {
		l.Last.Next = m
		m.Prev = l.Last
		l.Last = m
		return
	}
	m.Prev = nil
	l.First = m
	l.Last = m
}

// AddFirst prepends a move, reusing a free-listed record when available.
func (l *MoveList) AddFirst(from, to card.PileID, cards, val int) {
	l.Size++
	var m *Move
	if l.Extra != nil {
		m = l.Extra
		l.Extra = l.Extra.Next
		m.From, m.To, m.Cards, m.Val = from, to, cards, val
	} else {
		m = &Move{From: from, To: to, Cards: cards, Val: val}
	}
	m.Prev = nil
	if l.First != nil {
		m.Next = l.First
		l.First.Prev = m
		l.First = m
		return
	}
	m.Next = nil
	l.First = m
	l.Last = m
}
