// Package arena implements the search tree's move store: a contiguous,
// index-addressed table of explored moves with a priority-ordered open
// list, a radix sort over the packed priority, and a prune/reopen pass
// between IDA* bound increases.
//
// The generator-time Move (solitaire.Move) and the arena's own Node
// are distinct types with an explicit conversion at Add: a Move's Val
// is a talon draw count, a Node's Val is a packed priority plus status
// bits, and keeping them separate keeps both meanings visible.
package arena

import "github.com/shlomif/KlondikeSolver/internal/card"

// Status bits packed into a Node's Val alongside its priority.
// ValueMask isolates the packed priority itself.
const (
	Used       = 0x10000000
	Req        = 0x20000000
	Last       = 0x40000000
	ValueMask  = 0x00ffffff
	statusMask = Used | Req | Last
)

// Node is one stored move: the four Move fields plus a packed priority
// (Val), a parent index for path reconstruction, and a next index
// threading the open list in priority order.
type Node struct {
	From, To card.PileID
	Cards    int
	Val      int
	Parent   int
	next     int
}

// Arena is the contiguous move store. Freed slots (from Prune) are
// tracked on freeList for O(1) reuse.
type Arena struct {
	store       []Node
	freeList    []int
	first, last int // store indices, -1 when the open list is empty
	size        int // live node count
	top         int // unexpanded node count

	// buckets backs the radix sort's 16-bit passes. Held on the Arena
	// rather than allocated per sort, so Prune doesn't pay a 64K-slice
	// allocation on every reopen.
	buckets [65536][]int
}

// New returns an empty arena with room for capacity nodes before its
// first growth.
func New(capacity int) *Arena {
	a := &Arena{first: -1, last: -1}
	a.store = make([]Node, 0, capacity)
	return a
}

// Size is the number of live nodes.
func (a *Arena) Size() int { return a.size }

// Top is the number of nodes awaiting expansion: added and not yet
// popped by MoveFirstToLast, or reopened by the last Prune.
func (a *Arena) Top() int { return a.top }

// Get returns the node at idx.
func (a *Arena) Get(idx int) *Node { return &a.store[idx] }

func (a *Arena) alloc() int {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		return idx
	}
	a.store = append(a.store, Node{})
	return len(a.store) - 1
}

// Add inserts a new node and links it into the open list in ascending
// priority order. A new node whose priority is at least the current
// tail's goes straight to the tail in O(1). Otherwise the insertion
// point is found by a bounded linear walk from the head, capped at
// min(256, 80+top/32) steps; anything worse than that many best
// candidates is inserted right after the node where the walk stopped
// instead of exactly placed, trading exactness for bounded insert cost.
func (a *Arena) Add(from, to card.PileID, cardsMoved, val, parent int) int {
	idx := a.alloc()
	n := &a.store[idx]
	n.From, n.To, n.Cards, n.Val, n.Parent, n.next = from, to, cardsMoved, val, parent, -1
	a.size++
	a.top++

	if a.first < 0 {
		a.first = idx
		a.last = idx
		return idx
	}
	lastNode := &a.store[a.last]
	if val >= lastNode.Val {
		lastNode.next = idx
		a.last = idx
		return idx
	}
	firstNode := &a.store[a.first]
	if val <= firstNode.Val {
		n.next = a.first
		a.first = idx
		return idx
	}
	cur := a.first
	amt := 0
	walkCap := 80 + (a.top >> 5)
	if walkCap > 256 {
		walkCap = 256
	}
	for amt < walkCap {
		curNode := &a.store[cur]
		if curNode.next < 0 {
			break
		}
		if val <= a.store[curNode.next].Val {
			break
		}
		amt++
		cur = curNode.next
	}
	curNode := &a.store[cur]
	n.next = curNode.next
	curNode.next = idx
	if a.store[a.last].next != -1 {
		a.last = a.store[a.last].next
	}
	return idx
}

// MoveFirstToLast pops the current head (the best-priority node),
// relinks it to the tail marked Last, decrements the unexpanded
// counter, and returns its index so the driver can walk its parent
// chain.
func (a *Arena) MoveFirstToLast() int {
	if a.last != a.first {
		a.store[a.last].next = a.first
		a.first = a.store[a.first].next
		a.last = a.store[a.last].next
		a.store[a.last].next = -1
	}
	a.store[a.last].Val |= Last
	a.top--
	return a.last
}

// SetUsed marks every child of idx as enqueued: the node is now a pure
// parent pointer and can be freed on the next prune if nothing else
// still needs it.
func (a *Arena) SetUsed(idx int) {
	a.store[idx].Val |= Used
}

// Prune discards every node that contributed nothing still useful:
// any node without Used set is itself required (it has unexplored
// children), and so is every one of its ancestors; everything else is
// freed. The surviving open list is then re-sorted ascending by
// priority so the next IDA* bound resumes from the best frontier.
func (a *Arena) Prune() {
	for idx := a.first; idx >= 0; idx = a.store[idx].next {
		n := &a.store[idx]
		if n.Val&Used == 0 {
			n.Val = (n.Val &^ statusMask) | Req
			a.top++
			p := n.Parent
			for p >= 0 && a.store[p].Val&Req == 0 {
				a.store[p].Val |= Req
				p = a.store[p].Parent
			}
		}
	}

	var kept []int
	for idx := a.first; idx >= 0; idx = a.store[idx].next {
		n := &a.store[idx]
		if n.Val&Req != 0 {
			n.Val &^= Req
			kept = append(kept, idx)
		} else {
			a.freeList = append(a.freeList, idx)
			a.size--
		}
	}

	a.first, a.last = -1, -1
	for _, idx := range kept {
		a.store[idx].next = -1
		if a.first < 0 {
			a.first = idx
		} else {
			a.store[a.last].next = idx
		}
		a.last = idx
	}
	a.sort()
}

// sort performs a two-pass, 16-bit-bucket radix sort of the open list
// ascending by Val. The source's descending mirror-around-midpoint
// flag is not reproduced: prune's sole call site always sorts
// ascending, so there is nothing here to mirror.
func (a *Arena) sort() {
	if a.size < 2 {
		return
	}
	for shift := 0; shift < 32; shift += 16 {
		for i := range a.buckets {
			a.buckets[i] = a.buckets[i][:0]
		}
		for idx := a.first; idx >= 0; idx = a.store[idx].next {
			bucket := (a.store[idx].Val >> uint(shift)) & 0xffff
			a.buckets[bucket] = append(a.buckets[bucket], idx)
		}
		a.first, a.last = -1, -1
		for _, b := range a.buckets {
			for _, idx := range b {
				a.store[idx].next = -1
				if a.first < 0 {
					a.first = idx
				} else {
					a.store[a.last].next = idx
				}
				a.last = idx
			}
		}
	}
}

// Clear empties the arena entirely.
func (a *Arena) Clear() {
	a.store = a.store[:0]
	a.freeList = a.freeList[:0]
	a.first, a.last = -1, -1
	a.size, a.top = 0, 0
}
