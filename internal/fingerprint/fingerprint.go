// Package fingerprint implements the state transposition table the
// search driver consults on every candidate move: a map from canonical
// state key to the best accumulated cost seen for that state so far.
package fingerprint

// entry is one stored key/value pair plus its hash, chained within a
// bucket on collision.
type entry struct {
	key   string
	value int
	hash  uint32
	next  *entry
}

// Map is a hash table with per-bucket overflow chains. When the load
// factor climbs past 2 the bucket array doubles and every live entry
// is rehashed into it; stored hashes stay valid because the hash is
// keyed to the construction-time shift, which growth never changes.
type Map struct {
	buckets []*entry
	shift   uint // hash mixing period, fixed at construction
	count   int
}

// New returns an empty map with capacity 2^shift.
func New(shift uint) *Map {
	return &Map{buckets: make([]*entry, 1<<shift), shift: shift}
}

// Size returns the number of distinct keys stored.
func (m *Map) Size() int { return m.count }

func (m *Map) hash(key []byte) uint32 {
	hash := uint32(0x55555555)
	sft := uint(0)
	for _, b := range key {
		hash ^= (uint32(b) << sft) ^ uint32(sft)
		sft++
		if sft >= m.shift {
			sft = 0
		}
	}
	return hash
}

// AddGet looks up key. If present, it returns the existing entry's
// value and true, leaving the map unchanged (the caller compares and
// updates via Set). If absent, it inserts value under key and returns
// (value, false).
func (m *Map) AddGet(key []byte, value int) (int, bool) {
	hash := m.hash(key)
	idx := int(hash) & (len(m.buckets) - 1)
	ks := string(key)
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == ks {
			return e.value, true
		}
	}
	m.buckets[idx] = &entry{key: ks, value: value, hash: hash, next: m.buckets[idx]}
	m.count++
	if m.count > len(m.buckets)*2 {
		m.grow()
	}
	return value, false
}

// Set overwrites the value stored for key, which must already be
// present (callers always call Set only after AddGet reported a hit).
func (m *Map) Set(key []byte, value int) {
	hash := m.hash(key)
	idx := int(hash) & (len(m.buckets) - 1)
	ks := string(key)
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == ks {
			e.value = value
			return
		}
	}
}

func (m *Map) grow() {
	newBuckets := make([]*entry, len(m.buckets)*2)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := int(e.hash) & (len(newBuckets) - 1)
			e.next = newBuckets[idx]
			newBuckets[idx] = e
			e = next
		}
	}
	m.buckets = newBuckets
}

// Clear empties the map, freeing every stored key.
func (m *Map) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.count = 0
}
