// Package tsp - tabu memory.

package tsp

import "strconv"

// tabuList is a bounded FIFO of visited tours. Appending beyond capacity
// evicts the oldest entry. Membership is O(1) through a multiset of keys;
// the same tour may be queued more than once.
type tabuList struct {
	cap   int
	ring  []string
	head  int // index of the oldest entry
	size  int
	count map[string]int
}

func newTabuList(capacity int) *tabuList {
	if capacity < 0 {
		capacity = 0
	}

	return &tabuList{
		cap:   capacity,
		ring:  make([]string, capacity),
		count: make(map[string]int, capacity),
	}
}

// Len returns the number of queued entries (never above the capacity).
func (t *tabuList) Len() int { return t.size }

func (t *tabuList) contains(key string) bool { return t.count[key] > 0 }

// push appends key, evicting the oldest entry when full.
func (t *tabuList) push(key string) {
	if t.cap == 0 {
		return
	}
	if t.size == t.cap {
		t.evict()
	}
	t.ring[(t.head+t.size)%t.cap] = key
	t.size++
	t.count[key]++
}

func (t *tabuList) evict() {
	old := t.ring[t.head]
	t.ring[t.head] = ""
	t.head = (t.head + 1) % t.cap
	t.size--
	if t.count[old]--; t.count[old] == 0 {
		delete(t.count, old)
	}
}

// oldest returns the entry that the next overflow would evict.
func (t *tabuList) oldest() (string, bool) {
	if t.size == 0 {
		return "", false
	}

	return t.ring[t.head], true
}

// tourKey encodes a tour as a compact comparable key.
func tourKey(tour []int) string {
	buf := make([]byte, 0, len(tour)*4)
	var i int
	for i = range tour {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(tour[i]), 10)
	}

	return string(buf)
}
