// Package demo runs the library walkthroughs behind the CLI and the demo
// server: building and tearing down a head-inserted list, traversing it
// with an explicit cursor, and transferring resource ownership.
package demo

import (
	"time"

	"github.com/movable-go/movable/list"
	"github.com/movable-go/movable/log"
	"github.com/movable-go/movable/sel"
)

// DefaultWalkSize is the list size used when the caller does not pick one.
const DefaultWalkSize = 6

// WalkReport describes one list walkthrough run.
type WalkReport struct {
	// Inserted are the values in head-insertion order.
	Inserted []int `json:"inserted"`
	// Forward are the values in traversal order (reverse of Inserted).
	Forward []int `json:"forward"`
	// Skipped is the value found by Skip(2) from Begin, if the list has
	// at least three elements.
	Skipped *int `json:"skipped,omitempty"`
	// Even are the even values in traversal order.
	Even []int `json:"even"`
	// Count is the element count before teardown.
	Count int `json:"count"`
}

// Walk builds a list from 1..n by head insertion, traverses it with an
// explicit cursor, demonstrates bounded skip and filtered traversal, and
// tears the list down.
func Walk(n int) WalkReport {
	lg := log.New("demo:walk")
	started := time.Now()

	if n < 0 {
		n = 0
	}

	var l list.List[int]

	rep := WalkReport{
		Inserted: make([]int, 0, n),
		Forward:  make([]int, 0, n),
		Even:     []int{},
	}

	for v := 1; v <= n; v++ {
		l.InsertAtHead(v)
		rep.Inserted = append(rep.Inserted, v)
	}

	for it := l.Begin(); it.NotEqual(l.End()); it.Advance() {
		rep.Forward = append(rep.Forward, *it.Deref())
	}

	if l.Len() >= 3 {
		it := l.Begin()
		it.Skip(2)
		v := *it.Deref()
		rep.Skipped = &v
	}

	even := func(v int) bool { return v%2 == 0 }
	for v := range sel.Filtered(l.All(), even) {
		rep.Even = append(rep.Even, v)
	}

	rep.Count = l.Len()
	l.Clear()

	lg.With(log.Count(rep.Count), log.Elapsed(time.Since(started))).
		Debug("List walkthrough finished")

	return rep
}
