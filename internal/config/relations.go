package config

import "github.com/fensterchef/fensterchef-sub000/internal/glob"

// Relation binds a window instance/class pattern to an action list run at
// window creation time (spec §4.D "Creation" step 1, §4.E "Data-value R").
type Relation struct {
	Instance string // glob pattern; "*" if unspecified
	Class    string // glob pattern
	Actions  ActionList
}

// Matches reports whether instance/class satisfy r's patterns.
func (r *Relation) Matches(instance, class string) bool {
	return glob.Match(r.Instance, instance) && glob.Match(r.Class, class)
}

// RelationList is the ordered, process-wide list of active relations.
// Iteration is snapshotted so insertions/removals triggered by a relation's
// own actions cannot skip or repeat a match mid-walk (spec §5 "Ordering
// guarantees").
type RelationList struct {
	items []*Relation

	// runningIndex, when >= 0, is the index FindMatch is currently
	// evaluating; Remove consults it to keep a concurrent walk correct.
	runningIndex int
	runningN     int
}

// NewRelationList returns an empty relation list.
func NewRelationList() *RelationList {
	return &RelationList{runningIndex: -1}
}

// Add appends a new relation.
func (l *RelationList) Add(r *Relation) {
	l.items = append(l.items, r)
}

// Remove deletes r if present. If a FindMatch walk is in progress and r sat
// at or before the walk's current index, the walk's snapshot length and
// index are decremented so the next step does not skip or repeat an entry
// (spec §5: "decrementing both N and the current index if a removal at
// index <= current is observed").
func (l *RelationList) Remove(r *Relation) {
	idx := -1
	for i, item := range l.items {
		if item == r {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	if l.runningIndex >= 0 {
		if idx <= l.runningIndex {
			l.runningIndex--
		}
		l.runningN--
	}
}

// FindMatch returns the first relation matching instance/class, or nil
// when none matches.
func (l *RelationList) FindMatch(instance, class string) *Relation {
	l.runningN = len(l.items)
	for l.runningIndex = 0; l.runningIndex < l.runningN; l.runningIndex++ {
		r := l.items[l.runningIndex]
		if r.Matches(instance, class) {
			l.runningIndex = -1
			return r
		}
	}
	l.runningIndex = -1
	return nil
}

// All returns every relation in declaration order.
func (l *RelationList) All() []*Relation {
	return l.items
}
