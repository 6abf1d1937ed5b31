package maven

import (
	"iter"
	"slices"
)

// DependencyList holds the dependencies of a document, at most one per
// [DependencyKey], in declaration order.
//
// Adding a dependency whose key is already present does not append: the
// stored entry takes the new version and stays where it is, and remains
// the canonical object for that key. Key fields (group, artifact, type,
// classifier) of a stored dependency must not be modified.
//
// The zero value is an empty list ready to use.
type DependencyList struct {
	items []*Dependency
	index map[DependencyKey]int
}

// Add inserts dep with merge-on-insert semantics and returns the canonical
// entry: the previously stored dependency on a match, dep otherwise.
func (l *DependencyList) Add(dep *Dependency) *Dependency {
	if dep == nil {
		return nil
	}
	key := dep.Key()
	if existing, ok := l.Find(key); ok {
		existing.Version = dep.Version
		return existing
	}
	if l.index == nil {
		l.index = make(map[DependencyKey]int)
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, dep)
	return dep
}

// Find returns the dependency stored under key.
func (l *DependencyList) Find(key DependencyKey) (*Dependency, bool) {
	i, ok := l.index[key]
	if !ok {
		return nil, false
	}
	return l.items[i], true
}

// Contains reports whether a dependency equal to dep is stored. Version and
// scope are ignored.
func (l *DependencyList) Contains(dep *Dependency) bool {
	if dep == nil {
		return false
	}
	_, ok := l.index[dep.Key()]
	return ok
}

// Detect returns the first dependency, in order, for which match is true.
func (l *DependencyList) Detect(match func(*Dependency) bool) (*Dependency, bool) {
	for _, d := range l.items {
		if match(d) {
			return d, true
		}
	}
	return nil, false
}

// Len returns the number of dependencies.
func (l *DependencyList) Len() int { return len(l.items) }

// Items returns the dependencies in order. The slice is a copy; the
// dependencies are shared.
func (l *DependencyList) Items() []*Dependency { return slices.Clone(l.items) }

// All iterates the dependencies in order.
func (l *DependencyList) All() iter.Seq[*Dependency] { return slices.Values(l.items) }
