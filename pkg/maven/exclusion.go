package maven

import (
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// GemGroup is the group id under which RubyGems artifacts are published.
const GemGroup = "rubygems"

// Exclusion suppresses a transitive dependency. It has no version: the
// group and artifact are its whole identity, so Exclusion values compare
// with ==.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// ParseExclusion builds an Exclusion from:
//
//	ParseExclusion(existing)               // Exclusion or *Exclusion, returned as is
//	ParseExclusion("commons-logging:commons-logging")
//	ParseExclusion("commons-logging", "commons-logging")
//	ParseExclusion("rake")                 // bare gem name, group "rubygems"
func ParseExclusion(args ...any) (Exclusion, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case Exclusion:
			return v, nil
		case *Exclusion:
			if v == nil {
				return Exclusion{}, errors.New(errors.ErrCodeInvalidFormat, "nil exclusion")
			}
			return *v, nil
		}
	}

	toks, err := tokens(args)
	if err != nil {
		return Exclusion{}, err
	}

	var e Exclusion
	switch len(toks) {
	case 1:
		if !strings.Contains(toks[0], ":") {
			e = Exclusion{GroupID: GemGroup, ArtifactID: toks[0]}
			break
		}
		parts := strings.Split(toks[0], ":")
		if len(parts) != 2 {
			return Exclusion{}, errors.New(errors.ErrCodeInvalidFormat,
				"exclusion %q: expected group:artifact, got %d segments", toks[0], len(parts))
		}
		e = Exclusion{GroupID: parts[0], ArtifactID: parts[1]}
	case 2:
		e = Exclusion{GroupID: toks[0], ArtifactID: toks[1]}
	default:
		return Exclusion{}, errors.New(errors.ErrCodeInvalidFormat, "exclusion needs group and artifact, got %q", toks)
	}

	if err := errors.ValidateCoordinatePart("group", e.GroupID); err != nil {
		return Exclusion{}, err
	}
	if err := errors.ValidateCoordinatePart("artifact", e.ArtifactID); err != nil {
		return Exclusion{}, err
	}
	return e, nil
}

// Equal reports whether e and o exclude the same artifact.
func (e Exclusion) Equal(o Exclusion) bool { return e == o }

// String returns "group:artifact".
func (e Exclusion) String() string { return e.GroupID + ":" + e.ArtifactID }

// ExclusionList is an ordered set of exclusions. Adding an exclusion that is
// already present removes the old entry and appends the new one, so the
// re-declared exclusion moves to the end.
//
// The zero value is an empty list ready to use.
type ExclusionList struct {
	items []Exclusion
}

// Add inserts e, replacing any entry with the same identity.
func (l *ExclusionList) Add(e Exclusion) {
	l.items = slices.DeleteFunc(l.items, e.Equal)
	l.items = append(l.items, e)
}

// Exclude parses args like [ParseExclusion] and adds the result.
// Nothing is added when parsing fails.
func (l *ExclusionList) Exclude(args ...any) (Exclusion, error) {
	e, err := ParseExclusion(args...)
	if err != nil {
		return Exclusion{}, err
	}
	l.Add(e)
	return e, nil
}

// Contains reports whether an exclusion with e's identity is present.
func (l *ExclusionList) Contains(e Exclusion) bool {
	return slices.Contains(l.items, e)
}

// Len returns the number of exclusions.
func (l *ExclusionList) Len() int { return len(l.items) }

// Items returns a copy of the exclusions in order.
func (l *ExclusionList) Items() []Exclusion { return slices.Clone(l.items) }

// All iterates the exclusions in order.
func (l *ExclusionList) All() iter.Seq[Exclusion] { return slices.Values(l.items) }
