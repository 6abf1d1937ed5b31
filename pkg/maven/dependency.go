package maven

import (
	"strings"

	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// Type is the packaging type of a dependency.
type Type string

// Dependency types with builder support. Other values are allowed and
// round-trip unchanged.
const (
	TypeJar Type = "jar"
	TypePom Type = "pom"
	TypeGem Type = "gem"
)

// Scope is the Maven dependency scope. The empty scope means "not declared"
// (Maven treats it as compile).
type Scope string

const (
	ScopeCompile  Scope = "compile"
	ScopeProvided Scope = "provided"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeSystem   Scope = "system"
)

// Dependency is a [Coordinate] with packaging type, scope, classifier and
// the exclusions it carries.
//
// Its identity is narrower than a coordinate's: group, artifact, type and
// classifier must all match. Version and scope are not identity, so
// re-declaring the same jar with another version updates it instead of
// adding a second entry.
type Dependency struct {
	Coordinate
	Type       Type
	Scope      Scope
	Classifier string

	exclusions *ExclusionList
}

// DependencyKey is the identity of a [Dependency].
type DependencyKey struct {
	GroupID    string
	ArtifactID string
	Type       Type
	Classifier string
}

// NewDependency parses args like [ParseCoordinate] and infers a classifier
// from the call shape:
//
//	NewDependency(TypeJar, "g:a", "1.0", "jdk15")     // classifier "jdk15"
//	NewDependency(TypeJar, "g", "a", "1.0", "jdk15")  // classifier "jdk15"
//	NewDependency(TypeJar, "g:a", ">= 1", "< 2")      // no classifier, version ">= 1, < 2"
//
// The candidate is the third token when the first contains a colon, or the
// fourth token when there are four; it is discarded when it looks like a
// version predicate.
func NewDependency(typ Type, args ...any) (*Dependency, error) {
	if typ == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "dependency type is required")
	}
	toks, err := tokens(args)
	if err != nil {
		return nil, err
	}
	coord, err := parseGAV(toks)
	if err != nil {
		return nil, err
	}
	return &Dependency{
		Coordinate: coord,
		Type:       typ,
		Classifier: inferClassifier(toks),
	}, nil
}

func inferClassifier(toks []string) string {
	var candidate string
	switch {
	case len(toks) == 3 && strings.Contains(toks[0], ":"):
		candidate = toks[2]
	case len(toks) == 4:
		candidate = toks[3]
	}
	if IsVersionPredicate(candidate) {
		return ""
	}
	return candidate
}

// NewJar builds a jar dependency.
func NewJar(args ...any) (*Dependency, error) {
	return NewDependency(TypeJar, args...)
}

// NewTestJar builds a jar dependency in test scope.
func NewTestJar(args ...any) (*Dependency, error) {
	d, err := NewDependency(TypeJar, args...)
	if err != nil {
		return nil, err
	}
	d.Scope = ScopeTest
	return d, nil
}

// NewPom builds a pom dependency.
func NewPom(args ...any) (*Dependency, error) {
	return NewDependency(TypePom, args...)
}

// NewGem builds a gem dependency in the "rubygems" group. The remaining
// args are the version requirement(s) and an optional classifier.
func NewGem(name string, args ...any) (*Dependency, error) {
	return NewDependency(TypeGem, append([]any{GemGroup, name}, args...)...)
}

// Exclusions returns the dependency's exclusion list, creating it on first
// use. Each configure function is called with the list; repeated calls
// return the same list.
func (d *Dependency) Exclusions(configure ...func(*ExclusionList)) *ExclusionList {
	if d.exclusions == nil {
		d.exclusions = &ExclusionList{}
	}
	for _, fn := range configure {
		fn(d.exclusions)
	}
	return d.exclusions
}

// Exclude parses args like [ParseExclusion] and adds the exclusion.
func (d *Dependency) Exclude(args ...any) error {
	_, err := d.Exclusions().Exclude(args...)
	return err
}

// Key returns the identity of d.
func (d *Dependency) Key() DependencyKey {
	return DependencyKey{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Type:       d.Type,
		Classifier: d.Classifier,
	}
}

// Equal reports whether d and o are the same dependency: equal coordinates
// (group, artifact), type and classifier.
func (d *Dependency) Equal(o *Dependency) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Coordinate.Equal(o.Coordinate) && d.Type == o.Type && d.Classifier == o.Classifier
}

// MavenVersion returns the version as a Maven range, translating RubyGems
// style requirements (see [MavenRange]).
func (d *Dependency) MavenVersion() (string, error) {
	if !d.HasVersion() {
		return DefaultVersion, nil
	}
	return MavenRange(d.Version)
}

// String renders group:artifact:type[:classifier][:version], the Maven
// dependency notation.
func (d *Dependency) String() string {
	parts := []string{d.GroupID, d.ArtifactID, string(d.Type)}
	if d.Classifier != "" {
		parts = append(parts, d.Classifier)
	}
	if d.HasVersion() {
		parts = append(parts, d.Version)
	}
	return strings.Join(parts, ":")
}
