package maven

import (
	"strings"

	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// Coordinate identifies an artifact by group, artifact and version.
//
// Identity is (GroupID, ArtifactID) only: "g:a" and "g:a:1.0" name the same
// artifact. Version is data, not identity.
type Coordinate struct {
	GroupID    string // e.g. "org.slf4j"
	ArtifactID string // e.g. "slf4j-api"
	Version    string // version or range; DefaultVersion when unspecified
}

// CoordinateKey is the identity of a [Coordinate].
type CoordinateKey struct {
	GroupID    string
	ArtifactID string
}

// ParseCoordinate builds a Coordinate from one of the accepted shapes:
//
//	ParseCoordinate("org.slf4j:slf4j-api:1.7.36")
//	ParseCoordinate("org.slf4j:slf4j-api")            // Version = "[0,)"
//	ParseCoordinate("org.slf4j:slf4j-api", "1.7.36")
//	ParseCoordinate("org.slf4j", "slf4j-api", "1.7.36")
//
// A []string argument is flattened into the list. A token following the
// version counts as a second requirement when it is a version predicate
// (see [IsVersionPredicate]); otherwise it is ignored here and picked up as
// a classifier by [NewDependency].
//
// Returns an INVALID_FORMAT error when group or artifact cannot be
// determined.
func ParseCoordinate(args ...any) (Coordinate, error) {
	toks, err := tokens(args)
	if err != nil {
		return Coordinate{}, err
	}
	return parseGAV(toks)
}

func parseGAV(toks []string) (Coordinate, error) {
	if len(toks) == 0 {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidFormat, "empty coordinate")
	}

	var group, artifact string
	var rest []string
	if strings.Contains(toks[0], ":") {
		parts := strings.Split(toks[0], ":")
		switch len(parts) {
		case 2:
			group, artifact, rest = parts[0], parts[1], toks[1:]
		case 3:
			if len(toks) > 1 {
				return Coordinate{}, errors.New(errors.ErrCodeInvalidFormat, "coordinate %q already carries a version", toks[0])
			}
			group, artifact, rest = parts[0], parts[1], parts[2:]
		default:
			return Coordinate{}, errors.New(errors.ErrCodeInvalidFormat,
				"coordinate %q: expected group:artifact[:version], got %d segments", toks[0], len(parts))
		}
	} else {
		if len(toks) < 2 {
			return Coordinate{}, errors.New(errors.ErrCodeInvalidFormat, "coordinate %q is missing an artifact id", toks[0])
		}
		group, artifact, rest = toks[0], toks[1], toks[2:]
	}
	if len(rest) > 2 {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidFormat, "too many coordinate arguments: %q", toks)
	}

	if err := errors.ValidateCoordinatePart("group", group); err != nil {
		return Coordinate{}, err
	}
	if err := errors.ValidateCoordinatePart("artifact", artifact); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{GroupID: group, ArtifactID: artifact, Version: versionOf(rest)}, nil
}

func versionOf(rest []string) string {
	switch {
	case len(rest) == 0 || rest[0] == "":
		return DefaultVersion
	case len(rest) == 2 && IsVersionPredicate(rest[1]):
		return rest[0] + ", " + rest[1]
	}
	return rest[0]
}

// HasVersion reports whether an explicit version was declared.
func (c Coordinate) HasVersion() bool {
	return c.Version != "" && c.Version != DefaultVersion
}

// Key returns the identity of c.
func (c Coordinate) Key() CoordinateKey {
	return CoordinateKey{GroupID: c.GroupID, ArtifactID: c.ArtifactID}
}

// Equal reports whether c and o name the same artifact, ignoring version.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.Key() == o.Key()
}

// ID returns "group:artifact".
func (c Coordinate) ID() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String returns "group:artifact", with ":version" appended when declared.
func (c Coordinate) String() string {
	if c.HasVersion() {
		return c.ID() + ":" + c.Version
	}
	return c.ID()
}

// Parent is the coordinate of a parent document plus the path to it.
// RelativePath plays no part in identity.
type Parent struct {
	Coordinate
	RelativePath string
}

// NewParent parses args like [ParseCoordinate].
func NewParent(args ...any) (*Parent, error) {
	c, err := ParseCoordinate(args...)
	if err != nil {
		return nil, err
	}
	return &Parent{Coordinate: c}, nil
}
