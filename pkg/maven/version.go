package maven

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// DefaultVersion is the Maven range meaning "any version". A coordinate
// declared without a version carries it.
const DefaultVersion = "[0,)"

// DefaultGemVersion is the requirement a bare gem declaration defaults to.
const DefaultGemVersion = ">= 0"

var versionPredicate = regexp.MustCompile(`[=~><]`)

// IsVersionPredicate reports whether s looks like a version requirement
// (">= 1.0", "~> 2.1", "= 3") rather than a plain version or classifier.
func IsVersionPredicate(s string) bool {
	return versionPredicate.MatchString(s)
}

// MavenRange converts a version requirement into Maven range syntax.
//
// Plain versions and strings that are already Maven ranges are returned
// unchanged. Requirements use the RubyGems operators, with a comma joining
// two of them:
//
//	">= 0"        -> "[0,)"
//	"> 1.0"       -> "(1.0,)"
//	"< 2"         -> "[0,2)"
//	"= 1.5"       -> "[1.5]"
//	"~> 1.2"      -> "[1.2,2)"
//	"~> 1.2.3"    -> "[1.2.3,1.3)"
//	"~> 1.2.3.4"  -> "[1.2.3.4,1.2.4)"
//	">= 1, < 2"   -> "[1,2)"
//
// Joined clauses intersect: ">= 1.2.5, ~> 1.2" is "[1.2.5,2)" whichever
// clause comes first. "!=" has no Maven equivalent, and neither has a
// requirement no version satisfies; both are reported as format errors.
func MavenRange(req string) (string, error) {
	req = strings.TrimSpace(req)
	if req == "" || req == DefaultVersion {
		return DefaultVersion, nil
	}
	if !IsVersionPredicate(req) {
		return req, nil
	}

	var b bounds
	for _, part := range strings.Split(req, ",") {
		if err := b.apply(strings.TrimSpace(part)); err != nil {
			return "", err
		}
	}
	if b.empty() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "requirement %q matches no version", req)
	}
	return b.String(), nil
}

type bounds struct {
	low, high         string
	lowExcl, highExcl bool
}

var operators = []string{"~>", ">=", "<=", "!=", "=", ">", "<"}

// apply narrows b by one requirement clause. Clauses intersect, so their
// order never changes the result.
func (b *bounds) apply(part string) error {
	op := "="
	for _, candidate := range operators {
		if strings.HasPrefix(part, candidate) {
			op = candidate
			break
		}
	}
	v := strings.TrimSpace(strings.TrimPrefix(part, op))
	if v == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "missing version in requirement %q", part)
	}

	switch op {
	case "=":
		b.raiseLow(v, false)
		b.lowerHigh(v, false)
	case ">=":
		b.raiseLow(v, false)
	case ">":
		b.raiseLow(v, true)
	case "<=":
		b.lowerHigh(v, false)
	case "<":
		b.lowerHigh(v, true)
	case "~>":
		upper, err := pessimisticUpper(v)
		if err != nil {
			return err
		}
		b.raiseLow(v, false)
		b.lowerHigh(upper, true)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "cannot express %q as a Maven range", part)
	}
	return nil
}

// raiseLow keeps the larger lower bound; on a tie the exclusive one wins.
func (b *bounds) raiseLow(v string, excl bool) {
	if b.low == "" {
		b.low, b.lowExcl = v, excl
		return
	}
	switch c := compareVersions(v, b.low); {
	case c > 0:
		b.low, b.lowExcl = v, excl
	case c == 0:
		b.lowExcl = b.lowExcl || excl
	}
}

// lowerHigh keeps the smaller upper bound; on a tie the exclusive one wins.
func (b *bounds) lowerHigh(v string, excl bool) {
	if b.high == "" {
		b.high, b.highExcl = v, excl
		return
	}
	switch c := compareVersions(v, b.high); {
	case c < 0:
		b.high, b.highExcl = v, excl
	case c == 0:
		b.highExcl = b.highExcl || excl
	}
}

// empty reports whether no version satisfies b.
func (b bounds) empty() bool {
	if b.low == "" || b.high == "" {
		return false
	}
	c := compareVersions(b.low, b.high)
	return c > 0 || (c == 0 && (b.lowExcl || b.highExcl))
}

func (b bounds) String() string {
	if b.low != "" && b.high != "" && !b.lowExcl && !b.highExcl && compareVersions(b.low, b.high) == 0 {
		return "[" + b.low + "]"
	}

	var sb strings.Builder
	if b.lowExcl {
		sb.WriteByte('(')
	} else {
		sb.WriteByte('[')
	}
	if b.low == "" {
		sb.WriteByte('0')
	} else {
		sb.WriteString(b.low)
	}
	sb.WriteByte(',')
	sb.WriteString(b.high)
	if b.high != "" && !b.highExcl {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

// compareVersions orders two versions. Semantic versions compare with
// semver; anything else ("1.2.3.4", "5.6.15.Final") compares segment by
// segment, numerically where both segments are numbers. Missing segments
// count as "0".
func compareVersions(a, b string) int {
	if va, err := semver.NewVersion(a); err == nil {
		if vb, err := semver.NewVersion(b); err == nil {
			return va.Compare(vb)
		}
	}

	as, bs := splitVersion(a), splitVersion(b)
	for i := range max(len(as), len(bs)) {
		x, y := "0", "0"
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		xn, xerr := strconv.Atoi(x)
		yn, yerr := strconv.Atoi(y)
		var c int
		if xerr == nil && yerr == nil {
			c = cmp.Compare(xn, yn)
		} else {
			c = strings.Compare(x, y)
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func splitVersion(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool { return r == '.' || r == '-' })
}

// pessimisticUpper returns the exclusive upper bound of "~> v": the version
// with its second-to-last segment bumped and the rest dropped. A single
// segment is bumped itself. Any number of segments is accepted; the leading
// major.minor.patch must be a valid version.
func pessimisticUpper(v string) (string, error) {
	release, _, _ := strings.Cut(v, "-")
	segs := strings.Split(release, ".")
	if _, err := semver.NewVersion(strings.Join(segs[:min(len(segs), 3)], ".")); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid version %q in ~> requirement", v)
	}

	if len(segs) > 1 {
		segs = segs[:len(segs)-1]
	}
	last := len(segs) - 1
	n, err := strconv.Atoi(segs[last])
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid version %q in ~> requirement", v)
	}
	segs[last] = strconv.Itoa(n + 1)
	return strings.Join(segs, "."), nil
}
