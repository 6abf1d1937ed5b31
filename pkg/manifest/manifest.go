// Package manifest loads dependency declarations from a TOML file.
//
// A declaration file replays builder calls against a [maven.Model] in file
// order, so re-declarations merge exactly as they do in code:
//
//	[project]
//	coordinate = "com.example:app:1.0.0"
//	packaging = "jar"
//
//	[parent]
//	coordinate = "com.example:parent:3"
//	relative_path = "../pom.xml"
//
//	[[dependency]]
//	kind = "jar"                          # jar | test_jar | pom | gem
//	args = ["org.slf4j:slf4j-api", "1.7.36"]
//	exclusions = ["log4j:log4j"]
//
// args are the positional builder arguments ([maven.Registry.Jar] etc.). A
// non-empty [dependency.config] table is passed as a trailing
// [maven.Config], which the builders reject.
//
// [maven.Model]: github.com/matzehuels/mvnmodel/pkg/maven.Model
package manifest

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mvnmodel/pkg/errors"
	"github.com/matzehuels/mvnmodel/pkg/maven"
)

// Kinds of declaration accepted in a [[dependency]] entry.
const (
	KindJar     = "jar"
	KindTestJar = "test_jar"
	KindPom     = "pom"
	KindGem     = "gem"
)

// Options configures loading.
type Options struct {
	Logger func(string, ...any) // Called for merges and unknown keys (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Supports reports whether filename is a declaration file.
func Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

// Load reads the declaration file at path.
func Load(path string, opts Options) (*maven.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts)
}

// Decode reads declarations from r and builds the model.
func Decode(r io.Reader, opts Options) (*maven.Model, error) {
	opts = opts.WithDefaults()

	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode declarations")
	}
	for _, key := range md.Undecoded() {
		opts.Logger("ignoring unknown key %s", key)
	}

	m := &maven.Model{}
	if f.Project.Coordinate != "" {
		if m, err = maven.NewModel(f.Project.Coordinate); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "project")
		}
	}
	m.Packaging = f.Project.Packaging
	m.Name = f.Project.Name
	m.Description = f.Project.Description

	if f.Parent != nil {
		parent, err := maven.NewParent(f.Parent.Coordinate)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parent")
		}
		if f.Parent.RelativePath != "" {
			if err := errors.ValidatePath(f.Parent.RelativePath); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parent")
			}
			parent.RelativePath = f.Parent.RelativePath
		}
		m.Parent = parent
	}

	for i, d := range f.Dependencies {
		args, err := d.arguments()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "dependency[%d]", i)
		}
		before := m.Dependencies().Len()
		dep, err := Declare(&m.Registry, d.Kind, args...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "dependency[%d]", i)
		}
		if m.Dependencies().Len() == before {
			opts.Logger("merged re-declaration of %s", dep)
		}
	}
	return m, nil
}

// Declare dispatches a declaration of the given kind to the matching
// builder on r. Unknown kinds are INVALID_ARGUMENT errors.
func Declare(r *maven.Registry, kind string, args ...any) (*maven.Dependency, error) {
	switch kind {
	case KindJar:
		return r.Jar(args...)
	case KindTestJar:
		return r.TestJar(args...)
	case KindPom:
		return r.Pom(args...)
	case KindGem:
		return r.Gem(args...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidArgument, "unknown dependency kind %q", kind)
	}
}

// Has dispatches a membership query of the given kind to the matching
// query on r. Unknown kinds are INVALID_ARGUMENT errors.
func Has(r *maven.Registry, kind string, args ...any) (bool, error) {
	switch kind {
	case KindJar:
		return r.HasJar(args...), nil
	case KindTestJar:
		return r.HasTestJar(args...), nil
	case KindPom:
		return r.HasPom(args...), nil
	case KindGem:
		return r.HasGem(args...), nil
	default:
		return false, errors.New(errors.ErrCodeInvalidArgument, "unknown dependency kind %q", kind)
	}
}

type file struct {
	Project      projectSection `toml:"project"`
	Parent       *parentSection `toml:"parent"`
	Dependencies []declaration  `toml:"dependency"`
}

type projectSection struct {
	Coordinate  string `toml:"coordinate"`
	Packaging   string `toml:"packaging"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type parentSection struct {
	Coordinate   string `toml:"coordinate"`
	RelativePath string `toml:"relative_path"`
}

type declaration struct {
	Kind       string            `toml:"kind"`
	Args       []string          `toml:"args"`
	Exclusions []string          `toml:"exclusions"`
	Config     map[string]string `toml:"config"`
}

// arguments converts the entry into builder arguments. Exclusions are
// parsed up front and attached by a trailing configure callback, so a bad
// exclusion fails before anything is declared.
func (d declaration) arguments() ([]any, error) {
	args := make([]any, 0, len(d.Args)+1)
	for _, a := range d.Args {
		args = append(args, a)
	}
	if len(d.Config) > 0 {
		return append(args, maven.Config(d.Config)), nil
	}
	if len(d.Exclusions) == 0 {
		return args, nil
	}

	exclusions := make([]maven.Exclusion, 0, len(d.Exclusions))
	for _, raw := range d.Exclusions {
		e, err := maven.ParseExclusion(raw)
		if err != nil {
			return nil, err
		}
		exclusions = append(exclusions, e)
	}
	return append(args, func(dep *maven.Dependency) {
		for _, e := range exclusions {
			dep.Exclusions().Add(e)
		}
	}), nil
}
