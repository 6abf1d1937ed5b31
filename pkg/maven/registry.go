package maven

import (
	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// Registry gives a host document a dependency section. Embed it and the
// host gains the declaration methods:
//
//	type Project struct {
//	    maven.Registry
//	}
//
//	p := &Project{}
//	p.Jar("org.slf4j:slf4j-api:1.7.36")
//	p.TestJar("junit", "junit", "4.13.2")
//	p.Gem("rake")
//
// The zero value is ready to use. A Registry is not safe for concurrent use.
type Registry struct {
	deps *DependencyList
}

// Dependencies returns the dependency list, creating it on first use. Each
// configure function is called with the registry itself, for grouped
// declarations:
//
//	r.Dependencies(func(r *maven.Registry) {
//	    r.Jar("g:a:1.0")
//	    r.Pom("g:bom:2.0")
//	})
func (r *Registry) Dependencies(configure ...func(*Registry)) *DependencyList {
	if r.deps == nil {
		r.deps = &DependencyList{}
	}
	for _, fn := range configure {
		fn(r)
	}
	return r.deps
}

// AddDependency upserts dep. When an equal dependency is already declared,
// its version is overwritten with dep's if updateVersion is set, and the
// stored entry is returned in place of dep. Otherwise dep is appended and
// returned. The configure functions run on the returned dependency.
func (r *Registry) AddDependency(dep *Dependency, updateVersion bool, configure ...func(*Dependency)) *Dependency {
	if dep == nil {
		return nil
	}
	list := r.Dependencies()
	if found, ok := list.Find(dep.Key()); ok {
		if updateVersion {
			found.Version = dep.Version
		}
		dep = found
	} else {
		list.Add(dep)
	}
	for _, fn := range configure {
		fn(dep)
	}
	return dep
}

// Jar declares a jar dependency. Arguments are coordinate tokens as
// accepted by [NewDependency], optionally followed by a func(*Dependency)
// that configures the declared entry:
//
//	r.Jar("org.hibernate:hibernate-core", "5.6.15.Final", func(d *maven.Dependency) {
//	    d.Exclude("org.jboss.logging:jboss-logging")
//	})
//
// A declaration with an explicit version updates the version of an existing
// entry: either more than one argument, or a single "group:artifact:version"
// string. A bare re-mention ("group:artifact") never does, so it cannot
// clobber a pinned version. A trailing [Config] map is an INVALID_ARGUMENT
// error.
func (r *Registry) Jar(args ...any) (*Dependency, error) {
	return r.declare("jar", NewJar, args)
}

// TestJar declares a jar dependency in test scope, like [Registry.Jar].
func (r *Registry) TestJar(args ...any) (*Dependency, error) {
	return r.declare("test_jar", NewTestJar, args)
}

// Pom declares a pom dependency, like [Registry.Jar].
func (r *Registry) Pom(args ...any) (*Dependency, error) {
	return r.declare("pom", NewPom, args)
}

func (r *Registry) declare(kind string, build func(...any) (*Dependency, error), args []any) (*Dependency, error) {
	args, configure := splitCallback(args)
	if n := len(args); n > 0 && isConfig(args[n-1]) {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "hash not allowed for %s", kind)
	}
	dep, err := build(args...)
	if err != nil {
		return nil, err
	}
	versioned := len(args) > 1 || dep.HasVersion()
	return r.AddDependency(dep, versioned, configure...), nil
}

// Gem declares a RubyGems dependency: the gem name followed by version
// requirements, optionally followed by a func(*Dependency).
//
// Declaring only a name returns an already declared gem of that name as is,
// without running the configure function. If there is none, the version
// defaults to ">= 0".
func (r *Registry) Gem(args ...any) (*Dependency, error) {
	args, configure := splitCallback(args)
	if n := len(args); n > 0 && isConfig(args[n-1]) {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "hash not allowed in that context")
	}
	toks, err := tokens(args)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "gem name is required")
	}
	if len(toks) == 1 {
		probe := DependencyKey{GroupID: GemGroup, ArtifactID: toks[0], Type: TypeGem}
		if dep, ok := r.Dependencies().Find(probe); ok {
			return dep, nil
		}
		toks = append(toks, DefaultGemVersion)
	}
	dep, err := NewGem(toks[0], strs(toks[1:])...)
	if err != nil {
		return nil, err
	}
	return r.AddDependency(dep, true, configure...), nil
}

// HasJar reports whether a jar with the given coordinates is declared,
// regardless of version and scope. Malformed arguments are never declared.
func (r *Registry) HasJar(args ...any) bool {
	_, ok := r.lookup(TypeJar, args)
	return ok
}

// HasTestJar reports whether a jar with the given coordinates is declared
// in test scope.
func (r *Registry) HasTestJar(args ...any) bool {
	dep, ok := r.lookup(TypeJar, args)
	return ok && dep.Scope == ScopeTest
}

// HasPom reports whether a pom with the given coordinates is declared.
func (r *Registry) HasPom(args ...any) bool {
	_, ok := r.lookup(TypePom, args)
	return ok
}

// HasGem reports whether a gem is declared. The arguments start with the
// gem name; the group is always "rubygems".
func (r *Registry) HasGem(args ...any) bool {
	_, ok := r.lookup(TypeGem, append([]any{GemGroup}, args...))
	return ok
}

func (r *Registry) lookup(typ Type, args []any) (*Dependency, bool) {
	probe, err := NewDependency(typ, args...)
	if err != nil {
		return nil, false
	}
	return r.Dependencies().Find(probe.Key())
}

// DetectGem returns the first declared gem named name, or nil.
func (r *Registry) DetectGem(name string) *Dependency {
	dep, _ := r.Dependencies().Detect(func(d *Dependency) bool {
		return d.Type == TypeGem && d.ArtifactID == name
	})
	return dep
}
