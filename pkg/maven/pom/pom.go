// Package pom reads and writes the dependency model as Maven pom.xml.
//
// It is an external collaborator of [maven]: reading registers every
// <dependency> through [maven.Registry.AddDependency], so duplicate
// declarations in a POM merge the same way programmatic declarations do,
// and writing walks [maven.DependencyList] in declaration order.
//
//	m, err := pom.ParseFile("pom.xml", pom.Options{})
//	...
//	err = pom.Write(os.Stdout, m)
//
// [maven]: github.com/matzehuels/mvnmodel/pkg/maven
package pom

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mvnmodel/pkg/errors"
	"github.com/matzehuels/mvnmodel/pkg/maven"
)

const (
	modelVersion = "4.0.0"
	namespace    = "http://maven.apache.org/POM/4.0.0"
)

// Options configures reading.
type Options struct {
	Logger func(string, ...any) // Called for merged duplicates (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Supports reports whether filename is a POM.
func Supports(filename string) bool {
	name := filepath.Base(filename)
	return name == "pom.xml" || strings.HasSuffix(name, ".pom")
}

// ParseFile reads the POM at path.
func ParseFile(path string, opts Options) (*maven.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

// Read decodes a POM and builds its model. Dependencies without a version
// get [maven.DefaultVersion]; a missing project groupId or version is
// inherited from the parent, as Maven does.
func Read(r io.Reader, opts Options) (*maven.Model, error) {
	opts = opts.WithDefaults()

	var p project
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode pom")
	}

	m := &maven.Model{
		Coordinate: maven.Coordinate{
			GroupID:    p.GroupID,
			ArtifactID: p.ArtifactID,
			Version:    p.Version,
		},
		Packaging:   p.Packaging,
		Name:        p.Name,
		Description: p.Description,
	}

	if p.Parent != nil {
		parent, err := maven.NewParent(p.Parent.GroupID, p.Parent.ArtifactID, p.Parent.Version)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parent")
		}
		if p.Parent.RelativePath != "" {
			if err := errors.ValidatePath(p.Parent.RelativePath); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parent")
			}
			parent.RelativePath = p.Parent.RelativePath
		}
		m.Parent = parent
		if m.GroupID == "" {
			m.GroupID = parent.GroupID
		}
		if m.Version == "" {
			m.Version = parent.Version
		}
	}

	for i, pd := range p.Dependencies {
		dep, err := toDependency(pd)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "dependency[%d]", i)
		}
		if m.Dependencies().Contains(dep) {
			opts.Logger("merged duplicate dependency %s", dep)
		}
		m.AddDependency(dep, true, func(canonical *maven.Dependency) {
			if canonical == dep {
				return
			}
			for e := range dep.Exclusions().All() {
				canonical.Exclusions().Add(e)
			}
		})
	}
	return m, nil
}

func toDependency(pd dependency) (*maven.Dependency, error) {
	typ := maven.Type(pd.Type)
	if typ == "" {
		typ = maven.TypeJar
	}
	args := []any{pd.GroupID, pd.ArtifactID}
	if pd.Version != "" {
		args = append(args, pd.Version)
	}
	dep, err := maven.NewDependency(typ, args...)
	if err != nil {
		return nil, err
	}
	dep.Scope = maven.Scope(pd.Scope)
	dep.Classifier = pd.Classifier
	for _, e := range pd.Exclusions {
		if err := dep.Exclude(e.GroupID, e.ArtifactID); err != nil {
			return nil, err
		}
	}
	return dep, nil
}

// Write encodes m as a POM. Dependencies keep their declaration order;
// unset versions and the default jar type are omitted, and RubyGems style
// requirements are written as Maven ranges.
func Write(w io.Writer, m *maven.Model) error {
	p := project{
		Xmlns:        namespace,
		ModelVersion: modelVersion,
		GroupID:      m.GroupID,
		ArtifactID:   m.ArtifactID,
		Packaging:    m.Packaging,
		Name:         m.Name,
		Description:  m.Description,
	}
	if m.HasVersion() {
		p.Version = m.Version
	}
	if m.Parent != nil {
		p.Parent = &parent{
			GroupID:      m.Parent.GroupID,
			ArtifactID:   m.Parent.ArtifactID,
			RelativePath: m.Parent.RelativePath,
		}
		if m.Parent.HasVersion() {
			p.Parent.Version = m.Parent.Version
		}
	}

	for d := range m.Dependencies().All() {
		pd, err := fromDependency(d)
		if err != nil {
			return err
		}
		p.Dependencies = append(p.Dependencies, pd)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(p); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func fromDependency(d *maven.Dependency) (dependency, error) {
	pd := dependency{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Classifier: d.Classifier,
		Scope:      string(d.Scope),
	}
	if d.Type != maven.TypeJar {
		pd.Type = string(d.Type)
	}
	if d.HasVersion() {
		v, err := d.MavenVersion()
		if err != nil {
			return dependency{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "version of %s", d)
		}
		pd.Version = v
	}
	for e := range d.Exclusions().All() {
		pd.Exclusions = append(pd.Exclusions, exclusion{GroupID: e.GroupID, ArtifactID: e.ArtifactID})
	}
	return pd, nil
}

type project struct {
	XMLName      xml.Name     `xml:"project"`
	Xmlns        string       `xml:"xmlns,attr,omitempty"`
	ModelVersion string       `xml:"modelVersion,omitempty"`
	Parent       *parent      `xml:"parent,omitempty"`
	GroupID      string       `xml:"groupId,omitempty"`
	ArtifactID   string       `xml:"artifactId,omitempty"`
	Version      string       `xml:"version,omitempty"`
	Packaging    string       `xml:"packaging,omitempty"`
	Name         string       `xml:"name,omitempty"`
	Description  string       `xml:"description,omitempty"`
	Dependencies []dependency `xml:"dependencies>dependency"`
}

type parent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version,omitempty"`
	RelativePath string `xml:"relativePath,omitempty"`
}

type dependency struct {
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version,omitempty"`
	Type       string      `xml:"type,omitempty"`
	Classifier string      `xml:"classifier,omitempty"`
	Scope      string      `xml:"scope,omitempty"`
	Exclusions []exclusion `xml:"exclusions>exclusion"`
}

type exclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}
