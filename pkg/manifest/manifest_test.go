package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mvnmodel/pkg/errors"
	"github.com/matzehuels/mvnmodel/pkg/maven"
)

const sample = `
[project]
coordinate = "com.example:app:1.0.0"
packaging = "jar"
name = "App"

[parent]
coordinate = "com.example:parent:3"
relative_path = "../pom.xml"

[[dependency]]
kind = "jar"
args = ["org.slf4j:slf4j-api:1.7.36"]
exclusions = ["log4j:log4j"]

[[dependency]]
kind = "test_jar"
args = ["junit", "junit", "4.13.2"]

[[dependency]]
kind = "pom"
args = ["org.springframework:spring-framework-bom", "5.3.30"]

[[dependency]]
kind = "gem"
args = ["rake"]

[[dependency]]
kind = "jar"
args = ["org.slf4j:slf4j-api"]
exclusions = ["commons-logging:commons-logging"]
`

func TestDecode(t *testing.T) {
	var logged []string
	m, err := Decode(strings.NewReader(sample), Options{
		Logger: func(format string, args ...any) { logged = append(logged, format) },
	})
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if m.ID() != "com.example:app" || m.Version != "1.0.0" || m.Name != "App" {
		t.Errorf("project = %s (%s)", m.Coordinate, m.Name)
	}
	if m.Parent == nil || m.Parent.ID() != "com.example:parent" || m.Parent.RelativePath != "../pom.xml" {
		t.Errorf("Parent = %+v", m.Parent)
	}

	if n := m.Dependencies().Len(); n != 4 {
		t.Fatalf("dependency count = %d, want 4", n)
	}
	if len(logged) != 1 {
		t.Errorf("logged %d merges, want 1", len(logged))
	}

	slf4j := m.Dependencies().Items()[0]
	if slf4j.Version != "1.7.36" {
		t.Errorf("bare re-declaration changed version to %q", slf4j.Version)
	}
	if slf4j.Exclusions().Len() != 2 {
		t.Errorf("slf4j exclusions = %d, want 2", slf4j.Exclusions().Len())
	}

	if !m.HasTestJar("junit:junit") {
		t.Error("junit should be a test jar")
	}
	if !m.HasPom("org.springframework:spring-framework-bom") {
		t.Error("bom should be declared")
	}
	if rake := m.DetectGem("rake"); rake == nil || rake.Version != maven.DefaultGemVersion {
		t.Errorf("rake = %v", rake)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"invalid toml", "[[dependency]\nkind=", errors.ErrCodeInvalidManifest},
		{"unknown kind", "[[dependency]]\nkind = \"war\"\nargs = [\"g:a\"]", errors.ErrCodeInvalidArgument},
		{"config map", "[[dependency]]\nkind = \"jar\"\nargs = [\"g:a\"]\n[dependency.config]\nscope = \"test\"", errors.ErrCodeInvalidArgument},
		{"bad coordinate", "[[dependency]]\nkind = \"jar\"\nargs = [\"g:a:b:c\"]", errors.ErrCodeInvalidFormat},
		{"bad exclusion", "[[dependency]]\nkind = \"jar\"\nargs = [\"g:a\"]\nexclusions = [\"x:y:z\"]", errors.ErrCodeInvalidFormat},
		{"bad project", "[project]\ncoordinate = \"nogroup\"", errors.ErrCodeInvalidFormat},
		{"bad parent path", "[parent]\ncoordinate = \"g:p\"\nrelative_path = \"/abs\"", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml), Options{})
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if !errors.Has(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDecodeLogsUnknownKeys(t *testing.T) {
	var logged []string
	_, err := Decode(strings.NewReader("[project]\ncoordinate = \"g:a\"\nlicense = \"MIT\"\n"), Options{
		Logger: func(format string, args ...any) { logged = append(logged, format) },
	})
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(logged) != 1 {
		t.Errorf("logged %v, want one unknown key", logged)
	}
}

func TestDeclare(t *testing.T) {
	var r maven.Registry
	for _, kind := range []string{KindJar, KindTestJar, KindPom} {
		if _, err := Declare(&r, kind, "g:"+kind, "1.0"); err != nil {
			t.Errorf("Declare(%s) error: %v", kind, err)
		}
	}
	if _, err := Declare(&r, KindGem, "rake"); err != nil {
		t.Errorf("Declare(gem) error: %v", err)
	}
	if n := r.Dependencies().Len(); n != 4 {
		t.Errorf("dependency count = %d, want 4", n)
	}
}

func TestHas(t *testing.T) {
	var r maven.Registry
	r.Jar("org.slf4j:slf4j-api", "1.7.36")
	r.TestJar("org.testng:testng", "6.8", "jdk15")
	r.Gem("rake")

	tests := []struct {
		kind string
		args []any
		want bool
	}{
		{KindJar, []any{"org.slf4j:slf4j-api"}, true},
		{KindJar, []any{[]string{"org.slf4j", "slf4j-api", "2.0"}}, true},
		{KindTestJar, []any{"org.testng:testng", "6.8", "jdk15"}, true},
		{KindTestJar, []any{"org.slf4j:slf4j-api"}, false},
		{KindPom, []any{"org.slf4j:slf4j-api"}, false},
		{KindGem, []any{"rake"}, true},
		{KindGem, []any{"rails"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := Has(&r, tt.kind, tt.args...)
			if err != nil {
				t.Fatalf("Has() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Has(%s, %v) = %v, want %v", tt.kind, tt.args, got, tt.want)
			}
		})
	}

	if _, err := Has(&r, "war", "g:a"); !errors.IsArgument(err) {
		t.Errorf("Has(war) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnmodel.toml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Dependencies().Len() != 4 {
		t.Errorf("dependency count = %d, want 4", m.Dependencies().Len())
	}

	if _, err := Load(filepath.Join(dir, "nope.toml"), Options{}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"mvnmodel.toml", true},
		{"deps.TOML", true},
		{"pom.xml", false},
		{"Cargo.lock", false},
	}
	for _, tt := range tests {
		if got := Supports(tt.filename); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
