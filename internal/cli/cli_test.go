package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mvnmodel/pkg/errors"
)

const sampleDeclarations = `
[project]
coordinate = "com.example:app:1.0.0"
name = "App"

[[dependency]]
kind = "jar"
args = ["org.slf4j:slf4j-api", "1.7.30"]

[[dependency]]
kind = "jar"
args = ["org.slf4j:slf4j-api", "1.7.36"]
exclusions = ["log4j:log4j"]

[[dependency]]
kind = "test_jar"
args = ["org.testng:testng", "6.8", "jdk15"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPOMCommand(t *testing.T) {
	path := writeFile(t, "deps.toml", sampleDeclarations)

	out, err := execute(t, "pom", path)
	if err != nil {
		t.Fatalf("pom error: %v", err)
	}

	for _, want := range []string{
		"<artifactId>app</artifactId>",
		"<version>1.7.36</version>",
		"<classifier>jdk15</classifier>",
		"<scope>test</scope>",
		"<groupId>log4j</groupId>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1.7.30") {
		t.Error("re-declared version should be replaced")
	}
	if n := strings.Count(out, "<artifactId>slf4j-api</artifactId>"); n != 1 {
		t.Errorf("slf4j-api written %d times, want 1", n)
	}
}

func TestPOMCommandOutputFile(t *testing.T) {
	path := writeFile(t, "deps.toml", sampleDeclarations)
	output := filepath.Join(t.TempDir(), "pom.xml")

	out, err := execute(t, "pom", path, "-o", output)
	if err != nil {
		t.Fatalf("pom error: %v", err)
	}
	if !strings.Contains(out, output) {
		t.Errorf("status should name the output file, got %q", out)
	}

	// The written POM loads back with the same dependencies.
	listed, err := execute(t, "list", output)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(listed, "2 dependencies") {
		t.Errorf("round-tripped listing = %q", listed)
	}
}

func TestListCommand(t *testing.T) {
	path := writeFile(t, "deps.toml", sampleDeclarations)

	out, err := execute(t, "list", path)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{
		"com.example:app:1.0.0",
		"App",
		"org.slf4j:slf4j-api",
		"1.7.36",
		"log4j:log4j",
		"jdk15",
		"2 dependencies",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestHasCommand(t *testing.T) {
	path := writeFile(t, "deps.toml", sampleDeclarations)

	tests := []struct {
		name    string
		args    []string
		wantErr errors.Code
	}{
		{"jar", []string{"jar", "org.slf4j:slf4j-api"}, ""},
		{"jar ignores version", []string{"jar", "org.slf4j", "slf4j-api", "9.9"}, ""},
		{"test jar", []string{"test_jar", "org.testng:testng", "6.8", "jdk15"}, ""},
		{"compile jar is not a test jar", []string{"test_jar", "org.slf4j:slf4j-api"}, errors.ErrCodeNotFound},
		{"missing pom", []string{"pom", "org.slf4j:slf4j-api"}, errors.ErrCodeNotFound},
		{"unknown kind", []string{"war", "g:a"}, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"has", path}, tt.args...)...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("has error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("has error = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestGraphCommandDOT(t *testing.T) {
	path := writeFile(t, "deps.toml", sampleDeclarations)

	out, err := execute(t, "graph", path, "--dot", "--detailed")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("expected DOT output, got:\n%s", out)
	}
	if !strings.Contains(out, "scope: test") {
		t.Error("detailed labels should include scope")
	}
}

func TestLoadModelErrors(t *testing.T) {
	unsupported := writeFile(t, "deps.yaml", "")
	if _, err := execute(t, "list", unsupported); !errors.Has(err, errors.ErrCodeUnsupported) {
		t.Errorf("list(yaml) error = %v, want UNSUPPORTED", err)
	}

	missing := filepath.Join(t.TempDir(), "pom.xml")
	if _, err := execute(t, "list", missing); !errors.Has(err, errors.ErrCodeFileNotFound) {
		t.Errorf("list(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	hidden := writeFile(t, ".deps.toml", sampleDeclarations)
	if _, err := execute(t, "list", hidden); !errors.Has(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("list(hidden) error = %v, want INVALID_MANIFEST", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "mvnmodel") {
		t.Error("bash completion should mention the command name")
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "dependency", "dependencies"); got != "1 dependency" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "dependency", "dependencies"); got != "0 dependencies" {
		t.Errorf("pluralize(0) = %q", got)
	}
}

func TestExampleDeclarations(t *testing.T) {
	path := filepath.Join("..", "..", "examples", "app.toml")

	out, err := execute(t, "pom", path)
	if err != nil {
		t.Fatalf("pom error: %v", err)
	}
	for _, want := range []string{
		"<relativePath>../parent/pom.xml</relativePath>",
		"<version>2.0.9</version>",
		"<version>[13.0,14)</version>",
		"<type>pom</type>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "<dependency>"); n != 6 {
		t.Errorf("wrote %d dependencies, want 6", n)
	}
}
