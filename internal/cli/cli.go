package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnmodel/pkg/errors"
	"github.com/matzehuels/mvnmodel/pkg/manifest"
	"github.com/matzehuels/mvnmodel/pkg/maven"
	"github.com/matzehuels/mvnmodel/pkg/maven/pom"
)

// appName is the application name used for display.
const appName = "mvnmodel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "mvnmodel builds and inspects Maven dependency sections",
		Long:         `mvnmodel reads dependency declarations (a TOML declaration file or a pom.xml), merges re-declared artifacts, and writes them back out as POM XML, listings, or dependency diagrams.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())

	root.AddCommand(c.pomCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.hasCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadModel reads a declaration file or POM, picking the reader by filename.
func loadModel(ctx context.Context, path string) (*maven.Model, error) {
	logger := loggerFromContext(ctx)

	name := filepath.Base(path)
	if err := errors.ValidateManifestFilename(name); err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	var (
		m   *maven.Model
		err error
	)
	switch {
	case pom.Supports(name):
		logger.Debug("reading POM", "path", path)
		m, err = pom.ParseFile(path, pom.Options{Logger: readerLogger(logger, path)})
	case manifest.Supports(name):
		logger.Debug("reading declaration file", "path", path)
		m, err = manifest.Load(path, manifest.Options{Logger: readerLogger(logger, path)})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported file %s: expected pom.xml, *.pom or *.toml", name)
	}
	if err != nil {
		return nil, err
	}
	prog.done("Loaded %s", pluralize(m.Dependencies().Len(), "dependency", "dependencies"))
	return m, nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
