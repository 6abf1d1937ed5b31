package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnmodel/pkg/errors"
	"github.com/matzehuels/mvnmodel/pkg/manifest"
)

// hasCommand creates the has command for membership queries.
func (c *CLI) hasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "has [file] [jar|test_jar|pom|gem] [args...]",
		Short: "Check whether a dependency is declared",
		Long: `Check whether a dependency is declared.

The arguments take the same forms as a declaration:

  mvnmodel has deps.toml jar org.slf4j:slf4j-api
  mvnmodel has deps.toml test_jar org.testng:testng 6.8 jdk15
  mvnmodel has deps.toml gem rake

Versions never take part in the check. The command exits non-zero when the
dependency is not declared.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHas(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], args[2:])
		},
	}
}

func (c *CLI) runHas(ctx context.Context, w io.Writer, input, kind string, query []string) error {
	m, err := loadModel(ctx, input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	found, err := manifest.Has(&m.Registry, kind, query)
	if err != nil {
		return err
	}

	what := kind + " " + strings.Join(query, " ")
	if !found {
		return errors.New(errors.ErrCodeNotFound, "%s is not declared in %s", what, input)
	}
	printSuccess(w, "%s is declared", what)
	return nil
}
