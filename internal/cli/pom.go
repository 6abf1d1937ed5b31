package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnmodel/pkg/maven/pom"
)

// pomCommand creates the pom command for writing a dependency section as POM XML.
func (c *CLI) pomCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pom [file]",
		Short: "Write declarations as POM XML",
		Long: `Write a declaration file (or a POM) as POM XML.

Dependencies are written in declaration order. Artifacts declared more than
once appear a single time, with the version of the last declaration that
named one. Gem-style constraints such as "~> 1.2" are written as Maven ranges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPOM(cmd.Context(), cmd.OutOrStdout(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runPOM loads the input and writes it as POM XML.
func (c *CLI) runPOM(ctx context.Context, w io.Writer, input, output string) error {
	m, err := loadModel(ctx, input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	var buf bytes.Buffer
	if err := pom.Write(&buf, m); err != nil {
		return fmt.Errorf("write POM: %w", err)
	}

	if err := writeOutput(w, output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	if output != "" {
		printSuccess(w, "POM written")
		printFile(w, output)
	}
	return nil
}
