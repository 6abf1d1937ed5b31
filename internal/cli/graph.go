package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnmodel/pkg/render/nodelink"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file (default: stdout)
	dot      bool   // emit DOT source instead of SVG
	detailed bool   // show version, scope and classifier in node labels
}

// graphCommand creates the graph command for drawing the dependency section.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Draw declared dependencies as a node-link diagram",
		Long: `Draw declared dependencies as a node-link diagram.

The project links to every dependency in declaration order; exclusions are
drawn as dashed nodes below the dependency that declares them. Output is SVG
unless --dot is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show version, scope and classifier in labels")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, w io.Writer, input string, opts graphOpts) error {
	m, err := loadModel(ctx, input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: opts.detailed})
	data := []byte(dot)
	if !opts.dot {
		loggerFromContext(ctx).Debug("rendering SVG")
		data, err = nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
	}

	if err := writeOutput(w, opts.output, data); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}
	if opts.output != "" {
		printSuccess(w, "Graph written")
		printFile(w, opts.output)
	}
	return nil
}
