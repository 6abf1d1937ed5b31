package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnmodel/pkg/maven"
)

// listCommand creates the list command for printing the dependency section.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List declared dependencies and their exclusions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (c *CLI) runList(ctx context.Context, w io.Writer, input string) error {
	m, err := loadModel(ctx, input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	title := "Dependencies"
	if m.GroupID != "" {
		title = m.String()
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	if m.Name != "" {
		printKeyValue(w, "Name", m.Name)
	}
	if m.Packaging != "" {
		printKeyValue(w, "Packaging", m.Packaging)
	}
	if m.Parent != nil {
		printKeyValue(w, "Parent", m.Parent.String())
	}
	fmt.Fprintln(w)

	deps := m.Dependencies()
	for d := range deps.All() {
		fmt.Fprintln(w, "  "+formatDependency(d))
		for e := range d.Exclusions().All() {
			printDetail(w, "    %s %s", iconExclude, e)
		}
	}
	if deps.Len() > 0 {
		fmt.Fprintln(w)
	}
	printInfo(w, "%s", pluralize(deps.Len(), "dependency", "dependencies"))
	return nil
}

// formatDependency renders one listing line: id, version, then any
// non-default type, scope and classifier.
func formatDependency(d *maven.Dependency) string {
	parts := []string{StyleValue.Render(d.ID())}
	if d.HasVersion() {
		parts = append(parts, StyleHighlight.Render(d.Version))
	} else {
		parts = append(parts, StyleDim.Render("(any version)"))
	}
	if d.Type != maven.TypeJar {
		parts = append(parts, StyleDim.Render(string(d.Type)))
	}
	if d.Scope != "" {
		parts = append(parts, styleScope.Render(string(d.Scope)))
	}
	if d.Classifier != "" {
		parts = append(parts, styleClassifier.Render(d.Classifier))
	}
	return strings.Join(parts, " ")
}
