package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mvnmodel/pkg/maven"
)

// projectNode is the node ID used when the model has no coordinates.
const projectNode = "__project__"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds version, scope and classifier to dependency labels.
	// When false, only group:artifact is shown.
	Detailed bool
}

// ToDOT converts a model's dependency section to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(m *maven.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	root, label := projectNode, "project"
	if m.GroupID != "" && m.ArtifactID != "" {
		root, label = m.ID(), m.String()
	}
	fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,bold\"];\n", root, label)

	for d := range m.Dependencies().All() {
		id := nodeID(d)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmtLabel(d, opts.Detailed))
		fmt.Fprintf(&buf, "  %q -> %q;\n", root, id)

		for e := range d.Exclusions().All() {
			eid := id + " !" + e.String()
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=gray30];\n", eid, e.String())
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=tee];\n", id, eid)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID is unique per dependency identity.
func nodeID(d *maven.Dependency) string {
	k := d.Key()
	return strings.Join([]string{k.GroupID, k.ArtifactID, string(k.Type), k.Classifier}, ":")
}

func fmtLabel(d *maven.Dependency, detailed bool) string {
	label := d.ID()
	if d.Type != maven.TypeJar {
		label += " (" + string(d.Type) + ")"
	}
	if !detailed {
		return label
	}

	var parts []string
	if d.HasVersion() {
		parts = append(parts, "version: "+d.Version)
	}
	if d.Scope != "" {
		parts = append(parts, "scope: "+string(d.Scope))
	}
	if d.Classifier != "" {
		parts = append(parts, "classifier: "+d.Classifier)
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one
// whose size matches its viewBox, so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
