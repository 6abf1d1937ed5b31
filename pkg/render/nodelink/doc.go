// Package nodelink renders a dependency section as a node-link diagram.
//
// The project is drawn at the top with an arrow to every declared
// dependency, in declaration order. Exclusions hang off their dependency as
// dashed, greyed nodes.
//
//	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// Rendering to SVG uses Graphviz through github.com/goccy/go-graphviz, which
// needs no system installation.
package nodelink
