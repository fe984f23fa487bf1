// Package render turns trees into images via Graphviz. The DOT document
// comes from [export.ToDOT]; this package only drives the layout engine
// and normalizes its output.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/arborlab/arbor/pkg/export"
	"github.com/arborlab/arbor/pkg/tree"
)

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderTo(ctx, dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderTo(ctx, dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TreeSVG is a convenience wrapper rendering a tree straight to SVG.
func TreeSVG(ctx context.Context, root tree.Node) ([]byte, error) {
	return SVG(ctx, export.ToDOT(root))
}

// TreePNG is a convenience wrapper rendering a tree straight to PNG.
func TreePNG(ctx context.Context, root tree.Node) ([]byte, error) {
	return PNG(ctx, export.ToDOT(root))
}

func renderTo(ctx context.Context, dot string, format graphviz.Format, buf *bytes.Buffer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg element so the viewBox starts at the
// origin and explicit width/height match it, which keeps downstream
// scaling predictable.
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
