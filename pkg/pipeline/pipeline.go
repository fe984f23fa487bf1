// Package pipeline runs the load → export → render sequence shared by
// the CLI and the HTTP facade. Centralizing it here keeps caching and
// instrumentation behavior identical across entry points.
//
// Create a [Runner] and execute it against a tree root:
//
//	runner := pipeline.NewRunner(store, nil, logger)
//	res, err := runner.Execute(ctx, root, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
//
// Text formats (dot, mermaid) are pure serialization and bypass the
// cache. Image formats (svg, png) go through Graphviz and are cached
// by content hash of the DOT document.
package pipeline

import (
	"slices"
	"time"
)

// Output formats understood by [Runner.Execute].
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatDOT     = "dot"
	FormatMermaid = "mermaid"
)

// Formats lists every supported output format.
var Formats = []string{FormatSVG, FormatPNG, FormatDOT, FormatMermaid}

// DefaultTTL is how long rendered image artifacts stay cached when
// [Options.TTL] is zero.
const DefaultTTL = 24 * time.Hour

// ValidFormat reports whether format names a supported output.
func ValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Options selects the outputs for a single pipeline run.
type Options struct {
	// Formats lists the outputs to produce. Empty means svg only.
	Formats []string

	// TTL bounds cache lifetime for image artifacts. Zero uses
	// [DefaultTTL].
	TTL time.Duration
}

// Result carries the produced artifacts keyed by format, plus run
// statistics for logging.
type Result struct {
	Artifacts map[string][]byte
	Nodes     int
	Duration  time.Duration
}
