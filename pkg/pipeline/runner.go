package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arborlab/arbor/pkg/cache"
	"github.com/arborlab/arbor/pkg/export"
	"github.com/arborlab/arbor/pkg/observability"
	"github.com/arborlab/arbor/pkg/render"
	"github.com/arborlab/arbor/pkg/tree"
)

// Runner executes the export → render pipeline with caching. It is
// stateless apart from the cache and logger, so one Runner can serve
// concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil
// keyer uses [cache.NewDefaultKeyer], and a nil logger uses the
// default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute produces every requested format from root. The DOT document
// is built once and reused across formats.
func (r *Runner) Execute(ctx context.Context, root tree.Node, opts Options) (*Result, error) {
	start := time.Now()
	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{FormatSVG}
	}
	for _, f := range formats {
		if !ValidFormat(f) {
			return nil, fmt.Errorf("unknown format %q", f)
		}
	}

	nodes := 1
	for range root.Descendants() {
		nodes++
	}
	dot := export.ToDOT(root)

	res := &Result{Artifacts: make(map[string][]byte, len(formats)), Nodes: nodes}
	for _, format := range formats {
		var data []byte
		var err error
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatMermaid:
			data = []byte(export.ToMermaid(root))
		default:
			data, err = r.renderImage(ctx, dot, format, nodes, opts.TTL)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		res.Artifacts[format] = data
	}
	res.Duration = time.Since(start)
	return res, nil
}

// renderImage runs Graphviz for one image format, consulting the
// artifact cache first.
func (r *Runner) renderImage(ctx context.Context, dot, format string, nodes int, ttl time.Duration) ([]byte, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	key := r.Keyer.RenderKey(cache.Hash([]byte(dot)), format)
	if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "render")
		r.Logger.Debug("cache hit", "key", key)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	start := time.Now()
	observability.Engine().OnRenderStart(ctx, format, nodes)
	var data []byte
	var err error
	switch format {
	case FormatPNG:
		data, err = render.PNG(ctx, dot)
	default:
		data, err = render.SVG(ctx, dot)
	}
	observability.Engine().OnRenderComplete(ctx, format, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}
	return data, nil
}
