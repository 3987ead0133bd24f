package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/displaytree/pkg/cache"
	"github.com/matzehuels/displaytree/pkg/observability"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, provided the cache is safe for
// concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	input, err := LoadInput(opts)
	if err != nil {
		return nil, err
	}
	result := &Result{DocumentHash: documentHash(opts.InputFormat, input)}

	// Stage 1: Parse
	parseStart := time.Now()
	hooks.OnParseStart(ctx, opts.Source(), opts.InputFormat)
	root, err := Parse(input, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	if root != nil {
		result.Stats.NodeCount = root.Len()
	}
	hooks.OnParseComplete(ctx, opts.Source(), opts.InputFormat, result.Stats.NodeCount, result.Stats.ParseTime, err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Tree = root

	opts.Logger.Info("parsed tree",
		"source", opts.Source(),
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, result.Stats.NodeCount)
	root.Layout()
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Height = root.Height()
	result.Stats.Width = root.Width()
	hooks.OnLayoutComplete(ctx, result.Stats.Height, result.Stats.Width, result.Stats.LayoutTime, nil)

	opts.Logger.Info("computed layout",
		"height", result.Stats.Height,
		"width", result.Stats.Width,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, info, err := r.render(ctx, root, result.DocumentHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = info

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(info.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// render produces every requested format, serving what it can from the
// cache and storing what it renders.
func (r *Runner) render(ctx context.Context, root *tree.Node, docHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	cacheHooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var info CacheInfo

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, info, err
		}
		key := cache.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				cacheHooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				info.Hits = append(info.Hits, format)
				continue
			}
			cacheHooks.OnCacheMiss(ctx, format)
		}

		data, err := Render(ctx, root, format, opts)
		if err != nil {
			return nil, info, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}

	info.RenderHit = len(info.Hits) == len(opts.Formats)
	return artifacts, info, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
