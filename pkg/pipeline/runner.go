package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roffman/pkg/cache"
	"github.com/matzehuels/roffman/pkg/observability"
	"github.com/matzehuels/roffman/pkg/roff"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects cache.DefaultKeyer and a nil logger selects log.Default().
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

// cachedPage is the cache representation of a rendered page.
type cachedPage struct {
	Title    string `json:"title"`
	Section  int    `json:"section"`
	Sections int    `json:"sections"`
	Page     string `json:"page"`
}

// Execute parses and renders opts.Source, serving the page from the cache
// when possible. Pages of invalid documents are never cached.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{SourceHash: cache.Hash(opts.Source)}
	key := r.Keyer.PageKey(result.SourceHash, opts.pageKeyOpts())

	if !opts.Refresh {
		if page, ok := r.lookup(ctx, key, opts.Logger); ok {
			result.Page = page.Page
			result.Title = page.Title
			result.Number = roff.SectionNumber(page.Section)
			result.CacheHit = true
			result.Stats.Sections = page.Sections
			result.Stats.Bytes = len(page.Page)
			opts.Logger.Debug("served page from cache", "title", page.Title, "key", key)
			return result, nil
		}
	}

	parseStart := time.Now()
	doc, err := Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Sections = len(doc.Sections)
	opts.Logger.Debug("parsed page",
		"format", opts.Format,
		"sections", len(doc.Sections),
		"duration", result.Stats.ParseTime)

	renderStart := time.Now()
	page, err := Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Bytes = len(page)
	result.Page = page
	result.Title = doc.Title
	result.Number = doc.Number
	result.Document = doc

	opts.Logger.Info("rendered page",
		"title", doc.Title,
		"section", doc.Number.Numeral(),
		"bytes", len(page),
		"duration", result.Stats.ParseTime+result.Stats.RenderTime)

	r.store(ctx, key, cachedPage{
		Title:    doc.Title,
		Section:  int(doc.Number),
		Sections: len(doc.Sections),
		Page:     page,
	}, opts)
	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup returns the cached page for key. Backend and decoding failures are
// logged and treated as misses.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (cachedPage, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return cachedPage{}, false
	}
	var page cachedPage
	if err := json.Unmarshal(data, &page); err != nil || page.Page == "" {
		observability.Cache().OnCacheMiss(ctx, key)
		return cachedPage{}, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return page, true
}

func (r *Runner) store(ctx context.Context, key string, page cachedPage, opts Options) {
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (o Options) pageKeyOpts() cache.PageKeyOpts {
	k := cache.PageKeyOpts{Format: o.Format, Header: o.header()}
	if o.ManualCategory {
		k.Manual = "category"
	}
	return k
}
