package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/odfkit/odsgen/pkg/buildinfo"
	"github.com/odfkit/odsgen/pkg/cache"
)

// TTLConvert bounds how long a cached archive is served before the
// input is converted again.
const TTLConvert = 0 // never expires; keys include the generator version

// Runner executes conversions with result caching. It is stateless
// apart from the cache and logger, so one Runner can serve concurrent
// requests.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil
// logger falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute converts input, serving the archive from cache when the same
// input, format, and generator version have been seen before. Cached
// results skip normalization, so Result.Document is nil on a hit.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	key := cache.ConvertKey(input, string(opts.Format), buildinfo.Version)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		r.Logger.Debug("cache hit", "key", key)
		return &Result{ODS: data}, true, nil
	}

	result, err := Convert(ctx, input, opts)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, result.ODS, TTLConvert); err != nil {
		r.Logger.Warn("caching result failed", "err", err)
	}
	return result, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
