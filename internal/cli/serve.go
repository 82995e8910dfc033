package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roffman/pkg/cache"
	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/observability"
	"github.com/matzehuels/roffman/pkg/pipeline"
	"github.com/matzehuels/roffman/pkg/server"
)

// Environment variables read by the serve command.
const (
	envRedisAddr = "ROFFMAN_REDIS_ADDR"
	envMongoURI  = "ROFFMAN_MONGO_URI"
)

// serverKeyPrefix separates server pages from CLI pages in a shared backend.
const serverKeyPrefix = "server:"

type serveOpts struct {
	addr    string
	redis   string
	mongo   string
	noCache bool
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:  server.DefaultAddr,
		redis: os.Getenv(envRedisAddr),
		mongo: os.Getenv(envMongoURI),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Pages are cached in Redis (--redis or $ROFFMAN_REDIS_ADDR), MongoDB
(--mongo or $ROFFMAN_MONGO_URI) or, by default, the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", opts.redis, "Redis address (host:port or redis:// URL)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", opts.mongo, "MongoDB connection URI")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the page cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	pages, backend, err := serverCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(pages, cache.NewScopedKeyer(nil, serverKeyPrefix), logger)
	defer runner.Close()

	if logger.GetLevel() <= log.DebugLevel {
		observability.RegisterLogHooks(logger)
	}

	printInfo("Serving on %s", StyleHighlight.Render("http://"+opts.addr))
	printKeyValue("cache", backend)

	srv := server.New(server.Config{Addr: opts.addr}, runner, logger)
	return srv.ListenAndServe(ctx)
}

// serverCache opens the cache backend selected by opts and describes it.
func serverCache(ctx context.Context, opts serveOpts) (cache.Cache, string, error) {
	switch {
	case opts.redis != "" && opts.mongo != "":
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "--redis and --mongo are mutually exclusive")
	case opts.noCache:
		printWarning("Page cache disabled")
		return cache.NewNullCache(), "disabled", nil
	case opts.redis != "":
		sp := newSpinner(ctx, "Connecting to Redis...")
		sp.Start()
		c, err := cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			sp.StopWithError("Redis unavailable")
			return nil, "", err
		}
		sp.Stop()
		return c, "redis " + opts.redis, nil
	case opts.mongo != "":
		sp := newSpinner(ctx, "Connecting to MongoDB...")
		sp.Start()
		c, err := cache.NewMongoCache(ctx, opts.mongo)
		if err != nil {
			sp.StopWithError("MongoDB unavailable")
			return nil, "", err
		}
		sp.Stop()
		return c, "mongodb " + cache.DefaultMongoDatabase + "." + cache.DefaultMongoCollection, nil
	}

	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), "disabled", nil
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, "", err
	}
	return c, "file " + dir, nil
}
