package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/server"
	"github.com/arborlab/arbor/pkg/cache"
)

// newServeCmd creates the serve command running the HTTP facade.
func newServeCmd(cfg Config) *cobra.Command {
	addr := cfg.Serve.Addr
	redisAddr := cfg.Serve.Redis
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP facade (render and diff over HTTP)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store, err := serveCache(ctx, cfg, redisAddr, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(server.Options{Cache: store, Logger: logger})
			logger.Info("listening", "addr", addr)
			err = server.ListenAndServe(ctx, addr, srv)
			if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", redisAddr, "redis address for the artifact cache (default: file cache)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// serveCache picks the cache backend: redis when configured, otherwise
// the file cache, or a null cache when disabled.
func serveCache(ctx context.Context, cfg Config, redisAddr string, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
