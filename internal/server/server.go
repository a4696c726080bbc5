package server

import (
	"context"
	"net/http"
	"time"

	"solana-patterns/internal/config"
	"solana-patterns/internal/content"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run поднимает HTTP-сервер и ждёт отмены ctx, потом аккуратно гасит его.
func Run(ctx context.Context, cfg *config.Config, ds *content.Dataset, log *zap.Logger) error {
	r, err := NewRouter(cfg, ds, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.Int("patterns", ds.Len()),
			zap.String("fingerprint", ds.Fingerprint()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- errors.Wrap(err, "listen")
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return <-errCh
}
