package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "bulk-trafficker/internal/adapter/http"
)

// newServeCmd starts the HTTP API and blocks until the command context is
// cancelled.
func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the batch API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			uc, cleanup, err := app.useCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup.close()

			handler := httpadapter.NewHandler(uc, app.Logger)
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", app.Config.HTTP.Port),
				Handler:           handler.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("server listening", slog.Int("port", int(app.Config.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err = <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err = srv.Shutdown(shutdownCtx); err != nil {
				app.Logger.Error("server shutdown error", slog.Any("error", err))
				return err
			}
			app.Logger.Info("server gracefully stopped")
			return nil
		},
	}
}
