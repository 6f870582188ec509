package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"

	"bulk-trafficker/internal/adapter/dcm"
	"bulk-trafficker/internal/adapter/files/drive"
	"bulk-trafficker/internal/adapter/files/local"
	"bulk-trafficker/internal/adapter/postgres"
	"bulk-trafficker/internal/adapter/sheets/gsheets"
	"bulk-trafficker/internal/adapter/sheets/xlsx"
	"bulk-trafficker/internal/adapter/usecase"
	"bulk-trafficker/internal/config"
	"bulk-trafficker/internal/config/configs"
	"bulk-trafficker/internal/core/port"
	"bulk-trafficker/internal/db"
)

// App carries what every command needs to build the use case.
type App struct {
	Config config.Config
	Logger *slog.Logger
}

// closers run in reverse order when a command finishes.
type closers []func()

func (c closers) close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// useCase wires the adapters selected by configuration.
func (a *App) useCase(ctx context.Context) (*usecase.TraffickingUseCase, closers, error) {
	var cleanup closers
	fail := func(err error) (*usecase.TraffickingUseCase, closers, error) {
		cleanup.close()
		return nil, nil, err
	}

	googleOpts := a.googleOptions()

	sheetStore, closeSheets, err := a.sheetStore(ctx, googleOpts)
	if err != nil {
		return fail(err)
	}
	cleanup = append(cleanup, closeSheets)

	fileStore, closeFiles, err := a.fileStore(ctx, googleOpts)
	if err != nil {
		return fail(err)
	}
	cleanup = append(cleanup, closeFiles)

	dcmOpts := googleOpts
	if a.Config.Google.Endpoint != "" {
		dcmOpts = append(append([]option.ClientOption{}, googleOpts...), option.WithEndpoint(a.Config.Google.Endpoint))
	}
	cm, err := dcm.New(ctx, dcmOpts...)
	if err != nil {
		return fail(err)
	}

	var journal port.Journal
	if a.Config.Psql.Enabled {
		if a.Config.Psql.RunMigrations {
			if err = db.Migrate(a.Config.Psql.Addr.String()); err != nil {
				return fail(fmt.Errorf("migrate: %w", err))
			}
			a.Logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.Config.Psql)
		if err != nil {
			return fail(fmt.Errorf("database connection: %w", err))
		}
		cleanup = append(cleanup, pool.Close)
		journal = postgres.NewJournalRepository(pool)
	}

	t := a.Config.Trafficking
	uc := usecase.NewTraffickingUseCase(cm, sheetStore, fileStore, journal, a.Logger, usecase.Options{
		Overrides: usecase.Overrides{
			ProfileID: t.ProfileID,
			FolderID:  t.FolderID,
			TimeZone:  t.TimeZone,
		},
		ProtectLists: t.ProtectLists,
	})
	return uc, cleanup, nil
}

func (a *App) googleOptions() []option.ClientOption {
	if f := a.Config.Google.CredentialsFile; f != "" {
		return []option.ClientOption{option.WithCredentialsFile(f)}
	}
	return nil
}

func (a *App) sheetStore(ctx context.Context, opts []option.ClientOption) (port.SheetStore, func(), error) {
	cfg := a.Config.Sheet
	switch cfg.BackendName() {
	case configs.SheetBackendXLSX:
		wb, err := xlsx.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { _ = wb.Close() }, nil
	case configs.SheetBackendGoogle:
		if cfg.SpreadsheetID == "" {
			return nil, nil, errors.New("SHEET_SPREADSHEET_ID is required for the google backend")
		}
		s, err := gsheets.New(ctx, cfg.SpreadsheetID, opts...)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown sheet backend %q", cfg.Backend)
}

func (a *App) fileStore(ctx context.Context, opts []option.ClientOption) (port.FileStore, func(), error) {
	cfg := a.Config.Files
	switch cfg.BackendName() {
	case configs.FilesBackendLocal:
		s, err := local.New(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case configs.FilesBackendDrive:
		s, err := drive.New(ctx, opts...)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
}
