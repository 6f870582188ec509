package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"bulk-trafficker/internal/core/builder"
	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// Overrides replace the named Setup cells when set.
type Overrides struct {
	ProfileID string
	FolderID  string
	TimeZone  string
}

// Options tune a TraffickingUseCase.
type Options struct {
	Overrides Overrides
	// ProtectLists marks the Lists sheet read-only after each listing.
	ProtectLists bool
}

// TraffickingUseCase drives the sheets: it reads rows, builds resources,
// submits them and writes the returned IDs back. Runs are serialised; only
// one batch or listing is in flight at a time, so the tool never races with
// itself on the workbook or on the read-modify-write of ad rotations.
type TraffickingUseCase struct {
	cm      port.CampaignManager
	sheets  port.SheetStore
	files   port.FileStore
	journal port.Journal
	logger  *slog.Logger
	opts    Options

	mu sync.Mutex
}

var _ port.TraffickingUseCase = (*TraffickingUseCase)(nil)

// NewTraffickingUseCase wires the use case. A nil journal keeps no record
// beyond the logs; a nil logger discards them.
func NewTraffickingUseCase(
	cm port.CampaignManager,
	sheets port.SheetStore,
	files port.FileStore,
	journal port.Journal,
	logger *slog.Logger,
	opts Options,
) *TraffickingUseCase {
	if journal == nil {
		journal = NopJournal{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TraffickingUseCase{
		cm:      cm,
		sheets:  sheets,
		files:   files,
		journal: journal,
		logger:  logger,
		opts:    opts,
	}
}

// batch is the state shared by every row of one sheet run.
type batch struct {
	layout   domain.SheetLayout
	settings domain.Settings
	run      domain.Run
}

// submitFunc handles one eligible row. It returns the value for the status
// column, or "" when the row was deliberately left alone.
type submitFunc func(ctx context.Context, b batch, row domain.Row) (string, error)

// RunSheet processes one entity sheet.
func (u *TraffickingUseCase) RunSheet(ctx context.Context, sheet string) (domain.BatchSummary, error) {
	layout, err := domain.LayoutFor(sheet)
	if err != nil {
		return domain.BatchSummary{Sheet: sheet}, fmt.Errorf("%w: %s", err, sheet)
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	settings, err := u.settings(ctx)
	if err != nil {
		return domain.BatchSummary{Sheet: layout.Name}, err
	}
	return u.runSheet(ctx, layout, settings)
}

// RunAll processes every entity sheet in dependency order.
func (u *TraffickingUseCase) RunAll(ctx context.Context) ([]domain.BatchSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	settings, err := u.settings(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.BatchSummary, 0, len(domain.BatchOrder))
	for _, name := range domain.BatchOrder {
		layout, err := domain.LayoutFor(name)
		if err != nil {
			return summaries, err
		}
		summary, err := u.runSheet(ctx, layout, settings)
		summaries = append(summaries, summary)
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

func (u *TraffickingUseCase) runSheet(ctx context.Context, layout domain.SheetLayout, settings domain.Settings) (summary domain.BatchSummary, err error) {
	summary.Sheet = layout.Name
	submit := u.submitter(layout.Name)

	rows, err := u.sheets.ReadRows(ctx, layout.Name)
	if err != nil {
		return summary, fmt.Errorf("read %s: %w", layout.Name, err)
	}

	run, err := u.journal.StartRun(ctx, layout.Name)
	if err != nil {
		return summary, fmt.Errorf("start run: %w", err)
	}
	summary.RunID = run.ID
	b := batch{layout: layout, settings: settings, run: run}
	logger := u.logger.With(slog.String("sheet", layout.Name), slog.String("run_id", run.ID))

	defer func() {
		run.Submitted = summary.Submitted
		if ferr := u.journal.FinishRun(context.WithoutCancel(ctx), run, err); ferr != nil {
			logger.Warn("journal finish failed", slog.Any("error", ferr))
		}
	}()

	// rows[0] is the header.
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		if !domain.Eligible(rows[i], layout) {
			summary.Skipped++
			continue
		}
		if err = ctx.Err(); err != nil {
			return summary, err
		}

		var value string
		value, err = submit(ctx, b, rows[i])
		if err != nil {
			var rowErr *domain.RowError
			if errors.As(err, &rowErr) {
				rowErr.Sheet, rowErr.Row = layout.Name, rowNum
			} else {
				err = &domain.RowError{Sheet: layout.Name, Row: rowNum, Err: err}
			}
			logger.Error("batch aborted", slog.Int("row", rowNum), slog.Any("error", err))
			return summary, err
		}
		if value == "" {
			summary.Skipped++
			continue
		}

		// The remote object exists now. Its ID must reach the sheet even if
		// the caller has gone away, or the next run creates it again.
		keep := context.WithoutCancel(ctx)
		if err = u.sheets.WriteStatus(keep, layout.Name, rowNum, layout.StatusColumn, value); err != nil {
			err = &domain.RowError{Sheet: layout.Name, Row: rowNum, Message: "submitted as " + value + " but the status cell could not be written", Err: err}
			logger.Error("write back failed", slog.Int("row", rowNum), slog.Any("error", err))
			return summary, err
		}
		summary.Submitted++
		logger.Info("row submitted", slog.Int("row", rowNum), slog.String("id", value))

		sub := domain.Submission{RunID: run.ID, Sheet: layout.Name, Row: rowNum, RemoteID: value}
		if jerr := u.journal.RecordSubmission(keep, sub); jerr != nil {
			logger.Warn("journal record failed", slog.Int("row", rowNum), slog.Any("error", jerr))
		}
	}

	logger.Info("finished processing sheet",
		slog.Int("submitted", summary.Submitted),
		slog.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (u *TraffickingUseCase) submitter(sheet string) submitFunc {
	switch sheet {
	case domain.SheetCampaigns:
		return u.submitCampaign
	case domain.SheetPlacements:
		return u.submitPlacement
	case domain.SheetAds:
		return u.submitAd
	case domain.SheetCreatives:
		return u.submitCreative
	case domain.SheetLandingPages:
		return u.submitLandingPage
	case domain.SheetCampaignCreatives:
		return u.submitCampaignCreative
	case domain.SheetAdCreatives:
		return u.submitAdCreative
	}
	panic("no submitter for sheet " + sheet)
}

func (u *TraffickingUseCase) submitCampaign(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseCampaignRow(r)
	if err != nil {
		return "", err
	}
	campaign, err := builder.BuildCampaign(row, b.settings)
	if err != nil {
		return "", err
	}
	created, err := u.cm.InsertCampaign(ctx, b.settings.ProfileID, campaign)
	if err != nil {
		return "", fmt.Errorf("insert campaign %q: %w", row.Name, err)
	}
	return formatID(created.ID), nil
}

func (u *TraffickingUseCase) submitPlacement(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParsePlacementRow(r)
	if err != nil {
		return "", err
	}
	placement, err := builder.BuildPlacement(row, b.settings)
	if err != nil {
		return "", err
	}
	created, err := u.cm.InsertPlacement(ctx, b.settings.ProfileID, placement)
	if err != nil {
		return "", fmt.Errorf("insert placement %q: %w", row.Name, err)
	}
	return formatID(created.ID), nil
}

func (u *TraffickingUseCase) submitAd(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseAdRow(r)
	if err != nil {
		return "", err
	}
	ad, err := builder.BuildAd(row, b.settings)
	if err != nil {
		return "", err
	}
	created, err := u.cm.InsertAd(ctx, b.settings.ProfileID, ad)
	if err != nil {
		return "", fmt.Errorf("insert ad %q: %w", row.Name, err)
	}
	return formatID(created.ID), nil
}

func (u *TraffickingUseCase) submitLandingPage(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseLandingPageRow(r)
	if err != nil {
		return "", err
	}
	created, err := u.cm.InsertLandingPage(ctx, b.settings.ProfileID, builder.BuildLandingPage(row))
	if err != nil {
		return "", fmt.Errorf("insert landing page %q: %w", row.Name, err)
	}
	return formatID(created.ID), nil
}

func (u *TraffickingUseCase) submitCampaignCreative(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseCampaignCreativeRow(r)
	if err != nil {
		return "", err
	}
	assoc := builder.BuildCampaignCreativeAssociation(row.CampaignID, row.CreativeID)
	if err = u.cm.InsertCampaignCreativeAssociation(ctx, b.settings.ProfileID, assoc); err != nil {
		return "", fmt.Errorf("associate creative %d with campaign %d: %w", row.CreativeID, row.CampaignID, err)
	}
	return domain.StatusDone, nil
}

// submitAdCreative adds a creative to an ad's rotation. The ad is read,
// extended and written back whole; an edit made elsewhere between the get
// and the update is lost.
func (u *TraffickingUseCase) submitAdCreative(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseAdCreativeRow(r)
	if err != nil {
		return "", err
	}
	ad, err := u.cm.GetAd(ctx, b.settings.ProfileID, row.AdID)
	if err != nil {
		return "", fmt.Errorf("get ad %d: %w", row.AdID, err)
	}
	ad = builder.AppendCreativeAssignment(ad, row.CreativeID)
	if _, err = u.cm.UpdateAd(ctx, b.settings.ProfileID, ad); err != nil {
		return "", fmt.Errorf("update ad %d: %w", row.AdID, err)
	}
	return domain.StatusDone, nil
}

// submitCreative uploads one creative. Failures are logged in full and
// surfaced as a row error naming the creative and advertiser.
func (u *TraffickingUseCase) submitCreative(ctx context.Context, b batch, r domain.Row) (string, error) {
	row, err := domain.ParseCreativeRow(r)
	if err != nil {
		return "", err
	}
	if !builder.SupportedCreative(row.Type) {
		u.logger.Warn("skipping creative with unsupported type",
			slog.String("name", row.Name),
			slog.String("type", row.Type),
		)
		return "", nil
	}

	id, err := u.uploadCreative(ctx, b.settings.ProfileID, row)
	if err != nil {
		u.logger.Error("creative upload failed",
			slog.String("creative", row.Name),
			slog.Int64("advertiser_id", row.AdvertiserID),
			slog.String("run_id", b.run.ID),
			slog.Any("error", err),
		)
		return "", &domain.RowError{
			Message: fmt.Sprintf("failed to upload creative %s for advertiser %d; see run %s in the journal and logs for details",
				row.Name, row.AdvertiserID, b.run.ID),
			Err: err,
		}
	}
	return formatID(id), nil
}

func (u *TraffickingUseCase) uploadCreative(ctx context.Context, profileID int64, row domain.CreativeRow) (int64, error) {
	sources, err := builder.CreativeAssetSources(row)
	if err != nil {
		return 0, err
	}
	uploaded := make([]domain.CreativeAsset, 0, len(sources))
	for _, src := range sources {
		id, err := u.uploadAsset(ctx, profileID, row.AdvertiserID, src)
		if err != nil {
			return 0, err
		}
		uploaded = append(uploaded, domain.CreativeAsset{Identifier: id, Role: src.Role})
	}

	creative, err := builder.BuildCreative(row, uploaded)
	if err != nil {
		return 0, err
	}
	created, err := u.cm.InsertCreative(ctx, profileID, creative)
	if err != nil {
		return 0, fmt.Errorf("insert creative: %w", err)
	}
	assoc := builder.BuildCampaignCreativeAssociation(row.CampaignID, created.ID)
	if err = u.cm.InsertCampaignCreativeAssociation(ctx, profileID, assoc); err != nil {
		return 0, fmt.Errorf("creative %d created but not associated with campaign %d: %w", created.ID, row.CampaignID, err)
	}
	return created.ID, nil
}

func (u *TraffickingUseCase) uploadAsset(ctx context.Context, profileID, advertiserID int64, src builder.AssetSource) (domain.AssetIdentifier, error) {
	content, err := u.files.Open(ctx, src.FileID)
	if err != nil {
		return domain.AssetIdentifier{}, fmt.Errorf("open asset file %s: %w", src.FileID, err)
	}
	defer content.Close()

	id, err := u.cm.UploadCreativeAsset(ctx, profileID, domain.AssetUpload{
		AdvertiserID: advertiserID,
		Identifier:   src.Identifier,
		Content:      content,
	})
	if err != nil {
		return domain.AssetIdentifier{}, fmt.Errorf("upload asset %s: %w", src.Identifier.Name, err)
	}
	return id, nil
}

// settings resolves the operator context once per operation.
func (u *TraffickingUseCase) settings(ctx context.Context) (domain.Settings, error) {
	profile, err := u.setting(ctx, u.opts.Overrides.ProfileID, domain.NameProfileID)
	if err != nil {
		return domain.Settings{}, err
	}
	if profile == "" {
		return domain.Settings{}, fmt.Errorf("%w: %s", domain.ErrMissingSetting, domain.NameProfileID)
	}
	profileID, err := domain.ParseID(domain.NameProfileID, profile)
	if err != nil {
		return domain.Settings{}, err
	}

	tz, err := u.setting(ctx, u.opts.Overrides.TimeZone, domain.NameTimeZone)
	if err != nil {
		return domain.Settings{}, err
	}
	loc, err := domain.ParseTimeZone(tz)
	if err != nil {
		return domain.Settings{}, err
	}

	folder, err := u.setting(ctx, u.opts.Overrides.FolderID, domain.NameCreativeFolder)
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{ProfileID: profileID, FolderID: folder, Location: loc}, nil
}

func (u *TraffickingUseCase) setting(ctx context.Context, override, name string) (string, error) {
	if override != "" {
		return override, nil
	}
	v, err := u.sheets.NamedValue(ctx, name)
	if errors.Is(err, domain.ErrNamedNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(v), nil
}

// Runs returns recent journal runs.
func (u *TraffickingUseCase) Runs(ctx context.Context, limit int) ([]domain.Run, error) {
	return u.journal.ListRuns(ctx, limit)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
