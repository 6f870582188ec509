package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bulk-trafficker/internal/core/domain"
)

// List fetches one listing and writes it to the Lists sheet, name column
// first and ID after it. IDs are written as text so the sheet never renders
// them in exponent form.
func (u *TraffickingUseCase) List(ctx context.Context, kind string) (int, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	col, err := domain.ListColumn(kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, kind)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	settings, err := u.settings(ctx)
	if err != nil {
		return 0, err
	}
	table, err := u.listing(ctx, kind, settings)
	if err != nil {
		return 0, err
	}
	table.Column = col

	if err = u.sheets.WriteTable(ctx, domain.SheetLists, table); err != nil {
		return 0, fmt.Errorf("write %s listing: %w", kind, err)
	}
	if u.opts.ProtectLists {
		if err = u.sheets.Protect(ctx, domain.SheetLists); err != nil {
			return 0, fmt.Errorf("protect %s: %w", domain.SheetLists, err)
		}
	}

	u.logger.Info("listing written", slog.String("kind", kind), slog.Int("rows", len(table.Rows)))
	return len(table.Rows), nil
}

func (u *TraffickingUseCase) listing(ctx context.Context, kind string, s domain.Settings) (domain.Table, error) {
	switch kind {
	case domain.ListSites:
		sites, err := u.cm.ListSites(ctx, s.ProfileID)
		if err != nil {
			return domain.Table{}, fmt.Errorf("list sites: %w", err)
		}
		t := domain.Table{Header: []string{"Site Name", "Site ID"}}
		for _, site := range sites {
			t.Rows = append(t.Rows, []string{site.Name, formatID(site.ID)})
		}
		return t, nil

	case domain.ListAdvertisers:
		advertisers, err := u.cm.ListAdvertisers(ctx, s.ProfileID)
		if err != nil {
			return domain.Table{}, fmt.Errorf("list advertisers: %w", err)
		}
		t := domain.Table{Header: []string{"Advertiser Name", "Advertiser ID"}}
		for _, a := range advertisers {
			t.Rows = append(t.Rows, []string{a.Name, formatID(a.ID)})
		}
		return t, nil

	case domain.ListCreativeFiles:
		if s.FolderID == "" {
			return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrMissingSetting, domain.NameCreativeFolder)
		}
		files, err := u.files.List(ctx, s.FolderID)
		if err != nil {
			return domain.Table{}, fmt.Errorf("list creative files: %w", err)
		}
		t := domain.Table{Header: []string{"File Name", "File ID"}}
		for _, f := range files {
			t.Rows = append(t.Rows, []string{f.Name, f.ID})
		}
		return t, nil

	case domain.ListCreatives:
		creatives, err := u.cm.ListCreatives(ctx, s.ProfileID)
		if err != nil {
			return domain.Table{}, fmt.Errorf("list creatives: %w", err)
		}
		t := domain.Table{Header: []string{"Creative Name", "Creative ID", "Advertiser ID"}}
		for _, c := range creatives {
			t.Rows = append(t.Rows, []string{c.Name, formatID(c.ID), formatID(c.AdvertiserID)})
		}
		return t, nil

	case domain.ListLandingPages:
		pages, err := u.cm.ListLandingPages(ctx, s.ProfileID)
		if err != nil {
			return domain.Table{}, fmt.Errorf("list landing pages: %w", err)
		}
		t := domain.Table{Header: []string{"Landing Page Name", "Landing Page ID", "Landing Page URL", "Advertiser ID"}}
		for _, lp := range pages {
			t.Rows = append(t.Rows, []string{lp.Name, formatID(lp.ID), lp.URL, formatID(lp.AdvertiserID)})
		}
		return t, nil
	}
	return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrUnknownListing, kind)
}
