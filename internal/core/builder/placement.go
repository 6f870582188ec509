package builder

import (
	"errors"
	"strconv"
	"strings"

	"bulk-trafficker/internal/core/domain"
)

// TagFormatsDefault in the tag formats column selects DefaultTagFormats.
const TagFormatsDefault = "DEFAULT"

// DefaultTagFormats is the canonical tag format set, in order.
var DefaultTagFormats = []string{
	"PLACEMENT_TAG_TRACKING",
	"PLACEMENT_TAG_CLICK_COMMANDS",
	"PLACEMENT_TAG_IFRAME_JAVASCRIPT",
	"PLACEMENT_TAG_INTERNAL_REDIRECT",
	"PLACEMENT_TAG_TRACKING_JAVASCRIPT",
	"PLACEMENT_TAG_JAVASCRIPT",
	"PLACEMENT_TAG_TRACKING_IFRAME",
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseTagFormats turns the tag formats cell into an ordered list. Entries
// are one per line when the cell has line breaks, comma separated
// otherwise; each is trimmed of whitespace and stray separators. Once the
// trimmed cell holds a line break, lines are the only separator, so in a
// mixed cell such as "A, B\nC" commas inside a line stay part of the entry:
// ["A, B", "C"].
func ParseTagFormats(cell string) []string {
	if strings.TrimSpace(cell) == TagFormatsDefault {
		return append([]string(nil), DefaultTagFormats...)
	}
	cell = lineBreaks.Replace(cell)
	sep := ","
	if strings.Contains(strings.TrimSpace(cell), "\n") {
		sep = "\n"
	}
	var out []string
	for _, part := range strings.Split(cell, sep) {
		part = strings.Trim(strings.TrimSpace(part), ",")
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseSize splits "WIDTHxHEIGHT" on x or X and trims both halves.
func ParseSize(cell string) (width, height string, err error) {
	w, h, ok := strings.Cut(strings.ToLower(cell), "x")
	if !ok {
		return "", "", &domain.CellError{Field: "size", Value: cell, Err: errors.New("want WIDTHxHEIGHT")}
	}
	return strings.TrimSpace(w), strings.TrimSpace(h), nil
}

// sizeOf parses a size cell into pixel dimensions.
func sizeOf(cell string) (domain.Size, error) {
	w, h, err := ParseSize(cell)
	if err != nil {
		return domain.Size{}, err
	}
	width, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return domain.Size{}, &domain.CellError{Field: "size", Value: cell, Err: err}
	}
	height, err := strconv.ParseInt(h, 10, 64)
	if err != nil {
		return domain.Size{}, &domain.CellError{Field: "size", Value: cell, Err: err}
	}
	return domain.Size{Width: width, Height: height}, nil
}

// BuildPlacement maps a Placements row onto a placement resource.
func BuildPlacement(row domain.PlacementRow, s domain.Settings) (domain.Placement, error) {
	size, err := sizeOf(row.Size)
	if err != nil {
		return domain.Placement{}, err
	}
	start, err := FormatDate("pricingScheduleStartDate", row.PricingStart, s.Location)
	if err != nil {
		return domain.Placement{}, err
	}
	end, err := FormatDate("pricingScheduleEndDate", row.PricingEnd, s.Location)
	if err != nil {
		return domain.Placement{}, err
	}
	return domain.Placement{
		Kind:          domain.KindPlacement,
		CampaignID:    row.CampaignID,
		Name:          row.Name,
		SiteID:        row.SiteID,
		PaymentSource: domain.PaymentAgencyPaid,
		Compatibility: strings.ToUpper(strings.TrimSpace(row.Compatibility)),
		Size:          size,
		PricingSchedule: domain.PricingSchedule{
			StartDate:   start,
			EndDate:     end,
			PricingType: row.PricingType,
		},
		TagFormats: ParseTagFormats(row.TagFormats),
	}, nil
}
