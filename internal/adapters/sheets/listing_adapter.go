package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	sheetsclient "github.com/ajaniguide/ajani/backend/internal/infrastructure/clients/sheets"
	"github.com/ajaniguide/ajani/backend/pkg/utils"
)

// Column positions of the listings range. Fixed by the sheet layout; the
// currency column is present but unused.
const (
	colID = iota
	colName
	colCategory
	colArea
	colShortDesc
	colPriceFrom
	colCurrency
	colPhone
	colWhatsApp
	colAddress
	colLat
	colLon
)

const namePlaceholder = "Unnamed business"

// ListingAdapter implements ListingSource over the Sheets values API.
type ListingAdapter struct {
	client *sheetsclient.Client
}

// NewListingAdapter creates a new sheet-backed listing source.
func NewListingAdapter(client *sheetsclient.Client) repositories.ListingSource {
	return &ListingAdapter{client: client}
}

// FetchAll fetches the sheet range and adapts every data row to a Listing.
// Rows with an unparseable price are kept (the chat eligibility filter drops
// them); only fully empty rows are skipped.
func (a *ListingAdapter) FetchAll(ctx context.Context) ([]entities.Listing, error) {
	rows, err := a.client.Values(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]entities.Listing, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		listings = append(listings, ListingFromRow(row))
	}
	return listings, nil
}

// ListingFromRow adapts one raw sheet row, positions fixed by column order.
func ListingFromRow(row []any) entities.Listing {
	l := entities.Listing{
		ID:        int(cellFloat(row, colID)),
		Name:      cellString(row, colName),
		Category:  strings.ToLower(cellString(row, colCategory)),
		Area:      strings.ToLower(cellString(row, colArea)),
		ShortDesc: cellString(row, colShortDesc),
		PriceFrom: parsePrice(cellString(row, colPriceFrom)),
		Phone:     cellString(row, colPhone),
		WhatsApp:  cellString(row, colWhatsApp),
		Address:   cellString(row, colAddress),
	}
	if l.Name == "" {
		l.Name = namePlaceholder
	}
	if lat, ok := cellFloatOK(row, colLat); ok {
		if lon, ok := cellFloatOK(row, colLon); ok {
			l.Lat, l.Lon = &lat, &lon
		}
	}
	return l
}

// ListingFromObject adapts a pre-shaped record, for sources that return an
// array of objects instead of raw rows.
func ListingFromObject(obj map[string]any) entities.Listing {
	l := entities.Listing{
		ID:        int(objFloat(obj, "id")),
		Name:      objString(obj, "name"),
		Category:  strings.ToLower(objString(obj, "category")),
		Area:      strings.ToLower(objString(obj, "area")),
		ShortDesc: objString(obj, "short_desc"),
		PriceFrom: parsePrice(objString(obj, "price_from")),
		Phone:     objString(obj, "phone"),
		WhatsApp:  objString(obj, "whatsapp"),
		Address:   objString(obj, "address"),
	}
	if l.Name == "" {
		l.Name = namePlaceholder
	}
	if lat, ok := objFloatOK(obj, "lat"); ok {
		if lon, ok := objFloatOK(obj, "lon"); ok {
			l.Lat, l.Lon = &lat, &lon
		}
	}
	return l
}

func isHeaderRow(row []any) bool {
	return len(row) > 0 && utils.Normalize(cellString(row, 0)) == "id"
}

func isEmptyRow(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(toString(cell)) != "" {
			return false
		}
	}
	return true
}

// parsePrice tolerates comma grouping and a naira prefix. Anything that still
// fails to parse yields 0, which the eligibility filter treats as no price.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₦")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func toString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

func cellString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(toString(row[i]))
}

func cellFloat(row []any, i int) float64 {
	v, _ := cellFloatOK(row, i)
	return v
}

func cellFloatOK(row []any, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	switch v := row[i].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func objString(obj map[string]any, key string) string {
	return strings.TrimSpace(toString(obj[key]))
}

func objFloat(obj map[string]any, key string) float64 {
	v, _ := objFloatOK(obj, key)
	return v
}

func objFloatOK(obj map[string]any, key string) (float64, bool) {
	switch v := obj[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
