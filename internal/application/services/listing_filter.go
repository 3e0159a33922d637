package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/pkg/utils"
)

// cityAliases are city-wide names: when a query's area resolves to one of
// these the area filter is skipped entirely, since "in Ibadan" restricts
// nothing for an Ibadan directory.
var cityAliases = map[string]struct{}{
	"ibadan":  {},
	"oyo":     {},
	"ib city": {},
	"ibd":     {},
}

var (
	areaFillerRe  = regexp.MustCompile(`\b(?:close to|around|inside|near|area|in|at)\b`)
	nonAlphaNumRe = regexp.MustCompile(`[^a-z0-9\s]`)
	alphaWordRe   = regexp.MustCompile(`^[a-z]+$`)
)

// DistanceFunc measures the distance between two points in kilometers.
type DistanceFunc func(from, to entities.Location) float64

// FilterService filters and ranks the listing set for one structured query.
type FilterService struct {
	radiusKm float64
	distance DistanceFunc
}

// NewFilterService creates a filter service with the proximity radius in
// kilometers. distance may be nil for callers that never use proximity.
func NewFilterService(radiusKm float64, distance DistanceFunc) *FilterService {
	return &FilterService{
		radiusKm: radiusKm,
		distance: distance,
	}
}

// Apply filters and sorts listings for the query. loc is the user's resolved
// location; when it is nil (or distances cannot be computed) a near-me query
// degrades to a plain price sort instead of failing.
func (s *FilterService) Apply(listings []entities.Listing, q *entities.ListingQuery, loc *entities.Location) []entities.Listing {
	matched := make([]entities.Listing, 0, len(listings))
	category := utils.Normalize(q.Category)

	for _, l := range listings {
		// Records without a valid positive price are not answerable.
		if !l.HasPrice() {
			continue
		}
		if !strings.Contains(utils.Normalize(l.Category), category) {
			continue
		}
		if q.MinPrice != nil && l.PriceFrom < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && l.PriceFrom > *q.MaxPrice {
			continue
		}
		matched = append(matched, l)
	}

	if q.Area != "" {
		matched = filterByArea(matched, q.Area)
	}

	if q.NearMe && loc != nil && s.distance != nil {
		return s.sortByProximity(matched, *loc)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if q.Sort == entities.SortDescending {
			return matched[i].PriceFrom > matched[j].PriceFrom
		}
		return matched[i].PriceFrom < matched[j].PriceFrom
	})

	return matched
}

// filterByArea keeps listings whose area field contains any qualifying word
// of the cleaned area phrase. City-wide aliases skip the filter entirely.
func filterByArea(listings []entities.Listing, area string) []entities.Listing {
	phrase := cleanAreaPhrase(area)
	if phrase == "" {
		return listings
	}
	if _, cityWide := cityAliases[phrase]; cityWide {
		return listings
	}

	var words []string
	for _, w := range strings.Fields(phrase) {
		if _, alias := cityAliases[w]; alias {
			continue
		}
		if len(w) > 2 && alphaWordRe.MatchString(w) {
			words = append(words, w)
		}
	}

	out := make([]entities.Listing, 0, len(listings))
	for _, l := range listings {
		la := strings.ToLower(l.Area)
		if len(words) == 0 {
			// No qualifying words survived cleaning; require the whole
			// phrase instead.
			if strings.Contains(la, phrase) {
				out = append(out, l)
			}
			continue
		}
		for _, w := range words {
			if strings.Contains(la, w) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// cleanAreaPhrase lowercases the captured area text, strips filler words and
// punctuation, and collapses whitespace.
func cleanAreaPhrase(area string) string {
	s := strings.ToLower(area)
	s = areaFillerRe.ReplaceAllString(s, " ")
	s = nonAlphaNumRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

type scoredListing struct {
	listing entities.Listing
	km      float64
}

func (s *FilterService) sortByProximity(listings []entities.Listing, loc entities.Location) []entities.Listing {
	scored := make([]scoredListing, 0, len(listings))
	for _, l := range listings {
		if !l.HasCoordinates() {
			continue
		}
		km := s.distance(loc, entities.Location{Latitude: *l.Lat, Longitude: *l.Lon})
		if km > s.radiusKm {
			continue
		}
		scored = append(scored, scoredListing{listing: l, km: km})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].km < scored[j].km
	})

	out := make([]entities.Listing, len(scored))
	for i, sc := range scored {
		out[i] = sc.listing
	}
	return out
}
