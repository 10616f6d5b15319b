package services

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

const (
	minFallbackPlaces = 3
	maxFallbackPlaces = 5

	minFallbackRating = 3.8
	maxFallbackRating = 4.9
)

var fallbackNamePools = map[string][]string{
	"cafe":       {"The Cozy Corner", "Uptown Grind", "The Daily Bean", "Artisan Roast"},
	"diner":      {"Midnight Munchies", "The Silver Spoon", "Classic Eats Diner"},
	"bar":        {"The Alchemist's Den", "Starlight Lounge", "The Local Taproom"},
	"restaurant": {"The Golden Fork", "Urban Table", "Saffron Spice"},
	"bakery":     {"The Rolling Pin", "Sweet Crumbs", "Morning Bun Bakery"},
}

const defaultNamePool = "restaurant"

var thumbnailColors = []string{"2d3748", "4a5568", "718096"}

// heatmapCategories are the place types used for synthesized heatmap batches.
var heatmapCategories = []string{"cafe", "bar", "restaurant", "park", "bakery", "night_club", "museum", "library"}

// FallbackProvider fabricates well-formed places when no live provider can answer.
type FallbackProvider struct {
	rng RandomSource
}

// NewFallbackProvider creates a fallback provider drawing from rng
func NewFallbackProvider(rng RandomSource) *FallbackProvider {
	return &FallbackProvider{rng: rng}
}

// SynthesizePlaces returns 3 to 5 places typed from the set's search keywords.
// An empty keyword list yields no places.
func (f *FallbackProvider) SynthesizePlaces(set entities.CorrelationSet, location string) []entities.Place {
	if len(set.SearchKeywords) == 0 {
		return []entities.Place{}
	}

	count := intBetween(f.rng, minFallbackPlaces, maxFallbackPlaces)
	places := make([]entities.Place, 0, count)
	for i := 0; i < count; i++ {
		placeType := pick(f.rng, set.SearchKeywords)
		places = append(places, f.mockPlace(placeType, location, i))
	}
	return places
}

func (f *FallbackProvider) mockPlace(placeType, location string, index int) entities.Place {
	name := pick(f.rng, namePoolFor(placeType))

	tags := []string{capitalize(placeType), "Trendy"}
	if strings.Contains(placeType, "comfort") {
		tags = []string{capitalize(placeType), "Comfort Food", "Local Favorite"}
	}

	return entities.Place{
		ID:                fmt.Sprintf("place_%s_%d", strings.ReplaceAll(placeType, " ", "_"), index),
		Name:              name,
		Type:              placeType,
		Address:           fmt.Sprintf("%d Main St, %s", intBetween(f.rng, 100, 1999), location),
		Rating:            f.rating(),
		Tags:              tags,
		ActiveUsersNearby: f.activeUsers(),
		Thumbnail:         f.thumbnail(name),
	}
}

// SynthesizeNearby returns count heatmap candidates scattered within radiusMeters of center.
func (f *FallbackProvider) SynthesizeNearby(center entities.Coordinates, radiusMeters, count int) []entities.PlaceCandidate {
	if count <= 0 {
		return []entities.PlaceCandidate{}
	}
	if radiusMeters <= 0 {
		radiusMeters = 1000
	}

	out := make([]entities.PlaceCandidate, 0, count)
	for i := 0; i < count; i++ {
		category := pick(f.rng, heatmapCategories)
		name := pick(f.rng, namePoolFor(strings.ReplaceAll(category, "_", " ")))
		coords := f.jitter(center, float64(radiusMeters))
		out = append(out, entities.PlaceCandidate{
			ExternalID:  fmt.Sprintf("heatmap_%s_%d", category, i),
			Name:        name,
			Categories:  []string{category},
			Rating:      f.rating(),
			Address:     fmt.Sprintf("%.5f, %.5f", coords.Latitude, coords.Longitude),
			Coordinates: &coords,
		})
	}
	return out
}

// jitter picks a uniformly distributed point inside a circle of radius meters.
func (f *FallbackProvider) jitter(center entities.Coordinates, radius float64) entities.Coordinates {
	const metersPerDegreeLat = 111_320.0

	distance := radius * math.Sqrt(f.rng.Float64())
	bearing := 2 * math.Pi * f.rng.Float64()

	dLat := distance * math.Cos(bearing) / metersPerDegreeLat
	lngScale := metersPerDegreeLat * math.Cos(center.Latitude*math.Pi/180)
	dLng := 0.0
	if lngScale > 1e-6 {
		dLng = distance * math.Sin(bearing) / lngScale
	}
	return entities.Coordinates{
		Latitude:  center.Latitude + dLat,
		Longitude: center.Longitude + dLng,
	}
}

func (f *FallbackProvider) rating() float64 {
	r := math.Round(uniform(f.rng, minFallbackRating, maxFallbackRating)*10) / 10
	return math.Min(maxFallbackRating, math.Max(minFallbackRating, r))
}

func (f *FallbackProvider) activeUsers() int {
	return intBetween(f.rng, 2, 15)
}

func (f *FallbackProvider) thumbnail(name string) string {
	return placeholderThumbnail(pick(f.rng, thumbnailColors), name)
}

func placeholderThumbnail(color, name string) string {
	return fmt.Sprintf("https://placehold.co/600x400/%s/ffffff?text=%s", color, url.QueryEscape(name))
}

// namePoolFor keys the pool on the last word of the type.
func namePoolFor(placeType string) []string {
	words := strings.Fields(strings.ToLower(placeType))
	if len(words) > 0 {
		if pool, ok := fallbackNamePools[words[len(words)-1]]; ok {
			return pool
		}
	}
	return fallbackNamePools[defaultNamePool]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
