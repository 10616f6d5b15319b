package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/vibecheck/backend/pkg/errors"
	"github.com/zatekoja/vibecheck/backend/pkg/retry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxSearchKeywords bounds the place-search fan-out per request.
	MaxSearchKeywords = 3
	// MaxEnrichCandidates bounds the unique candidates sent for enrichment.
	MaxEnrichCandidates = 6
	// MaxPlaces bounds the places returned to the caller.
	MaxPlaces = 4

	// NeutralDescription replaces a place description the text generator could not produce.
	NeutralDescription = "A quiet corner where the world slows down. Soft music mingles with the smell of coffee, and nobody minds if you stay a while."
	// FallbackInsight replaces the emotional insight when generation fails.
	FallbackInsight = "Sometimes the right place finds you when you need it most."

	defaultVibePlaceType = "this place"
	defaultTimeout       = 8 * time.Second
)

// ErrNoMatchesFound is the only aggregation failure surfaced to callers.
var ErrNoMatchesFound = errors.New("no matching places found")

// RecommendationDeps are the collaborators of RecommendationService.
// Nil providers are treated as unavailable.
type RecommendationDeps struct {
	Taxonomy *MoodTaxonomy
	Mapper   *CorrelationMapper
	Resolver *TasteProfileResolver
	Matcher  *CrossDomainMatcher
	Emotions *EmotionSynthesizer
	Fallback *FallbackProvider
	Catalog  *Catalog
	Random   RandomSource

	Search  providers.PlaceSearchProvider
	Details providers.PlaceDetailsProvider
	Text    providers.TextGenerator

	Timeout         time.Duration
	DefaultLocation string
	Retry           retry.Config
}

// RecommendationService aggregates places, music and activities for a mood.
type RecommendationService struct {
	taxonomy *MoodTaxonomy
	mapper   *CorrelationMapper
	resolver *TasteProfileResolver
	matcher  *CrossDomainMatcher
	emotions *EmotionSynthesizer
	fallback *FallbackProvider
	catalog  *Catalog
	rng      RandomSource

	search  providers.PlaceSearchProvider
	details providers.PlaceDetailsProvider
	text    providers.TextGenerator

	timeout         time.Duration
	defaultLocation string
	retryConfig     retry.Config
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(deps RecommendationDeps) *RecommendationService {
	if deps.Taxonomy == nil {
		deps.Taxonomy = NewMoodTaxonomy()
	}
	if deps.Random == nil {
		deps.Random = NewRandomSource(0)
	}
	if deps.Catalog == nil {
		deps.Catalog = NewCatalog()
	}
	if deps.Matcher == nil {
		deps.Matcher = NewCrossDomainMatcher(deps.Catalog)
	}
	if deps.Emotions == nil {
		deps.Emotions = NewEmotionSynthesizer(deps.Random)
	}
	if deps.Fallback == nil {
		deps.Fallback = NewFallbackProvider(deps.Random)
	}
	if deps.Resolver == nil {
		deps.Resolver = NewTasteProfileResolver(nil)
	}
	if deps.Timeout <= 0 {
		deps.Timeout = defaultTimeout
	}
	if deps.Retry.MaxAttempts <= 0 {
		deps.Retry = retry.ReadConfig()
	}
	if deps.Mapper == nil {
		// The built-in curated table is validated by tests; failure here is a programming error.
		mapper, err := NewCorrelationMapper(TableCurated)
		if err != nil {
			panic(err)
		}
		deps.Mapper = mapper
	}

	return &RecommendationService{
		taxonomy:        deps.Taxonomy,
		mapper:          deps.Mapper,
		resolver:        deps.Resolver,
		matcher:         deps.Matcher,
		emotions:        deps.Emotions,
		fallback:        deps.Fallback,
		catalog:         deps.Catalog,
		rng:             deps.Random,
		search:          deps.Search,
		details:         deps.Details,
		text:            deps.Text,
		timeout:         deps.Timeout,
		defaultLocation: deps.DefaultLocation,
		retryConfig:     deps.Retry,
	}
}

// GetRecommendations normalizes the mood, resolves the taste profile and aggregates a bundle.
// Only ErrNoMatchesFound is returned, wrapped as a NOT_FOUND AppError.
func (s *RecommendationService) GetRecommendations(ctx context.Context, input entities.MoodInput, prefs *entities.UserPreferences, location string) (*entities.RecommendationResult, error) {
	ctx, span := observability.StartSpan(ctx, "RecommendationService.GetRecommendations")
	defer span.End()

	input.PrimaryMood = s.taxonomy.Normalize(ctx, string(input.PrimaryMood))
	location = s.location(location)
	observability.SetSpanAttributes(span,
		attribute.String("mood", input.PrimaryMood.String()),
		attribute.Int("mood.intensity", input.Intensity),
		attribute.String("location", location),
	)

	profile := s.resolver.Resolve(ctx, prefs)
	set := s.mapper.Correlate(input.PrimaryMood)

	bundle, source, err := s.aggregate(ctx, input, set, profile, location)
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewNotFoundErrorWithCause(
			"Could not find any matching places for your mood right now. Try being a little more descriptive!", err)
	}
	span.SetAttributes(attribute.String("recommendations.source", string(source)))

	return &entities.RecommendationResult{
		Mood:             input.PrimaryMood,
		Recommendations:  *bundle,
		EmotionalInsight: s.insight(ctx, input.PrimaryMood, bundle.Places[0], profile),
		Correlations:     set,
		TasteProfile:     profile,
		Location:         location,
		Source:           source,
	}, nil
}

// Aggregate builds the recommendation bundle for an already-normalized mood and resolved profile.
func (s *RecommendationService) Aggregate(ctx context.Context, input entities.MoodInput, profile *entities.TasteProfile, location string) (*entities.RecommendationBundle, error) {
	set := s.mapper.Correlate(input.PrimaryMood)
	bundle, _, err := s.aggregate(ctx, input, set, profile, s.location(location))
	return bundle, err
}

func (s *RecommendationService) aggregate(ctx context.Context, input entities.MoodInput, set entities.CorrelationSet, profile *entities.TasteProfile, location string) (*entities.RecommendationBundle, entities.RecommendationSource, error) {
	ctx, span := observability.StartSpan(ctx, "RecommendationService.aggregate")
	defer span.End()

	source := entities.SourceLive
	places := s.livePlaces(ctx, set, location)
	if len(places) == 0 {
		source = entities.SourceFallback
		places = truncate(s.fallback.SynthesizePlaces(set, location), MaxPlaces)
		addCount(ctx, &fallbackActivatedCounter, attribute.String("fallback.path", "recommendations"))
		observability.LoggerFromContext(ctx).Info().
			Str("mood", input.PrimaryMood.String()).
			Str("location", location).
			Int("places", len(places)).
			Msg("Serving synthesized places")
	}
	if len(places) == 0 {
		return nil, source, ErrNoMatchesFound
	}

	for i := range places {
		s.decorate(&places[i])
	}
	s.describe(ctx, places, input.PrimaryMood, profile)

	return &entities.RecommendationBundle{
		Places:      places,
		Music:       s.moodMusic(set, profile),
		Activities:  s.moodActivities(set, profile),
		CrossDomain: s.matcher.Match(places[0], entities.DomainMusic, entities.DomainActivities),
	}, source, nil
}

// livePlaces runs search, dedup and enrichment under the request timeout.
// Any failure leaves fewer places; an empty result triggers the fallback.
func (s *RecommendationService) livePlaces(ctx context.Context, set entities.CorrelationSet, location string) []entities.Place {
	if s.search == nil {
		observability.LoggerFromContext(ctx).Debug().Msg("No place search provider configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates := truncate(mergeCandidates(s.searchKeywords(ctx, set.SearchKeywords, location)), MaxEnrichCandidates)
	if len(candidates) == 0 {
		return nil
	}
	return truncate(s.enrich(ctx, candidates), MaxPlaces)
}

// searchKeywords returns one result slot per keyword, in keyword order.
func (s *RecommendationService) searchKeywords(ctx context.Context, keywords []string, location string) [][]entities.PlaceCandidate {
	keywords = truncate(keywords, MaxSearchKeywords)
	slots := make([][]entities.PlaceCandidate, len(keywords))

	var g errgroup.Group
	g.SetLimit(MaxSearchKeywords)
	for i, keyword := range keywords {
		g.Go(func() error {
			slots[i] = s.searchKeyword(ctx, keyword, location)
			return nil
		})
	}
	_ = g.Wait()
	return slots
}

func (s *RecommendationService) searchKeyword(ctx context.Context, keyword, location string) []entities.PlaceCandidate {
	var results []entities.PlaceCandidate
	err := retry.DoWithLog(ctx, s.retryConfig, "place_search", func() error {
		found, err := s.search.SearchPlaces(ctx, keyword, location)
		if err != nil {
			return retryable(err)
		}
		results = found
		return nil
	}, func(attempt int, err error, nextDelay time.Duration) {
		observability.LoggerFromContext(ctx).Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("next_delay", nextDelay).
			Str("keyword", keyword).
			Msg("Retrying place search")
	})
	if err != nil {
		logProviderError(ctx, "place_search", err, map[string]string{"keyword": keyword})
		return nil
	}
	return results
}

// mergeCandidates flattens slots by (keyword index, position); the first occurrence of an id wins.
func mergeCandidates(slots [][]entities.PlaceCandidate) []entities.PlaceCandidate {
	seen := make(map[string]struct{})
	var out []entities.PlaceCandidate
	for _, slot := range slots {
		for _, c := range slot {
			if c.ExternalID == "" {
				continue
			}
			if _, dup := seen[c.ExternalID]; dup {
				continue
			}
			seen[c.ExternalID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// enrich resolves candidates concurrently, keeping candidate order and dropping failures.
func (s *RecommendationService) enrich(ctx context.Context, candidates []entities.PlaceCandidate) []entities.Place {
	enriched := make([]*entities.Place, len(candidates))

	var g errgroup.Group
	g.SetLimit(MaxEnrichCandidates)
	for i, candidate := range candidates {
		g.Go(func() error {
			enriched[i] = s.enrichOne(ctx, candidate)
			return nil
		})
	}
	_ = g.Wait()

	places := make([]entities.Place, 0, len(enriched))
	for _, p := range enriched {
		if p != nil {
			places = append(places, *p)
		}
	}
	return places
}

func (s *RecommendationService) enrichOne(ctx context.Context, candidate entities.PlaceCandidate) *entities.Place {
	if s.details == nil {
		p := placeFromCandidate(candidate)
		return &p
	}

	place, err := s.details.EnrichPlace(ctx, candidate)
	if err != nil {
		logProviderError(ctx, "place_details", err, map[string]string{"external_id": candidate.ExternalID})
		return nil
	}
	if place == nil {
		return nil
	}
	if place.ID == "" {
		place.ID = candidate.ExternalID
	}
	return place
}

// placeFromCandidate is the identity enrichment used when no details provider is configured.
func placeFromCandidate(c entities.PlaceCandidate) entities.Place {
	return entities.Place{
		ID:          c.ExternalID,
		Name:        c.Name,
		Type:        c.PrimaryCategory(),
		Address:     c.Address,
		Rating:      c.Rating,
		Tags:        truncate(c.Categories, entities.MaxPlaceTags),
		Coordinates: c.Coordinates,
	}
}

// decorate fills the synthetic fields every returned place carries.
func (s *RecommendationService) decorate(p *entities.Place) {
	p.Tags = truncate(p.Tags, entities.MaxPlaceTags)
	if p.ActiveUsersNearby <= 0 {
		p.ActiveUsersNearby = intBetween(s.rng, 2, 15)
	}
	if p.Thumbnail == "" {
		p.Thumbnail = placeholderThumbnail(pick(s.rng, thumbnailColors), p.Name)
	}
	p.Emotions = s.emotions.Synthesize(p.RatingAndCategory())
	p.DominantEmotion = p.Emotions.Dominant()
}

func (s *RecommendationService) describe(ctx context.Context, places []entities.Place, mood entities.Mood, profile *entities.TasteProfile) {
	if s.text == nil {
		for i := range places {
			places[i].EmotionalDescription = NeutralDescription
		}
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var g errgroup.Group
	g.SetLimit(MaxPlaces)
	for i := range places {
		g.Go(func() error {
			desc, err := s.text.DescribePlace(ctx, places[i], mood, profile)
			if err != nil || strings.TrimSpace(desc) == "" {
				if err != nil {
					logProviderError(ctx, "describe_place", err, map[string]string{"place_id": places[i].ID})
				}
				desc = NeutralDescription
			}
			places[i].EmotionalDescription = strings.TrimSpace(desc)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *RecommendationService) insight(ctx context.Context, mood entities.Mood, place entities.Place, profile *entities.TasteProfile) string {
	if s.text == nil {
		return FallbackInsight
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.text.EmotionalInsight(ctx, mood, place, profile)
	if err != nil {
		logProviderError(ctx, "emotional_insight", err, nil)
		return FallbackInsight
	}
	if text = strings.TrimSpace(text); text == "" {
		return FallbackInsight
	}
	return text
}

// GetMusicForPlace pairs place-specific music from the category rules with mood music.
func (s *RecommendationService) GetMusicForPlace(ctx context.Context, place entities.Place, rawMood string, prefs *entities.UserPreferences) entities.PlaceMusic {
	mood := s.taxonomy.Normalize(ctx, rawMood)
	profile := s.resolver.Resolve(ctx, prefs)
	set := s.mapper.Correlate(mood)

	return entities.PlaceMusic{
		PlaceSpecificMusic: s.matcher.Match(place, entities.DomainMusic).Music,
		MoodMusic:          s.moodMusic(set, profile),
		Place:              place,
	}
}

// GetActivitiesForMood resolves the mood's activity tags against the catalog.
func (s *RecommendationService) GetActivitiesForMood(ctx context.Context, rawMood, location string, prefs *entities.UserPreferences) []entities.Activity {
	mood := s.taxonomy.Normalize(ctx, rawMood)
	profile := s.resolver.Resolve(ctx, prefs)
	set := s.mapper.Correlate(mood)

	observability.LoggerFromContext(ctx).Debug().
		Str("mood", mood.String()).
		Str("location", s.location(location)).
		Msg("Resolving activities for mood")

	return s.moodActivities(set, profile)
}

// moodMusic resolves the set's genres, those the profile likes first.
func (s *RecommendationService) moodMusic(set entities.CorrelationSet, profile *entities.TasteProfile) []entities.MusicTrack {
	return s.catalog.Tracks(preferTags(set.MusicGenres, profile.Dimension(entities.DimensionMusic)))
}

// moodActivities resolves the set's activity tags, those the profile likes first.
func (s *RecommendationService) moodActivities(set entities.CorrelationSet, profile *entities.TasteProfile) []entities.Activity {
	return s.catalog.Activities(preferTags(set.Activities, profile.Dimension(entities.DimensionActivity)))
}

// GetVibeQuestion asks the text generator for a vibe-check question, with a fixed fallback.
func (s *RecommendationService) GetVibeQuestion(ctx context.Context, rawMood, placeType string) string {
	mood := s.taxonomy.Normalize(ctx, rawMood)
	placeType = strings.TrimSpace(placeType)
	if placeType == "" {
		placeType = defaultVibePlaceType
	}

	if s.text != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		question, err := s.text.VibeQuestion(ctx, mood, placeType)
		if err == nil {
			if question = strings.Trim(strings.TrimSpace(question), `"`); question != "" {
				return question
			}
		} else {
			logProviderError(ctx, "vibe_question", err, nil)
		}
	}
	return fallbackVibeQuestion(mood, placeType)
}

func fallbackVibeQuestion(mood entities.Mood, placeType string) string {
	placeType = strings.TrimPrefix(placeType, "this ")
	return fmt.Sprintf("For someone feeling %s, what's the general vibe like at this %s right now?", mood, placeType)
}

// Correlations exposes the normalized mood, its correlation set and the baseline profile.
func (s *RecommendationService) Correlations(ctx context.Context, rawMood string) (entities.Mood, entities.CorrelationSet, *entities.TasteProfile) {
	mood := s.taxonomy.Normalize(ctx, rawMood)
	return mood, s.mapper.Correlate(mood), s.resolver.Baseline(ctx)
}

func (s *RecommendationService) location(location string) string {
	if strings.TrimSpace(location) == "" {
		return s.defaultLocation
	}
	return location
}

// preferTags moves tags the profile lists ahead of the rest, keeping relative order.
func preferTags(tags, liked []string) []string {
	likedSet := lowerSet(liked)
	return stablePartition(tags, func(tag string) bool {
		_, ok := likedSet[strings.ToLower(tag)]
		return ok
	})
}

func stablePartition[T any](items []T, first func(T) bool) []T {
	out := make([]T, 0, len(items))
	var rest []T
	for _, item := range items {
		if first(item) {
			out = append(out, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(out, rest...)
}

func lowerSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[strings.ToLower(item)] = struct{}{}
	}
	return out
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
