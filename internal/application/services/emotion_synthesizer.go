package services

import (
	"math"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

type emotionMultiplierRule struct {
	keywords    []string
	multipliers map[entities.Emotion]float64
}

// Applied cumulatively, in this order.
var emotionMultiplierRules = []emotionMultiplierRule{
	{
		keywords: []string{"bar", "night_club"},
		multipliers: map[entities.Emotion]float64{
			entities.EmotionEnergetic:     1.3,
			entities.EmotionHappy:         1.3,
			entities.EmotionContemplative: 0.7,
			entities.EmotionRelaxed:       0.7,
		},
	},
	{
		keywords: []string{"cafe"},
		multipliers: map[entities.Emotion]float64{
			entities.EmotionContemplative: 1.2,
			entities.EmotionRelaxed:       1.2,
			entities.EmotionEnergetic:     0.8,
		},
	},
	{
		keywords: []string{"restaurant"},
		multipliers: map[entities.Emotion]float64{
			entities.EmotionHappy:    1.2,
			entities.EmotionRomantic: 1.2,
		},
	},
	{
		keywords: []string{"park"},
		multipliers: map[entities.Emotion]float64{
			entities.EmotionRelaxed:       1.3,
			entities.EmotionContemplative: 1.3,
		},
	},
}

// EmotionSynthesizer scores a place on every emotion label from its rating and category.
type EmotionSynthesizer struct {
	rng RandomSource
}

// NewEmotionSynthesizer creates a synthesizer drawing noise from rng
func NewEmotionSynthesizer(rng RandomSource) *EmotionSynthesizer {
	return &EmotionSynthesizer{rng: rng}
}

// Synthesize returns a vector with every label in [0,1], rounded to three decimals.
func (s *EmotionSynthesizer) Synthesize(in entities.PlaceRatingAndCategory) entities.EmotionVector {
	return synthesizeEmotions(s.rng, in)
}

func synthesizeEmotions(rng RandomSource, in entities.PlaceRatingAndCategory) entities.EmotionVector {
	rating := in.Rating
	if math.IsNaN(rating) {
		rating = 0
	}
	rating = math.Max(0, math.Min(5, rating))
	category := strings.ToLower(in.Category)

	vector := make(entities.EmotionVector, len(entities.EmotionLabels))
	for _, label := range entities.EmotionLabels {
		vector[label] = rating/5.0*0.7 + uniform(rng, 0.1, 0.3)
	}

	for _, rule := range emotionMultiplierRules {
		if !containsAny(category, rule.keywords) {
			continue
		}
		for label, factor := range rule.multipliers {
			vector[label] *= factor
		}
	}

	for label, value := range vector {
		vector[label] = math.Round(math.Min(1.0, value)*1000) / 1000
	}
	return vector
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
