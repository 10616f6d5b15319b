package entities

// Emotion is one of the fixed labels scored for a place.
type Emotion string

const (
	EmotionHappy         Emotion = "happy"
	EmotionRelaxed       Emotion = "relaxed"
	EmotionEnergetic     Emotion = "energetic"
	EmotionNostalgic     Emotion = "nostalgic"
	EmotionContemplative Emotion = "contemplative"
	EmotionRomantic      Emotion = "romantic"
	EmotionAnxious       Emotion = "anxious"
	EmotionLonely        Emotion = "lonely"
)

// EmotionLabels is the fixed label order. Ties in Dominant resolve to the earlier label.
var EmotionLabels = []Emotion{
	EmotionHappy, EmotionRelaxed, EmotionEnergetic, EmotionNostalgic,
	EmotionContemplative, EmotionRomantic, EmotionAnxious, EmotionLonely,
}

// EmotionVector maps each label to a score in [0,1].
type EmotionVector map[Emotion]float64

// Dominant returns the label with the highest score.
func (v EmotionVector) Dominant() Emotion {
	var (
		best    Emotion
		bestVal float64
		found   bool
	)
	for _, label := range EmotionLabels {
		val, ok := v[label]
		if !ok {
			continue
		}
		if !found || val > bestVal {
			best, bestVal, found = label, val, true
		}
	}
	return best
}
