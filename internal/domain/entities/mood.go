package entities

// Mood is an identifier from the closed set of supported emotional states.
type Mood string

const (
	MoodAnxious        Mood = "anxious"
	MoodLonely         Mood = "lonely"
	MoodCelebratory    Mood = "celebratory"
	MoodNostalgic      Mood = "nostalgic"
	MoodStressed       Mood = "stressed"
	MoodContemplative  Mood = "contemplative"
	MoodEnergetic      Mood = "energetic"
	MoodMelancholic    Mood = "melancholic"
	MoodSatisfaction   Mood = "satisfaction"
	MoodDisappointment Mood = "disappointment"
	MoodLethargy       Mood = "lethargy"
	MoodRelaxed        Mood = "relaxed"
	MoodRomantic       Mood = "romantic"
	MoodInspired       Mood = "inspired"
	MoodCurious        Mood = "curious"
	MoodAwkward        Mood = "awkward"
	MoodSurprised      Mood = "surprised"
	MoodGrateful       Mood = "grateful"
	MoodAdventurous    Mood = "adventurous"
	MoodBored          Mood = "bored"
	MoodOverwhelmed    Mood = "overwhelmed"
	MoodComforted      Mood = "comforted"
	MoodExhilarated    Mood = "exhilarated"
	MoodDisgusted      Mood = "disgusted"
)

// DefaultMood is substituted for input that is not in the taxonomy.
const DefaultMood = MoodContemplative

var allMoods = []Mood{
	MoodAnxious, MoodLonely, MoodCelebratory, MoodNostalgic, MoodStressed, MoodContemplative,
	MoodEnergetic, MoodMelancholic, MoodSatisfaction, MoodDisappointment, MoodLethargy, MoodRelaxed,
	MoodRomantic, MoodInspired, MoodCurious, MoodAwkward, MoodSurprised, MoodGrateful,
	MoodAdventurous, MoodBored, MoodOverwhelmed, MoodComforted, MoodExhilarated, MoodDisgusted,
}

var moodIndex = func() map[Mood]struct{} {
	idx := make(map[Mood]struct{}, len(allMoods))
	for _, m := range allMoods {
		idx[m] = struct{}{}
	}
	return idx
}()

// AllMoods returns every mood in declaration order.
func AllMoods() []Mood {
	out := make([]Mood, len(allMoods))
	copy(out, allMoods)
	return out
}

// ParseMood is a case-sensitive exact lookup against the taxonomy.
func ParseMood(raw string) (Mood, bool) {
	m := Mood(raw)
	_, ok := moodIndex[m]
	return m, ok
}

// String implements fmt.Stringer
func (m Mood) String() string {
	return string(m)
}

// MoodInput is the caller's description of how they feel.
// Intensity is bounded to [1,10] by the routing layer.
type MoodInput struct {
	PrimaryMood    Mood   `json:"primary_mood" validate:"required"`
	Intensity      int    `json:"intensity" validate:"min=1,max=10"`
	Context        string `json:"context,omitempty"`
	TimePreference string `json:"time_preference,omitempty"`
}

// MoodAnalysis is the structured reading of a free-text mood description.
type MoodAnalysis struct {
	Mood           Mood     `json:"mood"`
	Intensity      int      `json:"intensity"`
	Atmosphere     string   `json:"atmosphere"`
	FoodHints      []string `json:"food_hints"`
	TimePreference string   `json:"time_preference"`
}

// FallbackMoodAnalysis is used when the text generator cannot analyze input.
func FallbackMoodAnalysis() MoodAnalysis {
	return MoodAnalysis{
		Mood:           DefaultMood,
		Intensity:      5,
		Atmosphere:     "quiet",
		FoodHints:      []string{"warm", "comforting"},
		TimePreference: "now",
	}
}
