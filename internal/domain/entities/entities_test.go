package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMood(t *testing.T) {
	m, ok := ParseMood("anxious")
	assert.True(t, ok)
	assert.Equal(t, MoodAnxious, m)

	_, ok = ParseMood("Anxious")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = ParseMood("")
	assert.False(t, ok)
}

func TestAllMoods_ReturnsCopy(t *testing.T) {
	moods := AllMoods()
	assert.Len(t, moods, 24)
	assert.Equal(t, MoodAnxious, moods[0])

	moods[0] = "mutated"
	assert.Equal(t, MoodAnxious, AllMoods()[0])
}

func TestEmotionVector_Dominant(t *testing.T) {
	v := EmotionVector{
		EmotionHappy:    0.4,
		EmotionRelaxed:  0.9,
		EmotionRomantic: 0.9,
		EmotionLonely:   0.1,
	}
	assert.Equal(t, EmotionRelaxed, v.Dominant(), "ties resolve to the earlier label")

	assert.Equal(t, Emotion(""), EmotionVector{}.Dominant())
}

func TestTasteProfile_CloneIsDeep(t *testing.T) {
	p := DefaultTasteProfile()
	c := p.Clone()
	c.Food[0] = "pizza"

	assert.Equal(t, "ramen", p.Food[0])
	assert.Equal(t, p.Ambiance, c.Ambiance)
}

func TestCorrelationSet_CloneIsDeep(t *testing.T) {
	set := CorrelationSet{SearchKeywords: []string{"cafe"}, Ambiance: []string{"quiet"}}
	c := set.Clone()
	c.SearchKeywords[0] = "bar"

	assert.Equal(t, "cafe", set.SearchKeywords[0])
	assert.Nil(t, c.MusicGenres)
}
