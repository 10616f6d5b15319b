package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

func TestMoodTaxonomy_Normalize(t *testing.T) {
	taxonomy := NewMoodTaxonomy()
	ctx := context.Background()

	assert.Equal(t, entities.MoodAnxious, taxonomy.Normalize(ctx, "anxious"))
	assert.Equal(t, entities.DefaultMood, taxonomy.Normalize(ctx, "not-a-real-mood"))
	assert.Equal(t, entities.MoodContemplative, taxonomy.Normalize(ctx, ""))
	assert.Equal(t, entities.DefaultMood, taxonomy.Normalize(ctx, "ANXIOUS"), "matching is case-sensitive")
}

func TestMoodTaxonomy_Moods(t *testing.T) {
	moods := NewMoodTaxonomy().Moods()
	assert.Len(t, moods, 24)
	assert.Contains(t, moods, entities.MoodDisgusted)
}
