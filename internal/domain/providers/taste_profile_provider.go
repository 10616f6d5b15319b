package providers

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// TasteProfileProvider supplies the baseline taste profile user preferences are merged onto.
type TasteProfileProvider interface {
	BaselineProfile(ctx context.Context) (*entities.TasteProfile, error)
}
