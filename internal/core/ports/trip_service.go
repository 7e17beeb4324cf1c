package ports

import (
	"context"

	"github.com/passaqui/passaqui-api/internal/core/domain"
)

type TripService interface {
	// Search returns the demo trip offers for an origin/destination pair.
	// The offers are synthetic; no store access is involved.
	Search(ctx context.Context, fromCity, toCity, date string) ([]domain.TripOffer, error)
}
