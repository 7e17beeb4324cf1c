package service

import (
	"context"

	"github.com/passaqui/passaqui-api/internal/core/domain"
)

// TripService synthesizes the demo trip offers. There is no matching engine
// behind it: three fixed drivers, fixed prices, and per-offer fallback dates
// when the caller leaves the date blank.
type TripService struct{}

func NewTripService() *TripService {
	return &TripService{}
}

type offerTemplate struct {
	id           string
	driver       string
	price        float64
	rating       float64
	fallbackDate string
}

var offerTemplates = []offerTemplate{
	{id: "t1", driver: "Marie L.", price: 8.5, rating: 4.8, fallbackDate: "Demain"},
	{id: "t2", driver: "Antoine P.", price: 6.0, rating: 4.6, fallbackDate: "Aujourd'hui"},
	{id: "t3", driver: "Giulia R.", price: 10.0, rating: 4.9, fallbackDate: "Cette semaine"},
}

func (s *TripService) Search(_ context.Context, fromCity, toCity, date string) ([]domain.TripOffer, error) {
	offers := make([]domain.TripOffer, 0, len(offerTemplates))
	for _, tpl := range offerTemplates {
		offerDate := date
		if offerDate == "" {
			offerDate = tpl.fallbackDate
		}
		offers = append(offers, domain.TripOffer{
			ID:     tpl.id,
			Driver: tpl.driver,
			From:   fromCity,
			To:     toCity,
			Date:   offerDate,
			Price:  tpl.price,
			Rating: tpl.rating,
		})
	}
	return offers, nil
}
