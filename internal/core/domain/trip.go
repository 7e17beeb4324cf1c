package domain

// TripOffer is a single ride/delivery offer returned by the search endpoint.
// Offers are synthesized — there is no backing collection and no identity
// beyond the response itself.
type TripOffer struct {
	ID     string  `json:"id"`
	Driver string  `json:"driver"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}
