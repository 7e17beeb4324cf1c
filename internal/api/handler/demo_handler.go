package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DemoHandler serves the fixed showcase payloads behind the product's feature
// tour. No input, no store access, no failure mode.
type DemoHandler struct{}

func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

type demoMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type messagesResponse struct {
	Conversation []demoMessage `json:"conversation"`
}

type walletEntry struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

type walletResponse struct {
	Balance float64       `json:"balance"`
	History []walletEntry `json:"history"`
}

type demoProfile struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

type profilesResponse struct {
	Profiles []demoProfile `json:"profiles"`
}

type achievement struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
}

type achievementsResponse struct {
	Achievements []achievement `json:"achievements"`
}

// Messages returns the canned conversation.
//
// @Summary      Demo conversation
// @Tags         demo
// @Produce      json
// @Success      200  {object}  messagesResponse
// @Router       /demo/messages [get]
func (h *DemoHandler) Messages(c echo.Context) error {
	return c.JSON(http.StatusOK, messagesResponse{
		Conversation: []demoMessage{
			{From: "Vous", Text: "Bonjour ! Le colis tient dans un sac à dos ?", Time: "10:02"},
			{From: "Livreur", Text: "Oui, pas de souci. Je passe par Bastia vers 17h.", Time: "10:05"},
			{From: "Vous", Text: "Parfait, je réserve. Merci !", Time: "10:06"},
		},
	})
}

// Wallet returns the canned balance and history.
//
// @Summary      Demo wallet
// @Tags         demo
// @Produce      json
// @Success      200  {object}  walletResponse
// @Router       /demo/wallet [get]
func (h *DemoHandler) Wallet(c echo.Context) error {
	return c.JSON(http.StatusOK, walletResponse{
		Balance: 30.0,
		History: []walletEntry{
			{Label: "Paiement reçu", Amount: "+15,00€", Date: "Hier"},
			{Label: "Réservation", Amount: "-5,00€", Date: "Cette semaine"},
			{Label: "Bonus parrainage", Amount: "+5,00€", Date: "Cette semaine"},
		},
	})
}

// Profiles returns the canned member profiles.
//
// @Summary      Demo profiles
// @Tags         demo
// @Produce      json
// @Success      200  {object}  profilesResponse
// @Router       /demo/profiles [get]
func (h *DemoHandler) Profiles(c echo.Context) error {
	return c.JSON(http.StatusOK, profilesResponse{
		Profiles: []demoProfile{
			{Name: "Camille", Rating: 4.9, Reviews: 58},
			{Name: "Paulu", Rating: 4.7, Reviews: 32},
			{Name: "Lina", Rating: 5.0, Reviews: 12},
		},
	})
}

// Achievements returns the canned achievement list.
//
// @Summary      Demo achievements
// @Tags         demo
// @Produce      json
// @Success      200  {object}  achievementsResponse
// @Router       /demo/achievements [get]
func (h *DemoHandler) Achievements(c echo.Context) error {
	return c.JSON(http.StatusOK, achievementsResponse{
		Achievements: []achievement{
			{Title: "Intermédiaire", Desc: "5e livraison effectuée", Icon: "trophy"},
			{Title: "Ambassadeur", Desc: "1 filleul actif", Icon: "badge"},
		},
	})
}
