package domain

import "time"

// GameRegistration describes a physical (offline) game offered on the platform.
// Field names on the wire follow the existing frontend contract, including
// the "itemsrequied" spelling.
type GameRegistration struct {
	ID                string    `json:"_id"`
	GameTitle         string    `json:"gametitle"`
	Age               string    `json:"age"`
	Gender            string    `json:"gender"`
	Category          string    `json:"category"`
	Subcategory       string    `json:"subcategory"`
	HowToPlay         string    `json:"howtoplay"`
	BenefitsOfPlaying string    `json:"benefitsofplaying"`
	ItemsRequired     string    `json:"itemsrequied"`
	URL               string    `json:"url"`
	Score             string    `json:"score"`
	Level             string    `json:"level"`
	CreatedAt         time.Time `json:"createdAt"`
}
