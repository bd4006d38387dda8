package model

import "time"

// Product is a stock-tracked catalog item. Stock is a plain signed counter:
// negative values are valid and meaningful (backorder/shortfall signal),
// never a constraint violation.
//
// @Description Catalog product with a signed stock counter
type Product struct {
	ID          int64   `json:"id" example:"3"`
	Nom         string  `json:"nom" example:"Carte postale"`
	Ref         string  `json:"ref,omitempty"`
	Description string  `json:"description,omitempty"`
	Prix        float64 `json:"prix" example:"4.5"`
	// Poids is the unit weight in kilograms.
	Poids float64 `json:"poids" example:"0.015"`
	// Stock may go negative; a shortfall is reported, not rejected.
	Stock        int       `json:"stock" example:"12"`
	DimensionID  *int64    `json:"dimension_id,omitempty"`
	DateCreation time.Time `json:"date_creation"`
}

// Client is a shipping recipient.
type Client struct {
	ID            int64     `json:"id"`
	Nom           string    `json:"nom"`
	Prenom        string    `json:"prenom,omitempty"`
	Email         string    `json:"email,omitempty"`
	Telephone     string    `json:"telephone,omitempty"`
	Adresse       string    `json:"adresse,omitempty"`
	AdresseLigne2 string    `json:"adresse_ligne2,omitempty"`
	Ville         string    `json:"ville,omitempty"`
	CodePostal    string    `json:"code_postal,omitempty"`
	Pays          string    `json:"pays,omitempty"`
	Pseudo        string    `json:"pseudo,omitempty"`
	Wallet        string    `json:"wallet,omitempty"`
	Lien          string    `json:"lien,omitempty"`
	DateCreation  time.Time `json:"date_creation"`
}

// CartonDimension is a named carton size with its empty weight.
type CartonDimension struct {
	ID       int64   `json:"id"`
	Nom      string  `json:"nom" example:"Petit"`
	Longueur float64 `json:"longueur" example:"20"`
	Largeur  float64 `json:"largeur" example:"15"`
	Hauteur  float64 `json:"hauteur" example:"10"`
	// PoidsCarton is the empty carton weight in kilograms.
	PoidsCarton  float64   `json:"poids_carton"`
	IsDefault    bool      `json:"is_default"`
	DateCreation time.Time `json:"date_creation"`
}

// Stats are the dashboard counters.
type Stats struct {
	Clients            int `json:"clients"`
	Produits           int `json:"produits"`
	Colis              int `json:"colis"`
	ColisEnPreparation int `json:"colisEnPreparation"`
	ColisExpedies      int `json:"colisExpedies"`
	ColisLivres        int `json:"colisLivres"`
}
