package model

import "time"

// Parcel statuses. Status changes are user-driven; there is no automatic
// transition to delivered, date_livraison is a free-form field.
const (
	StatusEnPreparation = "En préparation"
	StatusOutOfStock    = "Out of stock"
	StatusIncomplet     = "Incomplet"
	StatusExpedie       = "Expédié"
	StatusLivre         = "Livré"
)

// ProductLine is one product/quantity entry of a parcel. The multiset of
// lines is the source of truth for stock reservation: there is no separate
// reserved counter, stock itself is decremented.
//
// @Description Product and quantity carried by a parcel
type ProductLine struct {
	ID        int64 `json:"id,omitempty"`
	ColisID   int64 `json:"colis_id,omitempty"`
	ProduitID int64 `json:"produit_id" example:"3"`
	Quantite  int   `json:"quantite" example:"2"`
	// Lien is a free-form order/listing link used by the duplicate guard.
	Lien string `json:"lien,omitempty"`
	// Denormalized product fields, populated on parcel detail reads.
	Nom         string  `json:"nom,omitempty"`
	Description string  `json:"description,omitempty"`
	Prix        float64 `json:"prix,omitempty"`
}

// Parcel is a shipment (colis), the unit of fulfillment.
//
// @Description Shipment with its destination, status and product lines
type Parcel struct {
	ID int64 `json:"id" example:"7"`
	// NumeroSuivi is unique when set; generated as COL<unix-ms> when the
	// caller provides none.
	NumeroSuivi          string    `json:"numero_suivi"`
	ClientID             int64     `json:"client_id"`
	Statut               string    `json:"statut" example:"En préparation"`
	Poids                float64   `json:"poids" example:"0.25"`
	Dimensions           string    `json:"dimensions,omitempty"`
	AdresseExpedition    string    `json:"adresse_expedition,omitempty"`
	VilleExpedition      string    `json:"ville_expedition,omitempty"`
	CodePostalExpedition string    `json:"code_postal_expedition,omitempty"`
	PaysExpedition       string    `json:"pays_expedition,omitempty"`
	DateCreation         time.Time `json:"date_creation"`
	// Shipping and delivery dates are free-form user input, not
	// state-machine driven; they stay strings end to end.
	DateExpedition string `json:"date_expedition,omitempty"`
	DateLivraison  string `json:"date_livraison,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Reference      string `json:"reference,omitempty"`

	Produits []ProductLine `json:"produits,omitempty"`

	// Client fields joined on list/detail reads.
	ClientNom        string `json:"client_nom,omitempty"`
	ClientPrenom     string `json:"client_prenom,omitempty"`
	ClientEmail      string `json:"client_email,omitempty"`
	ClientAdresse    string `json:"client_adresse,omitempty"`
	ClientVille      string `json:"client_ville,omitempty"`
	ClientCodePostal string `json:"client_code_postal,omitempty"`
	ClientPays       string `json:"client_pays,omitempty"`
}

// NegativeStock is the warning datum reported when a reservation drives a
// product's stock below zero. It is advisory only and never blocks a write.
//
// @Description Product whose stock went negative after a reservation
type NegativeStock struct {
	// Nom is the product name.
	Nom string `json:"nom" example:"Carte postale"`
	// Stock is the post-reservation value, negative.
	Stock int `json:"stock" example:"-2"`
}
