// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/expedibox/colis-service/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingNumeros is returned when a stamp import carries no tracking numbers.
	ErrMissingNumeros = &ValidationError{Field: "numeros", Message: "at least one tracking number is required"}
	// ErrMissingCategorie is returned when a stamp import carries no weight category.
	ErrMissingCategorie = &ValidationError{Field: "poids_categorie", Message: "weight category is required"}
	// ErrInvalidBounds is returned when a weight bracket has min > max or negative bounds.
	ErrInvalidBounds = &ValidationError{Field: "poids_min", Message: "bounds must satisfy 0 <= poids_min <= poids_max"}
	// ErrMissingNom is returned when a required name field is empty.
	ErrMissingNom = &ValidationError{Field: "nom", Message: "name is required"}
	// ErrMissingClientID is returned when a parcel carries no client.
	ErrMissingClientID = &ValidationError{Field: "client_id", Message: "client is required"}
	// ErrMissingColisID is returned when a stamp bind carries no parcel.
	ErrMissingColisID = &ValidationError{Field: "colis_id", Message: "parcel id is required"}
	// ErrInvalidLine is returned when a product line has no product or a non-positive quantity.
	ErrInvalidLine = &ValidationError{Field: "produits", Message: "each line needs a product id and a positive quantity"}
	// ErrMissingLien is returned when the duplicate-link guard is called without a link.
	ErrMissingLien = &ValidationError{Field: "lien", Message: "link is required"}
)

// ImportStampsRequest is the body of POST /api/timbres/import.
//
// @Description Bulk stamp import: tracking numbers plus the weight bracket
// @Description they were purchased under.
type ImportStampsRequest struct {
	// Numeros are the tracking numbers to import; duplicates of existing
	// rows are skipped silently.
	Numeros []string `json:"numeros" binding:"required" example:"1K001,1K002"`
	// PoidsCategorie is the bracket name.
	PoidsCategorie string `json:"poids_categorie" binding:"required" example:"Moins de 20g"`
	// PoidsMin is the bracket floor in grams.
	PoidsMin float64 `json:"poids_min" example:"0"`
	// PoidsMax is the bracket ceiling in grams.
	PoidsMax float64 `json:"poids_max" example:"20"`
} // @name ImportStampsRequest

// Validate performs custom validation on the request.
func (r *ImportStampsRequest) Validate() error {
	if len(r.Numeros) == 0 {
		return ErrMissingNumeros
	}
	if r.PoidsCategorie == "" {
		return ErrMissingCategorie
	}
	if r.PoidsMin < 0 || r.PoidsMin > r.PoidsMax {
		return ErrInvalidBounds
	}
	return nil
}

// BindStampRequest is the body of PUT /api/timbres/:id/utiliser.
type BindStampRequest struct {
	// ColisID is the parcel the stamp gets bound to.
	ColisID int64 `json:"colis_id" binding:"required" example:"7"`
} // @name BindStampRequest

// Validate performs custom validation on the request.
func (r *BindStampRequest) Validate() error {
	if r.ColisID <= 0 {
		return ErrMissingColisID
	}
	return nil
}

// WeightCategoryRequest is the body of POST/PUT /api/timbre-categories.
type WeightCategoryRequest struct {
	Nom      string  `json:"nom" binding:"required" example:"Moins de 20g"`
	Type     string  `json:"type" example:"national"`
	PoidsMin float64 `json:"poids_min" example:"0"`
	PoidsMax float64 `json:"poids_max" example:"20"`
} // @name WeightCategoryRequest

// Validate performs custom validation on the request.
func (r *WeightCategoryRequest) Validate() error {
	if r.Nom == "" {
		return ErrMissingNom
	}
	category := model.WeightCategory{Nom: r.Nom, PoidsMin: r.PoidsMin, PoidsMax: r.PoidsMax}
	if !category.Valid() {
		return ErrInvalidBounds
	}
	return nil
}

// ProductLineRequest is one product/quantity entry of a parcel write.
type ProductLineRequest struct {
	ProduitID int64  `json:"produit_id" example:"3"`
	Quantite  int    `json:"quantite" example:"2"`
	Lien      string `json:"lien,omitempty"`
} // @name ProductLineRequest

// ParcelRequest is the body of POST /api/colis and PUT /api/colis/:id.
// The Produits set replaces the parcel's lines wholesale on update.
type ParcelRequest struct {
	NumeroSuivi          string               `json:"numero_suivi,omitempty"`
	ClientID             int64                `json:"client_id" example:"1"`
	Statut               string               `json:"statut,omitempty" example:"En préparation"`
	Poids                float64              `json:"poids,omitempty" example:"0.25"`
	Dimensions           string               `json:"dimensions,omitempty"`
	AdresseExpedition    string               `json:"adresse_expedition,omitempty"`
	VilleExpedition      string               `json:"ville_expedition,omitempty"`
	CodePostalExpedition string               `json:"code_postal_expedition,omitempty"`
	PaysExpedition       string               `json:"pays_expedition,omitempty"`
	DateExpedition       string               `json:"date_expedition,omitempty"`
	DateLivraison        string               `json:"date_livraison,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	Reference            string               `json:"reference,omitempty"`
	Produits             []ProductLineRequest `json:"produits,omitempty"`
	// TimbreID binds a pre-selected stamp in the same transaction. The
	// server never auto-allocates; callers query /api/timbres/disponible
	// before submitting.
	TimbreID *int64 `json:"timbre_id,omitempty"`
} // @name ParcelRequest

// Validate performs custom validation on the request.
func (r *ParcelRequest) Validate() error {
	if r.ClientID <= 0 {
		return ErrMissingClientID
	}
	for _, line := range r.Produits {
		if line.ProduitID <= 0 || line.Quantite <= 0 {
			return ErrInvalidLine
		}
	}
	return nil
}

// CheckDuplicateLinkRequest is the body of POST /api/colis/check-duplicate-link.
type CheckDuplicateLinkRequest struct {
	Lien string `json:"lien" binding:"required"`
	// ExcludeColisID removes the parcel being edited from the search.
	ExcludeColisID int64 `json:"excludeColisId,omitempty"`
} // @name CheckDuplicateLinkRequest

// Validate performs custom validation on the request.
func (r *CheckDuplicateLinkRequest) Validate() error {
	if r.Lien == "" {
		return ErrMissingLien
	}
	return nil
}

// ClientRequest is the body of POST/PUT /api/clients.
type ClientRequest struct {
	Nom           string `json:"nom" binding:"required"`
	Prenom        string `json:"prenom,omitempty"`
	Email         string `json:"email,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
	Adresse       string `json:"adresse,omitempty"`
	AdresseLigne2 string `json:"adresse_ligne2,omitempty"`
	Ville         string `json:"ville,omitempty"`
	CodePostal    string `json:"code_postal,omitempty"`
	Pays          string `json:"pays,omitempty"`
	Pseudo        string `json:"pseudo,omitempty"`
	Wallet        string `json:"wallet,omitempty"`
	Lien          string `json:"lien,omitempty"`
} // @name ClientRequest

// Validate performs custom validation on the request.
func (r *ClientRequest) Validate() error {
	if r.Nom == "" {
		return ErrMissingNom
	}
	return nil
}

// ProductRequest is the body of POST/PUT /api/produits.
type ProductRequest struct {
	Nom         string  `json:"nom" binding:"required"`
	Ref         string  `json:"ref,omitempty"`
	Description string  `json:"description,omitempty"`
	Prix        float64 `json:"prix,omitempty"`
	Poids       float64 `json:"poids,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	DimensionID *int64  `json:"dimension_id,omitempty"`
} // @name ProductRequest

// Validate performs custom validation on the request.
func (r *ProductRequest) Validate() error {
	if r.Nom == "" {
		return ErrMissingNom
	}
	return nil
}

// DimensionRequest is the body of POST/PUT /api/dimensions.
type DimensionRequest struct {
	Nom         string  `json:"nom" binding:"required"`
	Longueur    float64 `json:"longueur"`
	Largeur     float64 `json:"largeur"`
	Hauteur     float64 `json:"hauteur"`
	PoidsCarton float64 `json:"poids_carton,omitempty"`
	IsDefault   bool    `json:"is_default,omitempty"`
} // @name DimensionRequest

// Validate performs custom validation on the request.
func (r *DimensionRequest) Validate() error {
	if r.Nom == "" {
		return ErrMissingNom
	}
	if r.Longueur < 0 || r.Largeur < 0 || r.Hauteur < 0 {
		return &ValidationError{Field: "dimensions", Message: "dimensions must be non-negative"}
	}
	return nil
}
