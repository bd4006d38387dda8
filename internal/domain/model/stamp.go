// Package model defines the core domain entities for the colis service.
package model

import "time"

// Weight category types.
const (
	CategoryTypeNational      = "national"
	CategoryTypeInternational = "international"
	CategoryTypeOther         = "autre"
)

// WeightCategory is a user-defined weight bracket used to group stamps.
//
// @Description Named weight bracket (grams) used to bucket pre-purchased stamps
type WeightCategory struct {
	ID int64 `json:"id" example:"1"`
	// Nom is the display name of the bracket, e.g. "Moins de 20g".
	Nom string `json:"nom" example:"Moins de 20g"`
	// Type is national, international or autre.
	Type string `json:"type" example:"national"`
	// PoidsMin is the inclusive lower bound in grams.
	PoidsMin float64 `json:"poids_min" example:"0"`
	// PoidsMax is the inclusive upper bound in grams.
	PoidsMax     float64   `json:"poids_max" example:"20"`
	DateCreation time.Time `json:"date_creation"`
}

// Valid reports whether the bracket bounds are coherent.
func (c WeightCategory) Valid() bool {
	return c.Nom != "" && c.PoidsMin >= 0 && c.PoidsMin <= c.PoidsMax
}

// Contains reports whether the given weight in grams falls inside the bracket.
func (c WeightCategory) Contains(grams float64) bool {
	return grams >= c.PoidsMin && grams <= c.PoidsMax
}

// Stamp is a pre-purchased postal tracking number bucketed by weight bracket.
// A stamp is consumed once per shipment; Utilise tracks consumption and
// ColisID the owning parcel when one exists.
//
// @Description Pre-purchased tracking number with its weight bracket and usage state
type Stamp struct {
	ID int64 `json:"id" example:"12"`
	// NumeroSuivi is the unique tracking number.
	NumeroSuivi string `json:"numero_suivi" example:"1K00123456789"`
	// PoidsCategorie is the bracket name the stamp was imported under.
	// The registry entry with that name may have been renamed or deleted
	// since; resolution falls back to the (PoidsMin, PoidsMax) pair.
	PoidsCategorie string  `json:"poids_categorie" example:"Moins de 20g"`
	PoidsMin       float64 `json:"poids_min" example:"0"`
	PoidsMax       float64 `json:"poids_max" example:"20"`
	Utilise        bool    `json:"utilise"`
	// ColisID is the owning parcel, when the stamp is bound to one.
	// A used stamp without a parcel is a valid state (manual toggle).
	ColisID      *int64    `json:"colis_id,omitempty"`
	DateCreation time.Time `json:"date_creation"`
}

// CategoryRef identifies a stamp's weight category either by registry name
// or, for orphaned/renamed categories, by its weight-range pair. The two
// matching strategies are deliberately explicit: historical stamps may
// carry a category name no longer present in the registry.
type CategoryRef struct {
	Nom      string
	PoidsMin float64
	PoidsMax float64
}

// Ref returns the category reference carried by the stamp.
func (s Stamp) Ref() CategoryRef {
	return CategoryRef{Nom: s.PoidsCategorie, PoidsMin: s.PoidsMin, PoidsMax: s.PoidsMax}
}

// Resolve finds the registry category for the reference: first by exact
// name, then by (min, max) range equality. Returns nil when the category
// is orphaned (present only in stamp rows).
func (r CategoryRef) Resolve(registry []WeightCategory) *WeightCategory {
	for i := range registry {
		if registry[i].Nom == r.Nom {
			return &registry[i]
		}
	}
	for i := range registry {
		if registry[i].PoidsMin == r.PoidsMin && registry[i].PoidsMax == r.PoidsMax {
			return &registry[i]
		}
	}
	return nil
}

// StampGroup is a category bucket in the grouped stamp listing, split into
// available and used stamps. Orphan groups carry the stamp-side category
// data and no registry ID.
type StampGroup struct {
	Nom         string  `json:"nom"`
	Type        string  `json:"type"`
	PoidsMin    float64 `json:"poids_min"`
	PoidsMax    float64 `json:"poids_max"`
	Orphan      bool    `json:"orphan"`
	Disponibles []Stamp `json:"disponibles"`
	Utilises    []Stamp `json:"utilises"`
}
