package domain

import "time"

// Culturas declaradas por un rol.
const (
	CultureStartup   = "startup"
	CultureCorporate = "corporate"
	CultureMixed     = "mixed"
	CultureHybrid    = "hybrid"
)

// Etiquetas de recomendacion para un match candidato-rol.
const (
	RatingProceed = "PROCEED"
	RatingProbe   = "PROBE"
	RatingPass    = "PASS"
)

// Colores asociados a cada etiqueta de recomendacion.
const (
	RatingColorGreen  = "green"
	RatingColorBlue   = "blue"
	RatingColorOrange = "orange"
)

// StylePreference lista los roles de equipo y estilos de conflicto aceptados por un rol.
type StylePreference struct {
	TeamRole      []string `json:"teamRole"`
	ConflictStyle []string `json:"conflictStyle"`
}

// RoleProfile es un rol del catalogo fijo. Solo lectura despues de la carga.
// Los pesos por rasgo deben sumar 1 para que el fit quede en escala 0-100.
type RoleProfile struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Weights map[string]float64 `json:"weights"`
	Ideal   map[string]int     `json:"ideal"`
	Culture string             `json:"culture"`
	Values  []string           `json:"values"`
	Style   StylePreference    `json:"style"`
}

// TraitRange delimita el rango ideal de un rasgo para un rol personalizado.
type TraitRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CustomRole es un rol definido por un reclutador. Creado una vez via la capa
// de persistencia; solo lectura para efectos de matching.
type CustomRole struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	Description       string                `json:"description,omitempty"`
	TraitWeights      map[string]float64    `json:"traitWeights"`
	IdealRanges       map[string]TraitRange `json:"idealRanges"`
	CulturePreference string                `json:"culturePreference,omitempty"`
	MinimumCognitive  int                   `json:"minimumCognitive"`
	IsAIGenerated     bool                  `json:"isAiGenerated"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// RoleFitResult es el resultado efimero de evaluar un perfil contra un rol.
// Nunca se almacena como estado autoritativo; solo se persisten los insumos.
type RoleFitResult struct {
	RoleID        string `json:"roleId"`
	Title         string `json:"title"`
	FitPercentage int    `json:"fitPercentage"`
	Rating        string `json:"rating,omitempty"`
	RatingColor   string `json:"ratingColor,omitempty"`
}

// CandidateMatch asocia un candidato evaluado con el fit contra un rol personalizado.
type CandidateMatch struct {
	CandidateID     string `json:"candidateId"`
	RoleID          string `json:"roleId"`
	FitScore        int    `json:"fitScore"`
	BehavioralScore int    `json:"behavioralScore"`
	Rating          string `json:"rating"`
	RatingColor     string `json:"ratingColor"`
}
