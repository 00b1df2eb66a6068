package domain

// Identificadores de rasgos, en orden de evaluacion.
const (
	TraitEXT  = "EXT"
	TraitCON  = "CON"
	TraitEMO  = "EMO"
	TraitRISK = "RISK"
	TraitDEC  = "DEC"
	TraitMOT  = "MOT"
	TraitCOG  = "COG"
)

// TraitIDs lista los rasgos en orden canonico.
var TraitIDs = []string{TraitEXT, TraitCON, TraitEMO, TraitRISK, TraitDEC, TraitMOT, TraitCOG}

// TraitLabels mapea ids de rasgos a etiquetas legibles.
var TraitLabels = map[string]string{
	TraitEXT:  "Extraversion",
	TraitCON:  "Conscientiousness",
	TraitEMO:  "Emotional Stability",
	TraitRISK: "Risk Tolerance",
	TraitDEC:  "Decision Speed",
	TraitMOT:  "Motivation",
	TraitCOG:  "Cognitive",
}

// TraitScores son los siete puntajes normalizados, cada uno en [0,100].
// Derivados una sola vez; nunca se mutan despues del calculo.
type TraitScores struct {
	EXT  int `json:"EXT"`
	CON  int `json:"CON"`
	EMO  int `json:"EMO"`
	RISK int `json:"RISK"`
	DEC  int `json:"DEC"`
	MOT  int `json:"MOT"`
	COG  int `json:"COG"`
}

// Get devuelve el puntaje de un rasgo por id; ok=false si el id no existe.
func (t TraitScores) Get(trait string) (int, bool) {
	switch trait {
	case TraitEXT:
		return t.EXT, true
	case TraitCON:
		return t.CON, true
	case TraitEMO:
		return t.EMO, true
	case TraitRISK:
		return t.RISK, true
	case TraitDEC:
		return t.DEC, true
	case TraitMOT:
		return t.MOT, true
	case TraitCOG:
		return t.COG, true
	}
	return 0, false
}

// Vector devuelve los puntajes en orden canonico, util para busqueda por similitud.
func (t TraitScores) Vector() []float32 {
	return []float32{
		float32(t.EXT), float32(t.CON), float32(t.EMO),
		float32(t.RISK), float32(t.DEC), float32(t.MOT), float32(t.COG),
	}
}

// Valores de trabajo reconocidos.
const (
	ValueAutonomy      = "autonomy"
	ValueStructure     = "structure"
	ValueRecognition   = "recognition"
	ValueStability     = "stability"
	ValueChallenge     = "challenge"
	ValueSecurity      = "security"
	ValueCollaboration = "collaboration"
	ValueIndependence  = "independence"
)

// WorkValues captura el valor de trabajo primario y secundario del candidato.
type WorkValues struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// WorkStyle describe el estilo de trabajo inferido de la seccion de valores/estilo.
type WorkStyle struct {
	TeamRole           string `json:"teamRole"`           // Leader | Innovator | Executor | Supporter
	ConflictStyle      string `json:"conflictStyle"`      // Competing | Compromising | Collaborating | Avoiding
	CommunicationStyle string `json:"communicationStyle"` // Direct | Analytical | Expressive | Diplomatic
}

// CultureFit compara afinidad con ambientes startup y corporativos.
type CultureFit struct {
	Startup   int `json:"startup"`
	Corporate int `json:"corporate"`
}

// CompositeInsights agrupa metricas secundarias derivadas de rasgos y valores.
// Se recalcula siempre desde sus insumos; no se persiste como estado autoritativo.
type CompositeInsights struct {
	CultureFit      CultureFit `json:"cultureFit"`
	RemoteReadiness int        `json:"remoteReadiness"`
	CareerPath      string     `json:"careerPath"` // Leadership Track | Expert Track
	ManagementFit   []string   `json:"managementFit"`
}

// QualityMetrics resume la calidad de las respuestas de un intento.
type QualityMetrics struct {
	Consistency     int     `json:"consistency"`     // porcentaje 0-100
	AvgResponseTime float64 `json:"avgResponseTime"` // segundos, un decimal
}
