package domain

// Tipos de pregunta soportados por el cuestionario.
const (
	QuestionTypeLikert       = "likert"
	QuestionTypeMCQ          = "mcq"
	QuestionTypeForcedChoice = "forced_choice"
	QuestionTypeScenario     = "scenario"
)

// Categorias de preguntas de valores/estilo de trabajo.
const (
	CategoryWorkValue          = "workValue"
	CategoryTeamRole           = "teamRole"
	CategoryConflictStyle      = "conflictStyle"
	CategoryCommunicationStyle = "communicationStyle"
)

// Question es una pregunta del catalogo. Inmutable despues de la carga.
// El id codifica la seccion: 1-25 conductual, 26-33 cognitiva, 34+ valores/estilo.
type Question struct {
	ID            int      `json:"id"`
	Type          string   `json:"type"`
	Trait         string   `json:"trait,omitempty"`
	Text          string   `json:"text"`
	Options       []Option `json:"options"`
	Reverse       bool     `json:"reverse,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// Option es una alternativa de respuesta. Value lleva la etiqueta categorica
// para preguntas de valores/estilo; en likert el peso numerico va en el id ("1".."5").
type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
}

// Response es la respuesta cruda de un candidato a una pregunta.
type Response struct {
	QuestionID   int    `json:"questionId"`
	OptionID     string `json:"optionId"`
	ResponseTime int64  `json:"responseTime"` // milisegundos
}
