package catalog

import "amara-match/internal/domain"

// Catalog agrupa el banco de preguntas y los roles del catalogo fijo.
// Se construye una vez al inicio del proceso y es solo lectura despues:
// los servicios lo reciben inyectado en lugar de consultar estado global.
type Catalog struct {
	questions []domain.Question
	byID      map[int]domain.Question
	roles     []domain.RoleProfile
}

// New construye un catalogo con el cuestionario y los roles provistos.
func New(questions []domain.Question, roles []domain.RoleProfile) *Catalog {
	byID := make(map[int]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Catalog{questions: questions, byID: byID, roles: roles}
}

// NewDefault construye el catalogo estandar de la evaluacion.
func NewDefault() *Catalog {
	return New(allQuestions(), roleProfiles())
}

// Questions devuelve el cuestionario completo en orden.
func (c *Catalog) Questions() []domain.Question {
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Question busca una pregunta por id.
func (c *Catalog) Question(id int) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// OptionValue devuelve la etiqueta categorica de una opcion, o "" si la
// pregunta u opcion no existen en el catalogo.
func (c *Catalog) OptionValue(questionID int, optionID string) string {
	q, ok := c.byID[questionID]
	if !ok {
		return ""
	}
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.Value
		}
	}
	return ""
}

// Roles devuelve los perfiles de rol del catalogo fijo.
func (c *Catalog) Roles() []domain.RoleProfile {
	out := make([]domain.RoleProfile, len(c.roles))
	copy(out, c.roles)
	return out
}
