package service

import (
	"math"
	"sort"
	"strconv"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
)

// ResponseSet colapsa una lista cruda de respuestas en un conjunto por pregunta.
// Si una pregunta fue respondida mas de una vez, gana la ultima respuesta de la
// lista; el recorrido posterior es siempre en orden de cuestionario (id ascendente).
type ResponseSet struct {
	byID map[int]domain.Response
	ids  []int
}

// NewResponseSet construye el conjunto aplicando la regla "la ultima gana".
func NewResponseSet(responses []domain.Response) ResponseSet {
	byID := make(map[int]domain.Response, len(responses))
	for _, r := range responses {
		byID[r.QuestionID] = r
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ResponseSet{byID: byID, ids: ids}
}

// Get devuelve la respuesta registrada para una pregunta.
func (s ResponseSet) Get(questionID int) (domain.Response, bool) {
	r, ok := s.byID[questionID]
	return r, ok
}

// InOrder devuelve las respuestas en orden de cuestionario.
func (s ResponseSet) InOrder() []domain.Response {
	out := make([]domain.Response, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.byID[id])
	}
	return out
}

// Len devuelve cuantas preguntas distintas fueron respondidas.
func (s ResponseSet) Len() int {
	return len(s.ids)
}

// Pares invertidos usados para medir consistencia: en cada par, la segunda
// pregunta es el enunciado negativo de la primera.
var consistencyPairs = [][2]int{{9, 10}, {13, 14}, {17, 18}}

// Scorer convierte respuestas crudas en puntajes de rasgos normalizados (0-100)
// y metricas de calidad. Es una funcion pura de sus insumos: no muta el catalogo
// ni guarda estado entre llamadas, por lo que es seguro compartirlo entre requests.
type Scorer struct {
	traitQuestions map[string][]int
	reverse        map[int]bool
	answerKey      map[int]string
}

// NewScorer indexa el catalogo una sola vez: conjuntos de preguntas por rasgo,
// preguntas invertidas y clave de respuestas de la seccion cognitiva.
func NewScorer(cat *catalog.Catalog) *Scorer {
	s := &Scorer{
		traitQuestions: make(map[string][]int),
		reverse:        make(map[int]bool),
		answerKey:      make(map[int]string),
	}
	for _, q := range cat.Questions() {
		switch {
		case q.Trait == domain.TraitCOG:
			if q.CorrectAnswer != "" {
				s.answerKey[q.ID] = q.CorrectAnswer
			}
		case q.Trait != "":
			s.traitQuestions[q.Trait] = append(s.traitQuestions[q.Trait], q.ID)
			if q.Reverse {
				s.reverse[q.ID] = true
			}
		}
	}
	return s
}

// optionCode saca el peso numerico del id de opcion (escala 1-5). Para ids
// desconocidos o no numericos devuelve 0: la respuesta no aporta al puntaje.
func optionCode(optionID string) int {
	code, err := strconv.Atoi(optionID)
	if err != nil {
		return 0
	}
	return code
}

// scoreFor devuelve el aporte de una respuesta, con inversion aplicada
// exactamente una vez para preguntas del conjunto invertido.
func (s *Scorer) scoreFor(questionID int, optionID string) int {
	code := optionCode(optionID)
	if code == 0 {
		return 0
	}
	if s.reverse[questionID] {
		return 6 - code
	}
	return code
}

// CalculateTraitScores calcula los siete rasgos a partir del conjunto de
// respuestas. Las preguntas sin responder aportan cero a la suma cruda, y la
// normalizacion siempre divide por el rango teorico completo del rasgo: un
// cuestionario parcial rinde puntajes bajos a proposito.
func (s *Scorer) CalculateTraitScores(rs ResponseSet) domain.TraitScores {
	var t domain.TraitScores
	t.EXT = s.behavioralScore(rs, domain.TraitEXT)
	t.CON = s.behavioralScore(rs, domain.TraitCON)
	t.EMO = s.behavioralScore(rs, domain.TraitEMO)
	t.RISK = s.behavioralScore(rs, domain.TraitRISK)
	t.DEC = s.behavioralScore(rs, domain.TraitDEC)
	t.MOT = s.behavioralScore(rs, domain.TraitMOT)
	t.COG = s.cognitiveScore(rs)
	return t
}

func (s *Scorer) behavioralScore(rs ResponseSet, trait string) int {
	questions := s.traitQuestions[trait]
	if len(questions) == 0 {
		return 0
	}
	raw := 0
	for _, qid := range questions {
		if r, ok := rs.Get(qid); ok {
			raw += s.scoreFor(qid, r.OptionID)
		}
	}
	return normalize(raw, len(questions))
}

// normalize lleva una suma cruda al rango 0-100 usando el minimo y maximo
// teoricos (count*1 .. count*5). El resultado se acota a [0,100] para sostener
// la invariante del dominio cuando faltan respuestas.
func normalize(raw, questionCount int) int {
	min := questionCount * 1
	max := questionCount * 5
	if max == min {
		return 0
	}
	v := int(math.Round(float64(raw-min) / float64(max-min) * 100))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (s *Scorer) cognitiveScore(rs ResponseSet) int {
	total := len(s.answerKey)
	if total == 0 {
		return 0
	}
	correct := 0
	for qid, answer := range s.answerKey {
		if r, ok := rs.Get(qid); ok && r.OptionID == answer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// CalculateConsistency mide que fraccion de los pares invertidos fue respondida
// de forma coherente: para un par invertido la suma de codigos crudos deberia
// rondar 6 (se acepta entre 4 y 8).
func (s *Scorer) CalculateConsistency(rs ResponseSet) int {
	consistent := 0
	for _, pair := range consistencyPairs {
		r1, ok1 := rs.Get(pair[0])
		r2, ok2 := rs.Get(pair[1])
		if !ok1 || !ok2 {
			continue
		}
		sum := optionCode(r1.OptionID) + optionCode(r2.OptionID)
		if sum >= 4 && sum <= 8 {
			consistent++
		}
	}
	return int(math.Round(float64(consistent) / float64(len(consistencyPairs)) * 100))
}

// CalculateAvgResponseTime devuelve el tiempo promedio de respuesta en
// segundos, con un decimal. Sin respuestas devuelve 0.
func (s *Scorer) CalculateAvgResponseTime(rs ResponseSet) float64 {
	if rs.Len() == 0 {
		return 0
	}
	var total int64
	for _, r := range rs.InOrder() {
		total += r.ResponseTime
	}
	avgSeconds := float64(total) / float64(rs.Len()) / 1000
	return math.Round(avgSeconds*10) / 10
}
