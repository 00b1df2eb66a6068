package service

import (
	"strconv"
	"testing"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
)

func newTestScorer() *Scorer {
	return NewScorer(catalog.NewDefault())
}

// likertAll responde las 25 preguntas conductuales con el mismo codigo.
func likertAll(code int) []domain.Response {
	var responses []domain.Response
	for id := 1; id <= 25; id++ {
		responses = append(responses, domain.Response{
			QuestionID: id, OptionID: strconv.Itoa(code), ResponseTime: 3000,
		})
	}
	return responses
}

func TestResponseSetLastWriteWins(t *testing.T) {
	rs := NewResponseSet([]domain.Response{
		{QuestionID: 1, OptionID: "2"},
		{QuestionID: 2, OptionID: "3"},
		{QuestionID: 1, OptionID: "5"},
	})

	if rs.Len() != 2 {
		t.Fatalf("expected 2 distinct questions, got %d", rs.Len())
	}
	r, ok := rs.Get(1)
	if !ok || r.OptionID != "5" {
		t.Fatalf("expected later response to win for question 1, got %+v", r)
	}
	ordered := rs.InOrder()
	if ordered[0].QuestionID != 1 || ordered[1].QuestionID != 2 {
		t.Fatalf("expected questionnaire order, got %+v", ordered)
	}
}

func TestScoreForReverseAppliedExactlyOnce(t *testing.T) {
	s := newTestScorer()

	reverse := map[int]bool{10: true, 12: true, 14: true, 16: true, 18: true, 22: true}
	for qid := 1; qid <= 25; qid++ {
		for code := 1; code <= 5; code++ {
			got := s.scoreFor(qid, strconv.Itoa(code))
			want := code
			if reverse[qid] {
				want = 6 - code
			}
			if got != want {
				t.Fatalf("question %d code %d: expected %d, got %d", qid, code, want, got)
			}
		}
	}

	// Opciones desconocidas no aportan, ni siquiera en preguntas invertidas.
	if got := s.scoreFor(10, "zzz"); got != 0 {
		t.Fatalf("expected 0 for unknown option on reverse question, got %d", got)
	}
	if got := s.scoreFor(3, ""); got != 0 {
		t.Fatalf("expected 0 for empty option, got %d", got)
	}
}

func TestCalculateTraitScoresExtremes(t *testing.T) {
	s := newTestScorer()

	// EXT y CON no tienen preguntas invertidas: todo "5" debe dar 100.
	top := s.CalculateTraitScores(NewResponseSet(likertAll(5)))
	if top.EXT != 100 || top.CON != 100 {
		t.Fatalf("expected EXT/CON at 100 for all-max answers, got %d/%d", top.EXT, top.CON)
	}
	// EMO tiene dos invertidas (10 y 12): 5+1+5+1 = 12 sobre un rango 4..20 -> 50.
	if top.EMO != 50 {
		t.Fatalf("expected EMO 50 for all-max answers, got %d", top.EMO)
	}

	bottom := s.CalculateTraitScores(NewResponseSet(likertAll(1)))
	if bottom.EXT != 0 || bottom.CON != 0 {
		t.Fatalf("expected EXT/CON at 0 for all-min answers, got %d/%d", bottom.EXT, bottom.CON)
	}
	if bottom.EMO != 50 {
		t.Fatalf("expected EMO 50 for all-min answers, got %d", bottom.EMO)
	}
}

func TestCalculateTraitScoresReverseContribution(t *testing.T) {
	s := newTestScorer()

	// Linea base: las cuatro preguntas de EMO en neutral (3) -> 50.
	base := []domain.Response{
		{QuestionID: 9, OptionID: "3"},
		{QuestionID: 10, OptionID: "3"},
		{QuestionID: 11, OptionID: "3"},
		{QuestionID: 12, OptionID: "3"},
	}
	if got := s.CalculateTraitScores(NewResponseSet(base)).EMO; got != 50 {
		t.Fatalf("expected baseline EMO 50, got %d", got)
	}

	// q10 es invertida: responder "1" aporta 5, subiendo el crudo a 14 -> 63.
	flipped := append([]domain.Response{}, base...)
	flipped[1].OptionID = "1"
	if got := s.CalculateTraitScores(NewResponseSet(flipped)).EMO; got != 63 {
		t.Fatalf("expected EMO 63 with reversed low answer, got %d", got)
	}
}

func TestCalculateTraitScoresIdempotent(t *testing.T) {
	s := newTestScorer()
	rs := NewResponseSet(likertAll(4))

	first := s.CalculateTraitScores(rs)
	second := s.CalculateTraitScores(rs)
	if first != second {
		t.Fatalf("expected identical scores on repeat call: %+v vs %+v", first, second)
	}
}

func TestCalculateTraitScoresMonotonicity(t *testing.T) {
	s := newTestScorer()

	// Subir la respuesta de una pregunta no invertida de EXT nunca baja el puntaje.
	prev := -1
	for code := 1; code <= 5; code++ {
		responses := likertAll(3)
		responses[0].OptionID = strconv.Itoa(code) // pregunta 1, EXT
		got := s.CalculateTraitScores(NewResponseSet(responses)).EXT
		if got < prev {
			t.Fatalf("EXT decreased from %d to %d when raising answer to %d", prev, got, code)
		}
		prev = got
	}
}

func TestCalculateTraitScoresPartialCompletion(t *testing.T) {
	s := newTestScorer()

	// Solo 2 de las 4 preguntas de EXT: la normalizacion sigue dividiendo por
	// el rango completo, asi que el puntaje queda deprimido a proposito.
	responses := []domain.Response{
		{QuestionID: 1, OptionID: "5"},
		{QuestionID: 2, OptionID: "5"},
	}
	got := s.CalculateTraitScores(NewResponseSet(responses))
	if got.EXT != 38 {
		t.Fatalf("expected partial EXT 38, got %d", got.EXT)
	}

	// Sin respuestas, todos los rasgos quedan en el piso del rango.
	empty := s.CalculateTraitScores(NewResponseSet(nil))
	if empty != (domain.TraitScores{}) {
		t.Fatalf("expected all-zero scores for empty responses, got %+v", empty)
	}
}

func TestCalculateTraitScoresBounds(t *testing.T) {
	s := newTestScorer()

	cases := [][]domain.Response{
		nil,
		likertAll(1),
		likertAll(3),
		likertAll(5),
		{{QuestionID: 13, OptionID: "5"}, {QuestionID: 26, OptionID: "B"}},
		{{QuestionID: 999, OptionID: "5"}},
	}
	for i, responses := range cases {
		scores := s.CalculateTraitScores(NewResponseSet(responses))
		for _, trait := range domain.TraitIDs {
			v, _ := scores.Get(trait)
			if v < 0 || v > 100 {
				t.Fatalf("case %d: trait %s out of bounds: %d", i, trait, v)
			}
		}
	}
}

func TestCognitiveScore(t *testing.T) {
	s := newTestScorer()
	answers := map[int]string{
		26: "B", 27: "B", 28: "C", 29: "B",
		30: "B", 31: "B", 32: "B", 33: "B",
	}

	var all []domain.Response
	for qid, ans := range answers {
		all = append(all, domain.Response{QuestionID: qid, OptionID: ans})
	}
	if got := s.CalculateTraitScores(NewResponseSet(all)).COG; got != 100 {
		t.Fatalf("expected COG 100 for all-correct, got %d", got)
	}

	half := []domain.Response{
		{QuestionID: 26, OptionID: "B"},
		{QuestionID: 27, OptionID: "B"},
		{QuestionID: 28, OptionID: "C"},
		{QuestionID: 29, OptionID: "B"},
		{QuestionID: 30, OptionID: "A"},
		{QuestionID: 31, OptionID: "A"},
		{QuestionID: 32, OptionID: "A"},
		{QuestionID: 33, OptionID: "A"},
	}
	if got := s.CalculateTraitScores(NewResponseSet(half)).COG; got != 50 {
		t.Fatalf("expected COG 50 for half-correct, got %d", got)
	}

	// Respuestas ausentes o con opcion desconocida no suman.
	if got := s.CalculateTraitScores(NewResponseSet(nil)).COG; got != 0 {
		t.Fatalf("expected COG 0 for no answers, got %d", got)
	}
}

func TestCalculateConsistency(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name      string
		responses []domain.Response
		want      int
	}{
		{
			name: "all pairs consistent",
			responses: []domain.Response{
				{QuestionID: 9, OptionID: "4"}, {QuestionID: 10, OptionID: "2"},
				{QuestionID: 13, OptionID: "5"}, {QuestionID: 14, OptionID: "1"},
				{QuestionID: 17, OptionID: "3"}, {QuestionID: 18, OptionID: "3"},
			},
			want: 100,
		},
		{
			name: "one of three consistent",
			responses: []domain.Response{
				{QuestionID: 9, OptionID: "4"}, {QuestionID: 10, OptionID: "2"},
				{QuestionID: 13, OptionID: "5"}, {QuestionID: 14, OptionID: "5"},
				{QuestionID: 17, OptionID: "1"}, {QuestionID: 18, OptionID: "1"},
			},
			want: 33,
		},
		{
			name: "missing halves never count",
			responses: []domain.Response{
				{QuestionID: 9, OptionID: "4"},
				{QuestionID: 13, OptionID: "3"},
			},
			want: 0,
		},
		{name: "empty responses", responses: nil, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.CalculateConsistency(NewResponseSet(tc.responses)); got != tc.want {
				t.Fatalf("expected consistency %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCalculateAvgResponseTime(t *testing.T) {
	s := newTestScorer()

	if got := s.CalculateAvgResponseTime(NewResponseSet(nil)); got != 0 {
		t.Fatalf("expected 0 for empty responses, got %v", got)
	}

	rs := NewResponseSet([]domain.Response{
		{QuestionID: 1, OptionID: "3", ResponseTime: 1500},
		{QuestionID: 2, OptionID: "3", ResponseTime: 2500},
	})
	if got := s.CalculateAvgResponseTime(rs); got != 2.0 {
		t.Fatalf("expected 2.0s average, got %v", got)
	}

	rounded := NewResponseSet([]domain.Response{
		{QuestionID: 1, OptionID: "3", ResponseTime: 1333},
		{QuestionID: 2, OptionID: "3", ResponseTime: 1333},
	})
	if got := s.CalculateAvgResponseTime(rounded); got != 1.3 {
		t.Fatalf("expected 1.3s average, got %v", got)
	}
}
