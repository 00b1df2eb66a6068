package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
)

type mockAssessmentRepo struct {
	created []domain.AssessmentResult
	failOn  error
}

func (m *mockAssessmentRepo) Create(_ context.Context, result domain.AssessmentResult) error {
	if m.failOn != nil {
		return m.failOn
	}
	m.created = append(m.created, result)
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id string) (domain.AssessmentResult, error) {
	for _, r := range m.created {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.AssessmentResult{}, errors.New("not found")
}

func (m *mockAssessmentRepo) List(_ context.Context) ([]domain.AssessmentResult, error) {
	return m.created, nil
}

func (m *mockAssessmentRepo) FindSimilar(_ context.Context, _ pgvector.Vector, _ int, _ string) ([]domain.AssessmentResult, error) {
	return nil, nil
}

// fullQuestionnaire responde el cuestionario entero con un perfil coherente.
func fullQuestionnaire() []domain.Response {
	var responses []domain.Response
	reverse := map[int]bool{10: true, 12: true, 14: true, 16: true, 18: true, 22: true}
	for id := 1; id <= 25; id++ {
		code := 4
		if reverse[id] {
			code = 2
		}
		responses = append(responses, domain.Response{
			QuestionID: id, OptionID: strconv.Itoa(code), ResponseTime: 3500,
		})
	}
	answers := map[int]string{26: "B", 27: "B", 28: "C", 29: "B", 30: "B", 31: "B", 32: "B", 33: "B"}
	for id := 26; id <= 33; id++ {
		responses = append(responses, domain.Response{QuestionID: id, OptionID: answers[id], ResponseTime: 9000})
	}
	for id := 34; id <= 40; id++ {
		responses = append(responses, domain.Response{QuestionID: id, OptionID: "a", ResponseTime: 5000})
	}
	return responses
}

func newTestAssessmentService(repo *mockAssessmentRepo) *AssessmentService {
	return NewAssessmentService(catalog.NewDefault(), repo, zap.NewNop())
}

func TestEvaluateFullQuestionnaire(t *testing.T) {
	repo := &mockAssessmentRepo{}
	svc := newTestAssessmentService(repo)

	result, err := svc.Evaluate(context.Background(), fullQuestionnaire())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID == "" || result.CreatedAt.IsZero() {
		t.Fatalf("expected identity fields on result: %+v", result)
	}
	// Todas las conductuales en 4 (con invertidas coherentes en 2) -> 75 por rasgo.
	want := domain.TraitScores{EXT: 75, CON: 75, EMO: 75, RISK: 75, DEC: 75, MOT: 75, COG: 100}
	if result.Traits != want {
		t.Fatalf("expected traits %+v, got %+v", want, result.Traits)
	}
	if result.WorkValues.Primary != domain.ValueAutonomy {
		t.Fatalf("expected autonomy primary, got %s", result.WorkValues.Primary)
	}
	if result.WorkStyle.TeamRole != "Leader" {
		t.Fatalf("expected Leader team role, got %s", result.WorkStyle.TeamRole)
	}
	if len(result.RoleFits) == 0 {
		t.Fatalf("expected role fits against the catalog")
	}
	for i := 1; i < len(result.RoleFits); i++ {
		if result.RoleFits[i].FitPercentage > result.RoleFits[i-1].FitPercentage {
			t.Fatalf("role fits not sorted descending: %+v", result.RoleFits)
		}
	}
	if len(result.Strengths) == 0 || len(result.Strengths) > 5 {
		t.Fatalf("unexpected strengths: %v", result.Strengths)
	}
	if len(result.RiskAreas) > 4 {
		t.Fatalf("too many risk areas: %v", result.RiskAreas)
	}
	// Pares invertidos respondidos 4/2: consistencia perfecta.
	if result.QualityMetrics.Consistency != 100 {
		t.Fatalf("expected consistency 100, got %d", result.QualityMetrics.Consistency)
	}
	if result.QualityMetrics.AvgResponseTime <= 0 {
		t.Fatalf("expected positive avg response time")
	}

	if len(repo.created) != 1 || repo.created[0].ID != result.ID {
		t.Fatalf("expected result persisted once")
	}
}

func TestEvaluateEmptyResponses(t *testing.T) {
	svc := newTestAssessmentService(&mockAssessmentRepo{})

	result, err := svc.Evaluate(context.Background(), []domain.Response{})
	if err != nil {
		t.Fatalf("empty list should be valid, got %v", err)
	}

	if result.Traits != (domain.TraitScores{}) {
		t.Fatalf("expected baseline traits, got %+v", result.Traits)
	}
	want := domain.WorkValues{Primary: domain.ValueAutonomy, Secondary: domain.ValueAutonomy}
	if result.WorkValues != want {
		t.Fatalf("expected default work values %+v, got %+v", want, result.WorkValues)
	}
	if result.QualityMetrics.AvgResponseTime != 0 {
		t.Fatalf("expected zero avg response time, got %v", result.QualityMetrics.AvgResponseTime)
	}
}

func TestEvaluateNilResponsesRejected(t *testing.T) {
	svc := newTestAssessmentService(&mockAssessmentRepo{})

	if _, err := svc.Evaluate(context.Background(), nil); !errors.Is(err, ErrNoResponses) {
		t.Fatalf("expected ErrNoResponses, got %v", err)
	}
}

func TestEvaluateSurvivesRepositoryFailure(t *testing.T) {
	repo := &mockAssessmentRepo{failOn: errors.New("db down")}
	svc := newTestAssessmentService(repo)

	result, err := svc.Evaluate(context.Background(), fullQuestionnaire())
	if err != nil {
		t.Fatalf("persistence failure must not fail the evaluation: %v", err)
	}
	if result.ID == "" || len(result.RoleFits) == 0 {
		t.Fatalf("expected a complete result despite repo failure: %+v", result)
	}
}

func TestEvaluateWorksWithoutRepository(t *testing.T) {
	svc := NewAssessmentService(catalog.NewDefault(), nil, zap.NewNop())

	if _, err := svc.Evaluate(context.Background(), fullQuestionnaire()); err != nil {
		t.Fatalf("expected evaluation without repository, got %v", err)
	}
}
