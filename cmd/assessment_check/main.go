package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
	"amara-match/internal/service"

	"go.uber.org/zap"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Corre el pipeline completo de scoring contra perfiles sinteticos, sin base
// de datos ni LLM, para inspeccionar a mano los resultados.
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat := catalog.NewDefault()
	svc := service.NewAssessmentService(cat, nil, logger)

	scenarios := []struct {
		name      string
		responses []domain.Response
	}{
		{name: "high performer", responses: syntheticResponses(cat, 5, true)},
		{name: "low engagement", responses: syntheticResponses(cat, 1, false)},
		{name: "middle of the road", responses: syntheticResponses(cat, 3, false)},
	}

	for _, sc := range scenarios {
		fmt.Printf("%s== %s ==%s\n", colorCyan, sc.name, colorReset)

		result, err := svc.Evaluate(context.Background(), sc.responses)
		if err != nil {
			log.Fatal(err)
		}

		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(pretty))

		if len(result.RoleFits) > 0 {
			top := result.RoleFits[0]
			fmt.Printf("%stop match: %s (%d%%)%s\n\n", colorGreen, top.Title, top.FitPercentage, colorReset)
		}
	}
}

// syntheticResponses responde todo el cuestionario: likert con el codigo dado,
// cognitivas con la respuesta correcta (o la primera opcion si allCorrect es
// falso) y valores/estilo con la primera alternativa.
func syntheticResponses(cat *catalog.Catalog, likertCode int, allCorrect bool) []domain.Response {
	var responses []domain.Response
	for _, q := range cat.Questions() {
		optionID := ""
		switch {
		case q.Type == domain.QuestionTypeLikert:
			optionID = strconv.Itoa(likertCode)
		case q.CorrectAnswer != "" && allCorrect:
			optionID = q.CorrectAnswer
		default:
			optionID = q.Options[0].ID
		}
		responses = append(responses, domain.Response{
			QuestionID:   q.ID,
			OptionID:     optionID,
			ResponseTime: 4200,
		})
	}
	return responses
}
