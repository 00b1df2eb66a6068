package service

import (
	"math"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
)

// Insight Deriver: convierte respuestas y rasgos en valores de trabajo, estilo
// de trabajo y metricas compuestas. Todo es derivado; nada se muta despues.
type Deriver struct {
	cat *catalog.Catalog
}

// NewDeriver crea un derivador sobre un catalogo ya cargado.
func NewDeriver(cat *catalog.Catalog) *Deriver {
	return &Deriver{cat: cat}
}

// ExtractWorkValues recorre la seccion de valores en orden de cuestionario y
// toma las dos primeras respuestas con etiqueta categorica. Con una sola
// respuesta, el secundario repite al primario; sin ninguna, el primario cae
// al valor por defecto "autonomy".
func (d *Deriver) ExtractWorkValues(rs ResponseSet) domain.WorkValues {
	var found []string
	for _, q := range d.cat.Questions() {
		if q.Category != domain.CategoryWorkValue {
			continue
		}
		r, ok := rs.Get(q.ID)
		if !ok {
			continue
		}
		if v := d.cat.OptionValue(q.ID, r.OptionID); v != "" {
			found = append(found, v)
		}
		if len(found) == 2 {
			break
		}
	}

	values := domain.WorkValues{Primary: domain.ValueAutonomy}
	if len(found) > 0 {
		values.Primary = found[0]
	}
	values.Secondary = values.Primary
	if len(found) > 1 {
		values.Secondary = found[1]
	}
	return values
}

// ExtractWorkStyle asigna rol de equipo, estilo de conflicto y estilo de
// comunicacion segun la categoria de cada pregunta respondida. Respuestas
// posteriores para la misma categoria pisan a las anteriores; las categorias
// sin respuesta conservan sus valores por defecto.
func (d *Deriver) ExtractWorkStyle(rs ResponseSet) domain.WorkStyle {
	style := domain.WorkStyle{
		TeamRole:           "Executor",
		ConflictStyle:      "Collaborating",
		CommunicationStyle: "Direct",
	}
	for _, q := range d.cat.Questions() {
		r, ok := rs.Get(q.ID)
		if !ok {
			continue
		}
		v := d.cat.OptionValue(q.ID, r.OptionID)
		if v == "" {
			continue
		}
		switch q.Category {
		case domain.CategoryTeamRole:
			style.TeamRole = v
		case domain.CategoryConflictStyle:
			style.ConflictStyle = v
		case domain.CategoryCommunicationStyle:
			style.CommunicationStyle = v
		}
	}
	return style
}

// CalculateCompositeInsights combina rasgos y valor primario con pesos fijos.
// Las formulas no se recortan: con rasgos en [0,100] el maximo alcanzable es
// startup 100, corporate 95 y remote 100, asi que ya quedan dentro del rango.
func (d *Deriver) CalculateCompositeInsights(traits domain.TraitScores, values domain.WorkValues) domain.CompositeInsights {
	startupBonus := 0.0
	if values.Primary == domain.ValueAutonomy || values.Primary == domain.ValueChallenge {
		startupBonus = 20
	}
	startup := int(math.Round(
		float64(traits.RISK)*0.3 +
			float64(traits.DEC)*0.25 +
			float64(traits.MOT)*0.25 +
			startupBonus))

	corporateBonus := 0.0
	if values.Primary == domain.ValueStructure || values.Primary == domain.ValueStability {
		corporateBonus = 20
	}
	corporate := int(math.Round(
		float64(traits.CON)*0.3 +
			float64(traits.EMO)*0.25 +
			float64(100-traits.RISK)*0.2 +
			corporateBonus))

	remoteBonus := 0.0
	if values.Primary == domain.ValueIndependence {
		remoteBonus = 25
	}
	remote := int(math.Round(
		float64(traits.CON)*0.35 +
			float64(traits.EMO)*0.25 +
			float64(traits.DEC)*0.15 +
			remoteBonus))

	careerPath := "Expert Track"
	if traits.EXT > 60 && traits.RISK > 55 {
		careerPath = "Leadership Track"
	}

	var managementFit []string
	if traits.CON > 65 && traits.MOT > 60 {
		managementFit = append(managementFit, "hands_off")
	}
	if traits.EXT > 55 && traits.EMO > 60 {
		managementFit = append(managementFit, "collaborative")
	}
	if values.Primary == domain.ValueStructure {
		managementFit = append(managementFit, "directive")
	}
	if len(managementFit) == 0 {
		managementFit = append(managementFit, "collaborative")
	}

	return domain.CompositeInsights{
		CultureFit:      domain.CultureFit{Startup: startup, Corporate: corporate},
		RemoteReadiness: remote,
		CareerPath:      careerPath,
		ManagementFit:   managementFit,
	}
}
