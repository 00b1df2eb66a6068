package catalog

import "amara-match/internal/domain"

// likertOptions devuelve la escala estandar de acuerdo 1-5.
// El peso numerico viaja en el id de la opcion.
func likertOptions() []domain.Option {
	return []domain.Option{
		{ID: "1", Text: "Strongly disagree"},
		{ID: "2", Text: "Disagree"},
		{ID: "3", Text: "Neutral"},
		{ID: "4", Text: "Agree"},
		{ID: "5", Text: "Strongly agree"},
	}
}

func likert(id int, trait, text string, reverse bool) domain.Question {
	return domain.Question{
		ID:      id,
		Type:    domain.QuestionTypeLikert,
		Trait:   trait,
		Text:    text,
		Options: likertOptions(),
		Reverse: reverse,
	}
}

func mcq(id int, text, correct string, options ...domain.Option) domain.Question {
	return domain.Question{
		ID:            id,
		Type:          domain.QuestionTypeMCQ,
		Trait:         domain.TraitCOG,
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
	}
}

func opt(id, text string) domain.Option {
	return domain.Option{ID: id, Text: text}
}

func valued(id, text, value string) domain.Option {
	return domain.Option{ID: id, Text: text, Value: value}
}

// allQuestions arma el cuestionario completo: conductual (1-25),
// cognitiva (26-33) y valores/estilo (34-40).
func allQuestions() []domain.Question {
	qs := behavioralQuestions()
	qs = append(qs, cognitiveQuestions()...)
	qs = append(qs, valuesStyleQuestions()...)
	return qs
}

func behavioralQuestions() []domain.Question {
	return []domain.Question{
		// Extraversion (1-4)
		likert(1, domain.TraitEXT, "I feel energized after spending time with large groups of people.", false),
		likert(2, domain.TraitEXT, "I am usually the one who starts conversations at work or social events.", false),
		likert(3, domain.TraitEXT, "I enjoy being the center of attention when presenting ideas.", false),
		likert(4, domain.TraitEXT, "I find it easy to build rapport with people I have just met.", false),
		// Conscientiousness (5-8)
		likert(5, domain.TraitCON, "I plan my work in detail before starting a task.", false),
		likert(6, domain.TraitCON, "I double-check my work for errors before considering it done.", false),
		likert(7, domain.TraitCON, "I follow through on commitments even when they become inconvenient.", false),
		likert(8, domain.TraitCON, "I keep my workspace and files organized so I can find things quickly.", false),
		// Estabilidad emocional (9-12), 10 y 12 invertidas
		likert(9, domain.TraitEMO, "I stay calm when facing tight deadlines or unexpected problems.", false),
		likert(10, domain.TraitEMO, "I often feel overwhelmed when several things go wrong at once.", true),
		likert(11, domain.TraitEMO, "I recover quickly after receiving critical feedback.", false),
		likert(12, domain.TraitEMO, "Small setbacks can ruin my mood for the rest of the day.", true),
		// Tolerancia al riesgo (13-16), 14 y 16 invertidas
		likert(13, domain.TraitRISK, "I am comfortable making decisions without having all the information.", false),
		likert(14, domain.TraitRISK, "I prefer proven approaches over untested ideas, even if the upside is smaller.", true),
		likert(15, domain.TraitRISK, "I would join an early-stage project with an uncertain future if the opportunity excited me.", false),
		likert(16, domain.TraitRISK, "Uncertainty about outcomes makes me delay decisions.", true),
		// Velocidad de decision (17-20), 18 invertida
		likert(17, domain.TraitDEC, "I make decisions quickly once I understand the options.", false),
		likert(18, domain.TraitDEC, "I need to analyze every angle before I can commit to a choice.", true),
		likert(19, domain.TraitDEC, "In meetings, I am usually among the first to propose a course of action.", false),
		likert(20, domain.TraitDEC, "I trust my judgment under time pressure.", false),
		// Motivacion (21-25), 22 invertida
		likert(21, domain.TraitMOT, "I actively look for opportunities to learn skills outside my current role.", false),
		likert(22, domain.TraitMOT, "I am satisfied staying at my current level if the work is comfortable.", true),
		likert(23, domain.TraitMOT, "I set ambitious goals for myself even when nobody asks me to.", false),
		likert(24, domain.TraitMOT, "I volunteer for challenging projects that stretch my abilities.", false),
		likert(25, domain.TraitMOT, "Career growth is one of the main factors in how I choose a job.", false),
	}
}

func cognitiveQuestions() []domain.Question {
	return []domain.Question{
		mcq(26, "What number comes next in the sequence: 2, 6, 18, 54, ...?",
			"B", opt("A", "108"), opt("B", "162"), opt("C", "216"), opt("D", "148")),
		mcq(27, "A project takes 4 people 12 days. How many days would it take 6 people at the same pace?",
			"B", opt("A", "6"), opt("B", "8"), opt("C", "9"), opt("D", "10")),
		mcq(28, "Book is to Library as Painting is to...?",
			"C", opt("A", "Frame"), opt("B", "Artist"), opt("C", "Gallery"), opt("D", "Canvas")),
		mcq(29, "If all Blickets are Glorps and some Glorps are Fendles, which statement must be true?",
			"B", opt("A", "All Blickets are Fendles"), opt("B", "All Blickets are Glorps"),
			opt("C", "Some Blickets are Fendles"), opt("D", "No Fendles are Blickets")),
		mcq(30, "A product's price drops 20% to $96. What was the original price?",
			"B", opt("A", "$115"), opt("B", "$120"), opt("C", "$116"), opt("D", "$125")),
		mcq(31, "Which word does not belong: Revenue, Profit, Margin, Employee?",
			"B", opt("A", "Margin"), opt("B", "Employee"), opt("C", "Profit"), opt("D", "Revenue")),
		mcq(32, "What number comes next: 1, 1, 2, 3, 5, 8, ...?",
			"B", opt("A", "11"), opt("B", "13"), opt("C", "12"), opt("D", "15")),
		mcq(33, "A meeting starts at 9:45 and lasts 150 minutes. When does it end?",
			"B", opt("A", "11:55"), opt("B", "12:15"), opt("C", "12:25"), opt("D", "12:05")),
	}
}

func valuesStyleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:       34,
			Type:     domain.QuestionTypeForcedChoice,
			Category: domain.CategoryWorkValue,
			Text:     "Which matters most to you in a job?",
			Options: []domain.Option{
				valued("a", "Freedom to decide how I do my work", domain.ValueAutonomy),
				valued("b", "Clear processes and expectations", domain.ValueStructure),
				valued("c", "Being recognized for my contributions", domain.ValueRecognition),
				valued("d", "A stable, predictable environment", domain.ValueStability),
			},
		},
		{
			ID:       35,
			Type:     domain.QuestionTypeForcedChoice,
			Category: domain.CategoryWorkValue,
			Text:     "What would make you choose one offer over another?",
			Options: []domain.Option{
				valued("a", "Problems nobody has solved before", domain.ValueChallenge),
				valued("b", "Long-term job security", domain.ValueSecurity),
				valued("c", "A close-knit, collaborative team", domain.ValueCollaboration),
				valued("d", "Working on my own terms and schedule", domain.ValueIndependence),
			},
		},
		{
			ID:       36,
			Type:     domain.QuestionTypeForcedChoice,
			Category: domain.CategoryWorkValue,
			Text:     "When you imagine your best work week, what defines it?",
			Options: []domain.Option{
				valued("a", "I pushed through a hard problem", domain.ValueChallenge),
				valued("b", "Everything ran according to plan", domain.ValueStructure),
				valued("c", "My work was visible to leadership", domain.ValueRecognition),
				valued("d", "I managed myself without oversight", domain.ValueAutonomy),
			},
		},
		{
			ID:       37,
			Type:     domain.QuestionTypeForcedChoice,
			Category: domain.CategoryWorkValue,
			Text:     "Which trade-off would you accept?",
			Options: []domain.Option{
				valued("a", "Lower pay for more independence", domain.ValueIndependence),
				valued("b", "Slower growth for more stability", domain.ValueStability),
				valued("c", "Longer hours for a stronger team", domain.ValueCollaboration),
				valued("d", "More pressure for more security", domain.ValueSecurity),
			},
		},
		{
			ID:       38,
			Type:     domain.QuestionTypeScenario,
			Category: domain.CategoryTeamRole,
			Text:     "Your team kicks off a new project with no assigned owner. What do you do first?",
			Options: []domain.Option{
				valued("a", "Step up, define the plan and assign workstreams", "Leader"),
				valued("b", "Prototype an unconventional approach to the problem", "Innovator"),
				valued("c", "Pick up the most critical task and start executing", "Executor"),
				valued("d", "Check what teammates need and help unblock them", "Supporter"),
			},
		},
		{
			ID:       39,
			Type:     domain.QuestionTypeScenario,
			Category: domain.CategoryConflictStyle,
			Text:     "A colleague strongly disagrees with your approach in front of the team. You...",
			Options: []domain.Option{
				valued("a", "Defend your position with data until one side wins", "Competing"),
				valued("b", "Propose meeting in the middle to keep things moving", "Compromising"),
				valued("c", "Dig into their concerns to find a solution that works for both", "Collaborating"),
				valued("d", "Park the discussion and revisit it privately later", "Avoiding"),
			},
		},
		{
			ID:       40,
			Type:     domain.QuestionTypeScenario,
			Category: domain.CategoryCommunicationStyle,
			Text:     "When delivering difficult feedback, your natural style is to...",
			Options: []domain.Option{
				valued("a", "Say it plainly and get straight to the point", "Direct"),
				valued("b", "Walk through the evidence step by step", "Analytical"),
				valued("c", "Lead with energy and focus on the upside", "Expressive"),
				valued("d", "Soften the message and protect the relationship", "Diplomatic"),
			},
		},
	}
}
