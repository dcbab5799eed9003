package database

import "career_path_backend/internal/model"

// defaultTests is the starter catalog inserted on first run.
func defaultTests() []model.Test {
	return []model.Test{
		{
			ID:             "career_orientation_basic",
			Title:          "Basic Career Orientation",
			Description:    "Identify your core inclinations and interests across different fields of work",
			Icon:           "🎯",
			Duration:       15,
			QuestionsCount: 6,
			Difficulty:     model.DifficultyEasy,
			Category:       "orientation",
			IsActive:       true,
			Questions: []model.Question{
				{
					ID:       "q1",
					Question: "What attracts you most in a job?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "Working with people and teams", Score: 5, Categories: []string{"social", "leadership"}},
						{ID: "a2", Text: "Solving technical problems", Score: 5, Categories: []string{"technical", "analytical"}},
						{ID: "a3", Text: "Creative projects", Score: 5, Categories: []string{"creative"}},
						{ID: "a4", Text: "Data analysis and research", Score: 5, Categories: []string{"analytical"}},
					},
				},
				{
					ID:          "q2",
					Question:    "How much do you enjoy working in a team? (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "I prefer working alone", Max: "I love teamwork"},
					Categories:  []string{"social", "leadership"},
				},
				{
					ID:       "q3",
					Question: "Which tasks are the most interesting for you?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "Logic puzzles", Score: 4, Categories: []string{"analytical"}},
						{ID: "a2", Text: "Planning events", Score: 4, Categories: []string{"leadership", "social"}},
						{ID: "a3", Text: "Designing visuals", Score: 4, Categories: []string{"creative"}},
						{ID: "a4", Text: "Programming", Score: 4, Categories: []string{"technical"}},
					},
				},
				{
					ID:       "q4",
					Question: "How do you prefer to take in new information?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "Reading books and articles", Score: 3, Categories: []string{"analytical"}},
						{ID: "a2", Text: "Watching videos and presentations", Score: 3, Categories: []string{"creative"}},
						{ID: "a3", Text: "Practicing and experimenting", Score: 4, Categories: []string{"technical"}},
						{ID: "a4", Text: "Discussing with other people", Score: 4, Categories: []string{"social"}},
					},
				},
				{
					ID:          "q5",
					Question:    "Rate your appetite for risk (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "I avoid risk", Max: "I thrive on risk"},
					Categories:  []string{"leadership", "creative"},
				},
				{
					ID:       "q6",
					Question: "What do you consider your main strength?",
					Type:     model.QuestionText,
				},
			},
		},
		{
			ID:             "it_skills_assessment",
			Title:          "IT Skills Assessment",
			Description:    "Evaluate your aptitude for different directions in information technology",
			Icon:           "💻",
			Duration:       20,
			QuestionsCount: 4,
			Difficulty:     model.DifficultyMedium,
			Category:       "technology",
			IsActive:       true,
			Questions: []model.Question{
				{
					ID:       "q1",
					Question: "Which kind of IT tasks do you like most?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "Building user interfaces", Score: 5, Categories: []string{"frontend", "creative"}},
						{ID: "a2", Text: "Designing server logic", Score: 5, Categories: []string{"backend", "technical"}},
						{ID: "a3", Text: "Analyzing data sets", Score: 5, Categories: []string{"data", "analytical"}},
						{ID: "a4", Text: "Automating infrastructure", Score: 5, Categories: []string{"devops", "technical"}},
					},
				},
				{
					ID:          "q2",
					Question:    "Rate your interest in programming (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "Not interested", Max: "It is my passion"},
					Categories:  []string{"technical"},
				},
				{
					ID:       "q3",
					Question: "How do you feel about working with end users?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "I enjoy direct contact", Score: 4, Categories: []string{"social", "frontend"}},
						{ID: "a2", Text: "I prefer working behind the scenes", Score: 4, Categories: []string{"backend"}},
						{ID: "a3", Text: "I like teaching and support", Score: 4, Categories: []string{"social"}},
						{ID: "a4", Text: "I would rather talk to machines", Score: 4, Categories: []string{"devops", "technical"}},
					},
				},
				{
					ID:          "q4",
					Question:    "Rate your drive to learn new technologies (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "I stick to what I know", Max: "I learn something new weekly"},
					Categories:  []string{"technical", "analytical"},
				},
			},
		},
		{
			ID:             "leadership_potential",
			Title:          "Leadership Potential",
			Description:    "Measure your readiness to lead people and make decisions under pressure",
			Icon:           "👑",
			Duration:       18,
			QuestionsCount: 4,
			Difficulty:     model.DifficultyHard,
			Category:       "management",
			IsActive:       true,
			Questions: []model.Question{
				{
					ID:       "q1",
					Question: "How do you behave in conflict situations?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "I mediate and look for compromise", Score: 5, Categories: []string{"leadership", "social"}},
						{ID: "a2", Text: "I analyze the causes first", Score: 4, Categories: []string{"analytical"}},
						{ID: "a3", Text: "I defend my position firmly", Score: 3, Categories: []string{"leadership"}},
						{ID: "a4", Text: "I step aside and wait it out", Score: 1, Categories: []string{"social"}},
					},
				},
				{
					ID:          "q2",
					Question:    "Rate your willingness to take responsibility (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "I avoid responsibility", Max: "I take charge readily"},
					Categories:  []string{"leadership"},
				},
				{
					ID:       "q3",
					Question: "How do you motivate other people?",
					Type:     model.QuestionMultipleChoice,
					Answers: []model.Answer{
						{ID: "a1", Text: "By personal example", Score: 5, Categories: []string{"leadership"}},
						{ID: "a2", Text: "By explaining the bigger goal", Score: 4, Categories: []string{"leadership", "analytical"}},
						{ID: "a3", Text: "By encouraging and supporting", Score: 4, Categories: []string{"social"}},
						{ID: "a4", Text: "I find it hard to motivate others", Score: 1, Categories: []string{"social"}},
					},
				},
				{
					ID:          "q4",
					Question:    "Rate your communication skills (1 to 5)",
					Type:        model.QuestionScale,
					ScaleLabels: &model.ScaleLabels{Min: "I keep to myself", Max: "I connect with anyone"},
					Categories:  []string{"social", "leadership"},
				},
			},
		},
	}
}
