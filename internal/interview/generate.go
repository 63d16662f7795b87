// Package interview generates templated interview-preparation content
// (technical questions, behavioral questions, a study plan) from the static
// research tables keyed by company and role.
package interview

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/research"
)

// PrepRequest is the payload for generating an interview prep kit. The
// validate tags are enforced by the server's shared validator instance.
type PrepRequest struct {
	Company      string   `json:"company" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Technologies []string `json:"technologies,omitempty"`
}

// Question is a single prep question with guidance.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"` // technical or behavioral
	Difficulty    string   `json:"difficulty"`
	Topics        []string `json:"topics"`
	Hints         []string `json:"hints,omitempty"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
}

// PrepKit is the full generated preparation package.
type PrepKit struct {
	Company    research.CompanyResearch `json:"company"`
	Role       research.RoleResearch    `json:"role"`
	Technical  []Question               `json:"technical_questions"`
	Behavioral []Question               `json:"behavioral_questions"`
	StudyPlan  []string                 `json:"study_plan"`
}

// Generate builds a prep kit for the given company and role. Generation is
// deterministic template expansion over the research tables; unknown
// companies and roles use the generic fallbacks.
func Generate(req PrepRequest) PrepKit {
	company := research.Company(req.Company)
	role := research.Role(req.Role)

	technologies := req.Technologies
	if len(technologies) == 0 {
		technologies = role.CoreSkills
	}

	return PrepKit{
		Company:    company,
		Role:       role,
		Technical:  technicalQuestions(company, role, req.Role, technologies),
		Behavioral: behavioralQuestions(),
		StudyPlan:  studyPlan(role),
	}
}

func technicalQuestions(company research.CompanyResearch, role research.RoleResearch, requestedTitle string, technologies []string) []Question {
	var questions []Question

	// System design for hard roles and explicitly senior titles.
	if role.Difficulty == "hard" || strings.Contains(strings.ToLower(requestedTitle), "senior") {
		primary := "main"
		if len(company.TechStack) > 0 {
			primary = company.TechStack[0]
		}
		questions = append(questions, Question{
			ID:         "q1",
			Question:   fmt.Sprintf("Design a scalable system for %s's %s service", company.Name, primary),
			Type:       "technical",
			Difficulty: "Hard",
			Topics:     []string{"System Design", "Scalability", "Architecture"},
			Hints: []string{
				"Consider microservices architecture",
				"Think about database sharding and replication",
				"Plan for load balancing and caching",
			},
			EstimatedTime: "45-60 minutes",
		})
	}

	questions = append(questions,
		Question{
			ID:            "q2",
			Question:      "Implement a function to reverse a linked list",
			Type:          "technical",
			Difficulty:    "Medium",
			Topics:        []string{"Data Structures", "Algorithms"},
			Hints:         []string{"Use two pointers", "Handle empty and single-node lists", "Consider iterative and recursive solutions"},
			EstimatedTime: "20-30 minutes",
		},
		Question{
			ID:            "q3",
			Question:      "Find the longest palindromic substring in a string",
			Type:          "technical",
			Difficulty:    "Medium",
			Topics:        []string{"Algorithms", "String Manipulation", "Dynamic Programming"},
			Hints:         []string{"Expand around center", "Or use dynamic programming", "Handle single-character edge cases"},
			EstimatedTime: "25-35 minutes",
		},
	)

	// Technology-specific questions for the top two technologies.
	for i, tech := range technologies {
		if i >= 2 {
			break
		}
		questions = append(questions, Question{
			ID:            fmt.Sprintf("q-tech-%d", i+4),
			Question:      fmt.Sprintf("Explain how you would optimize a %s application for performance", tech),
			Type:          "technical",
			Difficulty:    "Medium",
			Topics:        []string{"Performance", tech, "Optimization"},
			Hints:         []string{"Measure before optimizing", "Profile to find the real bottleneck"},
			EstimatedTime: "15-25 minutes",
		})
	}

	return questions
}

func behavioralQuestions() []Question {
	return []Question{
		{
			ID:         "b1",
			Question:   "Tell me about a time you had to work under pressure to meet a deadline",
			Type:       "behavioral",
			Difficulty: "Easy",
			Topics:     []string{"Time Management", "Stress Handling"},
			Hints:      []string{"Use the STAR method", "Be specific with timelines", "Highlight results"},
		},
		{
			ID:         "b2",
			Question:   "Describe a challenging technical problem you solved",
			Type:       "behavioral",
			Difficulty: "Medium",
			Topics:     []string{"Problem Solving", "Technical Skills"},
			Hints:      []string{"Explain your process, not just the outcome", "Mention what you learned"},
		},
		{
			ID:         "b3",
			Question:   "Tell me about a time you received difficult feedback",
			Type:       "behavioral",
			Difficulty: "Medium",
			Topics:     []string{"Growth", "Collaboration"},
			Hints:      []string{"Show how you acted on it", "Avoid blaming others"},
		},
	}
}

func studyPlan(role research.RoleResearch) []string {
	plan := make([]string, 0, len(role.PrepTopics)+2)
	for i, topic := range role.PrepTopics {
		plan = append(plan, fmt.Sprintf("Day %d: review %s", i+1, topic))
	}
	plan = append(plan,
		fmt.Sprintf("Day %d: mock interview covering %s", len(role.PrepTopics)+1, strings.Join(role.FocusAreas, ", ")),
		fmt.Sprintf("Day %d: rest and review notes", len(role.PrepTopics)+2),
	)
	return plan
}
