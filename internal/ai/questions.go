package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// QuestionRequest describes the session a question set is generated for.
type QuestionRequest struct {
	Company         string
	Role            string
	ExperienceLevel model.ExperienceLevel
	Categories      []model.Category
	TotalQuestions  int
	TargetCompanies []string
	TargetRoles     []string
}

// GeneratedQuestion is one question as produced by the model or the fallback
// bank. Options and the correct answer are only present for multiple-choice
// style questions.
type GeneratedQuestion struct {
	Category      model.Category   `json:"category"`
	QuestionText  string           `json:"question_text"`
	Options       []string         `json:"options,omitempty"`
	CorrectAnswer string           `json:"correct_answer,omitempty"`
	Explanation   string           `json:"explanation,omitempty"`
	Difficulty    model.Difficulty `json:"difficulty"`
}

const questionSystemPrompt = `You are an expert interview question generator. Always respond with valid JSON only, no additional text.

Generate %d interview questions for a %s level %s position at %s.

Distribute questions across these categories: %s
%s
IMPORTANT: Respond with ONLY valid JSON, no additional text.

Format:
{
  "questions": [
    {
      "category": "technical",
      "question_text": "What is the time complexity of binary search?",
      "options": ["O(n)", "O(log n)", "O(n log n)", "O(1)"],
      "correct_answer": "b",
      "explanation": "Binary search divides the search space in half.",
      "difficulty": "medium"
    },
    {
      "category": "behavioral",
      "question_text": "Describe a challenging project you worked on.",
      "difficulty": "medium"
    }
  ]
}`

// GenerateQuestions asks Gemini for a question set, with a hard timeout.
// Any failure (timeout, API error, unparseable or empty output) falls back to
// the static question bank so session creation always succeeds.
func (c *Client) GenerateQuestions(ctx context.Context, req QuestionRequest) []GeneratedQuestion {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	categories := make([]string, len(req.Categories))
	for i, cat := range req.Categories {
		categories[i] = string(cat)
	}

	profileContext := ""
	if len(req.TargetCompanies) > 0 || len(req.TargetRoles) > 0 {
		var sb strings.Builder
		sb.WriteString("\nCandidate Profile Context:\n")
		if len(req.TargetCompanies) > 0 {
			sb.WriteString("- Target Companies: " + strings.Join(req.TargetCompanies, ", ") + "\n")
		}
		if len(req.TargetRoles) > 0 {
			sb.WriteString("- Target Roles: " + strings.Join(req.TargetRoles, ", ") + "\n")
		}
		sb.WriteString("Consider this background when crafting relevant questions.\n")
		profileContext = sb.String()
	}

	system := fmt.Sprintf(questionSystemPrompt,
		req.TotalQuestions, req.ExperienceLevel, req.Role, req.Company,
		strings.Join(categories, ", "), profileContext)

	raw, err := c.generateJSON(ctx, system, "Generate interview questions", 0.7, 2000)
	if err != nil {
		c.logger.Warn("question generation failed, using fallback bank", zap.Error(err))
		return fallbackQuestions(req)
	}

	questions, err := parseQuestions(raw)
	if err != nil || len(questions) == 0 {
		c.logger.Warn("question generation returned unusable output, using fallback bank", zap.Error(err))
		return fallbackQuestions(req)
	}

	c.logger.Info("generated questions", zap.Int("count", len(questions)))
	return questions
}

func parseQuestions(raw string) ([]GeneratedQuestion, error) {
	var payload struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := payload.Questions[:0]
	for _, q := range payload.Questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			continue
		}
		if q.Category == "" {
			q.Category = model.CategoryTechnical
		}
		if q.Difficulty == "" {
			q.Difficulty = model.DifficultyMedium
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// fallbackQuestionBank is served round-robin per category when the model is
// unavailable. Categories without a bank entry are skipped.
var fallbackQuestionBank = map[model.Category][]string{
	model.CategoryTechnical: {
		"Explain the time complexity of binary search and why it's efficient.",
		"Describe the main principles of Object-Oriented Programming and give examples of each.",
		"What is REST architecture and how would you implement a RESTful API?",
		"Explain the difference between PUT, POST, and PATCH HTTP methods.",
		"How do database indexes work and why are they important for query performance?",
	},
	model.CategoryBehavioral: {
		"Describe a time when you had to work with a difficult team member. How did you handle it?",
		"Tell me about a challenging project you worked on. What made it challenging and how did you overcome it?",
		"How do you prioritize tasks when you have multiple deadlines?",
		"Describe a time when you had to learn a new technology quickly.",
		"Tell me about a mistake you made and how you handled it.",
	},
	model.CategorySystemDesign: {
		"How would you design a URL shortening service like bit.ly?",
		"Design a chat application that can handle millions of users.",
		"How would you design a recommendation system for an e-commerce platform?",
		"Design a distributed cache system.",
		"How would you design a real-time collaborative document editor?",
	},
}

func fallbackQuestions(req QuestionRequest) []GeneratedQuestion {
	if len(req.Categories) == 0 {
		return nil
	}

	questions := make([]GeneratedQuestion, 0, req.TotalQuestions)
	for i := 0; i < req.TotalQuestions; i++ {
		category := req.Categories[i%len(req.Categories)]
		bank, ok := fallbackQuestionBank[category]
		if !ok {
			continue
		}
		questions = append(questions, GeneratedQuestion{
			Category:     category,
			QuestionText: bank[i%len(bank)],
			Difficulty:   model.DifficultyMedium,
		})
	}
	return questions
}
