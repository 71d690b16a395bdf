package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const recommendationSystemPrompt = `You are an expert career advisor. Always respond with valid JSON only.

Generate 3-4 specific, actionable improvement recommendations for this interview performance. Respond with ONLY valid JSON:

PERFORMANCE DATA:
Overall Score: %.1f/10
Category Scores: %s
Identified Strengths: %s
Areas for Improvement: %s
Lowest scoring area: %s
Highest scoring area: %s

INSTRUCTIONS:
- Focus on the lowest-scoring categories for improvement suggestions
- Be specific about what to practice (e.g., "Practice explaining time complexity of algorithms with examples")
- Include actionable steps (e.g., "Solve 3-5 medium-level LeetCode problems daily")
- Mention resources when relevant (books, courses, practice platforms)
- Keep recommendations practical and achievable

{
  "recommendations": [
    "Specific actionable recommendation based on lowest scores",
    "Another targeted improvement suggestion",
    "Third practical recommendation with specific steps"
  ]
}`

// GenerateRecommendations asks Gemini for targeted improvement advice based
// on the finished scorecard. It satisfies the engine's Advisor interface.
func (c *Client) GenerateRecommendations(ctx context.Context, overall float64, categoryScores map[string]float64, strengths, weaknesses []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.evaluateTimeout)
	defer cancel()

	system := fmt.Sprintf(recommendationSystemPrompt,
		overall,
		formatCategoryScores(categoryScores),
		joinOrNone(strengths),
		joinOrNone(weaknesses),
		extremeCategory(categoryScores, false),
		extremeCategory(categoryScores, true))

	raw, err := c.generateJSON(ctx, system, "Generate recommendations", 0.7, 800)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	if len(payload.Recommendations) == 0 {
		return genericRecommendations(), nil
	}
	return payload.Recommendations, nil
}

func genericRecommendations() []string {
	return []string{
		"Practice explaining technical concepts in simple terms",
		"Work on structuring your answers with clear beginning, middle, and end",
		"Prepare specific examples from your experience to illustrate your points",
		"Practice active listening and asking clarifying questions",
	}
}

func formatCategoryScores(scores map[string]float64) string {
	categories := make([]string, 0, len(scores))
	for cat := range scores {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	parts := make([]string, len(categories))
	for i, cat := range categories {
		parts[i] = fmt.Sprintf("%s: %.1f/10", cat, scores[cat])
	}
	return strings.Join(parts, ", ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None identified"
	}
	return strings.Join(items, "; ")
}

// extremeCategory returns the best (highest=true) or worst scoring category
// formatted for the prompt. Ties resolve to the alphabetically first name so
// the prompt is deterministic.
func extremeCategory(scores map[string]float64, highest bool) string {
	if len(scores) == 0 {
		return "N/A (0.0/10)"
	}

	categories := make([]string, 0, len(scores))
	for cat := range scores {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	pick := categories[0]
	for _, cat := range categories[1:] {
		if highest && scores[cat] > scores[pick] {
			pick = cat
		}
		if !highest && scores[cat] < scores[pick] {
			pick = cat
		}
	}
	return fmt.Sprintf("%s (%.1f/10)", pick, scores[pick])
}
