package recommend

import (
	"context"
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"contentshop/internal/dbmysql"
)

// ChatClient is the slice of the OpenAI client the analyzer needs, so tests
// can stub it and a nil client disables scoring cleanly.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// CriterionScore is a single 1-10 rating with its reasoning.
type CriterionScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// RelevanceReport is the full quality analysis of one content item.
type RelevanceReport struct {
	OverallScore    float64                   `json:"overall_score"`
	DetailedScores  map[string]CriterionScore `json:"detailed_scores"`
	Insights        []string                  `json:"insights"`
	Recommendations []string                  `json:"recommendations"`
	Explanation     string                    `json:"score_explanation"`
	Fallback        bool                      `json:"fallback,omitempty"`
}

// criterionWeights drive the overall score. Relevance to the category counts
// most, originality least.
var criterionWeights = map[string]float64{
	"clarity":     0.20,
	"depth":       0.18,
	"engagement":  0.18,
	"relevance":   0.22,
	"structure":   0.12,
	"originality": 0.10,
}

const relevanceSystemPrompt = `You are a content quality analyst. Analyze the provided content and score it on multiple criteria.
Return scores from 1-10 for each criterion and provide brief explanations.

Scoring criteria:
- clarity: How clear and understandable is the content? (1-10)
- depth: How comprehensive and detailed is the information? (1-10)
- engagement: How likely is this content to engage readers? (1-10)
- relevance: How relevant is this content to its category and topic? (1-10)
- structure: How well-organized and structured is the content? (1-10)
- originality: How original and unique is the content? (1-10)

Respond with JSON in this exact format:
{
    "clarity": {"score": number, "explanation": "brief explanation"},
    "depth": {"score": number, "explanation": "brief explanation"},
    "engagement": {"score": number, "explanation": "brief explanation"},
    "relevance": {"score": number, "explanation": "brief explanation"},
    "structure": {"score": number, "explanation": "brief explanation"},
    "originality": {"score": number, "explanation": "brief explanation"}
}`

// RelevanceAnalyzer scores content quality through a chat model, falling back
// to neutral defaults whenever the model is unavailable.
type RelevanceAnalyzer struct {
	client ChatClient
	model  string
	logger zerolog.Logger
}

func NewRelevanceAnalyzer(client ChatClient, model string, logger zerolog.Logger) *RelevanceAnalyzer {
	return &RelevanceAnalyzer{
		client: client,
		model:  model,
		logger: logger.With().Str("component", "relevance").Logger(),
	}
}

func (a *RelevanceAnalyzer) Analyze(ctx context.Context, c *dbmysql.Content) *RelevanceReport {
	scores := a.fetchScores(ctx, c)
	fallback := scores == nil
	if fallback {
		scores = defaultScores()
	}

	report := &RelevanceReport{
		OverallScore:    overallScore(scores),
		DetailedScores:  scores,
		Insights:        insights(scores),
		Recommendations: recommendations(scores),
		Fallback:        fallback,
	}
	report.Explanation = explainScore(report.OverallScore)
	return report
}

func (a *RelevanceAnalyzer) fetchScores(ctx context.Context, c *dbmysql.Content) map[string]CriterionScore {
	if a.client == nil {
		return nil
	}

	prompt := fmt.Sprintf("Title: %s\nCategory: %s\nTags: %s\nContent: %s", c.Title, c.Category, c.Tags, c.Body)
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: relevanceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Please analyze this %s content:\n\n%s", c.Category, prompt)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		MaxTokens:      1000,
	})
	if err != nil {
		a.logger.Warn().Err(err).Int64("content_id", c.ContentID).Msg("relevance scoring failed")
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	var scores map[string]CriterionScore
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &scores); err != nil {
		a.logger.Warn().Err(err).Msg("relevance response not parseable")
		return nil
	}
	return scores
}

func overallScore(scores map[string]CriterionScore) float64 {
	var total, totalWeight float64
	for criterion, weight := range criterionWeights {
		if s, ok := scores[criterion]; ok {
			total += s.Score * weight
			totalWeight += weight
		}
	}
	if totalWeight == 0 {
		return 5.0
	}
	return math.Round(total/totalWeight*10) / 10
}

func insights(scores map[string]CriterionScore) []string {
	var out []string
	for _, criterion := range orderedCriteria() {
		s, ok := scores[criterion]
		if !ok {
			continue
		}
		switch {
		case s.Score >= 8:
			out = append(out, fmt.Sprintf("excellent %s: %s", criterion, s.Explanation))
		case s.Score >= 6:
			out = append(out, fmt.Sprintf("good %s: %s", criterion, s.Explanation))
		default:
			out = append(out, fmt.Sprintf("needs improvement in %s: %s", criterion, s.Explanation))
		}
	}
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

var improvementAdvice = map[string]string{
	"clarity":     "simplify complex sentences and use clearer language",
	"depth":       "add more detailed information and examples",
	"engagement":  "include questions, hooks or other compelling elements",
	"relevance":   "align the content more closely with its category and audience",
	"structure":   "improve organization with headers and a logical flow",
	"originality": "add unique perspectives or fresh angles",
}

func recommendations(scores map[string]CriterionScore) []string {
	var out []string
	for _, criterion := range orderedCriteria() {
		if s, ok := scores[criterion]; ok && s.Score < 6 {
			out = append(out, improvementAdvice[criterion])
		}
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func orderedCriteria() []string {
	return []string{"clarity", "depth", "engagement", "relevance", "structure", "originality"}
}

func explainScore(score float64) string {
	switch {
	case score >= 9:
		return "Outstanding content with exceptional quality across all criteria"
	case score >= 8:
		return "Excellent content that performs well in most areas"
	case score >= 7:
		return "Good quality content with room for minor improvements"
	case score >= 6:
		return "Satisfactory content that meets basic standards"
	case score >= 5:
		return "Average content with several areas needing improvement"
	case score >= 4:
		return "Below average content requiring significant enhancements"
	default:
		return "Content needs major improvements to meet quality standards"
	}
}

func defaultScores() map[string]CriterionScore {
	return map[string]CriterionScore{
		"clarity":     {Score: 7, Explanation: "Content appears clear and readable"},
		"depth":       {Score: 6, Explanation: "Moderate level of detail provided"},
		"engagement":  {Score: 6, Explanation: "Standard engagement potential"},
		"relevance":   {Score: 7, Explanation: "Content matches its category well"},
		"structure":   {Score: 6, Explanation: "Basic organization present"},
		"originality": {Score: 6, Explanation: "Some unique elements detected"},
	}
}
