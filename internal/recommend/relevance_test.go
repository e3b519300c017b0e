package recommend

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"contentshop/internal/dbmysql"
)

type stubChatClient struct {
	content string
	err     error
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func TestRelevanceAnalyzer_Analyze(t *testing.T) {
	item := &dbmysql.Content{ContentID: 1, Title: "t", Body: "b", Category: "Blog Post"}

	t.Run("weighted overall score from model output", func(t *testing.T) {
		client := &stubChatClient{content: `{
			"clarity": {"score": 10, "explanation": "crisp"},
			"depth": {"score": 10, "explanation": "thorough"},
			"engagement": {"score": 10, "explanation": "gripping"},
			"relevance": {"score": 10, "explanation": "on topic"},
			"structure": {"score": 10, "explanation": "well laid out"},
			"originality": {"score": 10, "explanation": "fresh"}
		}`}
		analyzer := NewRelevanceAnalyzer(client, "gpt-4o", zerolog.Nop())

		report := analyzer.Analyze(context.Background(), item)
		require.False(t, report.Fallback)
		require.InDelta(t, 10.0, report.OverallScore, 1e-9)
		require.Len(t, report.Insights, 6)
		require.Empty(t, report.Recommendations)
	})

	t.Run("low scores produce recommendations", func(t *testing.T) {
		client := &stubChatClient{content: `{
			"clarity": {"score": 3, "explanation": "confusing"},
			"depth": {"score": 4, "explanation": "thin"},
			"engagement": {"score": 8, "explanation": "fun"},
			"relevance": {"score": 8, "explanation": "on topic"},
			"structure": {"score": 8, "explanation": "fine"},
			"originality": {"score": 8, "explanation": "fresh"}
		}`}
		analyzer := NewRelevanceAnalyzer(client, "gpt-4o", zerolog.Nop())

		report := analyzer.Analyze(context.Background(), item)
		require.Len(t, report.Recommendations, 2)
	})

	t.Run("api failure falls back to defaults", func(t *testing.T) {
		client := &stubChatClient{err: errors.New("rate limited")}
		analyzer := NewRelevanceAnalyzer(client, "gpt-4o", zerolog.Nop())

		report := analyzer.Analyze(context.Background(), item)
		require.True(t, report.Fallback)
		require.InDelta(t, 6.4, report.OverallScore, 0.1)
		require.NotEmpty(t, report.Explanation)
	})

	t.Run("nil client falls back", func(t *testing.T) {
		analyzer := NewRelevanceAnalyzer(nil, "gpt-4o", zerolog.Nop())
		report := analyzer.Analyze(context.Background(), item)
		require.True(t, report.Fallback)
	})

	t.Run("garbage response falls back", func(t *testing.T) {
		client := &stubChatClient{content: "not json"}
		analyzer := NewRelevanceAnalyzer(client, "gpt-4o", zerolog.Nop())
		require.True(t, analyzer.Analyze(context.Background(), item).Fallback)
	})
}
