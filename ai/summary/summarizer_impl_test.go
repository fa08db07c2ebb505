package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/restly/ai"
	"github.com/hrygo/restly/analyzer"
)

type fakeLLM struct {
	content      string
	err          error
	lastMessages []ai.Message
}

func (f *fakeLLM) Chat(_ context.Context, messages []ai.Message) (string, error) {
	f.lastMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func TestLLMSummarizerSendsDocument(t *testing.T) {
	llm := &fakeLLM{content: "- Nice work today!"}
	summarizer := NewLLMSummarizer(llm)

	input := analyzer.AIInput{
		Date: "2026-08-28",
		ProductivityMetrics: analyzer.ProductivityMetrics{
			TotalWorkMinutes: 300,
		},
	}
	resp, err := summarizer.Summarize(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "- Nice work today!", resp.Summary)
	assert.Equal(t, "llm", resp.Source)

	require.Len(t, llm.lastMessages, 2)
	assert.Equal(t, "system", llm.lastMessages[0].Role)
	assert.Contains(t, llm.lastMessages[0].Content, "Restly")
	assert.Equal(t, "user", llm.lastMessages[1].Role)
	assert.Contains(t, llm.lastMessages[1].Content, `"date": "2026-08-28"`)
	assert.Contains(t, llm.lastMessages[1].Content, `"total_work_minutes": 300`)
}

func TestLLMSummarizerPropagatesFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("provider unavailable")}
	summarizer := NewLLMSummarizer(llm)

	_, err := summarizer.Summarize(context.Background(), analyzer.AIInput{Date: "2026-08-28"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "provider unavailable"))
}
