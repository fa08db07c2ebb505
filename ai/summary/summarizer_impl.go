package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/hrygo/restly/ai"
	"github.com/hrygo/restly/analyzer"
	"github.com/hrygo/restly/internal/metrics"
)

// systemPrompt frames the model as the Restly daily coach. The 50-100 word
// cap keeps the dashboard card readable.
const systemPrompt = `You are a helpful assistant that analyzes computer usage and eye health data from Restly,
an application that helps users take breaks and care for their eyes while working on computers.

Your task is to:
1. Analyze the provided daily activity data
2. Generate a personalized, encouraging summary of the user's day
3. Provide specific, actionable recommendations for improving eye health and productivity
4. Highlight positive behaviors and suggest gentle improvements for areas that need attention

Keep the tone friendly, supportive, and motivating. Focus on health benefits and productivity improvements.
The summary should be SHORT and concise (50-100 words maximum). Use bullet points and be direct.

Consider factors like:
- Break compliance rate and consistency
- Use of deep work sessions
- Peak activity times
- Break rescheduling patterns
- Overall work-life balance indicators

Format the response as a brief summary with 2-3 bullet points maximum.`

type llmSummarizer struct {
	llm     ai.Service
	limiter *rate.Limiter
}

// NewLLMSummarizer creates a Summarizer backed by the given LLM service.
// Outbound calls are throttled to one every 2 seconds with a small burst,
// so a dashboard left auto-refreshing cannot hammer the provider.
func NewLLMSummarizer(llm ai.Service) Summarizer {
	return &llmSummarizer{
		llm:     llm,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
	}
}

func (s *llmSummarizer) Summarize(ctx context.Context, input analyzer.AIInput) (*Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		metrics.SummaryRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("summary request throttled: %w", err)
	}

	document, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		metrics.SummaryRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("encode AI input: %w", err)
	}

	messages := []ai.Message{
		ai.SystemPrompt(systemPrompt),
		ai.UserMessage("Please analyze this daily activity data and provide a summary:\n\n" + string(document)),
	}

	startTime := time.Now()
	content, err := s.llm.Chat(ctx, messages)
	latency := time.Since(startTime)
	if err != nil {
		slog.Warn("AI summary generation failed", "date", input.Date, "error", err, "latency_ms", latency.Milliseconds())
		metrics.SummaryRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SummaryRequests.WithLabelValues("ok").Inc()
	return &Response{
		Summary: content,
		Source:  "llm",
		Latency: latency,
	}, nil
}
