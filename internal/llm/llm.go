// Package llm is the client for the external generative-text API. It builds
// prompts, sends them to Gemini, extracts the JSON object from the free-form
// response and normalizes it into the domain schema. Every failure kind here
// is expected to be caught by the caller and routed to the fallback
// synthesizer; nothing in this package is fatal to the user flow.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"ideaforge/internal/config"
	"ideaforge/internal/core"
	"ideaforge/internal/keywords"
	"ideaforge/internal/prompt"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash-latest"

const defaultMatchReasoning = "AI-generated based on your unique profile combination"

// Options tune a single generation call.
type Options struct {
	Model       string  // Model name, defaults to the client's model
	Temperature float32 // Sampling temperature; higher means more diverse ideas
	MaxTokens   int32   // Output token cap, guards against truncation
}

// Client talks to the Gemini API.
type Client struct {
	gClient            *genai.Client
	modelName          string
	insightModelName   string
	temperature        float32
	insightTemperature float32
	maxTokens          int32
	timeout            time.Duration
}

// NewClient creates a Gemini client from configuration. It fails with
// ErrMissingAPIKey when no usable key is configured so callers can decide to
// run fallback-only.
func NewClient(ctx context.Context) (*Client, error) {
	if !config.HasValidGeminiKey() {
		return nil, ErrMissingAPIKey
	}
	cfg := config.GetAI().Gemini

	gClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}
	insightModel := cfg.InsightModel
	if insightModel == "" {
		insightModel = modelName
	}

	return &Client{
		gClient:            gClient,
		modelName:          modelName,
		insightModelName:   insightModel,
		temperature:        cfg.Temperature,
		insightTemperature: cfg.InsightTemperature,
		maxTokens:          cfg.MaxTokens,
		timeout:            config.GeminiTimeout(),
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() {
	if c.gClient != nil {
		_ = c.gClient.Close()
	}
}

// generate sends one prompt and returns the raw response text.
func (c *Client) generate(ctx context.Context, promptText string, opts Options) (string, error) {
	modelName := c.modelName
	if opts.Model != "" {
		modelName = opts.Model
	}

	model := c.gClient.GenerativeModel(modelName)
	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxTokens)
	}
	model.SetTopK(1)
	model.SetTopP(1)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return "", classifyCallError(err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

// classifyCallError maps transport failures onto the package's error taxonomy.
func classifyCallError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &UpstreamError{Status: gerr.Code, Message: gerr.Message}
	}
	return &UpstreamError{Message: err.Error()}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// wireIdea is the loose shape the model returns before normalization. Models
// sometimes answer with timeToMarket instead of timeToRevenue, so both are
// accepted.
type wireIdea struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Market             string   `json:"market"`
	Complexity         string   `json:"complexity"`
	TimeToRevenue      string   `json:"timeToRevenue"`
	TimeToMarket       string   `json:"timeToMarket"`
	MatchReasoning     string   `json:"matchReasoning"`
	Tags               []string `json:"tags"`
	Differentiator     string   `json:"differentiator"`
	ValidationKeywords []string `json:"validationKeywords"`
}

type wireIdeaResponse struct {
	Ideas []wireIdea `json:"ideas"`
}

// GenerateIdeas asks the model for a batch of personalized ideas and
// normalizes the result into the Idea schema.
func (c *Client) GenerateIdeas(ctx context.Context, profile core.Profile) ([]core.Idea, error) {
	raw, err := c.generate(ctx, prompt.BuildIdeaPrompt(profile), Options{
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var parsed wireIdeaResponse
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Ideas) == 0 {
		return nil, fmt.Errorf("%w: response contained no ideas", ErrMalformedResponse)
	}

	ideas := make([]core.Idea, 0, len(parsed.Ideas))
	for _, w := range parsed.Ideas {
		ideas = append(ideas, normalizeIdea(w))
	}
	return ideas, nil
}

// normalizeIdea fills generator-assigned fields and defaults on a raw idea.
func normalizeIdea(w wireIdea) core.Idea {
	timeToRevenue := w.TimeToRevenue
	if timeToRevenue == "" {
		timeToRevenue = w.TimeToMarket
	}
	reasoning := w.MatchReasoning
	if reasoning == "" {
		reasoning = defaultMatchReasoning
	}
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	validationKeywords := w.ValidationKeywords
	if len(validationKeywords) == 0 {
		validationKeywords = keywords.Derive(w.Title, tags)
	}

	return core.Idea{
		ID:                 uuid.NewString(),
		Title:              w.Title,
		Description:        w.Description,
		Market:             w.Market,
		Complexity:         w.Complexity,
		TimeToRevenue:      timeToRevenue,
		MatchScore:         95,
		Tags:               tags,
		MatchReasoning:     reasoning,
		Differentiator:     w.Differentiator,
		ValidationKeywords: validationKeywords,
		GeneratedBy:        core.GeneratedByGemini,
		Confidence:         95,
	}
}

// CompetitorInsight is the model's competitor/risk analysis payload.
type CompetitorInsight struct {
	TopCompetitors []core.Competitor   `json:"topCompetitors"`
	UserSentiment  *core.UserSentiment `json:"aggregatedUserSentiment"`
	KeyRisks       []core.Risk         `json:"keyRisks"`
}

// Insight is the typed result of a single insight generation; exactly one of
// the payload fields is set, matching Type.
type Insight struct {
	Type           core.InsightType
	TargetAudience *core.TargetAudience
	Monetization   *core.MonetizationStrategy
	Roadmap        *core.Roadmap
	Competitors    *CompetitorInsight
}

// GenerateInsight asks the model for one enrichment analysis of an idea.
func (c *Client) GenerateInsight(ctx context.Context, idea core.Idea, insightType core.InsightType) (*Insight, error) {
	promptText, err := prompt.BuildInsightPrompt(idea, insightType)
	if err != nil {
		return nil, err
	}

	raw, err := c.generate(ctx, promptText, Options{
		Model:       c.insightModelName,
		Temperature: c.insightTemperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}
	return parseInsight([]byte(obj), insightType)
}

// parseInsight unmarshals an extracted JSON object into the typed payload for
// the given insight type.
func parseInsight(data []byte, insightType core.InsightType) (*Insight, error) {
	insight := &Insight{Type: insightType}
	var err error
	switch insightType {
	case core.InsightTargetAudience:
		var v core.TargetAudience
		if err = json.Unmarshal(data, &v); err == nil {
			insight.TargetAudience = &v
		}
	case core.InsightMonetization:
		var v core.MonetizationStrategy
		if err = json.Unmarshal(data, &v); err == nil {
			insight.Monetization = &v
		}
	case core.InsightRoadmap:
		var v core.Roadmap
		if err = json.Unmarshal(data, &v); err == nil {
			insight.Roadmap = &v
		}
	case core.InsightCompetitorAnalysis:
		var v CompetitorInsight
		if err = json.Unmarshal(data, &v); err == nil {
			insight.Competitors = &v
		}
	default:
		return nil, fmt.Errorf("%w: %q", prompt.ErrUnknownInsightType, insightType)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return insight, nil
}
