package ideas

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"ideaforge/internal/core"
	"ideaforge/internal/llm"
	"ideaforge/internal/synth"
	"ideaforge/internal/trends"
)

type fakeGenerator struct {
	ideas      []core.Idea
	ideasErr   error
	insight    *llm.Insight
	insightErr error

	mu    sync.Mutex
	calls []core.InsightType
}

func (f *fakeGenerator) GenerateIdeas(ctx context.Context, profile core.Profile) ([]core.Idea, error) {
	return f.ideas, f.ideasErr
}

func (f *fakeGenerator) GenerateInsight(ctx context.Context, idea core.Idea, insightType core.InsightType) (*llm.Insight, error) {
	f.mu.Lock()
	f.calls = append(f.calls, insightType)
	f.mu.Unlock()
	if f.insightErr != nil {
		return nil, f.insightErr
	}
	if f.insight != nil {
		return f.insight, nil
	}
	insight := &llm.Insight{Type: insightType}
	switch insightType {
	case core.InsightTargetAudience:
		insight.TargetAudience = &core.TargetAudience{Persona: core.Persona{Name: "Model Persona"}}
	case core.InsightMonetization:
		insight.Monetization = &core.MonetizationStrategy{PrimaryModel: core.PricingModel{Type: "Freemium"}}
	case core.InsightRoadmap:
		insight.Roadmap = &core.Roadmap{MVP: core.MVPPhase{Timeline: "Months 1-2"}}
	case core.InsightCompetitorAnalysis:
		insight.Competitors = &llm.CompetitorInsight{}
	}
	return insight, nil
}

func testService(gen Generator) *Service {
	return NewService(gen, synth.New(rand.NewSource(1)), trends.New(rand.NewSource(1)))
}

func testProfile() core.Profile {
	return core.Profile{
		Skills:    []string{"Backend Development"},
		Interests: []string{"Healthcare", "Finance"},
	}
}

func TestGenerateModelSuccess(t *testing.T) {
	gen := &fakeGenerator{ideas: []core.Idea{{ID: "a", Title: "From Model", GeneratedBy: core.GeneratedByGemini}}}
	result := testService(gen).Generate(context.Background(), testProfile())

	if result.Fallback {
		t.Error("fallback flag set on a successful model batch")
	}
	if len(result.Ideas) != 1 || result.Ideas[0].Title != "From Model" {
		t.Errorf("unexpected ideas: %+v", result.Ideas)
	}
}

func TestGenerateUpstreamErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{ideasErr: &llm.UpstreamError{Status: 500, Message: "internal"}}
	result := testService(gen).Generate(context.Background(), testProfile())

	if !result.Fallback {
		t.Fatal("expected fallback after an upstream failure")
	}
	if len(result.Ideas) == 0 {
		t.Fatal("fallback must produce a non-empty idea list")
	}
	if !strings.Contains(result.Notice, FallbackNotice) {
		t.Errorf("notice %q should carry the fallback message", result.Notice)
	}
	for _, idea := range result.Ideas {
		if idea.GeneratedBy != core.GeneratedByMock {
			t.Errorf("fallback idea tagged %q", idea.GeneratedBy)
		}
	}
}

func TestGenerateEveryFailureKindFallsBack(t *testing.T) {
	failures := []error{
		llm.ErrEmptyGeneration,
		llm.ErrMalformedResponse,
		llm.ErrTimeout,
		&llm.UpstreamError{Status: 429, Message: "quota exceeded"},
	}
	for _, failure := range failures {
		result := testService(&fakeGenerator{ideasErr: failure}).Generate(context.Background(), testProfile())
		if !result.Fallback || len(result.Ideas) == 0 {
			t.Errorf("failure %v: expected a non-empty fallback batch", failure)
		}
	}
}

func TestGenerateWithoutGenerator(t *testing.T) {
	result := testService(nil).Generate(context.Background(), testProfile())
	if !result.Fallback {
		t.Error("nil generator must use the fallback path")
	}
	if len(result.Ideas) == 0 {
		t.Error("expected synthesized ideas without a generator")
	}
	if result.Notice != "" {
		t.Errorf("no model error occurred, notice should be empty, got %q", result.Notice)
	}
}

func TestValidateFetchesBothInsights(t *testing.T) {
	gen := &fakeGenerator{}
	data := testService(gen).Validate(context.Background(), core.Idea{
		ID: "i1", Title: "Clinic Scheduler", Tags: []string{"Healthcare"},
		ValidationKeywords: []string{"clinic scheduling"},
	})

	if data.TargetAudience == nil || data.TargetAudience.Persona.Name != "Model Persona" {
		t.Error("expected the model-generated audience insight")
	}
	if data.Monetization == nil || data.Monetization.PrimaryModel.Type != "Freemium" {
		t.Error("expected the model-generated monetization insight")
	}
	if len(gen.calls) != 2 {
		t.Errorf("expected 2 insight calls, got %d", len(gen.calls))
	}
	if len(data.Keywords) == 0 {
		t.Error("validation data must include keyword trends")
	}
	if data.AudienceFallback || data.MonetizationFallback {
		t.Errorf("model-generated insights must not be tagged as fallback: %+v", data)
	}
	if len(data.Notices) != 0 {
		t.Errorf("no model error occurred, notices should be empty, got %v", data.Notices)
	}
}

func TestValidateInsightFailuresFallBackIndependently(t *testing.T) {
	gen := &fakeGenerator{insightErr: llm.ErrTimeout}
	data := testService(gen).Validate(context.Background(), core.Idea{
		ID: "i1", Title: "Clinic Scheduler", Tags: []string{"Healthcare"},
		ValidationKeywords: []string{"clinic scheduling"},
	})

	if data.TargetAudience == nil {
		t.Error("audience insight must fall back on timeout")
	}
	if data.Monetization == nil {
		t.Error("monetization insight must fall back on timeout")
	}
	if len(data.Monetization.PricingTiers) == 0 {
		t.Error("fallback monetization should carry the synthesized tiers")
	}
	if !data.AudienceFallback || !data.MonetizationFallback {
		t.Errorf("fallback insights must be tagged as such: %+v", data)
	}
	if len(data.Notices) != 2 {
		t.Fatalf("expected a retained notice per failed insight, got %v", data.Notices)
	}
	for _, n := range data.Notices {
		if !strings.Contains(n, FallbackNotice) || !strings.Contains(n, llm.ErrTimeout.Error()) {
			t.Errorf("notice %q should carry the fallback banner and the model error", n)
		}
	}
}

func TestValidateWithoutGeneratorTagsFallbacks(t *testing.T) {
	data := testService(nil).Validate(context.Background(), core.Idea{
		ID: "i1", Title: "Clinic Scheduler", Tags: []string{"Healthcare"},
		ValidationKeywords: []string{"clinic scheduling"},
	})

	if !data.AudienceFallback || !data.MonetizationFallback {
		t.Errorf("synthesized insights must be tagged as fallback: %+v", data)
	}
	if len(data.Notices) != 0 {
		t.Errorf("no model error occurred, notices should be empty, got %v", data.Notices)
	}
}

func TestInsightFallbackPerType(t *testing.T) {
	types := []core.InsightType{
		core.InsightTargetAudience,
		core.InsightMonetization,
		core.InsightRoadmap,
	}
	svc := testService(&fakeGenerator{insightErr: errors.New("boom")})
	for _, insightType := range types {
		result, err := svc.Insight(context.Background(), core.Idea{Title: "T"}, insightType)
		if err != nil {
			t.Errorf("%s: unexpected error %v", insightType, err)
			continue
		}
		if !result.Fallback {
			t.Errorf("%s: expected fallback provenance", insightType)
		}
		if result.Insight == nil || result.Insight.Type != insightType {
			t.Errorf("%s: missing or mistyped insight payload", insightType)
		}
	}
}

func TestInsightCompetitorAnalysisPropagatesErrors(t *testing.T) {
	svc := testService(&fakeGenerator{insightErr: llm.ErrMalformedResponse})
	_, err := svc.Insight(context.Background(), core.Idea{Title: "T"}, core.InsightCompetitorAnalysis)
	if !errors.Is(err, llm.ErrMalformedResponse) {
		t.Errorf("expected the model error to propagate, got %v", err)
	}
}
