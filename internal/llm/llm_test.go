package llm

import (
	"errors"
	"strings"
	"testing"

	"ideaforge/internal/core"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "code fence",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "surrounding prose",
			raw:  `Here are your ideas: {"ideas":[]} Hope that helps!`,
			want: `{"ideas":[]}`,
		},
		{
			name: "nested objects",
			raw:  `x {"a":{"b":{"c":1}}} y`,
			want: `{"a":{"b":{"c":1}}}`,
		},
		{
			name: "braces inside strings",
			raw:  `{"a":"closing } brace","b":"opening { brace"}`,
			want: `{"a":"closing } brace","b":"opening { brace"}`,
		},
		{
			name: "escaped quotes inside strings",
			raw:  `{"a":"say \"hi\" {now}"}`,
			want: `{"a":"say \"hi\" {now}"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.raw)
			if err != nil {
				t.Fatalf("extractJSONObject() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("extractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObjectMalformed(t *testing.T) {
	inputs := []string{
		"",
		"no json here",
		`{"unbalanced":`,
		`]["`,
	}
	for _, raw := range inputs {
		if _, err := extractJSONObject(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("extractJSONObject(%q) = %v, want ErrMalformedResponse", raw, err)
		}
	}
}

func TestNormalizeIdeaDefaults(t *testing.T) {
	idea := normalizeIdea(wireIdea{
		Title:       "Invoice Tracker",
		Description: "Track invoices.",
		Market:      core.MarketMedium,
		Tags:        []string{"Finance"},
	})

	if idea.ID == "" {
		t.Error("normalization must assign an id")
	}
	if idea.MatchScore != 95 || idea.Confidence != 95 {
		t.Errorf("score/confidence = %d/%d, want 95/95", idea.MatchScore, idea.Confidence)
	}
	if idea.GeneratedBy != core.GeneratedByGemini {
		t.Errorf("generatedBy = %q", idea.GeneratedBy)
	}
	if idea.MatchReasoning == "" {
		t.Error("missing reasoning must be defaulted")
	}
	if len(idea.ValidationKeywords) == 0 {
		t.Error("missing keywords must be derived from title and tags")
	}
	for _, kw := range idea.ValidationKeywords {
		if !strings.Contains(kw, "invoice") && !strings.Contains(kw, "tracker") && !strings.Contains(kw, "finance") {
			t.Errorf("derived keyword %q unrelated to the idea", kw)
		}
	}
}

func TestNormalizeIdeaUniqueIDs(t *testing.T) {
	a := normalizeIdea(wireIdea{Title: "A"})
	b := normalizeIdea(wireIdea{Title: "A"})
	if a.ID == b.ID {
		t.Error("each normalized idea must get a distinct id")
	}
}

func TestNormalizeIdeaTimeToMarketAlias(t *testing.T) {
	idea := normalizeIdea(wireIdea{Title: "A", TimeToMarket: "3-5 months"})
	if idea.TimeToRevenue != "3-5 months" {
		t.Errorf("timeToRevenue = %q, want the timeToMarket alias value", idea.TimeToRevenue)
	}

	idea = normalizeIdea(wireIdea{Title: "A", TimeToRevenue: "2 months", TimeToMarket: "9 months"})
	if idea.TimeToRevenue != "2 months" {
		t.Error("timeToRevenue must win over the alias when both are present")
	}
}

func TestNormalizeIdeaKeepsModelKeywords(t *testing.T) {
	idea := normalizeIdea(wireIdea{Title: "A", ValidationKeywords: []string{"custom keyword"}})
	if len(idea.ValidationKeywords) != 1 || idea.ValidationKeywords[0] != "custom keyword" {
		t.Errorf("model-supplied keywords must be kept, got %v", idea.ValidationKeywords)
	}
}

func TestParseInsightPerType(t *testing.T) {
	tests := []struct {
		insightType core.InsightType
		payload     string
		check       func(*Insight) bool
	}{
		{
			core.InsightTargetAudience,
			`{"persona":{"name":"Jordan","jobTitle":"Ops Manager"}}`,
			func(i *Insight) bool { return i.TargetAudience != nil && i.TargetAudience.Persona.Name == "Jordan" },
		},
		{
			core.InsightMonetization,
			`{"primaryModel":{"type":"Tiered subscription"}}`,
			func(i *Insight) bool { return i.Monetization != nil && i.Monetization.PrimaryModel.Type == "Tiered subscription" },
		},
		{
			core.InsightRoadmap,
			`{"mvp":{"timeline":"Months 1-3"}}`,
			func(i *Insight) bool { return i.Roadmap != nil && i.Roadmap.MVP.Timeline == "Months 1-3" },
		},
		{
			core.InsightCompetitorAnalysis,
			`{"topCompetitors":[{"name":"Acme","url":"https://acme.io","swot":{"strength":"s","weakness":"w"}}],"keyRisks":[{"risk":"r","mitigation":"m"}]}`,
			func(i *Insight) bool {
				return i.Competitors != nil && len(i.Competitors.TopCompetitors) == 1 && i.Competitors.TopCompetitors[0].SWOT.Weakness == "w"
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.insightType), func(t *testing.T) {
			insight, err := parseInsight([]byte(tt.payload), tt.insightType)
			if err != nil {
				t.Fatalf("parseInsight() error: %v", err)
			}
			if insight.Type != tt.insightType {
				t.Errorf("type = %q", insight.Type)
			}
			if !tt.check(insight) {
				t.Errorf("payload not populated: %+v", insight)
			}
		})
	}
}

func TestParseInsightRejectsBadJSON(t *testing.T) {
	_, err := parseInsight([]byte(`{"persona":`), core.InsightTargetAudience)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Status: 429, Message: "quota exceeded"}
	if got := err.Error(); !strings.Contains(got, "429") || !strings.Contains(got, "quota exceeded") {
		t.Errorf("UpstreamError.Error() = %q, want status and message", got)
	}
}
