package prompt

import (
	"errors"
	"strings"
	"testing"

	"ideaforge/internal/core"
)

func fullProfile() core.Profile {
	return core.Profile{
		Skills:         []string{"Backend Development", "DevOps & Infrastructure"},
		Interests:      []string{"Healthcare", "Finance"},
		Constraints:    []string{"Limited Budget (<$1k)"},
		Values:         []string{"Help Small Businesses"},
		Experience:     core.ExperienceExperienced,
		TimeCommitment: core.TimePartTime,
		BuildingStyle:  core.StyleMVP,
	}
}

func TestBuildIdeaPromptEmbedsProfile(t *testing.T) {
	p := BuildIdeaPrompt(fullProfile())

	wantFragments := []string{
		"Generate 6 highly personalized SaaS business ideas",
		"SKILLS: Backend Development, DevOps & Infrastructure",
		"INTERESTS: Healthcare, Finance",
		"CONSTRAINTS: Limited Budget (<$1k)",
		"VALUES: Help Small Businesses",
		"EXPERIENCE: experienced",
		"TIME COMMITMENT: parttime",
		"BUILDING STYLE: mvp",
		`"validationKeywords": ["string"]`,
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(p, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestBuildIdeaPromptDeterministic(t *testing.T) {
	profile := fullProfile()
	if BuildIdeaPrompt(profile) != BuildIdeaPrompt(profile) {
		t.Error("prompt building must be deterministic")
	}
}

func TestBuildIdeaPromptEmptyProfile(t *testing.T) {
	p := BuildIdeaPrompt(core.Profile{})
	if !strings.Contains(p, "SKILLS: \n") {
		t.Error("empty fields should interpolate as empty strings")
	}
}

func TestBuildInsightPromptPerType(t *testing.T) {
	idea := core.Idea{
		Title:       "Clinic Scheduling Assistant",
		Description: "Automated scheduling for small clinics.",
		Market:      core.MarketMedium,
		Complexity:  core.ComplexityLow,
		Tags:        []string{"Healthcare", "Backend Development"},
	}

	tests := []struct {
		insightType core.InsightType
		fragment    string
	}{
		{core.InsightTargetAudience, "target audience persona"},
		{core.InsightMonetization, "monetization strategy"},
		{core.InsightRoadmap, "technical roadmap"},
		{core.InsightCompetitorAnalysis, "competitor"},
	}
	for _, tt := range tests {
		t.Run(string(tt.insightType), func(t *testing.T) {
			p, err := BuildInsightPrompt(idea, tt.insightType)
			if err != nil {
				t.Fatalf("BuildInsightPrompt() error: %v", err)
			}
			if !strings.Contains(strings.ToLower(p), tt.fragment) {
				t.Errorf("prompt should describe the analysis, missing %q", tt.fragment)
			}
			if !strings.Contains(p, idea.Title) {
				t.Error("prompt must embed the idea title")
			}
			if !strings.Contains(p, "Healthcare, Backend Development") {
				t.Error("prompt must embed the tag list")
			}
			if !strings.Contains(p, "{") {
				t.Error("prompt must terminate with a JSON schema example")
			}
		})
	}
}

func TestBuildInsightPromptNoTags(t *testing.T) {
	p, err := BuildInsightPrompt(core.Idea{Title: "T"}, core.InsightTargetAudience)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(p, "N/A") {
		t.Error("missing tags should render as N/A")
	}
}

func TestBuildInsightPromptUnknownType(t *testing.T) {
	_, err := BuildInsightPrompt(core.Idea{Title: "T"}, core.InsightType("horoscope"))
	if !errors.Is(err, ErrUnknownInsightType) {
		t.Errorf("expected ErrUnknownInsightType, got %v", err)
	}
}
