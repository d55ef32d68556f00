// Package synth is the fallback synthesizer: it produces idea batches and
// insight payloads with the same shape as model output when the generative
// API is unavailable or returns something unusable. It has no external
// dependencies and never fails.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"ideaforge/internal/core"
	"ideaforge/internal/keywords"
)

// audienceNouns maps an interest to the audience noun substituted for
// {target} in templates. Interests not listed fall back to
// "<interest> professionals".
var audienceNouns = map[string]string{
	"Healthcare":     "medical professionals",
	"Education":      "educators and students",
	"Finance":        "financial advisors",
	"E-commerce":     "online store owners",
	"Productivity":   "remote workers",
	"Small Business": "small business owners",
	"Real Estate":    "real estate agents",
	"Marketing":      "digital marketers",
	"Gaming":         "indie game developers",
}

// valueInterests maps a user value to the interests it aligns with; the
// intersection drives the match-reasoning text.
var valueInterests = map[string][]string{
	"Help Small Businesses":     {"Small Business", "E-commerce", "Productivity"},
	"Support Remote Work":       {"Productivity", "Remote Work"},
	"Enhance Education":         {"Education"},
	"Democratize Technology":    {"AI/ML", "Education"},
	"Promote Health & Wellness": {"Healthcare", "Fitness", "Mental Health"},
}

// ideaTemplate is one of the fixed title/description shapes the synthesizer
// cycles through. Placeholders: {interest}, {skill}, {target}.
type ideaTemplate struct {
	title         string
	description   string
	market        string
	complexity    func(p core.Profile) string
	timeToRevenue func(p core.Profile) string
}

func fixed(v string) func(core.Profile) string {
	return func(core.Profile) string { return v }
}

var ideaTemplates = []ideaTemplate{
	{
		title:       "{interest} Workflow Automation for {skill} Teams",
		description: "Automate repetitive {interest} tasks using {skill} expertise. Connect existing tools and eliminate manual data entry for busy professionals.",
		market:      core.MarketMedium,
		complexity: func(p core.Profile) string {
			for _, s := range p.Skills {
				if strings.Contains(s, "Backend") {
					return core.ComplexityLow
				}
			}
			return core.ComplexityMedium
		},
		timeToRevenue: func(p core.Profile) string {
			if hasConstraint(p, "Quick to Market (<6 months)") {
				return "3-4 months"
			}
			return "4-6 months"
		},
	},
	{
		title:       "AI-Powered {interest} Assistant for {target}",
		description: "Leverage machine learning to help {target} make better {interest} decisions. Provides personalized recommendations based on data analysis.",
		market:      core.MarketLarge,
		complexity: func(p core.Profile) string {
			if hasSkill(p, "Machine Learning") {
				return core.ComplexityMedium
			}
			return core.ComplexityHigh
		},
		timeToRevenue: fixed("6-9 months"),
	},
	{
		title:         "{skill} Dashboard for {interest} Analytics",
		description:   "Beautiful, actionable dashboards that turn {interest} data into insights. Built specifically for teams who need {skill} capabilities.",
		market:        core.MarketMedium,
		complexity:    fixed(core.ComplexityMedium),
		timeToRevenue: fixed("2-4 months"),
	},
	{
		title:         "Micro-SaaS for {interest} Content Creation",
		description:   "Simple tool that helps {interest} creators produce better content faster. Focuses on one specific pain point in the creation workflow.",
		market:        core.MarketSmall,
		complexity:    fixed(core.ComplexityLow),
		timeToRevenue: fixed("2-3 months"),
	},
	{
		title:         "{interest} Community Platform with {skill} Features",
		description:   "Niche community platform designed specifically for {interest} enthusiasts. Includes unique {skill}-powered features competitors lack.",
		market:        core.MarketMedium,
		complexity:    fixed(core.ComplexityMedium),
		timeToRevenue: fixed("4-6 months"),
	},
	{
		title:       "No-Code {interest} Builder for {target}",
		description: "Drag-and-drop builder that lets {target} create custom {interest} solutions without coding. Democratizes {interest} tool creation.",
		market:      core.MarketLarge,
		complexity: func(p core.Profile) string {
			if hasConstraint(p, "No Technical Background") {
				return core.ComplexityLow
			}
			return core.ComplexityMedium
		},
		timeToRevenue: fixed("5-7 months"),
	},
}

func hasSkill(p core.Profile, skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func hasConstraint(p core.Profile, constraint string) bool {
	for _, c := range p.Constraints {
		if c == constraint {
			return true
		}
	}
	return false
}

// Synthesizer generates fallback ideas and insights. The random source is
// injected so tests can run with fixed seeds.
type Synthesizer struct {
	rng *rand.Rand
}

// New creates a Synthesizer with the given random source. A nil source seeds
// from the current time.
func New(src rand.Source) *Synthesizer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Synthesizer{rng: rand.New(src)}
}

// Ideas synthesizes min(6, interests*2) ideas for a profile by cycling the
// fixed templates. Template cycling is deterministic; only the scores are
// randomized, within [85,100).
func (s *Synthesizer) Ideas(profile core.Profile) []core.Idea {
	count := len(profile.Interests) * 2
	if count > len(ideaTemplates) {
		count = len(ideaTemplates)
	}
	if count == 0 {
		return []core.Idea{}
	}

	skills := profile.Skills
	if len(skills) == 0 {
		skills = []string{"Full-Stack Development"}
	}

	ideas := make([]core.Idea, 0, count)
	for i := 0; i < count; i++ {
		interest := profile.Interests[i%len(profile.Interests)]
		skill := skills[i%len(skills)]
		tmpl := ideaTemplates[i%len(ideaTemplates)]

		target := audienceNouns[interest]
		if target == "" {
			target = strings.ToLower(interest) + " professionals"
		}

		matching := matchingValues(profile.Values, interest)

		title := substitute(tmpl.title, interest, skill, target, false)
		tags := append([]string{interest, skill}, firstN(matching, 2)...)

		ideas = append(ideas, core.Idea{
			ID:                 uuid.NewString(),
			Title:              title,
			Description:        substitute(tmpl.description, interest, skill, target, true),
			Market:             tmpl.market,
			Complexity:         tmpl.complexity(profile),
			TimeToRevenue:      tmpl.timeToRevenue(profile),
			MatchScore:         85 + s.rng.Intn(15),
			Tags:               tags,
			MatchReasoning:     reasoning(skill, interest, matching),
			Differentiator:     differentiator(skill, interest),
			ValidationKeywords: keywords.Derive(title, []string{interest, skill}),
			GeneratedBy:        core.GeneratedByMock,
			Confidence:         85 + s.rng.Intn(15),
		})
	}
	return ideas
}

// substitute fills template placeholders. Titles keep the selected casing;
// descriptions read as prose, so interest and skill are lowercased there.
func substitute(tmpl, interest, skill, target string, lowercase bool) string {
	if lowercase {
		interest = strings.ToLower(interest)
		skill = strings.ToLower(skill)
	}
	out := strings.ReplaceAll(tmpl, "{interest}", interest)
	out = strings.ReplaceAll(out, "{skill}", skill)
	return strings.ReplaceAll(out, "{target}", target)
}

// matchingValues returns the subset of selected values whose interest list
// contains the given interest.
func matchingValues(values []string, interest string) []string {
	var matched []string
	for _, value := range values {
		for _, aligned := range valueInterests[value] {
			if aligned == interest {
				matched = append(matched, value)
				break
			}
		}
	}
	return matched
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// reasoning builds the match explanation, referencing up to two matched
// values verbatim when any exist.
func reasoning(skill, interest string, matched []string) string {
	base := fmt.Sprintf("Perfect intersection of your %s expertise and passion for %s. ",
		strings.ToLower(skill), strings.ToLower(interest))
	if len(matched) > 0 {
		return base + "Aligns with your values: " + strings.Join(firstN(matched, 2), ", ") + "."
	}
	return base + "Leverages your unique skill combination."
}

func differentiator(skill, interest string) string {
	lowerSkill := strings.ToLower(skill)
	return fmt.Sprintf("First %s solution built specifically by %s experts for %s workflows.",
		strings.ToLower(interest), lowerSkill, lowerSkill)
}
