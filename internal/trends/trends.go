// Package trends synthesizes market-validation signals for an idea: keyword
// search-volume time series, competitor landscape counts, and demand
// indicators. All data is generated locally; no external trends API is
// consulted.
package trends

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"ideaforge/internal/core"
	"ideaforge/internal/keywords"
)

// competitorProfile holds the per-interest baseline for the competitive
// landscape. Values are jittered per request.
type competitorProfile struct {
	direct   int
	indirect int
	pricing  int
}

var interestCompetitors = map[string]competitorProfile{
	"Healthcare":     {direct: 8, indirect: 25, pricing: 89},
	"Education":      {direct: 12, indirect: 30, pricing: 45},
	"E-commerce":     {direct: 25, indirect: 60, pricing: 29},
	"Productivity":   {direct: 35, indirect: 80, pricing: 15},
	"Finance":        {direct: 15, indirect: 40, pricing: 120},
	"Small Business": {direct: 20, indirect: 50, pricing: 35},
}

var marketGapPool = []string{
	"Limited customization options",
	"Poor mobile experience",
	"Complex onboarding process",
	"Expensive for small teams",
	"Lacks specific industry features",
}

var geoDistribution = []string{
	"United States (35%)", "United Kingdom (12%)", "Canada (8%)",
	"Australia (7%)", "Germany (6%)", "France (4%)", "Netherlands (3%)",
}

// monthLabels are the fixed 12-month axis for the synthetic series.
var monthLabels = buildMonthLabels()

func buildMonthLabels() [12]string {
	var labels [12]string
	for i := 0; i < 12; i++ {
		labels[i] = time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
	}
	return labels
}

// Synthesizer produces validation data. The random source is injected so
// tests can run with fixed seeds.
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

// Validate synthesizes the full validation bundle for an idea. Keywords are
// derived from the idea's title and tags when the generator left them empty.
func (s *Synthesizer) Validate(idea core.Idea) core.ValidationData {
	kws := idea.ValidationKeywords
	if len(kws) == 0 {
		kws = keywords.Derive(idea.Title, idea.Tags)
	}

	keywordTrends := make(map[string]core.KeywordTrend, len(kws))
	anyRising := false
	for _, kw := range kws {
		trend := s.keywordTrend(kw)
		if trend.Trend == core.TrendRising {
			anyRising = true
		}
		keywordTrends[kw] = trend
	}

	return core.ValidationData{
		Keywords:           keywordTrends,
		CompetitorAnalysis: s.competitorAnalysis(idea),
		DemandSignals:      s.demandSignals(idea, anyRising),
	}
}

// keywordTrend builds a 12-month synthetic volume series for one keyword. A
// keyword has a 60% chance of belonging to a growing market; growing markets
// compound at 3% per month, stable ones at 0.5%, with a sinusoidal seasonal
// swing of ±20% and ±5% noise. Volumes are floored at 100.
func (s *Synthesizer) keywordTrend(keyword string) core.KeywordTrend {
	growing := s.rng.Float64() > 0.4
	baseVolume := s.rng.Intn(15000) + 2000

	monthly := make([]core.MonthlyVolume, 0, 12)
	for i := 0; i < 12; i++ {
		seasonal := math.Sin(float64(i)*math.Pi/6) * 0.2
		noise := (s.rng.Float64() - 0.5) * 0.1
		growth := 1 + float64(i)*0.005
		if growing {
			growth = 1 + float64(i)*0.03
		}
		volume := int(float64(baseVolume) * growth * (1 + seasonal + noise))
		if volume < 100 {
			volume = 100
		}
		monthly = append(monthly, core.MonthlyVolume{Month: monthLabels[i], Volume: volume})
	}

	trend := core.TrendStable
	if growing {
		trend = core.TrendRising
	}

	return core.KeywordTrend{
		CurrentVolume: baseVolume,
		Trend:         trend,
		MonthlyData:   monthly,
		RelatedQueries: []string{
			"best " + keyword,
			keyword + " pricing",
			keyword + " alternatives",
			keyword + " reviews",
			"top " + keyword + " tools",
		},
	}
}

// competitorAnalysis picks the baseline for the first idea tag present in the
// interest table, defaulting to Productivity, then jitters counts and pricing.
// Market gaps are sampled from the pool without replacement.
func (s *Synthesizer) competitorAnalysis(idea core.Idea) core.CompetitorAnalysis {
	profile := interestCompetitors["Productivity"]
	for _, tag := range idea.Tags {
		if p, ok := interestCompetitors[tag]; ok {
			profile = p
			break
		}
	}

	gapCount := 3 + s.rng.Intn(2)
	gaps := make([]string, 0, gapCount)
	for _, i := range s.rng.Perm(len(marketGapPool))[:gapCount] {
		gaps = append(gaps, marketGapPool[i])
	}

	return core.CompetitorAnalysis{
		DirectCompetitors:   profile.direct + s.rng.Intn(5),
		IndirectCompetitors: profile.indirect + s.rng.Intn(20),
		AveragePricing:      fmt.Sprintf("$%d/month", profile.pricing+s.rng.Intn(30)),
		MarketGaps:          gaps,
	}
}

// demandSignals derives the aggregate demand picture. The search trend is
// increasing iff any keyword series is rising. The demand score lands in
// [70,95) plus a 5-point bonus for high-match ideas, clamped to 100.
func (s *Synthesizer) demandSignals(idea core.Idea, anyRising bool) core.DemandSignals {
	searchTrend := core.TrendStable
	if anyRising {
		searchTrend = core.TrendIncreasing
	}

	seasonality := "low"
	if s.rng.Float64() > 0.6 {
		seasonality = "high"
	}

	score := s.rng.Intn(25) + 70
	if idea.MatchScore > 90 {
		score += 5
	}
	if score > 100 {
		score = 100
	}

	geo := make([]string, len(geoDistribution))
	copy(geo, geoDistribution)

	return core.DemandSignals{
		SearchTrend:     searchTrend,
		Seasonality:     seasonality,
		GeoDistribution: geo,
		DemandScore:     score,
	}
}
