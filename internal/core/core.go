package core

import "time"

// Experience levels a user can report in their profile.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExperienced  = "experienced"
	ExperienceExpert       = "expert"
)

// Time commitment options.
const (
	TimeWeekend  = "weekend"
	TimePartTime = "parttime"
	TimeFullTime = "fulltime"
)

// Building style options.
const (
	StyleMVP          = "mvp"
	StylePolished     = "polished"
	StyleExperimental = "experimental"
)

// Market size buckets assigned to generated ideas.
const (
	MarketSmall  = "Small"
	MarketMedium = "Medium"
	MarketLarge  = "Large"
)

// Technical complexity buckets.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// Trend direction values for keyword trends and demand signals.
const (
	TrendRising     = "rising"
	TrendStable     = "stable"
	TrendIncreasing = "increasing"
)

// Generator tags recorded on ideas so callers can tell real AI output
// from the synthesized fallback.
const (
	GeneratedByGemini = "Gemini AI"
	GeneratedByMock   = "Enhanced AI Mock"
)

// InsightType identifies one of the on-demand enrichment analyses that can be
// generated for a single idea.
type InsightType string

const (
	InsightTargetAudience     InsightType = "targetAudience"
	InsightMonetization       InsightType = "monetization"
	InsightRoadmap            InsightType = "roadmap"
	InsightCompetitorAnalysis InsightType = "competitorAnalysis"
)

// Profile captures the attributes a user selects during onboarding. It is
// immutable once submitted to generation and is never persisted.
type Profile struct {
	Skills         []string `json:"skills"`         // Selected skill options
	Interests      []string `json:"interests"`      // Selected interest areas
	Constraints    []string `json:"constraints"`    // Selected constraints (budget, time, etc.)
	Values         []string `json:"values"`         // Selected personal values
	Experience     string   `json:"experience"`     // One of the Experience* constants
	TimeCommitment string   `json:"timeCommitment"` // One of the Time* constants
	BuildingStyle  string   `json:"buildingStyle"`  // One of the Style* constants
}

// Idea is a generated SaaS business concept with scoring and descriptive
// metadata. Ideas are read-only after creation; only SavedAt is attached later.
type Idea struct {
	ID                 string   `json:"id"`                       // Generator-assigned unique token
	Title              string   `json:"title"`                    // Idea title
	Description        string   `json:"description"`              // Two-sentence problem/solution pitch
	Market             string   `json:"market"`                   // Small/Medium/Large
	Complexity         string   `json:"complexity"`               // Low/Medium/High
	TimeToRevenue      string   `json:"timeToRevenue"`            // Estimated time to first revenue
	MatchScore         int      `json:"matchScore"`               // Profile match score 0-100
	Tags               []string `json:"tags"`                     // Descriptive tags
	MatchReasoning     string   `json:"matchReasoning"`           // Why this matches the profile
	Differentiator     string   `json:"differentiator,omitempty"` // Unique angle, optional
	ValidationKeywords []string `json:"validationKeywords"`       // Up to 5 search keywords
	GeneratedBy        string   `json:"generatedBy"`              // GeneratedByGemini or GeneratedByMock
	Confidence         int      `json:"confidence"`               // Generator confidence 0-100
}

// MonthlyVolume is a single point in a keyword's search-volume time series.
type MonthlyVolume struct {
	Month  string `json:"month"`  // Short month label, e.g. "Jan 24"
	Volume int    `json:"volume"` // Search volume, floored at 100
}

// KeywordTrend is the synthetic search-trend profile for one keyword.
type KeywordTrend struct {
	CurrentVolume  int             `json:"currentVolume"`  // Base monthly search volume
	Trend          string          `json:"trend"`          // rising or stable
	MonthlyData    []MonthlyVolume `json:"monthlyData"`    // Exactly 12 points
	RelatedQueries []string        `json:"relatedQueries"` // Exactly 5 related searches
}

// SWOT holds the strength/weakness pair identified for a competitor.
type SWOT struct {
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
}

// Competitor is a named competitor with its exploitable SWOT.
type Competitor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	SWOT SWOT   `json:"swot"`
}

// Risk pairs an identified business risk with a mitigation strategy.
type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// UserSentiment aggregates complaints and praise about existing solutions.
type UserSentiment struct {
	CommonComplaints []string `json:"commonComplaints"`
	PositiveKeywords []string `json:"positiveKeywords"`
}

// CompetitorAnalysis summarizes the competitive landscape for an idea.
type CompetitorAnalysis struct {
	DirectCompetitors   int            `json:"directCompetitors"`
	IndirectCompetitors int            `json:"indirectCompetitors"`
	AveragePricing      string         `json:"averagePricing"` // e.g. "$45/month"
	MarketGaps          []string       `json:"marketGaps"`
	TopCompetitors      []Competitor   `json:"topCompetitors,omitempty"`
	KeyRisks            []Risk         `json:"keyRisks,omitempty"`
	UserSentiment       *UserSentiment `json:"aggregatedUserSentiment,omitempty"`
}

// DemandSignals summarizes synthetic demand indicators for an idea.
type DemandSignals struct {
	SearchTrend     string   `json:"searchTrend"` // increasing or stable
	Seasonality     string   `json:"seasonality"` // high or low
	GeoDistribution []string `json:"geoDistribution"`
	DemandScore     int      `json:"demandScore"` // 70-100
}

// ValidationData is the transient market-signal bundle computed for an idea on
// demand. It is never persisted unless the user explicitly saves a validated
// copy of the idea.
type ValidationData struct {
	Keywords           map[string]KeywordTrend `json:"keywords"`
	CompetitorAnalysis CompetitorAnalysis      `json:"competitorAnalysis"`
	DemandSignals      DemandSignals           `json:"demandSignals"`
	TargetAudience     *TargetAudience         `json:"targetAudience,omitempty"`
	Monetization       *MonetizationStrategy   `json:"monetizationStrategy,omitempty"`
	Roadmap            *Roadmap                `json:"roadmap,omitempty"`
}

// Persona describes the headline persona of a target audience.
type Persona struct {
	Name           string `json:"name"`
	JobTitle       string `json:"jobTitle"`
	AgeRange       string `json:"ageRange"`
	Background     string `json:"background"`
	CompanySize    string `json:"companySize"`
	TechSkillLevel string `json:"techSkillLevel"`
}

// PainPoint is a specific problem the persona faces and how they cope today.
type PainPoint struct {
	Problem         string `json:"problem"`
	CurrentSolution string `json:"currentSolution"`
	Impact          string `json:"impact"`
}

// AudienceGoals captures what the persona is trying to achieve.
type AudienceGoals struct {
	PrimaryGoal        string   `json:"primaryGoal"`
	SuccessMetrics     []string `json:"successMetrics"`
	AdoptionMotivators []string `json:"adoptionMotivators"`
}

// BuyingBehavior captures how the persona discovers and purchases tools.
type BuyingBehavior struct {
	DiscoveryChannels []string `json:"discoveryChannels"`
	DecisionMakers    []string `json:"decisionMakers"`
	BuyingFactors     []string `json:"buyingFactors"`
	BudgetRange       string   `json:"budgetRange"`
	WateringHoles     []string `json:"wateringHoles"`
}

// Demographics describes the persona's professional context.
type Demographics struct {
	Industry        string `json:"industry"`
	Experience      string `json:"experience"`
	TeamSize        string `json:"teamSize"`
	BudgetInfluence string `json:"budgetInfluence"`
}

// TargetAudience is the full audience-persona insight for an idea.
type TargetAudience struct {
	Persona        Persona        `json:"persona"`
	Demographics   Demographics   `json:"demographics"`
	PainPoints     []PainPoint    `json:"painPoints"`
	Goals          AudienceGoals  `json:"goals"`
	BuyingBehavior BuyingBehavior `json:"buyingBehavior"`
	DayInTheLife   string         `json:"dayInTheLife"`
}

// PricingTier is one tier of a monetization strategy.
type PricingTier struct {
	Name          string   `json:"name"`
	MonthlyPrice  string   `json:"monthlyPrice"`
	Features      []string `json:"features"`
	TargetSegment string   `json:"targetSegment"`
}

// RevenueStream is a secondary revenue source.
type RevenueStream struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	RevenueEstimate string `json:"revenueEstimate"`
}

// PricingModel names the primary monetization model and why it fits.
type PricingModel struct {
	Type          string `json:"type"`
	Justification string `json:"justification"`
}

// PricingStrategy captures positioning decisions behind the tiers.
type PricingStrategy struct {
	ValueMetric string `json:"valueMetric"`
	Psychology  string `json:"psychology"`
	Positioning string `json:"positioning"`
}

// RevenueProjections holds the coarse financial estimates for year one.
type RevenueProjections struct {
	Year1MRR            string `json:"year1MRR"`
	IndustryAverageCAC  string `json:"industryAverageCAC"`
	CustomerLTV         string `json:"customerLTV"`
	TimeToProfitability string `json:"timeToProfitability"`
}

// MonetizationStrategy is the pricing-strategy insight for an idea.
type MonetizationStrategy struct {
	PrimaryModel     PricingModel       `json:"primaryModel"`
	PricingTiers     []PricingTier      `json:"pricingTiers"`
	PricingStrategy  PricingStrategy    `json:"pricingStrategy"`
	SecondaryStreams []RevenueStream    `json:"secondaryStreams"`
	Projections      RevenueProjections `json:"projections"`
}

// TechStack names the recommended stack for the MVP phase.
type TechStack struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

// MVPPhase is the first roadmap phase with its stack and key decisions.
type MVPPhase struct {
	Timeline     string    `json:"timeline"`
	CoreFeatures []string  `json:"coreFeatures"`
	TechStack    TechStack `json:"techStack"`
	KeyDecisions []string  `json:"keyDecisions"`
}

// GrowthPhase is a post-MVP roadmap phase.
type GrowthPhase struct {
	Timeline           string   `json:"timeline"`
	Features           []string `json:"features,omitempty"`
	Improvements       []string `json:"improvements,omitempty"`
	AdvancedFeatures   []string `json:"advancedFeatures,omitempty"`
	Integrations       []string `json:"integrations,omitempty"`
	EnterpriseFeatures []string `json:"enterpriseFeatures,omitempty"`
	ScalingNotes       string   `json:"scalingNotes,omitempty"`
}

// TechnicalConsiderations collects cross-cutting engineering concerns.
type TechnicalConsiderations struct {
	Architecture         string   `json:"architecture"`
	ThirdPartyServices   []string `json:"thirdPartyServices"`
	SecurityRequirements []string `json:"securityRequirements"`
	PerformanceGoals     []string `json:"performanceGoals"`
}

// ResourceRequirements estimates the team and budget per phase.
type ResourceRequirements struct {
	MVPTeam          []string `json:"mvpTeam"`
	DevelopmentHours string   `json:"developmentHours"`
	KeySkills        []string `json:"keySkills"`
	BudgetRange      string   `json:"budgetRange"`
}

// Roadmap is the phased technical-roadmap insight for an idea.
type Roadmap struct {
	MVP                     MVPPhase                `json:"mvp"`
	Phase2                  GrowthPhase             `json:"phase2"`
	Phase3                  GrowthPhase             `json:"phase3"`
	TechnicalConsiderations TechnicalConsiderations `json:"technicalConsiderations"`
	ResourceRequirements    ResourceRequirements    `json:"resourceRequirements"`
}

// SavedIdea is the persisted projection of an Idea for one user. One row per
// (user, idea); created on save, never mutated, deleted on explicit unsave.
type SavedIdea struct {
	Idea
	UserID         string          `json:"userId"`
	SavedAt        time.Time       `json:"savedAt"`
	Validated      bool            `json:"validated,omitempty"`
	ValidationData *ValidationData `json:"validationData,omitempty"` // Snapshot when saving a validated copy
}

// User is the identity delivered by the external identity provider.
type User struct {
	ID      string `json:"id"` // Provider subject id
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
