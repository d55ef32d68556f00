package synth

import (
	"fmt"
	"strings"

	"ideaforge/internal/core"
)

// primaryTag returns the idea's first tag, used to flavor the static insight
// payloads, defaulting to a neutral industry label.
func primaryTag(idea core.Idea) string {
	if len(idea.Tags) > 0 {
		return idea.Tags[0]
	}
	return "SaaS"
}

// Persona synthesizes a representative target-audience insight for an idea.
// Shape matches model output; values are static apart from idea-derived text.
func (s *Synthesizer) Persona(idea core.Idea) *core.TargetAudience {
	industry := primaryTag(idea)
	return &core.TargetAudience{
		Persona: core.Persona{
			Name:           "Jordan Miller",
			JobTitle:       fmt.Sprintf("%s Operations Manager", industry),
			AgeRange:       "32-45",
			Background:     fmt.Sprintf("8+ years managing %s workflows, promoted from an individual contributor role", strings.ToLower(industry)),
			CompanySize:    "11-50 employees",
			TechSkillLevel: "Intermediate",
		},
		Demographics: core.Demographics{
			Industry:        industry,
			Experience:      "5-10 years",
			TeamSize:        "3-8 direct reports",
			BudgetInfluence: "Recommends purchases, final sign-off from leadership",
		},
		PainPoints: []core.PainPoint{
			{
				Problem:         fmt.Sprintf("Manual, repetitive %s processes eat hours every week", strings.ToLower(industry)),
				CurrentSolution: "Spreadsheets and ad-hoc email threads",
				Impact:          "10+ hours per week lost to coordination overhead",
			},
			{
				Problem:         "No single view of what the team is working on",
				CurrentSolution: "Weekly status meetings",
				Impact:          "Decisions made on stale information",
			},
			{
				Problem:         "Existing tools are built for enterprises and priced accordingly",
				CurrentSolution: "Underusing a legacy suite bought years ago",
				Impact:          "Paying for features nobody touches",
			},
		},
		Goals: core.AudienceGoals{
			PrimaryGoal: "Cut coordination overhead and ship work predictably",
			SuccessMetrics: []string{
				"Hours saved per week",
				"On-time delivery rate",
				"Team adoption within 30 days",
			},
			AdoptionMotivators: []string{
				"Fast setup without IT involvement",
				"Visible time savings in the first week",
				"Transparent pricing",
			},
		},
		BuyingBehavior: core.BuyingBehavior{
			DiscoveryChannels: []string{"Google search", "Peer recommendations", "Industry newsletters"},
			DecisionMakers:    []string{"Operations manager", "Department head"},
			BuyingFactors:     []string{"Ease of onboarding", "Monthly price under budget threshold", "Integrations with existing tools"},
			BudgetRange:       "$50-200/month",
			WateringHoles:     []string{"r/smallbusiness", "LinkedIn groups", "Industry Slack communities"},
		},
		DayInTheLife: fmt.Sprintf("Starts the morning triaging overnight requests, spends midday unblocking the team across three disconnected tools, and ends the day manually compiling a status report for leadership. A %s that removed the copy-paste work would win them over immediately.", idea.Title),
	}
}

// Monetization synthesizes a representative pricing-strategy insight.
func (s *Synthesizer) Monetization(idea core.Idea) *core.MonetizationStrategy {
	return &core.MonetizationStrategy{
		PrimaryModel: core.PricingModel{
			Type:          "Tiered subscription",
			Justification: "Recurring value delivery with a natural upgrade path as team usage grows",
		},
		PricingTiers: []core.PricingTier{
			{
				Name:          "Starter",
				MonthlyPrice:  "$19",
				Features:      []string{"Core workflow", "1 user", "Email support"},
				TargetSegment: "Solo founders and freelancers",
			},
			{
				Name:          "Team",
				MonthlyPrice:  "$49",
				Features:      []string{"Everything in Starter", "Up to 10 users", "Integrations", "Priority support"},
				TargetSegment: "Small teams",
			},
			{
				Name:          "Business",
				MonthlyPrice:  "$129",
				Features:      []string{"Everything in Team", "Unlimited users", "Advanced reporting", "SSO"},
				TargetSegment: "Growing companies",
			},
		},
		PricingStrategy: core.PricingStrategy{
			ValueMetric: "Active users per workspace",
			Psychology:  "Middle tier anchored as the default choice",
			Positioning: "Premium alternative to spreadsheets, affordable alternative to enterprise suites",
		},
		SecondaryStreams: []core.RevenueStream{
			{
				Name:            "Annual plans",
				Description:     "Two months free for annual commitment",
				RevenueEstimate: "20-30% of subscription revenue",
			},
			{
				Name:            "Onboarding services",
				Description:     "Paid migration and setup for larger accounts",
				RevenueEstimate: "$500-2,000 per engagement",
			},
		},
		Projections: core.RevenueProjections{
			Year1MRR:            "$8,000-15,000",
			IndustryAverageCAC:  "$200-400",
			CustomerLTV:         "$1,500-3,000",
			TimeToProfitability: "12-18 months",
		},
	}
}

// RoadmapPlan synthesizes a representative phased technical roadmap.
func (s *Synthesizer) RoadmapPlan(idea core.Idea) *core.Roadmap {
	return &core.Roadmap{
		MVP: core.MVPPhase{
			Timeline: "Months 1-3",
			CoreFeatures: []string{
				"User accounts and workspace setup",
				fmt.Sprintf("Core %s workflow", strings.ToLower(primaryTag(idea))),
				"Basic dashboard",
				"Stripe billing",
			},
			TechStack: core.TechStack{
				Frontend: "React",
				Backend:  "Node.js or Go API",
				Database: "PostgreSQL",
			},
			KeyDecisions: []string{
				"Single-tenant vs multi-tenant data model",
				"Build vs buy for authentication",
			},
		},
		Phase2: core.GrowthPhase{
			Timeline: "Months 4-6",
			Features: []string{
				"Team collaboration",
				"Email notifications",
				"CSV import/export",
			},
			Improvements: []string{"Onboarding polish based on early feedback", "Performance tuning"},
			Integrations: []string{"Slack", "Zapier"},
		},
		Phase3: core.GrowthPhase{
			Timeline: "Months 7-12",
			AdvancedFeatures: []string{
				"Reporting and analytics",
				"API for power users",
			},
			EnterpriseFeatures: []string{"SSO", "Audit logs", "Role-based access"},
			ScalingNotes:       "Introduce background job queue and read replicas once usage warrants",
		},
		TechnicalConsiderations: core.TechnicalConsiderations{
			Architecture:       "Monolith first, extract services only under proven load",
			ThirdPartyServices: []string{"Stripe", "SendGrid", "Google OAuth"},
			SecurityRequirements: []string{
				"Encryption at rest and in transit",
				"Per-workspace data isolation",
			},
			PerformanceGoals: []string{"Sub-200ms API responses", "99.9% uptime"},
		},
		ResourceRequirements: core.ResourceRequirements{
			MVPTeam:          []string{"1 full-stack engineer", "1 designer (part-time)"},
			DevelopmentHours: "400-600 hours",
			KeySkills:        []string{"Full-stack web development", "Product design", "DevOps basics"},
			BudgetRange:      "$15,000-40,000",
		},
	}
}
