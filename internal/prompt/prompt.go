// Package prompt builds the natural-language instructions sent to the
// generative model. Builders are pure: the same input always produces the
// same prompt string, and building never fails for known insight types.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"ideaforge/internal/core"
)

// ErrUnknownInsightType is returned when an insight type outside the known
// set is requested.
var ErrUnknownInsightType = errors.New("unknown insight type")

// IdeaCount is the number of ideas every generation prompt asks for.
const IdeaCount = 6

const ideaPromptTemplate = `You are an expert SaaS idea generator and startup advisor. Generate %d highly personalized SaaS business ideas for this user profile:

SKILLS: %s
INTERESTS: %s
CONSTRAINTS: %s
VALUES: %s
EXPERIENCE: %s
TIME COMMITMENT: %s
BUILDING STYLE: %s

For each idea, provide:
1. A compelling title that combines their skills/interests uniquely
2. A 2-sentence description focusing on the specific problem and solution
3. Target market size (Small/Medium/Large)
4. Technical complexity (Low/Medium/High)
5. Time to first revenue (in months)
6. Why this matches their profile specifically
7. 3-5 relevant tags
8. A unique differentiator that leverages their specific combination

Focus on:
- Micro-SaaS opportunities ($5K-$50K ARR potential)
- Problems they've likely experienced personally
- Ideas that can be validated quickly
- Solutions that don't require huge teams or funding
- Opportunities in growing but not oversaturated markets

Return ONLY valid JSON in this exact format:
{
  "ideas": [
    {
      "title": "string",
      "description": "string",
      "market": "Small|Medium|Large",
      "complexity": "Low|Medium|High",
      "timeToRevenue": "string",
      "matchReasoning": "string",
      "tags": ["string"],
      "differentiator": "string",
      "validationKeywords": ["string"]
    }
  ]
}`

// BuildIdeaPrompt renders the idea-generation prompt for a profile. Empty
// optional fields degrade to empty interpolation; building never fails.
func BuildIdeaPrompt(profile core.Profile) string {
	return fmt.Sprintf(ideaPromptTemplate,
		IdeaCount,
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.Interests, ", "),
		strings.Join(profile.Constraints, ", "),
		strings.Join(profile.Values, ", "),
		profile.Experience,
		profile.TimeCommitment,
		profile.BuildingStyle,
	)
}

// BuildInsightPrompt renders the prompt for one of the per-idea insight
// analyses. It fails only for an unknown insight type.
func BuildInsightPrompt(idea core.Idea, insightType core.InsightType) (string, error) {
	switch insightType {
	case core.InsightTargetAudience:
		return buildTargetAudiencePrompt(idea), nil
	case core.InsightMonetization:
		return buildMonetizationPrompt(idea), nil
	case core.InsightRoadmap:
		return buildRoadmapPrompt(idea), nil
	case core.InsightCompetitorAnalysis:
		return buildCompetitorAnalysisPrompt(idea), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInsightType, insightType)
	}
}

func tagList(idea core.Idea) string {
	if len(idea.Tags) == 0 {
		return "N/A"
	}
	return strings.Join(idea.Tags, ", ")
}

func buildTargetAudiencePrompt(idea core.Idea) string {
	return fmt.Sprintf(`You are an expert market researcher and business analyst. Create a detailed target audience persona for this SaaS business idea:

BUSINESS IDEA:
Title: %s
Description: %s
Market: %s
Tags: %s

Generate a realistic target audience persona with these details:

1. PERSONA PROFILE:
   - A memorable name and job title (e.g., "Marketing Manager Mary" or "Solo Developer Sarah")
   - Age range and professional background
   - Company size they typically work for
   - Technical skill level (Beginner/Intermediate/Advanced)

2. DEMOGRAPHICS:
   - Industry they work in
   - Years of experience in their role
   - Team size they manage or work with
   - Annual budget they control or influence

3. KEY PAIN POINTS:
   - 3-4 specific problems this persona faces that the idea would solve
   - Current workarounds or tools they use (and their limitations)
   - Impact of these problems on their work/business

4. GOALS & MOTIVATIONS:
   - What they're trying to achieve professionally
   - How success is measured in their role
   - What would make them consider adopting a new tool

5. BUYING BEHAVIOR:
   - How they discover new tools
   - Who else is involved in purchase decisions
   - What factors influence their buying decisions
   - Typical budget range for tools like this
   - Where they hang out online (specific subreddits, LinkedIn groups, forums, Slack communities)

6. DAY IN THE LIFE:
   - A brief narrative (2-3 sentences) of their typical workday, highlighting their key struggles and frustrations

Return ONLY valid JSON in this exact format:
{
  "persona": {
    "name": "string",
    "jobTitle": "string",
    "ageRange": "string",
    "background": "string",
    "companySize": "string",
    "techSkillLevel": "string"
  },
  "demographics": {
    "industry": "string",
    "experience": "string",
    "teamSize": "string",
    "budgetInfluence": "string"
  },
  "painPoints": [
    {
      "problem": "string",
      "currentSolution": "string",
      "impact": "string"
    }
  ],
  "goals": {
    "primaryGoal": "string",
    "successMetrics": ["string"],
    "adoptionMotivators": ["string"]
  },
  "buyingBehavior": {
    "discoveryChannels": ["string"],
    "decisionMakers": ["string"],
    "buyingFactors": ["string"],
    "budgetRange": "string",
    "wateringHoles": ["string"]
  },
  "dayInTheLife": "string"
}`, idea.Title, idea.Description, idea.Market, tagList(idea))
}

func buildMonetizationPrompt(idea core.Idea) string {
	return fmt.Sprintf(`You are an expert SaaS pricing strategist and business model consultant. Create a comprehensive monetization strategy for this SaaS business idea:

BUSINESS IDEA:
Title: %s
Description: %s
Market: %s
Complexity: %s
Tags: %s

Generate a detailed monetization strategy with these components:

1. PRIMARY MODEL:
   - Recommended pricing model (Subscription, Usage-based, One-time, Freemium, etc.)
   - Justification for why this model fits best

2. PRICING TIERS:
   - 3 pricing tiers (e.g., Starter, Professional, Enterprise)
   - Monthly price for each tier
   - Key features included in each tier
   - Target customer segment for each tier

3. PRICING STRATEGY:
   - Value metric (what you charge based on)
   - Pricing psychology considerations
   - Competitive positioning

4. SECONDARY REVENUE STREAMS:
   - 2-3 additional ways to generate revenue
   - Revenue potential for each stream

5. FINANCIAL PROJECTIONS:
   - Estimated monthly recurring revenue (MRR) targets for Year 1
   - Industry-typical customer acquisition cost (CAC) with research-based ranges
   - More detailed customer lifetime value (LTV) calculation methodology
   - Realistic time to profitability assessment

Return ONLY valid JSON in this exact format:
{
  "primaryModel": {
    "type": "string",
    "justification": "string"
  },
  "pricingTiers": [
    {
      "name": "string",
      "monthlyPrice": "string",
      "features": ["string"],
      "targetSegment": "string"
    }
  ],
  "pricingStrategy": {
    "valueMetric": "string",
    "psychology": "string",
    "positioning": "string"
  },
  "secondaryStreams": [
    {
      "name": "string",
      "description": "string",
      "revenueEstimate": "string"
    }
  ],
  "projections": {
    "year1MRR": "string",
    "industryAverageCAC": "string",
    "customerLTV": "string",
    "timeToProfitability": "string"
  }
}`, idea.Title, idea.Description, idea.Market, idea.Complexity, tagList(idea))
}

func buildRoadmapPrompt(idea core.Idea) string {
	return fmt.Sprintf(`You are an experienced product manager and technical lead. Create a detailed technical roadmap for building this SaaS product:

BUSINESS IDEA:
Title: %s
Description: %s
Complexity: %s
Time to Revenue: %s
Tags: %s

Generate a phased technical roadmap with these details:

1. MVP (MINIMUM VIABLE PRODUCT):
   - Timeline (weeks/months)
   - Core features that must be included
   - Technology stack recommendations
   - Key technical decisions

2. PHASE 2 (POST-MVP):
   - Timeline from MVP launch
   - Additional features to build
   - Technical improvements
   - Scaling considerations

3. PHASE 3 (GROWTH):
   - Timeline from Phase 2
   - Advanced features
   - Integrations and partnerships
   - Enterprise features

4. TECHNICAL CONSIDERATIONS:
   - Frontend framework recommendations
   - Backend architecture
   - Database choices
   - Third-party integrations needed
   - Security requirements

5. RESOURCE REQUIREMENTS:
   - Team composition for each phase
   - Estimated development hours
   - Key technical skills needed
   - Budget considerations

Return ONLY valid JSON in this exact format:
{
  "mvp": {
    "timeline": "string",
    "coreFeatures": ["string"],
    "techStack": {
      "frontend": "string",
      "backend": "string",
      "database": "string"
    },
    "keyDecisions": ["string"]
  },
  "phase2": {
    "timeline": "string",
    "features": ["string"],
    "improvements": ["string"],
    "scalingNotes": "string"
  },
  "phase3": {
    "timeline": "string",
    "advancedFeatures": ["string"],
    "integrations": ["string"],
    "enterpriseFeatures": ["string"]
  },
  "technicalConsiderations": {
    "architecture": "string",
    "thirdPartyServices": ["string"],
    "securityRequirements": ["string"],
    "performanceGoals": ["string"]
  },
  "resourceRequirements": {
    "mvpTeam": ["string"],
    "developmentHours": "string",
    "keySkills": ["string"],
    "budgetRange": "string"
  }
}`, idea.Title, idea.Description, idea.Complexity, idea.TimeToRevenue, tagList(idea))
}

func buildCompetitorAnalysisPrompt(idea core.Idea) string {
	return fmt.Sprintf(`You are a startup strategist and market analyst. For the business idea "%s", provide a deep competitor and risk analysis.

BUSINESS IDEA:
Title: %s
Description: %s
Market: %s
Tags: %s

Generate a comprehensive analysis with these components:

1. TOP COMPETITORS:
   - Identify 3-5 key competitors (direct and indirect)
   - For each competitor, provide their URL and a SWOT analysis focusing on:
     * One key strength they have
     * One exploitable weakness you've identified

2. USER SENTIMENT ANALYSIS:
   - Research common complaints users have about existing solutions
   - Identify what users consistently praise about current tools
   - Focus on patterns that reveal market gaps

3. KEY RISKS & MITIGATION:
   - Identify 3-4 major risks this business idea faces
   - For each risk, provide a specific, actionable mitigation strategy
   - Consider market saturation, customer acquisition challenges, technical barriers, and competitive threats

Return ONLY valid JSON in this exact format:
{
  "topCompetitors": [
    {
      "name": "string",
      "url": "string",
      "swot": {
        "strength": "string",
        "weakness": "string"
      }
    }
  ],
  "aggregatedUserSentiment": {
    "commonComplaints": ["string"],
    "positiveKeywords": ["string"]
  },
  "keyRisks": [
    {
      "risk": "string",
      "mitigation": "string"
    }
  ]
}`, idea.Title, idea.Title, idea.Description, idea.Market, tagList(idea))
}
