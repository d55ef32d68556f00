package core

// Option catalogs presented during onboarding. The generation pipeline treats
// profile entries as free strings; these lists exist so the CLI and tests can
// offer the same choices the web client does.

var SkillOptions = []string{
	"Frontend Development", "Backend Development", "Full-Stack Development", "UI/UX Design",
	"Data Analysis", "Machine Learning", "DevOps", "Mobile Development", "Product Management",
	"Marketing", "Sales", "Content Writing", "SEO/SEM", "Business Development", "Customer Support",
}

var InterestOptions = []string{
	"Healthcare", "Education", "Finance", "E-commerce", "Productivity", "Entertainment",
	"Social Media", "Gaming", "Sustainability", "AI/ML", "Remote Work", "Small Business",
	"Real Estate", "Travel", "Fitness", "Food & Cooking", "Mental Health", "Parenting",
}

var ConstraintOptions = []string{
	"Solo Builder", "Limited Budget (<$5k)", "Part-time (10-20hrs/week)", "Full-time (40+hrs/week)",
	"No Technical Background", "Quick to Market (<6 months)", "Bootstrap Only", "Open to Funding",
}

var ValueOptions = []string{
	"Help Small Businesses", "Improve Work-Life Balance", "Reduce Environmental Impact",
	"Democratize Technology", "Support Remote Work", "Enhance Education", "Promote Health & Wellness",
	"Build Community", "Increase Accessibility", "Solve Real Problems",
}
