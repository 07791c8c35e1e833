package models

// Fallback content used when no record has been saved. Each constructor
// returns the same type the store persists so templates see one shape.

func DefaultHomePageContent() *HomePageContent {
	return &HomePageContent{
		HeroKicker:        "For international students in the U.S.",
		HeroHeadline:      "Health insurance that makes sense for your student life",
		HeroSubheadline:   "Compare school-approved plans side by side, check what your campus requires, and enroll with confidence.",
		PrimaryCTALabel:   "Compare Plans",
		PrimaryCTAURL:     "/product/",
		SecondaryCTALabel: "Learn more",
		SecondaryCTAURL:   "/about/",
		TrustHeading:      "Trusted by students",
		TrustBody:         "Students from universities across the country use Insurance Buddy to find coverage that meets their visa and waiver requirements.",
		Stats: []HomeStat{
			{Value: "90+", Label: "plans", Description: "reviewed for student eligibility", DisplayOrder: 0},
			{Value: "18", Label: "insurers", Description: "from marketplace to global carriers", DisplayOrder: 1},
			{Value: "$25", Label: "per month", Description: "starting price for basic coverage", DisplayOrder: 2},
		},
		Features: []HomeFeature{
			{Icon: "🔎", Title: "Side-by-side comparison", Description: "Deductibles, out-of-pocket limits and referral rules in one table.", DisplayOrder: 0},
			{Icon: "🎓", Title: "Campus-aware", Description: "Filter by the city you study in and the people you need to cover.", DisplayOrder: 1},
			{Icon: "✨", Title: "Plain language", Description: "Every plan summarized without the fine-print jargon.", DisplayOrder: 2},
		},
	}
}

func DefaultAboutPageContent() *AboutPageContent {
	return &AboutPageContent{
		Kicker:   "Our mission",
		Headline: "Helping international students stay covered",
		Intro:    "Insurance Buddy started with students who found U.S. health insurance confusing. We collect plan details in one place so you can choose quickly and stay compliant.",
		Values: []AboutValue{
			{Icon: "💡", Title: "Clarity", Description: "We explain coverage in terms students actually use.", DisplayOrder: 0},
			{Icon: "🤝", Title: "Independence", Description: "Plans are listed on their merits, not on commissions.", DisplayOrder: 1},
			{Icon: "🌍", Title: "Global perspective", Description: "Built by people who have navigated the system from abroad.", DisplayOrder: 2},
		},
	}
}

func DefaultProductPageContent() *ProductPageContent {
	return &ProductPageContent{
		Kicker:           "Plan builder",
		Headline:         "Find the right plan for you",
		Subheadline:      "Tell us who needs coverage, how old they are and where you study.",
		SummaryLine:      "Plans matched to your campus and eligibility",
		SummarySecondary: "Compare up to three plans side by side",
	}
}

func DefaultContactPageContent() *ContactPageContent {
	return &ContactPageContent{
		Kicker:       "We are here to help",
		Headline:     "Questions about coverage?",
		Intro:        "Send us a message and our team will get back to you within two business days.",
		SupportEmail: "support@insurancebuddy.com",
	}
}

// DefaultSegments are shown when no audience segments have been saved.
// Their slugs match the plan filter's member types.
func DefaultSegments() []*AudienceSegment {
	return []*AudienceSegment{
		{Slug: MemberAdult, Label: "Students", Description: "Coverage for yourself while you study", Icon: "🎓", DisplayOrder: 0, IsDefault: true},
		{Slug: MemberChild, Label: "Dependents", Description: "Plans that cover children and dependents", Icon: "🧒", DisplayOrder: 1},
		{Slug: MemberFamily, Label: "Families", Description: "One plan for you and your family", Icon: "👪", DisplayOrder: 2},
		{Slug: MemberGovernment, Label: "Government programs", Description: "Medicaid, CHIP and other public coverage", Icon: "🏛️", DisplayOrder: 3},
	}
}
