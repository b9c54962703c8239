package analysis

import "github.com/strategize/pathway/pkg/models"

// The heuristic tables driving stage output live here as data so they can be
// tuned and tested independently of the stage algorithms.

// streamSignal raises a revenue model's feasibility when its phrase appears
// in the session's problem description or target market.
type streamSignal struct {
	phrase string
	boost  float64
}

var streamSignals = map[models.RevenueStreamType][]streamSignal{
	models.RevenueSubscription: {
		{"saas", 0.25}, {"subscription", 0.3}, {"recurring", 0.25},
		{"software", 0.15}, {"platform", 0.1}, {"b2b", 0.1},
	},
	models.RevenueFreemium: {
		{"freemium", 0.3}, {"free tier", 0.25}, {"consumer", 0.15},
		{"app", 0.1}, {"viral", 0.15}, {"self-serve", 0.15},
	},
	models.RevenueMarketplace: {
		{"marketplace", 0.3}, {"buyers and sellers", 0.3}, {"two-sided", 0.25},
		{"listing", 0.15}, {"matching", 0.1},
	},
	models.RevenueTransactionFee: {
		{"transaction", 0.25}, {"payment", 0.25}, {"booking", 0.2},
		{"checkout", 0.2}, {"per order", 0.2},
	},
	models.RevenueAdvertising: {
		{"advertising", 0.3}, {"content", 0.15}, {"audience", 0.2},
		{"media", 0.15}, {"traffic", 0.15},
	},
	models.RevenueLicensing: {
		{"licensing", 0.3}, {"license", 0.25}, {"patent", 0.2},
		{"white label", 0.25}, {"intellectual property", 0.2},
	},
	models.RevenueConsulting: {
		{"consulting", 0.3}, {"services", 0.15}, {"advisory", 0.25},
		{"implementation", 0.1}, {"expertise", 0.15},
	},
	models.RevenueOneTime: {
		{"one-time", 0.3}, {"hardware", 0.25}, {"device", 0.2},
		{"perpetual", 0.2}, {"lifetime", 0.2},
	},
}

// streamBaseline keeps every candidate on the table even without signal
// matches, so the ranking is always total over the enumeration.
const streamBaseline = 0.35

const maxFeasibility = 0.95

// streamPros and streamCons feed the per-stream verdicts.
var streamPros = map[models.RevenueStreamType][]string{
	models.RevenueSubscription:   {"Predictable recurring revenue", "Compounds with retention"},
	models.RevenueFreemium:       {"Low-friction acquisition", "Built-in upgrade funnel"},
	models.RevenueMarketplace:    {"Network effects once liquid", "Scales without inventory"},
	models.RevenueTransactionFee: {"Revenue tracks customer success", "No upfront price objection"},
	models.RevenueAdvertising:    {"Monetizes free usage", "No direct charge to users"},
	models.RevenueLicensing:      {"High-margin once built", "Leverages existing channels"},
	models.RevenueConsulting:     {"Immediate cash flow", "Deep customer insight"},
	models.RevenueOneTime:        {"Simple to communicate", "No churn management"},
	models.RevenueHybrid:         {"Diversified revenue base", "Captures multiple buyer types"},
}

var streamCons = map[models.RevenueStreamType][]string{
	models.RevenueSubscription:   {"Churn erodes growth", "Slower payback on acquisition cost"},
	models.RevenueFreemium:       {"Low conversion rates are common", "Free users carry real cost"},
	models.RevenueMarketplace:    {"Cold-start problem on both sides", "Disintermediation risk"},
	models.RevenueTransactionFee: {"Revenue volatility", "Fee pressure from competitors"},
	models.RevenueAdvertising:    {"Needs large audience first", "Misaligned user incentives"},
	models.RevenueLicensing:      {"Long sales cycles", "Partner dependence"},
	models.RevenueConsulting:     {"Does not scale with headcount flat", "Distracts from product"},
	models.RevenueOneTime:        {"No recurring base", "Constant new-customer pressure"},
	models.RevenueHybrid:         {"Operational complexity", "Split focus across models"},
}

var streamImplementation = map[models.RevenueStreamType]string{
	models.RevenueSubscription:   "Start with a single monthly plan, add an annual tier once retention is proven.",
	models.RevenueFreemium:       "Gate the highest-value capability behind the paid tier and instrument the upgrade path.",
	models.RevenueMarketplace:    "Seed supply manually in one niche before opening demand-side acquisition.",
	models.RevenueTransactionFee: "Take a small percentage per transaction and raise it only after demonstrating value.",
	models.RevenueAdvertising:    "Defer monetization until audience scale, then start with direct sponsorships.",
	models.RevenueLicensing:      "Package the core capability as a licensable component with a reference integration.",
	models.RevenueConsulting:     "Productize delivery into fixed-scope engagements to protect margins.",
	models.RevenueOneTime:        "Price against the alternative's total cost and bundle onboarding.",
	models.RevenueHybrid:         "Anchor on the strongest model and layer the second once it is stable.",
}

// segmentArchetype seeds the segmentation stage with segments that fit the
// leading revenue model.
type segmentArchetype struct {
	name                string
	sizeTier            string
	painPoints          []string
	valuePropositions   []string
	acquisitionChannels []string
	clv                 float64
	cac                 float64
}

var segmentArchetypes = map[models.RevenueStreamType][]segmentArchetype{
	models.RevenueSubscription: {
		{
			name:                "Early-adopter teams",
			sizeTier:            "small",
			painPoints:          []string{"Manual workflows", "Tool sprawl"},
			valuePropositions:   []string{"Fast setup", "Replaces point tools"},
			acquisitionChannels: []string{"Content marketing", "Product-led signup"},
			clv:                 2400, cac: 350,
		},
		{
			name:                "Mid-market operators",
			sizeTier:            "medium",
			painPoints:          []string{"Process visibility", "Compliance overhead"},
			valuePropositions:   []string{"Team-wide reporting", "Audit trail"},
			acquisitionChannels: []string{"Outbound sales", "Partner referrals"},
			clv:                 18000, cac: 4200,
		},
	},
	models.RevenueMarketplace: {
		{
			name:                "Supply-side professionals",
			sizeTier:            "small",
			painPoints:          []string{"Customer discovery", "Payment friction"},
			valuePropositions:   []string{"Qualified demand", "Handled payments"},
			acquisitionChannels: []string{"Community outreach", "Referral incentives"},
			clv:                 3600, cac: 200,
		},
		{
			name:                "Demand-side buyers",
			sizeTier:            "large",
			painPoints:          []string{"Vetting vendors", "Price opacity"},
			valuePropositions:   []string{"Verified providers", "Transparent pricing"},
			acquisitionChannels: []string{"Search marketing", "Word of mouth"},
			clv:                 900, cac: 60,
		},
	},
	models.RevenueConsulting: {
		{
			name:                "Executive sponsors",
			sizeTier:            "large",
			painPoints:          []string{"In-house skill gaps", "Delivery risk"},
			valuePropositions:   []string{"Outcome-priced engagements", "Senior expertise"},
			acquisitionChannels: []string{"Referral network", "Industry events"},
			clv:                 60000, cac: 8000,
		},
	},
}

// defaultArchetypes applies when no table entry exists for the leading
// revenue model.
var defaultArchetypes = []segmentArchetype{
	{
		name:                "Primary adopters",
		sizeTier:            "small",
		painPoints:          []string{"Unsolved core problem", "Workaround fatigue"},
		valuePropositions:   []string{"Direct fit to the stated problem"},
		acquisitionChannels: []string{"Founder-led outreach", "Niche communities"},
		clv:                 1200, cac: 250,
	},
	{
		name:                "Expansion accounts",
		sizeTier:            "medium",
		painPoints:          []string{"Scaling the manual alternative"},
		valuePropositions:   []string{"Grows with usage"},
		acquisitionChannels: []string{"Case studies", "Upsell from primary adopters"},
		clv:                 9000, cac: 2000,
	},
}

// pricingByStream maps the recommended model to its pricing approach.
var pricingByStream = map[models.RevenueStreamType]models.PricingStrategy{
	models.RevenueSubscription: {
		Model: "tiered subscription",
		Tiers: []models.PricingTier{
			{Name: "Starter", Price: "$29/mo", Includes: []string{"Core features", "Single workspace"}},
			{Name: "Growth", Price: "$99/mo", Includes: []string{"Everything in Starter", "Team collaboration", "Priority support"}},
			{Name: "Scale", Price: "custom", Includes: []string{"Everything in Growth", "SSO", "Dedicated onboarding"}},
		},
		Reasoning:       "Tiering separates individual adoption from team expansion without repricing existing customers.",
		TestingApproach: "Run a price-sensitivity survey on trial signups, then A/B the Growth price point.",
	},
	models.RevenueFreemium: {
		Model: "freemium with usage gates",
		Tiers: []models.PricingTier{
			{Name: "Free", Price: "$0", Includes: []string{"Core features", "Usage cap"}},
			{Name: "Pro", Price: "$15/mo", Includes: []string{"Uncapped usage", "Advanced features"}},
		},
		Reasoning:       "A generous free tier drives acquisition while the usage gate converts engaged users.",
		TestingApproach: "Tune the usage cap against the conversion funnel before touching the Pro price.",
	},
	models.RevenueTransactionFee: {
		Model:           "percentage per transaction",
		Reasoning:       "Fees scale with the value delivered and avoid an upfront purchase decision.",
		TestingApproach: "Pilot at a low take rate with a handful of accounts, then measure volume elasticity.",
	},
	models.RevenueMarketplace: {
		Model:           "commission on completed transactions",
		Reasoning:       "Charging only on success keeps both sides onboard during the liquidity-building phase.",
		TestingApproach: "Compare commission tiers across two supply cohorts before standardizing.",
	},
}

var defaultPricing = models.PricingStrategy{
	Model:           "value-based flat pricing",
	Reasoning:       "A single price anchored to the customer's alternative keeps early sales conversations simple.",
	TestingApproach: "Interview ten prospects on willingness to pay before publishing the price.",
}

var optimizationTactics = []string{
	"Instrument the activation funnel end to end",
	"Introduce annual prepay once monthly retention stabilizes",
	"Review pricing quarterly against win/loss notes",
}

var growthLevers = []string{
	"Expansion revenue from existing accounts",
	"Referral loop from successful customers",
	"Content targeting the core pain point",
}

var monetizationRisks = []string{
	"Willingness to pay unproven at target price",
	"Incumbent response compresses pricing",
	"Acquisition cost outpaces early revenue",
}

var roadmapMetrics = []models.SuccessMetric{
	{Name: "Activation rate", Target: "40% of signups reach first value", Cadence: "weekly", DataSource: "product analytics"},
	{Name: "Net revenue retention", Target: "above 100%", Cadence: "monthly", DataSource: "billing system"},
	{Name: "Payback period", Target: "under 12 months", Cadence: "quarterly", DataSource: "finance model"},
}
