package models

import "time"

// StageType identifies one step of the business-model analysis pipeline.
type StageType string

const (
	StageRevenueAnalysis      StageType = "revenue_analysis"
	StageCustomerSegmentation StageType = "customer_segmentation"
	StageMonetizationStrategy StageType = "monetization_strategy"
	StageRoadmapGeneration    StageType = "roadmap_generation"
)

// StageOrder lists the pipeline stages in execution order. Later stages may
// not run until every earlier stage has a successful result.
var StageOrder = []StageType{
	StageRevenueAnalysis,
	StageCustomerSegmentation,
	StageMonetizationStrategy,
	StageRoadmapGeneration,
}

// RevenueStreamType enumerates the candidate revenue models.
type RevenueStreamType string

const (
	RevenueSubscription   RevenueStreamType = "subscription"
	RevenueOneTime        RevenueStreamType = "one_time"
	RevenueFreemium       RevenueStreamType = "freemium"
	RevenueTransactionFee RevenueStreamType = "transaction_fee"
	RevenueAdvertising    RevenueStreamType = "advertising"
	RevenueLicensing      RevenueStreamType = "licensing"
	RevenueConsulting     RevenueStreamType = "consulting"
	RevenueMarketplace    RevenueStreamType = "marketplace"
	RevenueHybrid         RevenueStreamType = "hybrid"
)

// RevenueStream is one candidate revenue model with its feasibility verdict.
type RevenueStream struct {
	Type             RevenueStreamType `json:"type"`
	FeasibilityScore float64           `json:"feasibility_score"`
	Pros             []string          `json:"pros"`
	Cons             []string          `json:"cons"`
	Implementation   string            `json:"implementation"`
}

// RevenueAnalysis is the output of the first pipeline stage: candidate
// revenue streams ranked by feasibility.
type RevenueAnalysis struct {
	Streams     []RevenueStream `json:"streams"`
	Summary     string          `json:"summary"`
	Confidence  float64         `json:"confidence"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// CustomerSegment describes one identified customer group.
type CustomerSegment struct {
	Name                string   `json:"name"`
	SizeTier            string   `json:"size_tier"`
	PainPoints          []string `json:"pain_points"`
	ValuePropositions   []string `json:"value_propositions"`
	AcquisitionChannels []string `json:"acquisition_channels"`
	EstimatedCLV        *float64 `json:"estimated_clv,omitempty"`
	EstimatedCAC        *float64 `json:"estimated_cac,omitempty"`
}

// CustomerAnalysis is the output of the segmentation stage.
type CustomerAnalysis struct {
	Segments    []CustomerSegment `json:"segments"`
	Prioritized []string          `json:"prioritized"` // Names of segments to pursue first
	Rationale   string            `json:"rationale"`
	Confidence  float64           `json:"confidence"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// PricingTier is one rung of a tiered pricing strategy.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Includes []string `json:"includes"`
}

// PricingStrategy describes how the recommended model should be priced.
type PricingStrategy struct {
	Model           string        `json:"model"`
	Tiers           []PricingTier `json:"tiers,omitempty"`
	Reasoning       string        `json:"reasoning"`
	TestingApproach string        `json:"testing_approach"`
}

// MonetizationStrategy is the output of the third pipeline stage.
type MonetizationStrategy struct {
	RecommendedModel    string          `json:"recommended_model"`
	Pricing             PricingStrategy `json:"pricing"`
	OptimizationTactics []string        `json:"optimization_tactics"`
	Positioning         string          `json:"positioning"`
	GrowthLevers        []string        `json:"growth_levers"`
	Risks               []string        `json:"risks"`
	Confidence          float64         `json:"confidence"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// RoadmapPhase is one ordered block of the implementation roadmap.
type RoadmapPhase struct {
	Name         string   `json:"name"`
	Objectives   []string `json:"objectives"`
	Deliverables []string `json:"deliverables"`
	Dependencies []string `json:"dependencies"`
	Resources    []string `json:"resources"`
	Duration     string   `json:"duration"`
}

// SuccessMetric defines how roadmap progress should be measured.
type SuccessMetric struct {
	Name       string `json:"name"`
	Target     string `json:"target"`
	Cadence    string `json:"cadence"`
	DataSource string `json:"data_source"`
}

// ImplementationRoadmap is the output of the final pipeline stage.
type ImplementationRoadmap struct {
	Phases              []RoadmapPhase  `json:"phases"`
	QuickWins           []string        `json:"quick_wins"`
	LongTermInitiatives []string        `json:"long_term_initiatives"`
	Metrics             []SuccessMetric `json:"metrics"`
	Timeline            string          `json:"timeline"`
	Confidence          float64         `json:"confidence"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// AnalysisResults aggregates the pipeline outputs on a session. Each slot is
// populated exactly once, in pipeline order, and never overwritten once the
// roadmap stage has completed.
type AnalysisResults struct {
	Revenue      *RevenueAnalysis       `json:"revenue,omitempty"`
	Customer     *CustomerAnalysis      `json:"customer,omitempty"`
	Monetization *MonetizationStrategy  `json:"monetization,omitempty"`
	Roadmap      *ImplementationRoadmap `json:"roadmap,omitempty"`
}

// Has reports whether the given stage already produced a successful result.
func (r *AnalysisResults) Has(stage StageType) bool {
	if r == nil {
		return false
	}

	switch stage {
	case StageRevenueAnalysis:
		return r.Revenue != nil
	case StageCustomerSegmentation:
		return r.Customer != nil
	case StageMonetizationStrategy:
		return r.Monetization != nil
	case StageRoadmapGeneration:
		return r.Roadmap != nil
	default:
		return false
	}
}

// Sealed reports whether the results are frozen against amendment.
func (r *AnalysisResults) Sealed() bool {
	return r != nil && r.Roadmap != nil
}
