package models

// PathwayMatch is one scored candidate from intent classification.
type PathwayMatch struct {
	Pathway    PathwayType `json:"pathway"`
	Confidence float64     `json:"confidence"`
	Reasoning  string      `json:"reasoning"`
}

// IntentAnalysis is the router's verdict for one piece of free-text input.
// Confidence is clamped to a practical band: never exactly 0 or 1.
type IntentAnalysis struct {
	Primary      PathwayType    `json:"primary"`
	Confidence   float64        `json:"confidence"`
	Reasoning    string         `json:"reasoning"`
	Alternatives []PathwayMatch `json:"alternatives"`
}
