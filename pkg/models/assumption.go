package models

// MessageRole identifies who authored a transcript message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry of a conversation transcript.
type Message struct {
	Role    MessageRole `json:"role"    validate:"required,oneof=user assistant"`
	Content string      `json:"content" validate:"required"`
}

// AssumptionCategory buckets an extracted assumption by subject matter.
type AssumptionCategory string

const (
	AssumptionUser      AssumptionCategory = "user"
	AssumptionMarket    AssumptionCategory = "market"
	AssumptionTechnical AssumptionCategory = "technical"
	AssumptionBusiness  AssumptionCategory = "business"
)

// Assumption is a claim detected in conversational text. Assumptions are
// derived read-only from a transcript and recomputed on demand, never stored
// as mutable entities.
type Assumption struct {
	Text            string             `json:"text"`
	Source          MessageRole        `json:"source"`
	MessageIndex    int                `json:"message_index"`
	Challenged      bool               `json:"challenged"`
	ChallengeReason string             `json:"challenge_reason,omitempty"`
	Category        AssumptionCategory `json:"category"`
}
