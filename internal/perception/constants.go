package perception

const (
	// DefaultModel is the multimodal model used for plant checkups
	DefaultModel = "gemini-flash-lite-latest"

	responseMIMEType = "application/json"
)

// JSON fields requested from the model
const (
	fieldHealthScore = "healthScore"
	fieldStatus      = "status"
	fieldTip         = "tip"
)

const (
	logMsgAssessmentRejected = "Rejected model assessment"
)
