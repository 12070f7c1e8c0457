// Package prediction implements the Anti-Corruption Layer translators for the
// model server's per-axis predict resources.
package prediction

// Axis names one of the two label axes served by the model server.
type Axis string

const (
	AxisPriority Axis = "priority"
	AxisStatus   Axis = "status"
)

// Path returns the predict endpoint for the axis, relative to the base URL.
func (a Axis) Path() string {
	return "/v1/models/" + string(a) + ":predict"
}

// PredictRequestDTO matches the model server's predict request schema.
type PredictRequestDTO struct {
	Text string `json:"text"`
}

// PredictResponseDTO matches the model server's predict response schema.
// Confidence is optional; servers without probability output omit it.
type PredictResponseDTO struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence,omitempty"`
}
