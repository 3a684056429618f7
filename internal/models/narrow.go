package models

// NarrowTerm is one (operator, operand) pair of a client-specified message
// filter, e.g. {"stream", "design"} or {"topic", "launch"}.
type NarrowTerm struct {
	Operator string `json:"operator"`
	Operand  string `json:"operand"`
}
