package domain

// Result holds the outcome of a fuzzy similarity computation.
type Result struct {
	Name            string
	Score           float64
	Passed          bool
	Threshold       float64
	ForwardScore    float64
	ReverseScore    float64
	FrequencyScore  float64
	InputWordCount  int
	SourceWordCount int
	Details         map[string]interface{}
}
