package classifier

// Result is a single classification outcome. Probability is the raw maximum
// model output score; the model's output layer decides whether that is a
// calibrated probability, no softmax is applied here.
type Result struct {
	Class       int
	Label       string
	Probability float32
}

// Classifier runs the full pipeline: decode, resize, normalize, infer,
// resolve the winning class to a label.
type Classifier interface {
	Classify(imageData []byte) (Result, error)
	Close() error
}
