package classifier

import (
	"github.com/sirupsen/logrus"

	"go-image-classifier/internal/labels"
	"go-image-classifier/internal/logger"
)

// imageClassifier wires preprocessing, inference and label resolution into
// the single classify pipeline
type imageClassifier struct {
	engine *engine
	table  *labels.Table
}

// New compiles the model once and returns a Classifier ready to serve
// requests. The label table's length fixes the expected class count.
func New(modelBytes []byte, table *labels.Table, opts Options) (Classifier, error) {
	eng, err := newEngine(modelBytes, table.Len(), opts)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"model_bytes": len(modelBytes),
		"classes":     table.Len(),
	}).Info("Compiled classification model")

	return &imageClassifier{
		engine: eng,
		table:  table,
	}, nil
}

// Classify runs the pipeline stages in order, failing fast on the first
// stage that errors
func (c *imageClassifier) Classify(imageData []byte) (Result, error) {
	input, err := preprocess(imageData)
	if err != nil {
		return Result{}, err
	}

	scores, err := c.engine.Run(input)
	if err != nil {
		return Result{}, err
	}

	return resolve(scores, c.table)
}

// Close releases the compiled model
func (c *imageClassifier) Close() error {
	return c.engine.Close()
}
