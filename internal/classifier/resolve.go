package classifier

import (
	apperrors "go-image-classifier/internal/errors"
	"go-image-classifier/internal/labels"
)

// resolve maps the score vector to the winning (class, label, probability).
// The scan uses strict greater-than, so the first occurrence wins ties.
// Score index 0 is class 1, matching line numbers in the label file.
func resolve(scores []float32, table *labels.Table) (Result, error) {
	if len(scores) == 0 {
		return Result{}, apperrors.NewUnclassifiedError()
	}

	maxIdx := 0
	maxScore := scores[0]
	for i, score := range scores {
		if score > maxScore {
			maxScore = score
			maxIdx = i
		}
	}

	class := maxIdx + 1
	label, err := table.Lookup(class)
	if err != nil {
		// The label set and class count are supposed to match 1:1 at build
		// time; continuing with a substitute label is never acceptable.
		return Result{}, apperrors.NewFatalError("model output exceeds label table", err)
	}

	return Result{
		Class:       class,
		Label:       label,
		Probability: maxScore,
	}, nil
}
