package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"

	"go-image-classifier/internal/classifier"
	apperrors "go-image-classifier/internal/errors"
	"go-image-classifier/internal/logger"
	"go-image-classifier/pkg/models"
)

// ClassificationService sits between transport and the pipeline: it runs a
// classification and shapes the result for the wire.
type ClassificationService interface {
	Classify(ctx context.Context, imageData []byte) (*models.ClassificationResponse, error)
}

type classificationService struct {
	classifier classifier.Classifier
}

// NewClassificationService creates a classification service
func NewClassificationService(cls classifier.Classifier) ClassificationService {
	return &classificationService{classifier: cls}
}

func (s *classificationService) Classify(ctx context.Context, imageData []byte) (*models.ClassificationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewUnknownError("classification aborted", err)
	}

	result, err := s.classifier.Classify(imageData)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"kind":        apperrors.KindOf(err),
			"image_bytes": len(imageData),
		}).Error("Classification failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"class":       result.Class,
		"label":       result.Label,
		"probability": result.Probability,
		"image_bytes": len(imageData),
	}).Info("Classified image")

	return &models.ClassificationResponse{
		PredictedLabel: result.Label,
		Probability:    formatProbability(result.Probability),
	}, nil
}

// formatProbability renders the raw score with 4 decimals, matching the
// original payload format
func formatProbability(p float32) json.Number {
	return json.Number(strconv.FormatFloat(float64(p), 'f', 4, 32))
}
