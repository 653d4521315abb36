package transport

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-image-classifier/internal/config"
	apperrors "go-image-classifier/internal/errors"
	"go-image-classifier/internal/labels"
	"go-image-classifier/internal/logger"
	"go-image-classifier/internal/service"
	"go-image-classifier/pkg/models"
)

const defaultSearchLimit = 10

// NewHandler builds the HTTP surface over the classification service
func NewHandler(svc service.ClassificationService, table *labels.Table, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(requestSizeLimiter(cfg.MaxRequestBodySize))

	r.GET("/health", healthCheck)
	r.GET("/labels", listLabels(table))
	r.POST("/classify", classifyImage(svc, cfg))

	return r
}

func classifyImage(svc service.ClassificationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.WithError(err).Error("Failed to read request body")
			c.String(http.StatusBadRequest, "Failed to read request body")
			return
		}

		// The pipeline never sees an empty buffer; reject it here
		if len(body) == 0 {
			c.String(http.StatusBadRequest, "No image data received.")
			return
		}

		logger.WithFields(logrus.Fields{
			"image_bytes": len(body),
			"ip":          c.ClientIP(),
		}).Info("Received classification request")

		resp, err := svc.Classify(ctx, body)
		if err != nil {
			// The kind stays in the logs; callers get one generic response
			logger.WithError(err).WithFields(logrus.Fields{
				"kind":        apperrors.KindOf(err),
				"fatal":       apperrors.IsFatal(err),
				"image_bytes": len(body),
				"ip":          c.ClientIP(),
			}).Error("Error during classification")
			c.String(http.StatusInternalServerError, "Error during classification")
			return
		}

		logger.WithFields(logrus.Fields{
			"label":              resp.PredictedLabel,
			"probability":        resp.Probability,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Classification completed")

		c.JSON(http.StatusOK, resp)
	}
}

func listLabels(table *labels.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusOK, gin.H{
				"count":  table.Len(),
				"labels": table.All(),
			})
			return
		}

		limit := defaultSearchLimit
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"matches": table.Search(query, limit),
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "available",
		Version: "1.0.0",
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
