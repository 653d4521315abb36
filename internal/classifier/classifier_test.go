package classifier

import (
	"context"
	"image/color"
	"os"
	"testing"

	apperrors "go-image-classifier/internal/errors"
	"go-image-classifier/internal/labels"
	"go-image-classifier/internal/resources"
)

const (
	testModelPath  = "../../models/mobilenet_v2.onnx"
	testLabelsPath = "../../models/labels.txt"
)

// loadTestClassifier builds a classifier from the real model artifacts,
// skipping when they are not present in the checkout
func loadTestClassifier(t *testing.T) Classifier {
	t.Helper()

	if _, err := os.Stat(testModelPath); os.IsNotExist(err) {
		t.Skipf("Model artifact %s not present, skipping", testModelPath)
	}
	if _, err := os.Stat(testLabelsPath); os.IsNotExist(err) {
		t.Skipf("Label artifact %s not present, skipping", testLabelsPath)
	}

	loader := resources.NewFileLoader()
	modelBytes, err := loader.Load(context.Background(), testModelPath)
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	labelBytes, err := loader.Load(context.Background(), testLabelsPath)
	if err != nil {
		t.Fatalf("Failed to load labels: %v", err)
	}
	table, err := labels.Parse(labelBytes)
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	opts := DefaultOptions()
	opts.LibraryPath = os.Getenv("ONNXRUNTIME_SHARED_LIBRARY")
	cls, err := New(modelBytes, table, opts)
	if err != nil {
		t.Fatalf("Failed to build classifier: %v", err)
	}
	t.Cleanup(func() { cls.Close() })
	return cls
}

func TestNew_EmptyModelBytes(t *testing.T) {
	table, err := labels.Parse([]byte("tench\n"))
	if err != nil {
		t.Fatalf("Failed to parse labels: %v", err)
	}

	_, err = New(nil, table, DefaultOptions())
	if err == nil {
		t.Fatal("Expected error for empty model bytes")
	}
	if !apperrors.IsKind(err, apperrors.KindModel) {
		t.Errorf("Expected model error kind, got %s", apperrors.KindOf(err))
	}
}

func TestClassify_EndToEnd(t *testing.T) {
	cls := loadTestClassifier(t)

	imageData, err := os.ReadFile("testdata/tabby.jpg")
	if os.IsNotExist(err) {
		t.Skip("Known-class test image not present, skipping")
	}
	if err != nil {
		t.Fatalf("Failed to read test image: %v", err)
	}

	result, err := cls.Classify(imageData)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if result.Label != "tabby, tabby cat" {
		t.Errorf("Expected tabby, got %q", result.Label)
	}
	if result.Probability < 0.5 {
		t.Errorf("Expected probability >= 0.5, got %f", result.Probability)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	cls := loadTestClassifier(t)

	imageData := encodePNG(t, 320, 240, color.RGBA{90, 140, 60, 255})

	first, err := cls.Classify(imageData)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	second, err := cls.Classify(imageData)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if first.Label != second.Label || first.Probability != second.Probability {
		t.Errorf("Expected identical results, got (%q, %f) and (%q, %f)",
			first.Label, first.Probability, second.Label, second.Probability)
	}
}

func TestClassify_MalformedBytes(t *testing.T) {
	cls := loadTestClassifier(t)

	_, err := cls.Classify([]byte{0x00, 0x01, 0x02})
	if err == nil {
		t.Fatal("Expected error for malformed bytes")
	}
	if !apperrors.IsKind(err, apperrors.KindImage) {
		t.Errorf("Expected image error kind, got %s", apperrors.KindOf(err))
	}
}
