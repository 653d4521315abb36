package container

import (
	"context"
	"fmt"
	"net/http"

	"go-image-classifier/internal/classifier"
	"go-image-classifier/internal/config"
	"go-image-classifier/internal/labels"
	"go-image-classifier/internal/resources"
	"go-image-classifier/internal/service"
	"go-image-classifier/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config                *config.Config
	loader                resources.Loader
	labelTable            *labels.Table
	classifier            classifier.Classifier
	classificationService service.ClassificationService
	handler               http.Handler
}

// NewContainer builds the dependency graph: artifact loader, label table,
// compiled classifier, service and HTTP handler
func NewContainer(cfg *config.Config) (*Container, error) {
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	modelBytes, err := loader.Load(ctx, cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact: %w", err)
	}
	labelBytes, err := loader.Load(ctx, cfg.LabelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load label artifact: %w", err)
	}

	labelTable, err := labels.Parse(labelBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label artifact: %w", err)
	}

	opts := classifier.DefaultOptions()
	opts.LibraryPath = cfg.OrtLibraryPath
	cls, err := classifier.New(modelBytes, labelTable, opts)
	if err != nil {
		return nil, err
	}

	classificationService := service.NewClassificationService(cls)
	handler := transport.NewHandler(classificationService, labelTable, cfg)

	return &Container{
		config:                cfg,
		loader:                loader,
		labelTable:            labelTable,
		classifier:            cls,
		classificationService: classificationService,
		handler:               handler,
	}, nil
}

func newLoader(cfg *config.Config) (resources.Loader, error) {
	switch cfg.ModelSource {
	case config.SourceAzure:
		return resources.NewAzureLoader(cfg.AzureAccountName, cfg.AzureAccountKey, cfg.AzureContainer)
	case config.SourceFile:
		return resources.NewFileLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported model source: %s", cfg.ModelSource)
	}
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the compiled model
func (c *Container) Close() error {
	return c.classifier.Close()
}
