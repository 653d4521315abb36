package classifier

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	apperrors "go-image-classifier/internal/errors"
)

// engine owns the compiled model session. The session and its preallocated
// input/output tensors are shared mutable state, so Run serializes callers
// behind the mutex; concurrent classify calls stay numerically identical to
// sequential ones.
type engine struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// newEngine compiles the frozen graph bytes into a runnable session bound to
// the fixed (1, 224, 224, 3) float32 input and a (1, classCount) output.
func newEngine(modelBytes []byte, classCount int, opts Options) (*engine, error) {
	if len(modelBytes) == 0 {
		return nil, apperrors.NewModelError("model bytes are empty", nil)
	}
	if classCount <= 0 {
		return nil, apperrors.NewModelError(fmt.Sprintf("invalid class count %d", classCount), nil)
	}

	if !ort.IsInitialized() {
		if opts.LibraryPath != "" {
			ort.SetSharedLibraryPath(opts.LibraryPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, apperrors.NewModelError("failed to initialize onnxruntime environment", err)
		}
	}

	inputShape := ort.NewShape(1, inputHeight, inputWidth, inputChannels)
	outputShape := ort.NewShape(1, int64(classCount))

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, apperrors.NewModelError("failed to create input tensor", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, apperrors.NewModelError("failed to create output tensor", err)
	}

	session, err := ort.NewAdvancedSessionWithONNXData(modelBytes,
		[]string{opts.InputName}, []string{opts.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, apperrors.NewModelError("failed to compile model", err)
	}

	return &engine{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Run executes a forward pass and returns a copy of the score vector
func (e *engine) Run(input []float32) ([]float32, error) {
	if len(input) != tensorSize {
		return nil, apperrors.NewModelError(
			fmt.Sprintf("input tensor has %d elements, model expects %d", len(input), tensorSize), nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	copy(e.inputTensor.GetData(), input)

	if err := e.session.Run(); err != nil {
		return nil, apperrors.NewModelError("inference failed", err)
	}

	outputData := e.outputTensor.GetData()
	scores := make([]float32, len(outputData))
	copy(scores, outputData)
	return scores, nil
}

// Close releases the session and tensors
func (e *engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inputTensor != nil {
		e.inputTensor.Destroy()
		e.inputTensor = nil
	}
	if e.outputTensor != nil {
		e.outputTensor.Destroy()
		e.outputTensor = nil
	}
	if e.session != nil {
		e.session.Destroy()
		e.session = nil
	}
	return nil
}
