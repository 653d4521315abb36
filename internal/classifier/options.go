package classifier

// Options configures how the model session is constructed
type Options struct {
	// Graph input/output tensor names
	InputName  string
	OutputName string

	// Path to the onnxruntime shared library, empty for the platform default
	LibraryPath string
}

// DefaultOptions returns options matching the shipped MobileNet export
func DefaultOptions() Options {
	return Options{
		InputName:  "input",
		OutputName: "output",
	}
}
