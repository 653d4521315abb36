package classifier

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperrors "go-image-classifier/internal/errors"
)

// The model is shape-specialized to a single 224x224 RGB frame
const (
	inputHeight   = 224
	inputWidth    = 224
	inputChannels = 3

	tensorSize = inputHeight * inputWidth * inputChannels
)

// preprocess decodes arbitrary image bytes and produces the flat NHWC input
// tensor: 224x224 pixels, RGB, each channel scaled from 0-255 into [0, 1].
// Aspect ratio is not preserved; stretching is accepted.
func preprocess(imageData []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, apperrors.NewImageError("failed to decode image", err)
	}

	// Triangle filter, matching the reference preprocessing exactly
	resized := resize.Resize(inputWidth, inputHeight, img, resize.Bilinear)
	bounds := resized.Bounds()

	data := make([]float32, tensorSize)
	for y := 0; y < inputHeight; y++ {
		for x := 0; x < inputWidth; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := (y*inputWidth + x) * inputChannels
			data[idx] = float32(r>>8) / 255.0
			data[idx+1] = float32(g>>8) / 255.0
			data[idx+2] = float32(b>>8) / 255.0
		}
	}
	return data, nil
}
