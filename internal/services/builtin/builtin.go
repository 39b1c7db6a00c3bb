// Package builtin provides in-process implementations of the image
// transforms, used when the external binaries are not wanted. Resizing uses
// the imaging library; optimization re-encodes the PNG at the encoder's
// maximum compression level, which is lossless by construction.
package builtin

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Resizer scales images in-process.
type Resizer struct{}

// NewResizer constructs an in-process resizer.
func NewResizer() *Resizer { return &Resizer{} }

// Resize scales the image at srcPath to fit within the given resolution,
// preserving aspect ratio, and returns PNG bytes.
func (r *Resizer) Resize(ctx context.Context, srcPath, resolution string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	width, height, err := parseResolution(resolution)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", srcPath, err)
	}
	fitted := imaging.Fit(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

// Optimizer re-compresses PNG data in-process.
type Optimizer struct{}

// NewOptimizer constructs an in-process optimizer.
func NewOptimizer() *Optimizer { return &Optimizer{} }

// Optimize decodes the PNG and re-encodes it at best compression.
func (o *Optimizer) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func parseResolution(resolution string) (int, int, error) {
	w, h, found := strings.Cut(resolution, "x")
	if !found {
		return 0, 0, fmt.Errorf("resolution %q: expected WIDTHxHEIGHT", resolution)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("resolution %q: bad width", resolution)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("resolution %q: bad height", resolution)
	}
	return width, height, nil
}
