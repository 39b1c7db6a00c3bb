package imagick

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// Client wraps ImageMagick CLI invocations.
type Client struct {
	binary string
}

// NewClient constructs a client using defaults.
func NewClient(opts ...Option) *Client {
	client := &Client{binary: "convert"}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Resize scales the image at srcPath to the given resolution (e.g. "1280x960",
// aspect ratio preserved) and returns the raw PNG8 bytes from convert's
// stdout. A non-zero exit is an error carrying convert's stderr.
func (c *Client) Resize(ctx context.Context, srcPath, resolution string) ([]byte, error) {
	if srcPath == "" {
		return nil, errors.New("source path required")
	}
	if resolution == "" {
		return nil, errors.New("resolution required")
	}

	args := []string{
		srcPath,
		"-gravity", "center",
		"-quality", "80",
		"-resize", resolution,
		"-colors", "256",
		"PNG8:-",
	}
	cmd := commandContext(ctx, c.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("convert %s at %s: %w: %s", srcPath, resolution, err, detail)
		}
		return nil, fmt.Errorf("convert %s at %s: %w", srcPath, resolution, err)
	}
	return stdout.Bytes(), nil
}
