// Package pngopt wraps the oxipng binary as a lossless PNG re-compression
// transform, piping image bytes through stdin/stdout.
package pngopt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
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

// WithEffort sets the oxipng optimization preset (0-6).
func WithEffort(effort int) Option {
	return func(c *Client) {
		if effort >= 0 && effort <= 6 {
			c.effort = effort
		}
	}
}

// Client wraps oxipng CLI invocations.
type Client struct {
	binary string
	effort int
}

// NewClient constructs a client using defaults (effort preset 1).
func NewClient(opts ...Option) *Client {
	client := &Client{binary: "oxipng", effort: 1}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Optimize re-compresses the PNG data losslessly and returns the optimized
// bytes. Visual content is unchanged.
func (c *Client) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("image data required")
	}

	args := []string{"-o", strconv.Itoa(c.effort), "--stdout", "-"}
	cmd := commandContext(ctx, c.binary, args...)
	cmd.Stdin = bytes.NewReader(data)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("oxipng: %w: %s", err, detail)
		}
		return nil, fmt.Errorf("oxipng: %w", err)
	}
	return stdout.Bytes(), nil
}
