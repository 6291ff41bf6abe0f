// Package share hands a composed order to whatever the host offers for
// sending text to another application.
package share

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNoTarget means the host has nothing that can receive the order.
var ErrNoTarget = errors.New("share: no target available")

const (
	TargetCommand = "command"
	TargetFile    = "file"
	TargetNone    = "none"
)

// Request is one Send press worth of order text.
type Request struct {
	ID      uuid.UUID
	Subject string
	Text    string
}

func NewRequest(subject, text string) Request {
	return Request{ID: uuid.New(), Subject: subject, Text: text}
}

// Sharer delivers a request. The caller does not wait for the receiving
// application to confirm anything beyond Share returning.
type Sharer interface {
	Share(ctx context.Context, req Request) error
}

// Options selects and configures a share target.
type Options struct {
	Target  string
	Command string
	File    string
}

// New resolves opts to a Sharer. An unknown target is an error; a target
// that cannot deliver reports ErrNoTarget at Share time.
func New(opts Options) (Sharer, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Target)) {
	case TargetCommand:
		return NewCommandSharer(opts.Command)
	case TargetFile:
		return &FileSharer{Path: opts.File}, nil
	case TargetNone, "":
		return None{}, nil
	default:
		return nil, fmt.Errorf("share: unknown target %q", opts.Target)
	}
}

// None never has a target.
type None struct{}

func (None) Share(context.Context, Request) error { return ErrNoTarget }

// Func adapts a function to Sharer.
type Func func(ctx context.Context, req Request) error

func (f Func) Share(ctx context.Context, req Request) error { return f(ctx, req) }
