package share

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSharer appends each order to a plain-text outbox another program can read.
type FileSharer struct {
	Path string
}

func (f *FileSharer) Share(ctx context.Context, req Request) error {
	if strings.TrimSpace(f.Path) == "" {
		return ErrNoTarget
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("share: mkdir outbox dir: %w", err)
	}
	out, err := os.OpenFile(f.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("share: open outbox: %w", err)
	}
	defer out.Close()

	var b strings.Builder
	b.WriteString("Subject: " + req.Subject + "\n")
	b.WriteString("Request-Id: " + req.ID.String() + "\n\n")
	b.WriteString(strings.TrimRight(req.Text, "\n"))
	b.WriteString("\n\n")
	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("share: write outbox: %w", err)
	}
	return out.Close()
}
