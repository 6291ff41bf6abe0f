package share

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

const subjectToken = "{subject}"

// CommandSharer pipes the order text to an external program, for example
// `mail -s {subject} orders@example.com`.
type CommandSharer struct {
	args []string
}

func NewCommandSharer(command string) (*CommandSharer, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("share: parse command: %w", err)
	}
	return &CommandSharer{args: args}, nil
}

func (c *CommandSharer) Share(ctx context.Context, req Request) error {
	if len(c.args) == 0 {
		return ErrNoTarget
	}
	bin, err := exec.LookPath(c.args[0])
	if err != nil {
		return ErrNoTarget
	}
	args := make([]string, 0, len(c.args)-1)
	for _, a := range c.args[1:] {
		args = append(args, strings.ReplaceAll(a, subjectToken, req.Subject))
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(req.Text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("share: %s: %w: %s", c.args[0], err, msg)
		}
		return fmt.Errorf("share: %s: %w", c.args[0], err)
	}
	return nil
}
