package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"btcdash/pkg/command"
	"btcdash/pkg/models"
)

// Executor runs one node query and returns its textual output.
type Executor interface {
	Execute(ctx context.Context, cmd models.Command) (string, error)
}

// CommandError is a failed query. Its message is what the operator sees.
type CommandError struct {
	Command  string
	Output   string
	ExitCode int
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("Error: %s exited with status %d", e.Command, e.ExitCode)
	}
	return "Error: " + out
}

// CLIExecutor shells out to bitcoin-cli with the configured credentials.
type CLIExecutor struct {
	Path     string
	User     string
	Password string
	Timeout  time.Duration
}

func (e *CLIExecutor) Execute(ctx context.Context, cmd models.Command) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	args := []string{
		"-rpcuser=" + e.User,
		"-rpcpassword=" + e.Password,
		cmd.Name,
	}
	args = append(args, cmd.Args...)

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, e.Path, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{Command: cmd.Name, Output: stderr.String(), ExitCode: exitErr.ExitCode()}
		}
		return "", &CommandError{Command: cmd.Name, Output: err.Error(), ExitCode: -1}
	}
	return stdout.String(), nil
}

// NewAddress asks the wallet for a fresh receiving address.
func NewAddress(ctx context.Context, ex Executor) (string, error) {
	out, err := ex.Execute(ctx, models.Command{Name: command.NewAddress})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
