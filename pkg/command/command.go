package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"btcdash/pkg/models"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCommand is returned when a command string has no method name.
	ErrEmptyCommand = errors.New("empty command")
	// ErrEmptyList is returned when the command list file holds no entries.
	ErrEmptyList = errors.New("command list is empty")
)

// NewAddress is the method that issues a fresh receiving address.
const NewAddress = "getnewaddress"

// Parse splits a command string into its method name and arguments.
// Quoting follows shell rules so JSON arguments may contain spaces.
func Parse(line string) (models.Command, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return models.Command{}, fmt.Errorf("parse command %q: %w", line, err)
	}
	if len(parts) == 0 {
		return models.Command{}, ErrEmptyCommand
	}
	return models.Command{Name: parts[0], Args: parts[1:]}, nil
}

// LoadList reads the command list from path. The file holds a sequence of
// strings in JSON or YAML form.
func LoadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command list: %w", err)
	}
	return ParseList(data)
}

// ParseList decodes a command list document.
func ParseList(data []byte) ([]string, error) {
	var raw []string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse command list: %w", err)
	}
	commands := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			commands = append(commands, c)
		}
	}
	if len(commands) == 0 {
		return nil, ErrEmptyList
	}
	return commands, nil
}
