package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values count as unset.
	t.Setenv("RPC_USER", "")
	t.Setenv("RPC_PASSWORD", "")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "commands.json", cfg.CommandsPath)
	assert.Equal(t, "addresses.json", cfg.AddressBookPath)
	assert.Equal(t, DefaultAddress, cfg.DefaultAddress)
	assert.Equal(t, BackendCLI, cfg.Node.Backend)
	assert.Equal(t, "bitcoin-cli", cfg.Node.BitcoinCLI)
	assert.Equal(t, "youruser", cfg.Node.User)
	assert.Equal(t, "yourpassword", cfg.Node.Password)
	assert.Equal(t, 30*time.Second, cfg.Node.QueryTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.UI.PollInterval)
	assert.Equal(t, 120*time.Millisecond, cfg.UI.Debounce)
	assert.Equal(t, 2*time.Second, cfg.UI.StatusTTL)
	assert.Equal(t, "", cfg.Logging.Level)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RPC_USER", "alice")
	t.Setenv("RPC_PASSWORD", "secret")
	t.Setenv("BTCDASH_BACKEND", "RPC")
	t.Setenv("BTCDASH_DEBOUNCE", "150ms")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Node.User)
	assert.Equal(t, "secret", cfg.Node.Password)
	assert.Equal(t, BackendRPC, cfg.Node.Backend)
	assert.Equal(t, 150*time.Millisecond, cfg.UI.Debounce)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btcdash.yaml")
	content := "commands: /etc/btcdash/commands.yaml\nrpc_url: http://node:18332\nstatus_ttl: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/btcdash/commands.yaml", cfg.CommandsPath)
	assert.Equal(t, "http://node:18332", cfg.Node.RPCURL)
	assert.Equal(t, 5*time.Second, cfg.UI.StatusTTL)
	assert.Equal(t, "addresses.json", cfg.AddressBookPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_TableDriven(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"rpc backend", func(c *Config) { c.Node.Backend = BackendRPC }, true},
		{"unknown backend", func(c *Config) { c.Node.Backend = "grpc" }, false},
		{"rpc without url", func(c *Config) { c.Node.Backend = BackendRPC; c.Node.RPCURL = "" }, false},
		{"cli without path", func(c *Config) { c.Node.BitcoinCLI = " " }, false},
		{"empty commands path", func(c *Config) { c.CommandsPath = "" }, false},
		{"empty address book path", func(c *Config) { c.AddressBookPath = "" }, false},
		{"zero poll interval", func(c *Config) { c.UI.PollInterval = 0 }, false},
		{"zero debounce", func(c *Config) { c.UI.Debounce = 0 }, true},
		{"negative debounce", func(c *Config) { c.UI.Debounce = -time.Millisecond }, false},
		{"zero status ttl", func(c *Config) { c.UI.StatusTTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
			}
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := Config{Node: Node{User: "alice", Password: "secret"}}
	r := cfg.Redacted()
	assert.Equal(t, "***", r.Node.Password)
	assert.Equal(t, "alice", r.Node.User)
	assert.Equal(t, "secret", cfg.Node.Password)
}
