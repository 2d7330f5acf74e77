package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BTCDASH"

	BackendCLI = "cli"
	BackendRPC = "rpc"

	DefaultAddress = "bc1qfpacvgpjms0eu6mszhwgjjs03yldesmmcgzad0"
)

// Keys understood by Load. Flags are bound to the same names.
const (
	KeyCommands       = "commands"
	KeyAddressBook    = "address_book"
	KeyBackend        = "backend"
	KeyBitcoinCLI     = "bitcoin_cli"
	KeyRPCURL         = "rpc_url"
	KeyRPCUser        = "rpc_user"
	KeyRPCPassword    = "rpc_password"
	KeyQueryTimeout   = "query_timeout"
	KeyDefaultAddress = "default_address"
	KeyPollInterval   = "poll_interval"
	KeyDebounce       = "debounce"
	KeyStatusTTL      = "status_ttl"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the dashboard.
type Config struct {
	CommandsPath    string
	AddressBookPath string
	DefaultAddress  string

	Node    Node
	UI      UI
	Logging Logging
}

// Node holds what the query executor needs to reach bitcoind.
type Node struct {
	Backend      string
	BitcoinCLI   string
	RPCURL       string
	User         string
	Password     string
	QueryTimeout time.Duration
}

type UI struct {
	PollInterval time.Duration
	Debounce     time.Duration
	StatusTTL    time.Duration
}

type Logging struct {
	Level    string
	FilePath string
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The credentials keep the names bitcoin-cli wrappers traditionally use.
	_ = v.BindEnv(KeyRPCUser, "RPC_USER")
	_ = v.BindEnv(KeyRPCPassword, "RPC_PASSWORD")
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCommands, "commands.json")
	v.SetDefault(KeyAddressBook, "addresses.json")
	v.SetDefault(KeyBackend, BackendCLI)
	v.SetDefault(KeyBitcoinCLI, "bitcoin-cli")
	v.SetDefault(KeyRPCURL, "http://127.0.0.1:8332")
	v.SetDefault(KeyRPCUser, "youruser")
	v.SetDefault(KeyRPCPassword, "yourpassword")
	v.SetDefault(KeyQueryTimeout, 30*time.Second)
	v.SetDefault(KeyDefaultAddress, DefaultAddress)
	v.SetDefault(KeyPollInterval, 100*time.Millisecond)
	v.SetDefault(KeyDebounce, 120*time.Millisecond)
	v.SetDefault(KeyStatusTTL, 2*time.Second)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "btcdash.log")
}

// Load reads an optional config file into v and returns the resolved
// configuration. It does not validate.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return Config{
		CommandsPath:    v.GetString(KeyCommands),
		AddressBookPath: v.GetString(KeyAddressBook),
		DefaultAddress:  strings.TrimSpace(v.GetString(KeyDefaultAddress)),
		Node: Node{
			Backend:      strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
			BitcoinCLI:   v.GetString(KeyBitcoinCLI),
			RPCURL:       strings.TrimSpace(v.GetString(KeyRPCURL)),
			User:         v.GetString(KeyRPCUser),
			Password:     v.GetString(KeyRPCPassword),
			QueryTimeout: v.GetDuration(KeyQueryTimeout),
		},
		UI: UI{
			PollInterval: v.GetDuration(KeyPollInterval),
			Debounce:     v.GetDuration(KeyDebounce),
			StatusTTL:    v.GetDuration(KeyStatusTTL),
		},
		Logging: Logging{
			Level:    v.GetString(KeyLogLevel),
			FilePath: v.GetString(KeyLogFile),
		},
	}, nil
}

// Validate rejects configurations the dashboard cannot start with.
func Validate(cfg Config) error {
	switch cfg.Node.Backend {
	case BackendCLI:
		if strings.TrimSpace(cfg.Node.BitcoinCLI) == "" {
			return fmt.Errorf("%w: bitcoin_cli must not be empty", ErrInvalid)
		}
	case BackendRPC:
		if cfg.Node.RPCURL == "" {
			return fmt.Errorf("%w: rpc_url must not be empty for the rpc backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q (want %s or %s)", ErrInvalid, cfg.Node.Backend, BackendCLI, BackendRPC)
	}
	if strings.TrimSpace(cfg.CommandsPath) == "" {
		return fmt.Errorf("%w: commands path must not be empty", ErrInvalid)
	}
	if strings.TrimSpace(cfg.AddressBookPath) == "" {
		return fmt.Errorf("%w: address_book path must not be empty", ErrInvalid)
	}
	if cfg.UI.PollInterval <= 0 {
		return fmt.Errorf("%w: poll_interval must be > 0 (got %s)", ErrInvalid, cfg.UI.PollInterval)
	}
	if cfg.UI.Debounce < 0 {
		return fmt.Errorf("%w: debounce must be >= 0 (got %s)", ErrInvalid, cfg.UI.Debounce)
	}
	if cfg.UI.StatusTTL <= 0 {
		return fmt.Errorf("%w: status_ttl must be > 0 (got %s)", ErrInvalid, cfg.UI.StatusTTL)
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Node.Password != "" {
		c.Node.Password = "***"
	}
	return c
}
