package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"btcdash/pkg/address"
	"btcdash/pkg/addressbook"
	"btcdash/pkg/command"
	"btcdash/pkg/config"
	"btcdash/pkg/logging"
	"btcdash/pkg/models"
	"btcdash/pkg/rpc"
	"btcdash/pkg/tui"
	"btcdash/pkg/utils"
	"btcdash/pkg/watcher"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Version should be set during build
var Version = "dev"

var errCheckFailed = errors.New("check failed")

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status. Configuration
// problems exit 2, every other startup failure 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		return 2
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "btcdash",
		Short: "Terminal dashboard for a bitcoin node",
		Long: `A terminal dashboard for a bitcoin node.

Browse a fixed menu of node queries, read their output, and manage receiving
addresses with a live QR code preview.

RPC credentials are read from RPC_USER and RPC_PASSWORD. Every other setting
can be given as a flag, as BTCDASH_<KEY> in the environment, or in the file
passed to --config.`,
		Example: `  # Run against a local node through bitcoin-cli
  RPC_USER=alice RPC_PASSWORD=secret btcdash

  # Talk JSON-RPC directly and keep a debug log
  btcdash --backend rpc --rpc-url http://127.0.0.1:8332 --log-level debug`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), v, configFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml)")
	flags.String("commands", "commands.json", "Path to the command list")
	flags.String("address-book", addressbook.DefaultPath, "Path to the address book")
	flags.String("backend", config.BackendCLI, "Query backend (cli or rpc)")
	flags.String("bitcoin-cli", "bitcoin-cli", "bitcoin-cli executable used by the cli backend")
	flags.String("rpc-url", rpc.DefaultRPCURL, "JSON-RPC endpoint used by the rpc backend")
	flags.String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	flags.String("log-file", "btcdash.log", "Log file")

	for key, flag := range map[string]string{
		config.KeyCommands:    "commands",
		config.KeyAddressBook: "address-book",
		config.KeyBackend:     "backend",
		config.KeyBitcoinCLI:  "bitcoin-cli",
		config.KeyRPCURL:      "rpc-url",
		config.KeyLogLevel:    "log-level",
		config.KeyLogFile:     "log-file",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(v, &configFile))
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "btcdash version %s\n", Version)
		},
	}
}

func newCheckCmd(v *viper.Viper, configFile *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and probe the node",
		Long: `Validate the configuration, the command list and the address book, then
run getblockcount once to confirm the node is reachable. Exits non-zero when
anything needed to start the dashboard is broken.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}
			report := runCheck(cmd.Context(), cfg, newExecutor(cfg.Node))
			report.ConfigPath = *configFile
			if err := printCheck(cmd.OutOrStdout(), report, asJSON); err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if !report.OK() {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output check results as JSON")
	return cmd
}

func loadConfig(v *viper.Viper, configFile string) (config.Config, error) {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runDashboard(ctx context.Context, v *viper.Viper, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(v, configFile)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging.Level, cfg.Logging.FilePath); err != nil {
		return err
	}
	defer logging.Sync()
	logging.Info("starting btcdash", zap.String("version", Version), zap.Any("config", cfg.Redacted()))

	commands, err := command.LoadList(cfg.CommandsPath)
	if err != nil {
		logging.Error("command list unusable", zap.String("path", cfg.CommandsPath), zap.Error(err))
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal init failure: stdout is not a terminal")
	}

	book := addressbook.Open(cfg.AddressBookPath)
	ex := newExecutor(cfg.Node)

	return tui.Start(tui.Options{
		Context:        ctx,
		Commands:       commands,
		Executor:       ex,
		Book:           book,
		Info:           watcher.NewWatcher(ex),
		DefaultAddress: cfg.DefaultAddress,
		PollInterval:   cfg.UI.PollInterval,
		Debounce:       cfg.UI.Debounce,
		StatusTTL:      cfg.UI.StatusTTL,
		Version:        Version,
	})
}

func newExecutor(node config.Node) rpc.Executor {
	if node.Backend == config.BackendRPC {
		return &rpc.JSONRPCExecutor{
			URL:      node.RPCURL,
			User:     node.User,
			Password: node.Password,
			Timeout:  node.QueryTimeout,
		}
	}
	return &rpc.CLIExecutor{
		Path:     node.BitcoinCLI,
		User:     node.User,
		Password: node.Password,
		Timeout:  node.QueryTimeout,
	}
}

// runCheck inspects everything the dashboard needs at startup. The node is
// only probed when the configuration is valid.
func runCheck(ctx context.Context, cfg config.Config, ex rpc.Executor) models.CheckReport {
	if ctx == nil {
		ctx = context.Background()
	}
	report := models.CheckReport{
		Backend:         cfg.Node.Backend,
		ValidConfig:     true,
		CommandsPath:    cfg.CommandsPath,
		AddressBookPath: cfg.AddressBookPath,
		Node:            models.NodeCheck{Status: "skipped"},
	}

	if err := config.Validate(cfg); err != nil {
		report.ValidConfig = false
		report.Errors = append(report.Errors, err.Error())
		return report
	}

	if commands, err := command.LoadList(cfg.CommandsPath); err != nil {
		report.Errors = append(report.Errors, err.Error())
	} else {
		report.CommandCount = len(commands)
		for _, c := range commands {
			if _, err := command.Parse(c); err != nil {
				report.Errors = append(report.Errors, err.Error())
			}
		}
	}

	entries := addressbook.Load(cfg.AddressBookPath)
	report.AddressCount = len(entries)
	for _, e := range entries {
		if !address.Validate(e.Address).IsValid() {
			report.InvalidAddresses = append(report.InvalidAddresses, e.Address)
		}
	}

	out, err := ex.Execute(ctx, models.Command{Name: "getblockcount"})
	if err != nil {
		report.Node = models.NodeCheck{Status: "error", Error: strings.Join(strings.Fields(err.Error()), " ")}
	} else {
		report.Node = models.NodeCheck{Status: "ok", BlockCount: strings.TrimSpace(out)}
	}
	return report
}

func printCheck(w io.Writer, report models.CheckReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	var b strings.Builder
	if report.ConfigPath != "" {
		fmt.Fprintf(&b, "Config: %s\n", report.ConfigPath)
	}
	fmt.Fprintf(&b, "Backend: %s\n", report.Backend)
	if !report.ValidConfig {
		fmt.Fprintln(&b, "Configuration invalid:")
	}
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "Error: %s\n", e)
	}
	if report.ValidConfig {
		fmt.Fprintf(&b, "Commands: %d (%s)\n", report.CommandCount, report.CommandsPath)
		fmt.Fprintf(&b, "Addresses: %d (%s)\n", report.AddressCount, report.AddressBookPath)
		for _, a := range report.InvalidAddresses {
			fmt.Fprintf(&b, "  WARNING: saved address does not validate: %s\n", utils.TruncateString(a, 64))
		}
		switch report.Node.Status {
		case "ok":
			fmt.Fprintf(&b, "Node: OK (block %s)\n", report.Node.BlockCount)
		default:
			fmt.Fprintf(&b, "Node: %s %s\n", strings.ToUpper(report.Node.Status), report.Node.Error)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
