package models

import (
	"time"
)

// Command is a parsed entry of the command list: an RPC method plus its
// positional arguments.
type Command struct {
	Name string
	Args []string
}

// String rebuilds the space-separated form of the command.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// AddressEntry is one saved receiving address.
type AddressEntry struct {
	CreatedAt time.Time `json:"created_at"`
	Address   string    `json:"address"`
}

// Network identifies a bitcoin chain variant.
type Network int

const (
	Mainnet Network = iota
	Testnet
	Testnet4
	Signet
	Regtest
)

// Networks lists every network in the order addresses are checked against them.
var Networks = []Network{Mainnet, Testnet, Testnet4, Signet, Regtest}

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Testnet4:
		return "testnet4"
	case Signet:
		return "signet"
	case Regtest:
		return "regtest"
	}
	return "unknown"
}

// ValidityKind is the class an address string falls into.
type ValidityKind int

const (
	Empty ValidityKind = iota
	Invalid
	Valid
)

// Validity is the result of classifying an address. Network is only
// meaningful when Kind is Valid.
type Validity struct {
	Kind    ValidityKind
	Network Network
}

// ValidFor builds a Valid result for the given network.
func ValidFor(n Network) Validity {
	return Validity{Kind: Valid, Network: n}
}

// IsValid reports whether the address is valid for some network.
func (v Validity) IsValid() bool {
	return v.Kind == Valid
}

// StatusMessage is a short-lived line of feedback in the address overlay.
type StatusMessage struct {
	Text     string
	IsError  bool
	IssuedAt time.Time
}

// Visible reports whether the message is still inside its display window.
func (s *StatusMessage) Visible(now time.Time, ttl time.Duration) bool {
	if s == nil || s.Text == "" {
		return false
	}
	return now.Sub(s.IssuedAt) < ttl
}

// CheckReport holds the results of `btcdash check`.
type CheckReport struct {
	ConfigPath       string    `json:"config_path,omitempty"`
	Backend          string    `json:"backend"`
	ValidConfig      bool      `json:"valid_config"`
	Errors           []string  `json:"errors,omitempty"`
	CommandsPath     string    `json:"commands_path"`
	CommandCount     int       `json:"command_count"`
	AddressBookPath  string    `json:"address_book_path"`
	AddressCount     int       `json:"address_count"`
	InvalidAddresses []string  `json:"invalid_addresses,omitempty"`
	Node             NodeCheck `json:"node"`
}

// NodeCheck is the outcome of probing the node with getblockcount.
type NodeCheck struct {
	Status     string `json:"status"`
	BlockCount string `json:"block_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// OK reports whether the dashboard can be expected to start and reach the node.
func (r CheckReport) OK() bool {
	return r.ValidConfig && len(r.Errors) == 0 && r.Node.Status == "ok"
}
