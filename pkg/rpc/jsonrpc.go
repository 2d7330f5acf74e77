package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"btcdash/pkg/models"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

var DefaultRPCURL = "http://127.0.0.1:8332"

// JSONRPCExecutor talks to the node's JSON-RPC endpoint directly, without a
// bitcoin-cli binary. Output is formatted the way bitcoin-cli prints it.
type JSONRPCExecutor struct {
	URL      string
	User     string
	Password string
	Timeout  time.Duration
}

func (e *JSONRPCExecutor) Execute(ctx context.Context, cmd models.Command) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	url := e.URL
	if url == "" {
		url = DefaultRPCURL
	}
	auth := base64.StdEncoding.EncodeToString([]byte(e.User + ":" + e.Password))
	client, err := gethrpc.DialOptions(ctx, url, gethrpc.WithHeader("Authorization", "Basic "+auth))
	if err != nil {
		return "", &CommandError{Command: cmd.Name, Output: err.Error(), ExitCode: -1}
	}
	defer client.Close()

	params := make([]interface{}, 0, len(cmd.Args))
	for _, a := range cmd.Args {
		params = append(params, encodeArg(a))
	}

	var result json.RawMessage
	if err := client.CallContext(ctx, &result, cmd.Name, params...); err != nil {
		return "", callError(cmd.Name, err)
	}
	return formatResult(result)
}

// encodeArg follows bitcoin-cli: arguments that parse as JSON are sent as
// JSON values, everything else as strings.
func encodeArg(a string) interface{} {
	if json.Valid([]byte(a)) {
		return json.RawMessage(a)
	}
	return a
}

// httpErrorBody is the JSON-RPC envelope bitcoind sends along with a non-200
// status. Versions before 28 answer every failed call with HTTP 500.
type httpErrorBody struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func callError(method string, err error) error {
	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) {
		return nodeError(method, rpcErr.ErrorCode(), rpcErr.Error())
	}
	var httpErr gethrpc.HTTPError
	if errors.As(err, &httpErr) {
		var body httpErrorBody
		if json.Unmarshal(httpErr.Body, &body) == nil && body.Error != nil {
			return nodeError(method, body.Error.Code, body.Error.Message)
		}
	}
	return &CommandError{Command: method, Output: err.Error(), ExitCode: -1}
}

func nodeError(method string, code int, message string) *CommandError {
	return &CommandError{
		Command:  method,
		Output:   fmt.Sprintf("error code: %d\nerror message:\n%s", code, message),
		ExitCode: 1,
	}
}

func formatResult(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("decode result: %w", err)
		}
		return s + "\n", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return "", fmt.Errorf("format result: %w", err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
