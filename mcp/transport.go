package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/universal-mcp/whatsapp-business/jsonrpc"
)

// StdioTransport reads newline-delimited JSON-RPC requests and writes
// responses, one per line.
type StdioTransport struct {
	scanner *bufio.Scanner
	writer  *json.Encoder
	bufOut  *bufio.Writer
	errOut  io.Writer
}

// NewStdioTransport creates a transport over the given streams
func NewStdioTransport(in io.Reader, out io.Writer, errOut io.Writer) *StdioTransport {
	scanner := bufio.NewScanner(in)
	// Allow request lines larger than the default scanner buffer;
	// template components and upload payloads can be sizable
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 4*1024*1024)

	bufOut := bufio.NewWriter(out)
	return &StdioTransport{
		scanner: scanner,
		writer:  json.NewEncoder(bufOut),
		bufOut:  bufOut,
		errOut:  errOut,
	}
}

// Run reads requests until EOF or context cancellation, passing each to
// handler and writing the response
func (t *StdioTransport) Run(ctx context.Context, handler jsonrpc.HandlerFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if !t.scanner.Scan() {
				if err := t.scanner.Err(); err != nil {
					return fmt.Errorf("scanner error: %w", err)
				}
				return nil
			}

			line := t.scanner.Text()
			if line == "" {
				continue
			}

			var request jsonrpc.Request
			if err := json.Unmarshal([]byte(line), &request); err != nil {
				t.write(jsonrpc.NewResponse(nil, nil, jsonrpc.NewError(jsonrpc.ErrParse, err)))
				continue
			}

			t.write(handler(ctx, request))
		}
	}
}

func (t *StdioTransport) write(response jsonrpc.Response) {
	if err := t.writer.Encode(response); err != nil {
		fmt.Fprintf(t.errOut, "Error encoding response: %v\n", err)
	}
	t.bufOut.Flush()
}
