package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/corymhall/lstypes/debug"
	"github.com/corymhall/lstypes/lsp"
	"github.com/spf13/cobra"
)

type payloadKind string

const (
	payloadParams  payloadKind = "params"
	payloadResult  payloadKind = "result"
	payloadOptions payloadKind = "options"
)

func newDecodeCmd() *cobra.Command {
	var result, options bool
	cmd := &cobra.Command{
		Use:   "decode METHOD [FILE]",
		Short: "Decode an LSP payload by method name and print it re-encoded",
		Long: `Decode the params of METHOD (or its result with --result, or its
registration options with --options) from FILE or stdin. The payload is
checked the same way a client or server would decode it and printed back in
its canonical encoding.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := payloadParams
			switch {
			case result && options:
				return fmt.Errorf("--result and --options are mutually exclusive")
			case result:
				kind = payloadResult
			case options:
				kind = payloadOptions
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			out, err := decodePayload(args[0], kind, data)
			if err != nil {
				debug.LogError(cmd.Context(), "decoding payload", err)
				return err
			}
			debug.Debug.Log(cmd.Context(), "decoded", slog.String("method", args[0]), slog.String("kind", string(kind)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&result, "result", false, "decode the result of a request")
	cmd.Flags().BoolVar(&options, "options", false, "decode the registration options of the method")
	return cmd
}

// decodePayload decodes data as the kind of payload method carries and
// returns it re-encoded with indentation.
func decodePayload(method string, kind payloadKind, data []byte) ([]byte, error) {
	var target any
	if r, ok := lsp.LookupRequest(method); ok {
		switch kind {
		case payloadParams:
			target = r.NewParams()
		case payloadResult:
			target = r.NewResult()
		case payloadOptions:
			target = r.NewRegistrationOptions()
		}
	} else if n, ok := lsp.LookupNotification(method); ok {
		switch kind {
		case payloadParams:
			target = n.NewParams()
		case payloadResult:
			return nil, fmt.Errorf("%s is a notification and has no result", method)
		case payloadOptions:
			target = n.NewRegistrationOptions()
		}
	} else {
		return nil, fmt.Errorf("unknown method %q", method)
	}
	if target == nil {
		return nil, fmt.Errorf("%s cannot be registered dynamically", method)
	}

	if data = bytes.TrimSpace(data); len(data) == 0 {
		data = []byte("null")
	}
	// Absent list and map results are sent as null.
	if string(data) == "null" {
		switch reflect.TypeOf(target).Elem().Kind() {
		case reflect.Slice, reflect.Map:
			return data, nil
		}
	}
	if err := lsp.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, kind, err)
	}
	raw, err := lsp.Marshal(target)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
