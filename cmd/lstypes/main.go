package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	rdebug "runtime/debug"
	"strings"

	"github.com/corymhall/lstypes/debug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	defer panicHandler()
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LSTYPES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "info")

	root := &cobra.Command{
		Use:          "lstypes",
		Short:        "Inspect LSP payloads and LSIF dumps",
		Version:      version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := debug.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			debug.SetLevel(level)
			cmd.SetContext(debug.NewContext(cmd.Context(), cmd.ErrOrStderr()))
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "log level: error, warning, info, debug or trace")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newLSIFCmd(v),
		newDecodeCmd(),
		newMethodsCmd(),
	)
	return root
}

func version() string {
	if info, ok := rdebug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func panicHandler() {
	if panicPayload := recover(); panicPayload != nil {
		stack := string(rdebug.Stack())
		fmt.Fprintln(os.Stderr, "================================================================================")
		fmt.Fprintln(os.Stderr, "lstypes encountered a fatal error. This is a bug!")
		fmt.Fprintln(os.Stderr, "We would appreciate a report: https://github.com/corymhall/lstypes/issues/")
		fmt.Fprintln(os.Stderr, "Please provide all of the below text in your report.")
		fmt.Fprintln(os.Stderr, "================================================================================")
		fmt.Fprintf(os.Stderr, "lstypes Version:      %s\n", version())
		fmt.Fprintf(os.Stderr, "Go Version:           %s\n", runtime.Version())
		fmt.Fprintf(os.Stderr, "Go Compiler:          %s\n", runtime.Compiler)
		fmt.Fprintf(os.Stderr, "Architecture:         %s\n", runtime.GOARCH)
		fmt.Fprintf(os.Stderr, "Operating System:     %s\n", runtime.GOOS)
		fmt.Fprintf(os.Stderr, "Panic:                %s\n\n", panicPayload)
		fmt.Fprintln(os.Stderr, stack)
		os.Exit(1)
	}
}
