package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/corymhall/lstypes/debug"
	"github.com/corymhall/lstypes/lsif"
	"github.com/nxadm/tail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLSIFCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsif",
		Short: "Work with LSIF dumps",
	}
	verify := &cobra.Command{
		Use:   "verify FILE",
		Short: "Decode every entry of a dump and check the graph",
		Long: `Decode every entry of an LSIF dump, one JSON object per line, and check
that ids are unique, that the dump starts with a metaData vertex and that
edges only point at vertices emitted before them.

Use - to read the dump from stdin. With --follow the file is tailed while an
indexer writes it, until every project that was begun has ended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				stats verifyStats
				err   error
			)
			if args[0] == "-" {
				stats, err = verifyStream(ctx, cmd.InOrStdin())
			} else {
				stats, err = verifyFile(ctx, args[0], v.GetBool("follow"))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d vertices, %d edges: ok\n", stats.Vertices, stats.Edges)
			return nil
		},
	}
	verify.Flags().Bool("follow", false, "keep reading the file as it grows")
	_ = v.BindPFlag("follow", verify.Flags().Lookup("follow"))

	cmd.AddCommand(verify)
	return cmd
}

func verifyStream(ctx context.Context, in io.Reader) (verifyStats, error) {
	ctx, done := debug.Start(ctx, "verify", slog.String("file", "-"))
	defer done()

	dec := lsif.NewDecoder(in)
	vf := newVerifier()
	for {
		e, _, err := dec.Read(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return vf.stats, err
		}
		if err := vf.add(ctx, e); err != nil {
			return vf.stats, fmt.Errorf("line %d: %w", dec.Line(), err)
		}
	}
	return vf.stats, vf.finish()
}

func verifyFile(ctx context.Context, path string, follow bool) (verifyStats, error) {
	ctx, done := debug.Start(ctx, "verify", slog.String("file", path), slog.Bool("follow", follow))
	defer done()

	t, err := tail.TailFile(path, tail.Config{
		Follow:        follow,
		ReOpen:        follow,
		MustExist:     true,
		Poll:          runtime.GOOS == "windows",
		Logger:        tail.DiscardingLogger,
		CompleteLines: true,
	})
	if err != nil {
		return verifyStats{}, err
	}
	defer t.Cleanup()
	defer func() {
		if err := t.Stop(); err != nil {
			debug.Debug.Log(ctx, "stopping tail", slog.Any("error", err))
		}
	}()

	vf := newVerifier()
	n := 0
	for {
		select {
		case <-ctx.Done():
			return vf.stats, ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				if err := t.Wait(); err != nil {
					return vf.stats, err
				}
				return vf.stats, vf.finish()
			}
			n++
			if line.Err != nil {
				return vf.stats, fmt.Errorf("line %d: %w", n, line.Err)
			}
			if line.Text == "" {
				continue
			}
			e, err := lsif.Decode([]byte(line.Text))
			if err != nil {
				return vf.stats, fmt.Errorf("line %d: %w", n, err)
			}
			if err := vf.add(ctx, e); err != nil {
				return vf.stats, fmt.Errorf("line %d: %w", n, err)
			}
			if follow && vf.complete() {
				return vf.stats, vf.finish()
			}
		}
	}
}
