package lsif

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decoder reads one entry per line from a dump. Blank lines are skipped.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	in   *bufio.Reader
	line int
}

func NewDecoder(in io.Reader) *Decoder {
	return &Decoder{in: bufio.NewReader(in)}
}

// Line is the number of the last line read.
func (d *Decoder) Line() int { return d.line }

// Read gets the next entry and the number of bytes consumed. It returns
// io.EOF once the dump is exhausted.
func (d *Decoder) Read(ctx context.Context) (Entry, int64, error) {
	var total int64
	for {
		select {
		case <-ctx.Done():
			return Entry{}, total, ctx.Err()
		default:
		}
		line, err := d.in.ReadString('\n')
		total += int64(len(line))
		if line != "" {
			d.line++
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return Entry{}, total, fmt.Errorf("failed reading line %d: %w", d.line, err)
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			e, derr := Decode([]byte(trimmed))
			if derr != nil {
				return Entry{}, total, fmt.Errorf("line %d: %w", d.line, derr)
			}
			return e, total, nil
		}
		if err != nil {
			return Entry{}, total, err
		}
	}
}

// Encoder writes one entry per line.
type Encoder struct {
	out io.Writer
}

func NewEncoder(out io.Writer) *Encoder {
	return &Encoder{out: out}
}

func (e *Encoder) Write(ctx context.Context, entry Entry) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	data, err := Encode(entry)
	if err != nil {
		return 0, fmt.Errorf("marshaling entry %s: %w", entry.ID, err)
	}
	n, err := e.out.Write(append(data, '\n'))
	return int64(n), err
}
