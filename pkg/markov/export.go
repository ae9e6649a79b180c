package markov

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteTo writes the chain in the flat text format: the order on the first
// line, then one tab-separated line per observed transition holding the
// context tokens followed by the next token. A transition observed three times
// is written as three identical lines.
//
// Tokens containing a tab, carriage return or newline cannot be represented
// and make WriteTo fail with ErrMalformedRecord.
func (c *Chain) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := bw.WriteString(strconv.Itoa(c.order) + "\n")
	written += int64(n)
	if err != nil {
		return written, err
	}

	var lines int
	var line []byte
	for ctx, next := range c.All() {
		if err = checkTokens(ctx); err != nil {
			return written, err
		}
		if err = checkTokens(next); err != nil {
			return written, err
		}
		for _, token := range next {
			line = line[:0]
			for _, t := range ctx {
				line = append(line, t...)
				line = append(line, '\t')
			}
			line = append(line, token...)
			line = append(line, '\n')

			n, err = bw.Write(line)
			written += int64(n)
			if err != nil {
				return written, err
			}
			lines++
		}
	}

	if err = bw.Flush(); err != nil {
		return written, err
	}

	c.logger.Info("Chain exported",
		slog.Int("order", c.order),
		slog.Int("contexts_exported", len(c.keys)),
		slog.Int("transitions_exported", lines),
	)
	return written, nil
}

func checkTokens(tokens []string) error {
	for _, t := range tokens {
		if strings.ContainsAny(t, "\t\r\n") {
			return fmt.Errorf("%w: token %q contains a field or line separator", ErrMalformedRecord, t)
		}
	}
	return nil
}

// ReadChain reads a chain previously written by WriteTo. The first line must be
// a positive order N and every following line must split on tabs into exactly
// N+1 fields; anything else fails with ErrMalformedRecord.
func ReadChain(r io.Reader) (*Chain, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read chain header: %w", err)
	}
	if err == io.EOF && header == "" {
		return nil, fmt.Errorf("%w: missing order header", ErrMalformedRecord)
	}
	header = strings.TrimSpace(header)
	order, convErr := strconv.Atoi(header)
	if convErr != nil || order < 1 {
		return nil, fmt.Errorf("%w: line 1: invalid order %q", ErrMalformedRecord, header)
	}

	chain, err := NewChain(order)
	if err != nil {
		return nil, err
	}

	for lineNo := 2; ; lineNo++ {
		line, err := readLine(br)
		if err == io.EOF && line == "" {
			break
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read chain at line %d: %w", lineNo, err)
		}

		fields := strings.Split(line, "\t")
		if len(fields) != order+1 {
			return nil, fmt.Errorf("%w: line %d: got %d fields, want %d", ErrMalformedRecord, lineNo, len(fields), order+1)
		}
		if err = chain.Observe(fields[:order], fields[order]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return chain, nil
}

// readLine returns the next line without its terminator. Lines have no length
// limit. A final line without a newline is returned together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// SaveFile writes the chain to path. The file is written to a temporary file
// and renamed into place, so an interrupted save never leaves a truncated chain.
func (c *Chain) SaveFile(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return fmt.Errorf("could not encode chain: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("could not write chain file %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a chain from the file at path.
func LoadFile(path string) (*Chain, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open chain file: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	chain, err := ReadChain(file)
	if err != nil {
		return nil, fmt.Errorf("could not load chain file %s: %w", path, err)
	}
	return chain, nil
}
