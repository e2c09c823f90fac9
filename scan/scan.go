// Package scan extracts the first unsigned decimal integer from a byte
// stream, such as the textual output of a compiler or simulator run.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrNoInteger is returned when the stream ends before any digit.
	ErrNoInteger = errors.New("no integer found")

	// ErrOverflow is returned when the digit run does not fit in an int.
	ErrOverflow = errors.New("integer overflows int")
)

// FirstInteger skips every byte that is not an ASCII digit, then
// accumulates the following run of digits into one base-10 value. It stops
// at the first non-digit after the run and unreads it, so the stream is
// left positioned right after the last digit.
func FirstInteger(r io.ByteScanner) (int, error) {
	c, err := skipToDigit(r)
	if err != nil {
		return 0, err
	}

	value := int(c - '0')
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return value, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		if !isDigit(c) {
			if err := r.UnreadByte(); err != nil {
				return 0, fmt.Errorf("failed to unread input: %w", err)
			}
			return value, nil
		}

		d := int(c - '0')
		if value > (math.MaxInt-d)/10 {
			return 0, ErrOverflow
		}
		value = 10*value + d
	}
}

// FirstIntegerFrom wraps r in a bufio.Reader when it is not already an
// io.ByteScanner. Buffering may read past the integer.
func FirstIntegerFrom(r io.Reader) (int, error) {
	if br, ok := r.(io.ByteScanner); ok {
		return FirstInteger(br)
	}
	return FirstInteger(bufio.NewReader(r))
}

func skipToDigit(r io.ByteScanner) (byte, error) {
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInteger
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		if isDigit(c) {
			return c, nil
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
