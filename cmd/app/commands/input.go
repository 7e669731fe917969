package commands

import (
	"bufio"
	"fmt"
	"io"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// ReadLine reads one line of at most maxBytes bytes, terminator included, and
// returns it without its trailing "\n" or "\r\n". A final line without a
// terminator is accepted. An empty stream yields ErrInputUnavailable; a line
// that does not fit yields ErrMessageTooLong.
func ReadLine(r io.Reader, maxBytes int) ([]byte, error) {
	br := bufio.NewReader(r)
	line := make([]byte, 0, min(maxBytes, 256))

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if len(line) == 0 {
				return nil, rsaDomain.ErrInputUnavailable
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rsaDomain.ErrInputUnavailable, err)
		}
		if b == '\n' {
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			return line, nil
		}
		line = append(line, b)
		if len(line) > maxBytes-1 {
			// A '\r' that opens the "\r\n" terminator is not message data.
			if b == '\r' && len(line) == maxBytes {
				if next, err := br.Peek(1); err == nil && next[0] == '\n' {
					continue
				}
			}
			return nil, fmt.Errorf("%w: more than %d bytes", rsaDomain.ErrMessageTooLong, maxBytes-1)
		}
	}

	return line, nil
}
