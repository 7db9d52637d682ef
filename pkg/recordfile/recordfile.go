// Package recordfile decodes fixed-line-count plain text records, where line
// position is the only schema.
package recordfile

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedRecord = errors.New("malformed record")

// Decode splits data into exactly fieldCount newline-separated fields.
// A single trailing newline at EOF is tolerated; any other line count is a
// malformed record rather than a silently missing field.
func Decode(data []byte, fieldCount int) ([]string, error) {
	contents := strings.ReplaceAll(string(data), "\r\n", "\n")
	contents = strings.TrimSuffix(contents, "\n")

	fields := strings.Split(contents, "\n")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", ErrMalformedRecord, fieldCount, len(fields))
	}

	return fields, nil
}
