package stream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRange is returned when a Range header cannot be parsed.
	ErrMalformedRange = errors.New("malformed range header")
	// ErrUnsatisfiableRange is returned when a parsed range lies outside the
	// file, e.g. a start at or beyond the file size.
	ErrUnsatisfiableRange = errors.New("unsatisfiable range")
)

// ByteRange is a resolved byte interval over a file of known size.
// Both bounds are inclusive.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes covered by the range.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ParseRange parses a Range header of the form "bytes=<start>-[<end>]"
// against a file of the given size. A missing end defaults to size-1; an end
// beyond the file is clamped to size-1. Ranges with start >= size or
// start > end are unsatisfiable.
func ParseRange(header string, size int64) (*ByteRange, error) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}
	spec := strings.TrimPrefix(header, prefix)
	if strings.Contains(spec, ",") {
		// Multipart ranges are not part of the grammar media elements use.
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found || startStr == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRange, header)
		}
	}
	if end > size-1 {
		end = size - 1
	}

	if start >= size || start > end {
		return nil, fmt.Errorf("%w: bytes %d-%d of %d", ErrUnsatisfiableRange, start, end, size)
	}

	return &ByteRange{Start: start, End: end}, nil
}
