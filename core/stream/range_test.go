package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		size      int64
		wantStart int64
		wantEnd   int64
		wantErr   error
	}{
		{name: "explicit interval", header: "bytes=0-499", size: 1000, wantStart: 0, wantEnd: 499},
		{name: "open end defaults to size-1", header: "bytes=500-", size: 1000, wantStart: 500, wantEnd: 999},
		{name: "single byte", header: "bytes=42-42", size: 1000, wantStart: 42, wantEnd: 42},
		{name: "end clamped to file", header: "bytes=0-5000", size: 1000, wantStart: 0, wantEnd: 999},
		{name: "last byte", header: "bytes=999-", size: 1000, wantStart: 999, wantEnd: 999},
		{name: "start at size", header: "bytes=1000-", size: 1000, wantErr: ErrUnsatisfiableRange},
		{name: "start beyond size", header: "bytes=4000-5000", size: 1000, wantErr: ErrUnsatisfiableRange},
		{name: "start after end", header: "bytes=500-100", size: 1000, wantErr: ErrUnsatisfiableRange},
		{name: "missing prefix", header: "0-499", size: 1000, wantErr: ErrMalformedRange},
		{name: "missing start", header: "bytes=-500", size: 1000, wantErr: ErrMalformedRange},
		{name: "non-numeric start", header: "bytes=abc-", size: 1000, wantErr: ErrMalformedRange},
		{name: "non-numeric end", header: "bytes=0-xyz", size: 1000, wantErr: ErrMalformedRange},
		{name: "multipart ranges", header: "bytes=0-1,5-9", size: 1000, wantErr: ErrMalformedRange},
		{name: "no dash", header: "bytes=100", size: 1000, wantErr: ErrMalformedRange},
		{name: "empty spec", header: "bytes=", size: 1000, wantErr: ErrMalformedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.header, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
			assert.Equal(t, tt.wantEnd-tt.wantStart+1, r.Length())
		})
	}
}
