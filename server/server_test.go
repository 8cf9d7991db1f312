package server

import (
	"testing"
	"time"

	"AirFM/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServerHasNoWriteDeadline(t *testing.T) {
	s, err := New(&config.Config{Port: "0", AudioDir: t.TempDir()})
	require.NoError(t, err)

	srv := s.newHTTPServer()

	// A write deadline would sever slow full-file streams mid-response.
	assert.Zero(t, srv.WriteTimeout)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, ":0", srv.Addr)
}
