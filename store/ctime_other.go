//go:build !darwin && !windows

package store

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms that do not
// expose a birth time through os.FileInfo.Sys.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
