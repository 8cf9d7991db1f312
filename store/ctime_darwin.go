package store

import (
	"os"
	"syscall"
	"time"
)

// creationTime reads the file birth time the platform records.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
