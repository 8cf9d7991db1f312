package store

import (
	"os"
	"syscall"
	"time"
)

// creationTime reads the file birth time the platform records.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
