//go:build windows

package timestamp

import (
	"os"
	"syscall"
	"time"
)

// birthTime reads the NTFS creation time from the file attribute data.
func birthTime(_ string, info os.FileInfo) (time.Time, bool) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(0, attrs.CreationTime.Nanoseconds()), true
}
