//go:build darwin

package timestamp

import (
	"os"
	"syscall"
	"time"
)

// birthTime reads the birth time from the stat result; APFS and HFS+
// always provide one.
func birthTime(_ string, info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), true
}
