//go:build linux

package timestamp

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime queries the kernel via statx for the file's birth time.
// Not all filesystems fill STATX_BTIME (tmpfs older than 6.6, most
// network mounts), so absence is an expected outcome, not an error.
func birthTime(path string, _ os.FileInfo) (time.Time, bool) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}

	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
