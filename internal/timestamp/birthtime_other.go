//go:build !linux && !darwin && !windows

package timestamp

import (
	"os"
	"time"
)

// birthTime reports no creation time on platforms without a known source;
// callers fall back to the modification time.
func birthTime(_ string, _ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
