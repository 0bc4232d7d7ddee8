//go:build linux

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

// readUsage samples the process resource counters.
func readUsage() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, err
	}
	return Usage{
		User:        time.Duration(ru.Utime.Nano()),
		System:      time.Duration(ru.Stime.Nano()),
		MaxRSSKiB:   int64(ru.Maxrss),
		MinorFaults: int64(ru.Minflt),
		MajorFaults: int64(ru.Majflt),
	}, nil
}
