//go:build !linux

package bench

import "errors"

// readUsage is only implemented on linux.
func readUsage() (Usage, error) {
	return Usage{}, errors.New("bench: resource usage is not supported on this platform")
}
