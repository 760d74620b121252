//go:build unix

package assets

import "golang.org/x/sys/unix"

func freeDiskSpace(dir string) (uint64, error) {
	var stat unix.Statfs_t

	err := unix.Statfs(dir, &stat)
	if err != nil {
		return 0, err
	}

	//nolint:gosec,unconvert // field types differ between platforms
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}
