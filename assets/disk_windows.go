//go:build windows

package assets

import "golang.org/x/sys/windows"

func freeDiskSpace(dir string) (uint64, error) {
	path, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0, err
	}

	var free, total, totalFree uint64

	err = windows.GetDiskFreeSpaceEx(path, &free, &total, &totalFree)
	if err != nil {
		return 0, err
	}

	return free, nil
}
