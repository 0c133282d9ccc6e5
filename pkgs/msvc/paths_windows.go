//go:build windows

package msvc

import (
	"os"

	"golang.org/x/sys/windows"
)

func programFiles() string {
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_ProgramFiles, 0); err == nil {
		return dir
	}
	return os.Getenv("ProgramFiles")
}

func programFilesX86() string {
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_ProgramFilesX86, 0); err == nil {
		return dir
	}
	return os.Getenv("ProgramFiles(x86)")
}
