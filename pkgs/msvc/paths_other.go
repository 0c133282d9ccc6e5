//go:build !windows

package msvc

import "os"

func programFiles() string { return os.Getenv("ProgramFiles") }

func programFilesX86() string { return os.Getenv("ProgramFiles(x86)") }
