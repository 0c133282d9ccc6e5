package fileapi

import "encoding/json"

// Target types reported by cmake.
const (
	Executable       = "EXECUTABLE"
	StaticLibrary    = "STATIC_LIBRARY"
	SharedLibrary    = "SHARED_LIBRARY"
	ModuleLibrary    = "MODULE_LIBRARY"
	ObjectLibrary    = "OBJECT_LIBRARY"
	InterfaceLibrary = "INTERFACE_LIBRARY"
	Utility          = "UTILITY"
)

// Version is a File API object version.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// ObjectRef points at a reply object document.
type ObjectRef struct {
	Kind     string  `json:"kind"`
	Version  Version `json:"version"`
	JSONFile string  `json:"jsonFile"`
	Error    string  `json:"error,omitempty"`
}

// CMakeInfo describes the cmake that wrote the reply.
type CMakeInfo struct {
	Version struct {
		Major  int    `json:"major"`
		Minor  int    `json:"minor"`
		Patch  int    `json:"patch"`
		String string `json:"string"`
	} `json:"version"`
	Generator struct {
		Name        string `json:"name"`
		MultiConfig bool   `json:"multiConfig"`
		Platform    string `json:"platform,omitempty"`
	} `json:"generator"`
}

// Index is a parsed reply index document.
type Index struct {
	// File is the base name of the index file that was read.
	File  string                     `json:"-"`
	CMake CMakeInfo                  `json:"cmake"`
	Reply map[string]json.RawMessage `json:"reply"`
}

// Paths holds the top-level source and build directories.
type Paths struct {
	Source string `json:"source"`
	Build  string `json:"build"`
}

// TargetRef is a target entry of a code model configuration.
type TargetRef struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	JSONFile string `json:"jsonFile"`
}

// Configuration is one build configuration (Debug, Release, ...).
type Configuration struct {
	Name    string      `json:"name"`
	Targets []TargetRef `json:"targets"`
}

// CodeModel is the codemodel object: the build graph for every configuration.
type CodeModel struct {
	Version        Version         `json:"version"`
	Paths          Paths           `json:"paths"`
	Configurations []Configuration `json:"configurations"`
}

// ArtifactRef is an output file declared by a target.
type ArtifactRef struct {
	Path string `json:"path"`
}

// Target is a target detail document.
type Target struct {
	Name       string        `json:"name"`
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	NameOnDisk string        `json:"nameOnDisk,omitempty"`
	Artifacts  []ArtifactRef `json:"artifacts,omitempty"`
	Sources    []struct {
		Path string `json:"path"`
	} `json:"sources,omitempty"`
	Dependencies []struct {
		ID string `json:"id"`
	} `json:"dependencies,omitempty"`
}

// Artifact is a build output on disk.
type Artifact struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Path   string `json:"path"`
	Config string `json:"config,omitempty"`
}
