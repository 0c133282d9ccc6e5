// Package fileapi reads the CMake File API reply written into a build
// directory and turns it into a list of build artifacts.
//
// Layout consumed, relative to a build directory:
//
//	.cmake/api/v1/query/codemodel-v2   # marker requesting the code model
//	.cmake/api/v1/reply/index-*.json   # reply index, greatest name wins
//	.cmake/api/v1/reply/<name>.json    # code model and target documents
package fileapi

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// CodeModelKind is the object kind key of the code model in the reply index.
const CodeModelKind = "codemodel-v2"

// CodeModelMajor is the code model major version this package understands.
const CodeModelMajor = 2

var (
	// ErrNoReply means cmake has not been configured with a query yet.
	ErrNoReply = errors.New("fileapi: reply directory not found (run configure first)")
	// ErrNoIndex means the reply directory holds no index file.
	ErrNoIndex = errors.New("fileapi: no reply index file (run configure first)")
	// ErrNoCodeModel means the query did not request the code model.
	ErrNoCodeModel = errors.New("fileapi: reply index has no " + CodeModelKind + " object (query was not set up)")
	// ErrNoObject means the reply index has no entry for a requested object kind.
	ErrNoObject = errors.New("fileapi: object kind not in reply index")
	// ErrMalformed reports a reply document missing required fields.
	ErrMalformed = errors.New("fileapi: malformed reply document")
)

// SchemaVersionError is returned for a code model whose major version
// differs from CodeModelMajor.
type SchemaVersionError struct {
	Kind  string
	Major int
	Minor int
}

func (e *SchemaVersionError) Error() string {
	return fmt.Sprintf("fileapi: unsupported %s schema version %d.%d (want major %d)", e.Kind, e.Major, e.Minor, CodeModelMajor)
}

// TargetError is returned when a target document cannot be read or parsed.
type TargetError struct {
	ID   string
	File string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("fileapi: target %s (%s) unreadable: %v", e.ID, e.File, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// ConfigNotFoundError is returned when WithConfig names a configuration
// the code model does not contain.
type ConfigNotFoundError struct {
	Name      string
	Available []string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("fileapi: configuration %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// ReplyDir returns the reply directory of buildDir.
func ReplyDir(buildDir string) string {
	return filepath.Join(buildDir, ".cmake", "api", "v1", "reply")
}

// QueryDir returns the shared stateless query directory of buildDir.
func QueryDir(buildDir string) string {
	return filepath.Join(buildDir, ".cmake", "api", "v1", "query")
}

// ReadBuildArtifacts reads the reply in buildDir and returns every
// executable and library artifact it declares.
func ReadBuildArtifacts(buildDir string, opts ...Option) ([]Artifact, error) {
	idx, err := ReadIndex(buildDir)
	if err != nil {
		return nil, err
	}
	replyDir := ReplyDir(buildDir)
	cm, err := ReadCodeModel(replyDir, idx)
	if err != nil {
		return nil, err
	}
	return ExtractArtifacts(replyDir, cm, opts...)
}
