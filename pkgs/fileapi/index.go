package fileapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadIndex reads the newest reply index in buildDir. Index files are
// named index-<timestamp>.json, so the lexically greatest name is the
// most recent one.
func ReadIndex(buildDir string) (*Index, error) {
	replyDir := ReplyDir(buildDir)
	entries, err := os.ReadDir(replyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoReply, replyDir)
		}
		return nil, fmt.Errorf("read reply dir %s: %w", replyDir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "index-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoIndex, replyDir)
	}
	sort.Strings(names)
	latest := names[len(names)-1]

	idx := &Index{}
	if err := readJSON(filepath.Join(replyDir, latest), idx); err != nil {
		return nil, err
	}
	idx.File = latest
	return idx, nil
}

// Object returns the reply entry stored under key, e.g. CodeModelKind.
// A missing entry, or one cmake answered with an error, wraps ErrNoObject.
func (idx *Index) Object(key string) (*ObjectRef, error) {
	raw, ok := idx.Reply[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (index %s)", ErrNoObject, key, idx.File)
	}
	ref := &ObjectRef{}
	if err := json.Unmarshal(raw, ref); err != nil {
		return nil, fmt.Errorf("%w: index %s: reply %q: %v", ErrMalformed, idx.File, key, err)
	}
	if ref.Error != "" {
		return nil, fmt.Errorf("%w: %q: %s", ErrNoObject, key, ref.Error)
	}
	if ref.JSONFile == "" {
		return nil, fmt.Errorf("%w: index %s: reply %q has no jsonFile", ErrMalformed, idx.File, key)
	}
	return ref, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}
