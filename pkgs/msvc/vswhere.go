package msvc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// locatorArgs asks vswhere for every instance, prereleases and Build
// Tools included, as UTF-8 text.
var locatorArgs = []string{"-all", "-prerelease", "-products", "*", "-utf8"}

// locatorStrategy queries vswhere.exe.
type locatorStrategy struct {
	path   string
	runner Runner
}

func (l *locatorStrategy) Name() string { return "vswhere" }

func (l *locatorStrategy) Detect(ctx context.Context) ([]Instance, []string) {
	if l.path == "" {
		return nil, []string{"vswhere: installer directory unknown"}
	}
	if _, err := os.Stat(l.path); err != nil {
		return nil, []string{fmt.Sprintf("vswhere: %v", err)}
	}
	res, err := l.runner.Run(ctx, l.path, locatorArgs...)
	if err != nil {
		return nil, []string{fmt.Sprintf("vswhere: %v", err)}
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(string(res.Stderr))
		if msg == "" {
			msg = "no output"
		}
		return nil, []string{fmt.Sprintf("vswhere: exit status %d: %s", res.ExitCode, msg)}
	}
	instances := instancesFromRecords(parseLocatorOutput(string(res.Stdout)))
	if len(instances) == 0 {
		return nil, []string{"vswhere: no supported instances reported"}
	}
	return instances, nil
}

// parseLocatorOutput splits vswhere text output into one key/value map
// per blank-line separated block.
func parseLocatorOutput(out string) []map[string]string {
	out = strings.TrimPrefix(out, "\ufeff")
	var records []map[string]string
	var cur map[string]string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			if cur != nil {
				records = append(records, cur)
				cur = nil
			}
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if cur == nil {
			cur = make(map[string]string)
		}
		cur[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if cur != nil {
		records = append(records, cur)
	}
	return records
}

// instancesFromRecords maps vswhere records onto the catalog, keeping one
// instance per release: a stable install over a prerelease, then the
// highest installationVersion. Unknown releases are dropped.
func instancesFromRecords(records []map[string]string) []Instance {
	var instances []Instance
	var prereleases []bool
	index := make(map[string]int)
	for _, rec := range records {
		path := rec["installationPath"]
		if path == "" {
			continue
		}
		raw := rec["installationVersion"]
		v, ok := Lookup(rec["catalog_productLineVersion"])
		if !ok {
			v, ok = versionFromRaw(raw)
		}
		if !ok {
			continue
		}
		inst := Instance{
			Version:     v,
			InstallPath: path,
			DisplayName: rec["displayName"],
			RawVersion:  raw,
			Source:      "vswhere",
		}
		prerelease := rec["isPrerelease"] == "1"
		if i, seen := index[v.Year]; seen {
			if preferred(inst, prerelease, instances[i], prereleases[i]) {
				instances[i] = inst
				prereleases[i] = prerelease
			}
			continue
		}
		index[v.Year] = len(instances)
		instances = append(instances, inst)
		prereleases = append(prereleases, prerelease)
	}
	return instances
}

// preferred reports whether a should replace b for the same release.
func preferred(a Instance, aPre bool, b Instance, bPre bool) bool {
	if aPre != bPre {
		return !aPre
	}
	return semver.Compare(canonical(a.RawVersion), canonical(b.RawVersion)) > 0
}

// canonical turns an installationVersion such as "17.8.34330.188" into
// the semver "v17.8.34330". It returns "" for anything unparsable.
func canonical(raw string) string {
	parts := strings.SplitN(raw, ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return semver.Canonical("v" + strings.Join(parts, "."))
}

func versionFromRaw(raw string) (Version, bool) {
	v := canonical(raw)
	if v == "" {
		return Version{}, false
	}
	return LookupNumber(strings.TrimPrefix(semver.Major(v), "v"))
}
