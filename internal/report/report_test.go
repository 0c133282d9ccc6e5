package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goplus/cppkit/pkgs/fileapi"
	"github.com/goplus/cppkit/pkgs/msvc"
)

func TestArtifacts(t *testing.T) {
	var buf bytes.Buffer
	Artifacts(&buf, []fileapi.Artifact{
		{Name: "core", Type: fileapi.StaticLibrary, Path: "/b/libcore.a", Config: "Debug"},
		{Name: "app", Type: fileapi.Executable, Path: "/b/app", Config: "Debug"},
		{Name: "api", Type: fileapi.SharedLibrary, Path: "/b/libapi.so"},
	})
	out := buf.String()
	exe := strings.Index(out, "Executables (1)")
	shared := strings.Index(out, "Shared libraries (1)")
	static := strings.Index(out, "Static libraries (1)")
	if exe < 0 || shared < 0 || static < 0 {
		t.Fatalf("missing group headers:\n%s", out)
	}
	if !(exe < shared && shared < static) {
		t.Fatalf("groups out of order:\n%s", out)
	}
	for _, want := range []string{"/b/app", "/b/libapi.so", "/b/libcore.a", "[Debug]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestArtifactsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Artifacts(&buf, nil)
	if !strings.Contains(buf.String(), "no artifacts") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestToolchains(t *testing.T) {
	v22, _ := msvc.Lookup("2022")
	v19, _ := msvc.Lookup("2019")
	var buf bytes.Buffer
	Toolchains(&buf, []msvc.Instance{
		{Version: v22, InstallPath: `C:\VS\2022\Community`, DisplayName: "Visual Studio Community 2022", RawVersion: "17.8.34330.188", Source: "vswhere"},
		{Version: v19, InstallPath: `C:\VS\2019\BuildTools`, Source: "probe"},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "*") || !strings.Contains(lines[0], "Visual Studio 17 2022") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "17.8.34330.188") || !strings.Contains(lines[1], "via vswhere") {
		t.Fatalf("second line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Visual Studio 2019") {
		t.Fatalf("third line = %q", lines[2])
	}
}
