package cmake

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/goplus/cppkit/pkgs/fileapi"
)

func TestUseSetsEnv(t *testing.T) {
	tempDir := t.TempDir()
	includeDir := filepath.Join(tempDir, "include")
	libDir := filepath.Join(tempDir, "lib")
	pkgconfigDir := filepath.Join(libDir, "pkgconfig")

	for _, dir := range []string{includeDir, libDir, pkgconfigDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	for _, key := range []string{
		"PKG_CONFIG_PATH",
		"CMAKE_PREFIX_PATH",
		"CMAKE_INCLUDE_PATH",
		"CMAKE_LIBRARY_PATH",
		"INCLUDE",
		"LIB",
		"CPPFLAGS",
		"LDFLAGS",
	} {
		t.Setenv(key, "")
	}

	c := New(t.TempDir(), "")
	c.Use(tempDir)

	expectEq := map[string]string{
		"PKG_CONFIG_PATH":    pkgconfigDir,
		"CMAKE_PREFIX_PATH":  tempDir,
		"CMAKE_INCLUDE_PATH": includeDir,
		"CMAKE_LIBRARY_PATH": libDir,
	}
	for k, v := range expectEq {
		if got := c.env[k]; got != v {
			t.Fatalf("%s = %q, want %q", k, got, v)
		}
	}

	if runtime.GOOS == "windows" {
		if got := c.env["INCLUDE"]; got != includeDir {
			t.Fatalf("INCLUDE = %q, want %q", got, includeDir)
		}
		if got := c.env["LIB"]; got != libDir {
			t.Fatalf("LIB = %q, want %q", got, libDir)
		}
	} else {
		if got := c.env["CPPFLAGS"]; got != "-I"+includeDir {
			t.Fatalf("CPPFLAGS = %q, want %q", got, "-I"+includeDir)
		}
		if got := c.env["LDFLAGS"]; got != "-L"+libDir {
			t.Fatalf("LDFLAGS = %q, want %q", got, "-L"+libDir)
		}
	}

	// the process environment is left alone
	if got := os.Getenv("CMAKE_PREFIX_PATH"); got != "" {
		t.Fatalf("process CMAKE_PREFIX_PATH = %q, want empty", got)
	}
}

func TestUsePrependsToExisting(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CMAKE_PREFIX_PATH", "/opt/base")

	c := New(t.TempDir(), "")
	c.Use(root)
	want := root + string(os.PathListSeparator) + "/opt/base"
	if got := c.env["CMAKE_PREFIX_PATH"]; got != want {
		t.Fatalf("CMAKE_PREFIX_PATH = %q, want %q", got, want)
	}
}

func TestOutputDirPrefersInstall(t *testing.T) {
	c := New("src", "")
	if got, want := c.OutputDir(), filepath.Join("src", "build"); got != want {
		t.Fatalf("default OutputDir = %q, want %q", got, want)
	}
	c.InstallDir("custom-install")
	if got := c.OutputDir(); got != "custom-install" {
		t.Fatalf("OutputDir after InstallDir = %q, want %q", got, "custom-install")
	}
}

func TestConfigureArgs(t *testing.T) {
	c := New("src", "out")
	c.Generator("Visual Studio 17 2022").BuildType("Release").Toolchain("tc.cmake")
	c.Define("FOO", "BAR").DefineBool("ENABLE", true).DefineBool("DISABLE", false)
	c.InstallDir("dist")

	got := c.configureArgs("--fresh")
	want := []string{
		"-S", "src", "-B", "out", "-G", "Visual Studio 17 2022",
		"-DCMAKE_BUILD_TYPE:STRING=Release",
		"-DCMAKE_INSTALL_PREFIX:STRING=dist",
		"-DCMAKE_TOOLCHAIN_FILE:STRING=tc.cmake",
		"-DDISABLE:BOOL=OFF",
		"-DENABLE:BOOL=ON",
		"-DFOO:STRING=BAR",
		"--fresh",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("configureArgs =\n%v\nwant\n%v", got, want)
	}
}

func TestMergeEnv(t *testing.T) {
	got := mergeEnv([]string{"B=2", "A=1", "broken"}, map[string]string{"B": "3", "C": "4"})
	want := []string{"A=1", "B=3", "C=4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeEnv = %v, want %v", got, want)
	}
}

func TestArtifactsBeforeConfigure(t *testing.T) {
	c := New(t.TempDir(), filepath.Join(t.TempDir(), "build"))
	if _, err := c.Artifacts(); err == nil {
		t.Fatal("Artifacts before configure should fail")
	}
}

func TestConfigureBuildInstallE2E(t *testing.T) {
	if _, err := exec.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}

	tmp := t.TempDir()
	sourceDir := filepath.Join(tmp, "project")
	installDir := filepath.Join(tmp, "install")
	writeProject(t, sourceDir)

	c := New(sourceDir, filepath.Join(tmp, "build"))
	c.SetOutput(io.Discard, io.Discard)
	c.Env("CUSTOM", "VAL")
	c.InstallDir(installDir)
	c.BuildType("Release")
	c.Generator("Unix Makefiles")
	if runtime.GOOS == "windows" {
		c.Generator("")
	}
	c.Define("FOO", "BAR")
	c.DefineBool("ENABLE", true)

	ctx := context.Background()
	if err := c.Configure(ctx); err != nil {
		t.Skipf("configure failed (no compiler?): %v", err)
	}
	if err := c.Build(ctx); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := c.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}

	artifacts, err := c.Artifacts()
	if err != nil {
		t.Fatalf("artifacts: %v", err)
	}
	groups := fileapi.GroupByType(artifacts)
	if len(groups[fileapi.StaticLibrary]) != 1 || groups[fileapi.StaticLibrary][0].Name != "dummy" {
		t.Fatalf("static libraries = %+v", groups[fileapi.StaticLibrary])
	}
	if len(groups[fileapi.Executable]) != 1 || groups[fileapi.Executable][0].Name != "demo" {
		t.Fatalf("executables = %+v", groups[fileapi.Executable])
	}
	for _, a := range artifacts {
		if _, err := os.Stat(a.Path); err != nil {
			t.Fatalf("artifact %s missing after build: %v", a.Path, err)
		}
	}

	wantHeader := filepath.Join(installDir, "include", "dummy.h")
	if _, err := os.Stat(wantHeader); err != nil {
		t.Fatalf("installed header missing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(c.BuildDir(), "CMakeCache.txt"))
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	content := string(data)
	for _, snippet := range []string{
		"FOO:STRING=BAR",
		"ENABLE:BOOL=ON",
		"CMAKE_BUILD_TYPE:STRING=Release",
	} {
		if !strings.Contains(content, snippet) {
			t.Fatalf("cache missing %q", snippet)
		}
	}
}

func writeProject(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"CMakeLists.txt": `cmake_minimum_required(VERSION 3.14)
project(dummy C)
add_library(dummy STATIC dummy.c)
add_executable(demo main.c)
target_link_libraries(demo dummy)
install(TARGETS dummy DESTINATION lib)
install(FILES dummy.h DESTINATION include)
`,
		"dummy.h": "int dummy(void);\n",
		"dummy.c": "#include \"dummy.h\"\nint dummy(void) { return 0; }\n",
		"main.c":  "#include \"dummy.h\"\nint main(void) { return dummy(); }\n",
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
