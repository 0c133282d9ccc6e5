// Package report renders build artifacts and toolchains for the terminal.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/goplus/cppkit/pkgs/fileapi"
	"github.com/goplus/cppkit/pkgs/msvc"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// typeOrder is the display order of artifact groups.
var typeOrder = []string{fileapi.Executable, fileapi.SharedLibrary, fileapi.StaticLibrary}

var typeTitles = map[string]string{
	fileapi.Executable:    "Executables",
	fileapi.SharedLibrary: "Shared libraries",
	fileapi.StaticLibrary: "Static libraries",
}

// Artifacts writes artifacts grouped by target type.
func Artifacts(w io.Writer, artifacts []fileapi.Artifact) {
	if len(artifacts) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no artifacts"))
		return
	}
	groups := fileapi.GroupByType(artifacts)
	width := 0
	for _, a := range artifacts {
		width = max(width, len(a.Name))
	}
	for _, typ := range groupTypes(groups) {
		title, ok := typeTitles[typ]
		if !ok {
			title = typ
		}
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(groups[typ]))))
		for _, a := range groups[typ] {
			line := "  " + nameStyle.Render(fmt.Sprintf("%-*s", width, a.Name)) + "  " + a.Path
			if a.Config != "" {
				line += " " + dimStyle.Render("["+a.Config+"]")
			}
			fmt.Fprintln(w, line)
		}
	}
}

func groupTypes(groups map[string][]fileapi.Artifact) []string {
	var types []string
	for _, typ := range typeOrder {
		if len(groups[typ]) > 0 {
			types = append(types, typ)
		}
	}
	var rest []string
	for typ := range groups {
		if _, ok := typeTitles[typ]; !ok {
			rest = append(rest, typ)
		}
	}
	sort.Strings(rest)
	return append(types, rest...)
}

// Toolchains writes detected installations, newest first.
func Toolchains(w io.Writer, instances []msvc.Instance) {
	if len(instances) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no Visual Studio installation found"))
		return
	}
	for i, inst := range instances {
		name := inst.DisplayName
		if name == "" {
			name = "Visual Studio " + inst.Year
		}
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s\n", marker, nameStyle.Render(name), dimStyle.Render(inst.Generator))
		fmt.Fprintf(w, "    %s", inst.InstallPath)
		if inst.RawVersion != "" {
			fmt.Fprintf(w, " (%s)", inst.RawVersion)
		}
		fmt.Fprintf(w, " via %s\n", inst.Source)
	}
}
