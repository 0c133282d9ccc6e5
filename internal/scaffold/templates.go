package scaffold

import "text/template"

var cmakeListsTmpl = template.Must(template.New("CMakeLists.txt").Parse(`cmake_minimum_required(VERSION 3.16)

project({{.Name}}{{if .Version}} VERSION {{.Version}}{{end}} LANGUAGES CXX)
{{- if .Description}}
# {{.Description}}
{{- end}}

set(CMAKE_CXX_STANDARD {{if .CXXStandard}}{{.CXXStandard}}{{else}}17{{end}})
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)
{{if .FrameworkDir}}
add_subdirectory({{.FrameworkDir}})
{{end}}
add_executable({{.Name}} src/main.cpp)
`))

var mainTmpl = template.Must(template.New("main.cpp").Parse(`#include <iostream>

int main() {
    std::cout << "Hello from {{.Name}}!" << std::endl;
    return 0;
}
`))

var gitignoreTmpl = template.Must(template.New(".gitignore").Parse(`/{{or .Build.Dir "build"}}/
/out/
/.vs/
/.vscode/
compile_commands.json
CMakeUserPresets.json
*.user
`))
