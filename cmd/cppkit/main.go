package main

import "github.com/goplus/cppkit/cmd/cppkit/internal"

func main() {
	internal.Execute()
}
