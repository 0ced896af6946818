package boilerplate

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"mvdan.cc/gofumpt/format"
)

// GoFile generates a Go source skeleton. The package name derives from the
// file's directory inside the project; files at the project root become
// package main.
func GoFile(filename, relPath string) string {
	pkg := goPackageName(relPath)
	typeName := className(stem(filename))

	var src string
	if pkg == "main" {
		src = fmt.Sprintf(`// Generated on %[1]s.
package main

import "log"

func main() {
	log.Println("running %[2]s")
}
`, today(), spokenName(stem(filename)))
	} else {
		src = fmt.Sprintf(`// Package %[1]s provides functionality for %[2]s.
//
// Generated on %[3]s.
package %[1]s

import "fmt"

// %[4]s handles %[2]s.
type %[4]s struct{}

// New%[4]s returns a ready-to-use %[4]s.
func New%[4]s() *%[4]s {
	return &%[4]s{}
}

// Process handles the input data.
func (x *%[4]s) Process(data any) (any, error) {
	if data == nil {
		return nil, fmt.Errorf("no data provided")
	}
	// TODO: Implement processing logic
	return data, nil
}
`, pkg, spokenName(stem(filename)), today(), typeName)
	}

	return string(FormatGo([]byte(src)))
}

// FormatGo formats Go source in-memory using gofumpt. Returns the input
// unchanged if formatting fails.
func FormatGo(content []byte) []byte {
	formatted, err := format.Source(content, format.Options{})
	if err != nil {
		return content
	}
	return formatted
}

// goPackageName derives a legal package name from the file's parent
// directory within the project.
func goPackageName(relPath string) string {
	dir := filepath.Base(filepath.Dir(relPath))
	if dir == "." || dir == "/" || dir == "" {
		return "main"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}
