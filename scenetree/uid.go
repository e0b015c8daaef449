package scenetree

import (
	"bufio"
	"os"
	"regexp"
)

var uidPattern = regexp.MustCompile(`uid="([^"]+)"`)

// ExistingUID returns the uid recorded in the header of a previously
// generated scene at path, or "" when the file or the attribute is
// absent. Only the first line is inspected; nothing else from the old
// file survives a regeneration.
func ExistingUID(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	m := uidPattern.FindStringSubmatch(scanner.Text())
	if m == nil {
		return ""
	}
	return m[1]
}
