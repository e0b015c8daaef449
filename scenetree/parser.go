package scenetree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// decorationChars are the characters allowed in a node line's prefix:
// plain indentation plus the box-drawing glyphs of a sketched tree.
const decorationChars = " \t│├└─"

// indentWidth is the fixed number of decoration characters per hierarchy
// level. Box-drawing runs count rune-for-rune against it, even when a
// glyph run is only 3 characters wide.
const indentWidth = 4

const (
	propertyMarker = ":"
	commentMarker  = "#"
)

// Parser turns tree-sketch lines into an ordered node list plus per-name
// property overrides. Malformed lines are logged and skipped; they never
// abort the pass.
type Parser struct {
	log *zap.SugaredLogger
}

func NewParser(log *zap.SugaredLogger) *Parser {
	return &Parser{log: log}
}

// Parse reads the sketch line by line. Nodes come back in input order,
// the first one being the root. It only fails when the underlying reader
// does.
func (p *Parser) Parse(r io.Reader) ([]Node, Properties, error) {
	var nodes []Node
	props := make(Properties)

	// Ancestor stack indexed by depth. A node at level L parents under
	// the most recent node at level L-1 still on the stack.
	var stack []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			p.log.Debugf("skipped line %d: empty", lineNum)
			continue
		}

		if strings.HasPrefix(trimmed, propertyMarker) {
			p.parseProperty(trimmed, lineNum, props)
			continue
		}

		content := line
		if i := strings.Index(content, commentMarker); i >= 0 {
			content = content[:i]
		}

		semantic := strings.TrimSpace(strings.TrimLeft(content, decorationChars))
		if semantic == "" {
			p.log.Warnf("skipped line %d: %q (no content after decoration)", lineNum, line)
			continue
		}

		level := indentLevel(content)
		p.log.Debugf("line %d: %q cleaned=%q indent=%d", lineNum, line, semantic, level)

		name, rest, ok := strings.Cut(semantic, "(")
		if !ok {
			p.log.Warnf("skipped line %d: %q (unrecognized format, missing '(')", lineNum, line)
			continue
		}
		name = strings.TrimSpace(name)
		nodeType := strings.Trim(rest, ") ")

		// Dedent: drop stack entries below the new level before pushing.
		for len(stack) > level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, name)

		fullPath := strings.Join(stack, "/")
		parent := ""
		if len(stack) > 1 {
			parent = strings.Join(stack[:len(stack)-1], "/")
		}

		nodes = append(nodes, Node{Name: name, Type: nodeType, Parent: parent, FullPath: fullPath})
		p.log.Debugf("node %s (%s) parent=%q path=%q", name, nodeType, parent, fullPath)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read tree sketch: %w", err)
	}

	return nodes, props, nil
}

func (p *Parser) parseProperty(trimmed string, lineNum int, props Properties) {
	def := strings.TrimPrefix(trimmed, propertyMarker)
	target, value, ok := strings.Cut(def, "=")
	if !ok {
		p.log.Warnf("failed to parse property at line %d: %q (missing '=')", lineNum, trimmed)
		return
	}
	name, key, ok := strings.Cut(target, ".")
	if !ok {
		p.log.Warnf("failed to parse property at line %d: %q (missing '.')", lineNum, trimmed)
		return
	}

	name = strings.TrimSpace(name)
	key = strings.TrimSpace(key)
	value = stripQuotes(strings.TrimSpace(value))

	if props[name] == nil {
		props[name] = &PropertySet{}
	}
	props[name].Set(key, value)
	p.log.Debugf("property -> node %s: %s = %q", name, key, value)
}

// indentLevel counts the leading decoration characters of the original
// line and divides by the fixed per-level width.
func indentLevel(line string) int {
	count := 0
	for _, r := range line {
		if !strings.ContainsRune(decorationChars, r) {
			break
		}
		count++
	}
	return count / indentWidth
}

// stripQuotes removes one pair of enclosing double quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
