package vault

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterFence = []byte("---")

// ParseFrontmatter extracts the YAML frontmatter block from a markdown
// document. A document without a frontmatter block yields an empty map;
// a malformed block is an error the caller may degrade to an empty
// document rather than abort a scan.
func ParseFrontmatter(content []byte) (map[string]any, error) {
	rest, ok := cutFence(content)
	if !ok {
		return map[string]any{}, nil
	}
	end := findClosingFence(rest)
	if end < 0 {
		return nil, fmt.Errorf("frontmatter block is not closed")
	}

	fields := make(map[string]any)
	if err := yaml.Unmarshal(rest[:end], &fields); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return fields, nil
}

// cutFence strips the opening fence line. The fence must be the first
// line of the document.
func cutFence(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, frontmatterFence) {
		return nil, false
	}
	rest := content[len(frontmatterFence):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, false
	}
	return rest[1:], true
}

// findClosingFence returns the offset of the closing fence line, or -1.
func findClosingFence(content []byte) int {
	offset := 0
	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		trimmed := bytes.TrimRight(line, "\r\n")
		if bytes.Equal(trimmed, frontmatterFence) {
			return offset
		}
		offset += len(line)
	}
	return -1
}
