package vault

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Scanner enumerates the markdown documents under one catalog path.
type Scanner struct {
	root string
	log  *slog.Logger
}

// NewScanner creates a scanner rooted at the given directory.
func NewScanner(root string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{root: root, log: logger}
}

// Root returns the directory the scanner reads from.
func (s *Scanner) Root() string { return s.root }

// Scan walks the vault and returns one Document per markdown file. A
// file whose frontmatter cannot be read or parsed is still included,
// with empty fields, so one malformed document cannot abort a reload.
// Scan fails only when the root itself cannot be enumerated.
func (s *Scanner) Scan(ctx context.Context) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			s.log.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		fields := map[string]any{}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			s.log.Warn("document unreadable, keeping it with no fields", "document", rel, "error", readErr)
		} else if parsed, parseErr := ParseFrontmatter(content); parseErr != nil {
			s.log.Warn("frontmatter unparseable, keeping document with no fields", "document", rel, "error", parseErr)
		} else {
			fields = parsed
		}

		docs = append(docs, Document{Identity: rel, Fields: fields})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning vault %s: %w", s.root, err)
	}
	return docs, nil
}
