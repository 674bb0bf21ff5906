// Package vault reads catalog documents from a directory of markdown
// files. It owns the leaf-level I/O of the catalog pipeline: enumerating
// documents, extracting their raw frontmatter key/value pairs, and
// watching the directory for changes.
package vault

// Document is one enumerated source document: a stable identity (the
// path relative to the vault root) and its raw, untyped frontmatter
// fields. Typing happens later, against the catalog schema.
type Document struct {
	Identity string
	Fields   map[string]any
}
