// Shared fixtures and helpers for the integration suite.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureSchemaYAML is the catalog schema used across the suite: a book
// catalog keyed by ISBN with a status field and an array genre field.
const fixtureSchemaYAML = `catalog_name: gothic-library
core:
  title_field: title
  id_field: isbn
  status_field: catalog-status
fields:
  - key: isbn
    label: ISBN
    type: string
    visible: true
    sort_order: 5
  - key: title
    label: Title
    type: string
    visible: true
    sortable: true
    sort_order: 1
  - key: author
    label: Author
    type: string
    visible: true
    filterable: true
    sortable: true
    sort_order: 2
  - key: year-published
    label: Year
    type: number
    visible: true
    filterable: true
    sortable: true
    sort_order: 3
  - key: catalog-status
    label: Status
    type: string
    visible: true
    filterable: true
    sort_order: 4
  - key: genres
    label: Genres
    type: array
    filterable: true
    array_item_type: string
`

// fixtureBook describes one markdown document of the fixture vault.
type fixtureBook struct {
	ISBN   string
	Title  string
	Author string
	Year   int // 0 leaves year-published out of the frontmatter
	Status string
	Genres []string
}

// fixtureBooks is the 15-entry vault: 3 drafts, 12 published, nine
// entries published in [1800,1900], and one entry with no year.
var fixtureBooks = []fixtureBook{
	{"cthulhu", "The Call of Cthulhu", "H. P. Lovecraft", 1928, "published", []string{"cosmic-horror", "short-story"}},
	{"innsmouth", "The Shadow over Innsmouth", "H. P. Lovecraft", 1936, "published", []string{"cosmic-horror"}},
	{"dunwich", "The Dunwich Horror", "H. P. Lovecraft", 1929, "published", []string{"cosmic-horror"}},
	{"mountains", "At the Mountains of Madness", "H. P. Lovecraft", 1936, "published", []string{"cosmic-horror", "novella"}},
	{"haunter", "The Haunter of the Dark", "H. P. Lovecraft", 0, "draft", []string{"cosmic-horror"}},
	{"raven", "The Raven", "Edgar Allan Poe", 1845, "published", []string{"poetry", "gothic"}},
	{"usher", "The Fall of the House of Usher", "Edgar Allan Poe", 1839, "published", []string{"gothic", "short-story"}},
	{"tell-tale", "The Tell-Tale Heart", "Edgar Allan Poe", 1843, "published", []string{"gothic", "short-story"}},
	{"masque", "The Masque of the Red Death", "Edgar Allan Poe", 1842, "published", []string{"gothic"}},
	{"cask", "The Cask of Amontillado", "Edgar Allan Poe", 1846, "published", []string{"gothic", "short-story"}},
	{"carmilla", "Carmilla", "Sheridan Le Fanu", 1872, "published", []string{"gothic", "vampire"}},
	{"silas", "Uncle Silas", "Sheridan Le Fanu", 1864, "published", []string{"gothic", "mystery"}},
	{"glass-darkly", "In a Glass Darkly", "Sheridan Le Fanu", 1872, "draft", []string{"gothic"}},
	{"churchyard", "The House by the Churchyard", "Sheridan Le Fanu", 1863, "draft", []string{"gothic"}},
	{"herbert-west", "Herbert West, Reanimator", "H. P. Lovecraft", 1942, "published", []string{"cosmic-horror"}},
}

// bookMarkdown renders one fixture document.
func bookMarkdown(b fixtureBook) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "isbn: %s\n", b.ISBN)
	fmt.Fprintf(&sb, "title: %q\n", b.Title)
	fmt.Fprintf(&sb, "author: %q\n", b.Author)
	if b.Year != 0 {
		fmt.Fprintf(&sb, "year-published: %d\n", b.Year)
	}
	fmt.Fprintf(&sb, "catalog-status: %s\n", b.Status)
	if len(b.Genres) > 0 {
		sb.WriteString("genres:\n")
		for _, g := range b.Genres {
			fmt.Fprintf(&sb, "  - %s\n", g)
		}
	}
	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "# %s\n\nNotes on %s.\n", b.Title, b.Title)
	return sb.String()
}

// writeVault creates the fixture vault on disk and returns its root.
func writeVault(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, b := range fixtureBooks {
		path := filepath.Join(root, b.ISBN+".md")
		require.NoError(t, os.WriteFile(path, []byte(bookMarkdown(b)), 0o644))
	}
	return root
}

// writeConfigDir creates a config directory holding the fixture schema
// and a config.yaml pointing the CLI at it.
func writeConfigDir(t *testing.T, vaultDir string) string {
	t.Helper()
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(fixtureSchemaYAML), 0o644))
	configYAML := fmt.Sprintf("vault_dir: %q\nschema_file: %q\npreferences:\n  items_per_page: 25\n", vaultDir, schemaPath)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0o644))
	return dir
}

var (
	shelfBin    string
	buildOnce   sync.Once
	buildErr    error
	buildTmpDir string
)

// ensureBinary builds the shelf binary once and returns the path to it.
func ensureBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		buildTmpDir, buildErr = os.MkdirTemp("", "shelf-cli-test-*")
		if buildErr != nil {
			return
		}
		binPath := filepath.Join(buildTmpDir, "shelf")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/shelf")
		cmd.Dir = projectRoot()
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		buildErr = cmd.Run()
		if buildErr == nil {
			shelfBin = binPath
		}
	})
	require.NoError(t, buildErr, "build shelf binary")
	return shelfBin
}

// projectRoot returns the absolute path to the project root by walking
// up from the working directory until go.mod is found.
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("go.mod not found")
		}
		dir = parent
	}
}

// runShelf executes the shelf binary against the given config directory
// and vault.
func runShelf(t *testing.T, configDir, vaultDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	bin := ensureBinary(t)
	fullArgs := append([]string{"--config-dir", configDir, "--vault", vaultDir}, args...)
	cmd := exec.Command(bin, fullArgs...)
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		} else {
			t.Fatalf("run shelf: %v", err)
		}
	}
	return stdout, stderr, exitCode
}
