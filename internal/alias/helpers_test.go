package alias

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeStore writes content as the store file in dir and returns its path.
func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// storesUnder filters the chain to stores below root so stray store files
// in the real ancestry of the temp dir do not affect assertions.
func storesUnder(c *Chain, root string) []*Store {
	var out []*Store
	for _, s := range c.Stores() {
		if strings.HasPrefix(s.Path(), root+string(filepath.Separator)) {
			out = append(out, s)
		}
	}
	return out
}

const storeEcho = `
version = "0.0"

[[cmds]]
cmd = "echo root"
code = "e"
desc = ""
`

const storeEchoPrj = `
version = "0.0"

[[cmds]]
cmd = "echo prj"
code = "e"
desc = "project echo"

[[cmds]]
cmd = "make test"
code = "mt"
desc = ""
`
