package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/nem/internal/alias"
)

// resetFlags restores every flag variable to its default between runs of
// the shared command tree.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	strictFlag = false
	dirFlag = ""
	listLong = false
	listFormat = formatText
	createCode = ""
	createDesc = ""
	createInit = false
	initForce = false
	initGlobal = false
	findInteractive = false
	findPrintOnly = false
	doctorJSON = false
	doctorAll = false
	openGlobal = false
}

// runNem executes nem with discovery starting in dir and returns what it
// wrote to stdout and stderr.
func runNem(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(append([]string{"-C", dir}, args...))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// sandbox isolates settings and returns a project directory.
func sandbox(t *testing.T) string {
	t.Helper()
	t.Setenv("NEM_CONFIG_DIR", t.TempDir())
	t.Setenv("NEM_STRICT", "")
	t.Setenv("NEM_AUTO_INIT", "")
	t.Setenv("NEM_DEBUG", "")
	t.Setenv("NEM_EDITOR", "")
	return t.TempDir()
}

func writeStoreFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, alias.DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loadStoreFile(t *testing.T, dir string) *alias.Store {
	t.Helper()
	s, err := alias.Load(filepath.Join(dir, alias.DefaultFileName))
	if err != nil {
		t.Fatalf("loading store in %s: %v", dir, err)
	}
	return s
}

const storeEchoHi = `version = "0.0"

[[cmds]]
cmd = "echo hi"
code = "e"
desc = "greets"
`
