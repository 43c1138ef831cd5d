package doctor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/dispatch/mocks"
	"github.com/thoreinstein/nem/internal/logging"
)

func storeWith(t *testing.T, entries ...alias.Entry) *alias.Store {
	t.Helper()
	s := alias.NewStore(filepath.Join(t.TempDir(), alias.DefaultFileName))
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

func TestStoresCheck(t *testing.T) {
	t.Run("no stores", func(t *testing.T) {
		res := (&StoresCheck{}).Run(alias.NewChain())
		assert.Equal(t, SeverityInfo, res.Status)
		assert.Equal(t, "Run: nem init", res.FixHint)
	})

	t.Run("lists stores", func(t *testing.T) {
		s := storeWith(t, alias.Entry{Command: "echo", Code: "e"})
		res := (&StoresCheck{}).Run(alias.NewChain(s))
		assert.Equal(t, SeverityPass, res.Status)
		require.Len(t, res.Findings, 1)
		assert.Contains(t, res.Findings[0], s.Path())
		assert.Contains(t, res.Findings[0], "1 entries")
	})
}

func TestDecodeCheck(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, alias.DefaultFileName)
	require.NoError(t, os.WriteFile(bad, []byte("[[cmds]\nnot toml"), 0o644))

	chain, err := alias.Discover(dir, alias.WithLogger(logging.ForTest(t)))
	require.NoError(t, err)

	res := (&DecodeCheck{}).Run(chain)
	assert.Equal(t, SeverityError, res.Status)
	require.NotEmpty(t, res.Findings)
	assert.True(t, strings.HasPrefix(res.Findings[0], bad))

	res = (&DecodeCheck{}).Run(alias.NewChain())
	assert.Equal(t, SeverityPass, res.Status)
}

func TestPermissionCheck(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	s := storeWith(t, alias.Entry{Command: "echo", Code: "e"})
	require.NoError(t, s.Save())

	res := (&PermissionCheck{}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityPass, res.Status)

	require.NoError(t, os.Chmod(s.Path(), 0o666))
	res = (&PermissionCheck{}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityWarning, res.Status)
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0], "world-writable")

	// Unsaved stores have no file and are not reported.
	res = (&PermissionCheck{}).Run(alias.NewChain(storeWith(t)))
	assert.Equal(t, SeverityPass, res.Status)
}

func TestDuplicateCodeCheck(t *testing.T) {
	s := storeWith(t,
		alias.Entry{Command: "echo one", Code: "e"},
		alias.Entry{Command: "echo two", Code: "e"},
		alias.Entry{Command: "ls", Code: "l"},
	)
	other := storeWith(t, alias.Entry{Command: "echo far", Code: "e"})

	res := (&DuplicateCodeCheck{}).Run(alias.NewChain(s, other))
	assert.Equal(t, SeverityError, res.Status)
	require.Len(t, res.Findings, 1, "the same code in different files is shadowing, not duplication")
	assert.Contains(t, res.Findings[0], "echo one")
	assert.Contains(t, res.Findings[0], "echo two")
}

func TestCodeSyntaxCheck(t *testing.T) {
	s := storeWith(t,
		alias.Entry{Command: "echo", Code: "e"},
		alias.Entry{Command: "ls", Code: "l s"},
	)

	res := (&CodeSyntaxCheck{}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityWarning, res.Status)
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0], `"l s"`)
}

func TestShadowCheck(t *testing.T) {
	near := storeWith(t, alias.Entry{Command: "echo near", Code: "e"})
	far := storeWith(t,
		alias.Entry{Command: "echo far", Code: "e"},
		alias.Entry{Command: "ls", Code: "l"},
	)

	res := (&ShadowCheck{}).Run(alias.NewChain(near, far))
	assert.Equal(t, SeverityInfo, res.Status)
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0], far.Path())
	assert.Contains(t, res.Findings[0], near.Path())

	res = (&ShadowCheck{}).Run(alias.NewChain(far))
	assert.Equal(t, SeverityPass, res.Status)
}

func TestReservedCodeCheck(t *testing.T) {
	s := storeWith(t,
		alias.Entry{Command: "ls -la", Code: "ls"},
		alias.Entry{Command: "echo", Code: "e"},
	)

	res := (&ReservedCodeCheck{Reserved: []string{"list", "ls"}}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityWarning, res.Status)
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0], "ls -la")
}

func TestExecutableCheck(t *testing.T) {
	s := storeWith(t,
		alias.Entry{Command: "git status", Code: "gs"},
		alias.Entry{Command: "nosuchtool a", Code: "n"},
		alias.Entry{Command: "nosuchtool b", Code: "nb"},
	)

	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
	resolver.EXPECT().LookPath("nosuchtool").Return("", exec.ErrNotFound).Once()

	res := (&ExecutableCheck{Resolver: resolver}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityWarning, res.Status)
	require.Len(t, res.Findings, 1, "each missing executable is reported once")
	assert.Contains(t, res.Findings[0], "nosuchtool")
	resolver.AssertNumberOfCalls(t, "LookPath", 2)
}

func TestExecutableCheck_NoResolver(t *testing.T) {
	s := storeWith(t, alias.Entry{Command: "nosuchtool", Code: "n"})
	res := (&ExecutableCheck{}).Run(alias.NewChain(s))
	assert.Equal(t, SeverityPass, res.Status)
}

func TestDefaultChecks(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().LookPath(mock.Anything).Return("/bin/x", nil).Maybe()

	checks := DefaultChecks(resolver, []string{"list"})
	names := make(map[string]bool)
	for _, c := range checks {
		assert.False(t, names[c.Name()], "duplicate check name %s", c.Name())
		names[c.Name()] = true
	}

	s := storeWith(t, alias.Entry{Command: "echo hi", Code: "e"})
	report := NewRunner(checks...).Run(alias.NewChain(s))
	assert.False(t, report.HasErrors())
	assert.False(t, report.HasWarnings())
}
