package alias

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/logging"
)

func discover(t *testing.T, dir string, opts ...Option) *Chain {
	t.Helper()
	opts = append([]Option{WithLogger(logging.ForTest(t))}, opts...)
	c, err := Discover(dir, opts...)
	require.NoError(t, err)
	return c
}

func TestDiscover_WalksAncestry(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	deep := filepath.Join(prj, "src", "pkg")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	rootPath := writeStore(t, root, storeEcho)
	prjPath := writeStore(t, prj, storeEchoPrj)

	c := discover(t, deep)
	stores := storesUnder(c, root)
	require.Len(t, stores, 2)
	assert.Equal(t, prjPath, stores[0].Path(), "nearest store first")
	assert.Equal(t, rootPath, stores[1].Path())
	assert.Equal(t, deep, c.StartDir())
}

func TestDiscover_ParentVisibleFromChild(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	require.NoError(t, os.MkdirAll(prj, 0o755))
	writeStore(t, root, storeEcho)

	e, ok := discover(t, prj).FindByCode("e")
	require.True(t, ok)
	assert.Equal(t, "echo root", e.Command)
}

func TestDiscover_Shadowing(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	writeStore(t, root, storeEcho)
	writeStore(t, prj, storeEchoPrj)

	c := discover(t, prj)

	e, ok := c.FindByCode("e")
	require.True(t, ok)
	assert.Equal(t, "echo prj", e.Command)

	m, ok := c.Resolve("e")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(prj, DefaultFileName), m.Store.Path())

	// From the parent only the root entry is visible.
	e, ok = discover(t, root).FindByCode("e")
	require.True(t, ok)
	assert.Equal(t, "echo root", e.Command)
}

func TestDiscover_SkipsUndecodableFile(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	writeStore(t, root, storeEcho)
	badPath := writeStore(t, prj, "[[cmds]]\ncmd = \"ls\"\n")

	c := discover(t, prj)

	stores := storesUnder(c, root)
	require.Len(t, stores, 1)
	e, ok := c.FindByCode("e")
	require.True(t, ok)
	assert.Equal(t, "echo root", e.Command)

	require.NotEmpty(t, c.Skipped())
	assert.Equal(t, badPath, c.Skipped()[0].Path)
	assert.True(t, errors.Is(c.Skipped()[0].Err, ErrDecode))
}

func TestDiscover_CustomFileName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".aliases.toml"), []byte(storeEcho), 0o644))
	writeStore(t, root, storeEchoPrj)

	c := discover(t, root, WithFileName(".aliases.toml"))
	stores := storesUnder(c, root)
	require.Len(t, stores, 1)
	assert.Equal(t, filepath.Join(root, ".aliases.toml"), stores[0].Path())
}

func TestDiscover_GlobalStore(t *testing.T) {
	work := t.TempDir()
	globalDir := t.TempDir()
	globalPath := filepath.Join(globalDir, "nem.toml")
	require.NoError(t, os.WriteFile(globalPath, []byte("[[cmds]]\ncmd = \"git status\"\ncode = \"gs\"\n"), 0o644))
	writeStore(t, work, storeEcho)

	c := discover(t, work, WithGlobalStore(globalPath))
	stores := c.Stores()
	require.NotEmpty(t, stores)
	assert.Equal(t, globalPath, stores[len(stores)-1].Path(), "global store is farthest")

	e, ok := c.FindByCode("gs")
	require.True(t, ok)
	assert.Equal(t, "git status", e.Command)

	t.Run("missing global store is ignored", func(t *testing.T) {
		c := discover(t, work, WithGlobalStore(filepath.Join(globalDir, "absent.toml")))
		assert.Empty(t, c.Skipped())
	})

	t.Run("global store already on the walk is not added twice", func(t *testing.T) {
		own := filepath.Join(work, DefaultFileName)
		c := discover(t, work, WithGlobalStore(own))
		n := 0
		for _, s := range c.Stores() {
			if s.Path() == own {
				n++
			}
		}
		assert.Equal(t, 1, n)
	})
}

func TestChain_CreateThenFind(t *testing.T) {
	c := NewChain(NewStore(filepath.Join(t.TempDir(), DefaultFileName)))

	words := []string{"echo"}
	code := GenerateCode(words, c.Codes())
	_, err := c.AddEntry(Entry{Command: "echo", Code: code})
	require.NoError(t, err)

	e, ok := c.FindByCode(code)
	require.True(t, ok)
	assert.Equal(t, "echo", e.Command)
}

func TestChain_AddEntryTargetsNearest(t *testing.T) {
	near := NewStore("/a/b/" + DefaultFileName)
	far := NewStore("/a/" + DefaultFileName)
	c := NewChain(near, far)

	s, err := c.AddEntry(Entry{Command: "ls", Code: "l"})
	require.NoError(t, err)
	assert.Same(t, near, s)
	assert.Equal(t, 1, near.Len())
	assert.Equal(t, 0, far.Len())
}

func TestChain_AddEntryEmptyChain(t *testing.T) {
	c := NewChain()
	_, err := c.AddEntry(Entry{Command: "ls", Code: "l"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoStore))
}

func TestChain_InitStore(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	require.NoError(t, os.MkdirAll(prj, 0o755))
	writeStore(t, root, storeEcho)

	c := discover(t, prj)
	s, err := c.InitStore(prj)
	require.NoError(t, err)

	nearest, ok := c.Nearest()
	require.True(t, ok)
	assert.Same(t, s, nearest)
	assert.Equal(t, filepath.Join(prj, DefaultFileName), s.Path())

	again, err := c.InitStore(prj)
	require.NoError(t, err)
	assert.Same(t, s, again, "InitStore is idempotent")

	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "nothing written before Persist")

	require.NoError(t, c.Persist())
	_, err = os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestChain_RelabelCollision(t *testing.T) {
	s := NewStore("unused")
	s.Add(Entry{Command: "alpha", Code: "a"})
	s.Add(Entry{Command: "beta", Code: "b"})
	c := NewChain(s)

	_, err := c.Relabel("a", "b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCodeCollision))

	var collision *CollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, "beta", collision.Command)

	a, _ := c.FindByCode("a")
	b, _ := c.FindByCode("b")
	assert.Equal(t, "alpha", a.Command)
	assert.Equal(t, "beta", b.Command)
}

func TestChain_RelabelAcrossStores(t *testing.T) {
	near := NewStore("/a/b/" + DefaultFileName)
	near.Add(Entry{Command: "alpha", Code: "a"})
	far := NewStore("/a/" + DefaultFileName)
	far.Add(Entry{Command: "zeta", Code: "z"})
	c := NewChain(near, far)

	_, err := c.Relabel("a", "z")
	assert.True(t, errors.Is(err, ErrCodeCollision), "collision check spans the whole chain")

	e, err := c.Relabel("z", "zz")
	require.NoError(t, err)
	assert.Equal(t, "zz", e.Code)
	_, ok := far.Lookup("zz")
	assert.True(t, ok, "edit lands in the owning store")

	_, err = c.Relabel("missing", "m")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Relabel("a", "has space")
	assert.True(t, errors.Is(err, ErrInvalidCode))
}

func TestChain_RemoveThenMiss(t *testing.T) {
	s := NewStore("unused")
	s.Add(Entry{Command: "alpha", Code: "a"})
	c := NewChain(s)

	e, owner, err := c.RemoveByCode("a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", e.Command)
	assert.Same(t, s, owner)

	_, ok := c.FindByCode("a")
	assert.False(t, ok)

	_, _, err = c.RemoveByCode("a")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestChain_RemoveTargetsNearestOwner(t *testing.T) {
	near := NewStore("/a/b/" + DefaultFileName)
	near.Add(Entry{Command: "echo near", Code: "e"})
	far := NewStore("/a/" + DefaultFileName)
	far.Add(Entry{Command: "echo far", Code: "e"})
	c := NewChain(near, far)

	_, owner, err := c.RemoveByCode("e")
	require.NoError(t, err)
	assert.Same(t, near, owner)

	e, ok := c.FindByCode("e")
	require.True(t, ok, "farther entry is revealed")
	assert.Equal(t, "echo far", e.Command)
}

func TestChain_Describe(t *testing.T) {
	s := NewStore("unused")
	s.Add(Entry{Command: "alpha", Code: "a"})
	c := NewChain(s)

	e, err := c.Describe("a", "first")
	require.NoError(t, err)
	assert.Equal(t, "first", e.Description)

	_, err = c.Describe("x", "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestChain_CodesNearestFirst(t *testing.T) {
	near := NewStore("/a/b/" + DefaultFileName)
	near.Add(Entry{Command: "x", Code: "x"})
	far := NewStore("/a/" + DefaultFileName)
	far.Add(Entry{Command: "y", Code: "y"})
	far.Add(Entry{Command: "x2", Code: "x"})

	assert.Equal(t, []string{"x", "y", "x"}, NewChain(near, far).Codes())
}

func TestChain_VisibleAndSearch(t *testing.T) {
	near := NewStore("/a/b/" + DefaultFileName)
	near.Add(Entry{Command: "echo near", Code: "e", Description: "greeting"})
	far := NewStore("/a/" + DefaultFileName)
	far.Add(Entry{Command: "echo far", Code: "e"})
	far.Add(Entry{Command: "make build", Code: "mb"})
	c := NewChain(near, far)

	visible := c.Visible()
	require.Len(t, visible, 3)
	assert.False(t, visible[0].Shadowed)
	assert.True(t, visible[1].Shadowed)
	assert.False(t, visible[2].Shadowed)

	hits := c.Search("ECHO")
	require.Len(t, hits, 1)
	assert.Equal(t, "echo near", hits[0].Entry.Command)

	hits = c.Search("greet")
	require.Len(t, hits, 1)

	assert.Empty(t, c.Search("nothing"))
}

func TestChain_SortAndPersist(t *testing.T) {
	root := t.TempDir()
	prj := filepath.Join(root, "prj")
	writeStore(t, root, storeEcho)
	writeStore(t, prj, storeEchoPrj)

	c := discover(t, prj)
	_, err := c.AddEntry(Entry{Command: "awk", Code: "a"})
	require.NoError(t, err)
	c.Sort()
	require.NoError(t, c.Persist())

	reloaded, err := Load(filepath.Join(prj, DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "e", "mt"}, reloaded.Codes())
}

func TestChain_PersistStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := NewStore(filepath.Join(dir, DefaultFileName))
	bad := NewStore(filepath.Join(dir, "missing", DefaultFileName))
	later := NewStore(filepath.Join(dir, "later.toml"))
	c := NewChain(good, bad, later)

	err := c.Persist()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))

	_, statErr := os.Stat(good.Path())
	assert.NoError(t, statErr, "earlier store stays written")
	_, statErr = os.Stat(later.Path())
	assert.True(t, os.IsNotExist(statErr), "later store not attempted")
}
