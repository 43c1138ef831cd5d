// Package alias implements the alias store chain: per-directory store
// files, their discovery along the directory ancestry, merged lookup with
// nearest-wins shadowing, mutation routing and code generation.
//
// # Store files
//
// Each directory may hold one store file (".nem.toml" by default):
//
//	version = "0.0"
//
//	[[cmds]]
//	cmd = "cargo build --release"
//	code = "cbr"
//	desc = ""
//
// # Chains
//
// [Discover] walks from a start directory up to the filesystem root and
// returns a [Chain] ordered nearest first. Lookups scan nearest first, so
// a code defined closer to the start directory hides the same code further
// up. New entries always go to the nearest store; edits and removals go to
// whichever store currently owns the code.
//
// Stores are written back by [Chain.Persist], one atomic rename per file,
// nearest first. There is no transaction across files: if a later file
// fails to write, earlier files stay committed.
package alias
