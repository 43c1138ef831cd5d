// Package dispatch resolves an alias code against a store chain and runs
// the aliased command as a child process.
//
// The command text is split on whitespace only; there is no shell. The
// first word is looked up on PATH through a [Resolver], and the child gets
// the entry's default arguments followed by the forwarded ones:
//
//	# .nem.toml: cmd = "echo hi", code = "e"
//	$ nem e there
//	hi there
//
// The child inherits stdin, stdout and stderr, and its exit status is
// returned to the caller. A code that resolves to nothing runs the
// configured fallback (normally list) unless the dispatcher is strict.
package dispatch
