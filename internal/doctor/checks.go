package doctor

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/thoreinstein/nem/internal/alias"
)

// Resolver locates executables on PATH. dispatch.PathResolver satisfies it.
type Resolver interface {
	LookPath(name string) (string, error)
}

// DefaultChecks returns the checks nem doctor runs, in report order.
// reserved holds the CLI's subcommand names and aliases.
func DefaultChecks(resolver Resolver, reserved []string) []Check {
	return []Check{
		&StoresCheck{},
		&DecodeCheck{},
		&PermissionCheck{},
		&DuplicateCodeCheck{},
		&CodeSyntaxCheck{},
		&ShadowCheck{},
		&ReservedCodeCheck{Reserved: reserved},
		&ExecutableCheck{Resolver: resolver},
	}
}

// StoresCheck reports which store files were found.
type StoresCheck struct{}

var _ Check = (*StoresCheck)(nil)

func (c *StoresCheck) Name() string     { return "store-files" }
func (c *StoresCheck) Category() string { return "stores" }

func (c *StoresCheck) Run(chain *alias.Chain) *CheckResult {
	stores := chain.Stores()
	if len(stores) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no store file found from " + chain.StartDir() + " up to the root",
			FixHint:  "Run: nem init",
		}
	}
	r := pass(c.Name(), c.Category(), fmt.Sprintf("%d store file(s) found", len(stores)))
	for _, s := range stores {
		r.Findings = append(r.Findings, fmt.Sprintf("%s (%d entries)", s.Path(), s.Len()))
	}
	return r
}

// DecodeCheck reports store files that were skipped during discovery.
type DecodeCheck struct{}

var _ Check = (*DecodeCheck)(nil)

func (c *DecodeCheck) Name() string     { return "decode" }
func (c *DecodeCheck) Category() string { return "stores" }

func (c *DecodeCheck) Run(chain *alias.Chain) *CheckResult {
	skipped := chain.Skipped()
	if len(skipped) == 0 {
		return pass(c.Name(), c.Category(), "all store files decoded")
	}
	r := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityError,
		Message:  fmt.Sprintf("%d store file(s) could not be read and were ignored", len(skipped)),
		FixHint:  "fix the file by hand, e.g. with: nem open",
	}
	for _, s := range skipped {
		r.Findings = append(r.Findings, fmt.Sprintf("%s: %v", s.Path, s.Err))
	}
	return r
}

// PermissionCheck flags store files nem cannot rewrite and files anyone
// can modify. Skipped on Windows.
type PermissionCheck struct{}

var _ Check = (*PermissionCheck)(nil)

func (c *PermissionCheck) Name() string     { return "permissions" }
func (c *PermissionCheck) Category() string { return "stores" }

func (c *PermissionCheck) Run(chain *alias.Chain) *CheckResult {
	if runtime.GOOS == "windows" {
		return pass(c.Name(), c.Category(), "permission checks skipped on windows")
	}

	var findings []string
	for _, s := range chain.Stores() {
		info, err := os.Stat(s.Path())
		if err != nil {
			// Stores that were never saved have no file yet.
			continue
		}
		perm := info.Mode().Perm()
		if perm&0o200 == 0 {
			findings = append(findings, fmt.Sprintf("%s: not writable by owner (mode %04o)", s.Path(), perm))
		}
		if perm&0o002 != 0 {
			findings = append(findings, fmt.Sprintf("%s: world-writable (mode %04o)", s.Path(), perm))
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "store file permissions ok")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityWarning,
		Message:  "store files have unexpected permissions",
		Findings: findings,
		FixHint:  "chmod 644 <file>",
	}
}

// DuplicateCodeCheck flags codes that appear twice in one file. Only the
// first of them can ever be dispatched.
type DuplicateCodeCheck struct{}

var _ Check = (*DuplicateCodeCheck)(nil)

func (c *DuplicateCodeCheck) Name() string     { return "duplicate-codes" }
func (c *DuplicateCodeCheck) Category() string { return "entries" }

func (c *DuplicateCodeCheck) Run(chain *alias.Chain) *CheckResult {
	var findings []string
	for _, s := range chain.Stores() {
		seen := make(map[string]string)
		for _, e := range s.Entries {
			if first, ok := seen[e.Code]; ok {
				findings = append(findings, fmt.Sprintf("%s: code %q used by `%s` and `%s`", s.Path(), e.Code, first, e.Command))
				continue
			}
			seen[e.Code] = e.Command
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "codes are unique within each file")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityError,
		Message:  "duplicate codes in the same store file",
		Findings: findings,
		FixHint:  "Run: nem edit <code> <new-code>, or fix the file with: nem open",
	}
}

// CodeSyntaxCheck flags codes that cannot be typed as a single argument.
type CodeSyntaxCheck struct{}

var _ Check = (*CodeSyntaxCheck)(nil)

func (c *CodeSyntaxCheck) Name() string     { return "code-syntax" }
func (c *CodeSyntaxCheck) Category() string { return "entries" }

func (c *CodeSyntaxCheck) Run(chain *alias.Chain) *CheckResult {
	var findings []string
	for _, m := range chain.Visible() {
		if err := alias.ValidateCode(m.Entry.Code); err != nil {
			findings = append(findings, fmt.Sprintf("%s: code %q for `%s`", m.Store.Path(), m.Entry.Code, m.Entry.Command))
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "all codes are single words")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityWarning,
		Message:  "codes containing whitespace cannot be dispatched",
		Findings: findings,
		FixHint:  "Run: nem open and rename the code",
	}
}

// ShadowCheck lists codes hidden by the same code in a nearer file.
type ShadowCheck struct{}

var _ Check = (*ShadowCheck)(nil)

func (c *ShadowCheck) Name() string     { return "shadowed-codes" }
func (c *ShadowCheck) Category() string { return "entries" }

func (c *ShadowCheck) Run(chain *alias.Chain) *CheckResult {
	owner := make(map[string]*alias.Store)
	var findings []string
	for _, m := range chain.Visible() {
		first, ok := owner[m.Entry.Code]
		if !ok {
			owner[m.Entry.Code] = m.Store
			continue
		}
		if first != m.Store {
			findings = append(findings, fmt.Sprintf("%q in %s is shadowed by %s", m.Entry.Code, m.Store.Path(), first.Path()))
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "no shadowed codes")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  fmt.Sprintf("%d code(s) shadowed by nearer store files", len(findings)),
		Findings: findings,
	}
}

// ReservedCodeCheck flags codes that equal a subcommand name, which the
// CLI always routes to the subcommand.
type ReservedCodeCheck struct {
	Reserved []string
}

var _ Check = (*ReservedCodeCheck)(nil)

func (c *ReservedCodeCheck) Name() string     { return "reserved-codes" }
func (c *ReservedCodeCheck) Category() string { return "entries" }

func (c *ReservedCodeCheck) Run(chain *alias.Chain) *CheckResult {
	var findings []string
	for _, m := range chain.Visible() {
		if m.Shadowed {
			continue
		}
		if slices.Contains(c.Reserved, m.Entry.Code) {
			findings = append(findings, fmt.Sprintf("%s: code %q for `%s`", m.Store.Path(), m.Entry.Code, m.Entry.Command))
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "no code clashes with a subcommand")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityWarning,
		Message:  "codes equal to a subcommand name can never be dispatched",
		Findings: findings,
		FixHint:  "Run: nem edit <code> <new-code>",
	}
}

// ExecutableCheck flags entries whose executable is not on PATH.
type ExecutableCheck struct {
	Resolver Resolver
}

var _ Check = (*ExecutableCheck)(nil)

func (c *ExecutableCheck) Name() string     { return "executables" }
func (c *ExecutableCheck) Category() string { return "environment" }

func (c *ExecutableCheck) Run(chain *alias.Chain) *CheckResult {
	if c.Resolver == nil {
		return pass(c.Name(), c.Category(), "executable lookup disabled")
	}

	missing := make(map[string]bool)
	var findings []string
	for _, m := range chain.Visible() {
		if m.Shadowed {
			continue
		}
		exe := m.Entry.Executable()
		if exe == "" || missing[exe] {
			continue
		}
		if _, err := c.Resolver.LookPath(exe); err != nil {
			missing[exe] = true
			findings = append(findings, fmt.Sprintf("%s (code %q in %s)", exe, m.Entry.Code, m.Store.Path()))
		}
	}
	if len(findings) == 0 {
		return pass(c.Name(), c.Category(), "all executables found on PATH")
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityWarning,
		Message:  fmt.Sprintf("%d executable(s) not found on PATH", len(findings)),
		Findings: findings,
		FixHint:  "install the missing tools or remove the aliases with: nem remove <code>",
	}
}
