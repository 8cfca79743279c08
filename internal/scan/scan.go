// Package scan audits directory trees for entry names which would not survive
// a transfer to another filesystem: names requiring escaping, reserved device
// names, names over the target's length limit, and sibling names which map to
// the same target name.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/mtth/syncpath/escape"
	"github.com/mtth/syncpath/fspath"
	"github.com/mtth/syncpath/fspolicy"
	"github.com/mtth/syncpath/internal/except"
)

var (
	// defaultMaxDepth is the maximum folder depth explored by Tree when the options leave
	// MaxDepth unset.
	defaultMaxDepth uint8 = 32

	// errScanFailed is returned when Tree was unable to walk the root.
	errScanFailed = errors.New("unable to scan tree")
)

// Options alter how Tree walks and which names it flags.
type Options struct {
	// Policy used to vet names. The zero policy flags nothing; callers usually start from a
	// fspolicy.Table entry.
	Policy fspolicy.Policy
	// Ignore contains glob patterns of folder names to skip. Ignored folders are neither
	// vetted nor entered.
	Ignore []string
	// MaxDepth caps recursion: entries more than MaxDepth levels below the root are not
	// visited. Zero means the package default.
	MaxDepth uint8
}

// Finding reports a single entry under the scanned root that needs attention before a transfer.
type Finding struct {
	// Path of the offending entry, slash-separated from the filesystem root.
	Path string
	// Name is the entry's base name, exactly as stored.
	Name string
	// Issue categorizes the problem.
	Issue IssueKind
	// Detail carries issue-specific context: the escaped form for IssueNeedsEscape, the byte
	// length for IssueNameTooLong, the earlier sibling for IssueCaseCollision.
	Detail string
}

// IssueKind captures the possible problems with an entry name.
type IssueKind int

//go:generate go run github.com/dmarkham/enumer -type=IssueKind -trimprefix Issue -transform snake-upper
const (
	// The name contains bytes the policy forbids.
	IssueNeedsEscape IssueKind = iota
	// The target filesystem reserves the name.
	IssueReservedName
	// The name exceeds the policy's component length limit.
	IssueNameTooLong
	// The name maps to the same target name as an earlier sibling.
	IssueCaseCollision
)

// Tree walks the filesystem under root and returns a finding for each entry name the policy
// rejects. The root folder's own name is not vetted. Findings surface in walk order, with
// collision findings for each folder appended after the walk.
func Tree(root string, opts Options) ([]Finding, error) {
	slog.Debug("Scanning tree.", slog.String("root", root))

	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = defaultMaxDepth
	}
	ignored, err := newIgnorePredicate(opts.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errScanFailed, err)
	}

	rootKey := unabs(root)
	depths := make(map[string]uint8)
	siblings := make(map[string][]string)
	var findings []Finding
	if err := fs.WalkDir(fileSystem, rootKey, func(fpath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if fpath == rootKey {
			return nil
		}
		name := entry.Name()
		if entry.IsDir() && ignored.matches(name) {
			return fs.SkipDir
		}
		findings = append(findings, vetName("/"+fpath, name, entry.IsDir(), opts.Policy)...)
		dir := path.Dir(fpath)
		siblings[dir] = append(siblings[dir], name)
		if entry.IsDir() {
			depth := depths[dir] + 1
			if depth >= maxDepth {
				return fs.SkipDir
			}
			depths[fpath] = depth
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", errScanFailed, err)
	}

	for _, dir := range slices.Sorted(maps.Keys(siblings)) {
		findings = append(findings, collisions(dir, siblings[dir], opts.Policy)...)
	}

	slog.Info(fmt.Sprintf("Found %d findings.", len(findings)))
	return findings, nil
}

// vetName checks a single entry name against the policy.
func vetName(fpath, name string, isDir bool, pol fspolicy.Policy) []Finding {
	var findings []Finding
	if escaped := escape.Encode(name, pol.IsIncompatible); escaped != name {
		findings = append(findings, Finding{Path: fpath, Name: name, Issue: IssueNeedsEscape, Detail: escaped})
	}
	node := fspolicy.NodeFile
	if isDir {
		node = fspolicy.NodeFolder
	}
	if pol.IsReservedName(name, node) {
		findings = append(findings, Finding{Path: fpath, Name: name, Issue: IssueReservedName})
	}
	if pol.ExceedsNameLimit(name) {
		findings = append(findings, Finding{Path: fpath, Name: name, Issue: IssueNameTooLong, Detail: strconv.Itoa(len(name))})
	}
	return findings
}

// collisions flags sibling names which decode to the same target name. Stored names may carry
// escapes, so "a%41" clashes with "aA" even on case-sensitive targets.
func collisions(dir string, names []string, pol fspolicy.Policy) []Finding {
	var findings []Finding
	for i, name := range names {
		for _, prior := range names[:i] {
			if fspath.CompareUTF(prior, true, name, true, pol.CaseInsensitive) == 0 {
				findings = append(findings, Finding{
					Path:   "/" + path.Join(dir, name),
					Name:   name,
					Issue:  IssueCaseCollision,
					Detail: prior,
				})
				break
			}
		}
	}
	return findings
}

// fileSystem is swapped out for testing.
var fileSystem fs.FS = os.DirFS("/")

func unabs(fpath string) string {
	absPath, err := filepath.Abs(fpath)
	except.Must(err == nil, "can't make path %v absolute: %v", fpath, err)
	return filepath.ToSlash(strings.TrimPrefix(absPath, string(filepath.Separator)))
}

// ignorePredicate matches folder names which should be skipped during scans.
type ignorePredicate []glob.Glob

func newIgnorePredicate(pats []string) (ignorePredicate, error) {
	var globs []glob.Glob
	for _, pat := range pats {
		compiled, err := glob.Compile(pat)
		if err != nil {
			return nil, err
		}
		globs = append(globs, compiled)
	}
	return ignorePredicate(globs), nil
}

func (p ignorePredicate) matches(name string) bool {
	for _, g := range p {
		if g.Match(name) {
			return true
		}
	}
	return false
}
