// Package index builds a flat, workspace-wide symbol table from every open
// document (and, optionally, every .rs file on disk under a workspace
// root), and answers "is this name unique" queries for the inlay-hint
// passes.
//
// The index deliberately does not resolve imports or visibility: a name
// that appears more than once anywhere in the workspace is ambiguous and
// every query against it fails closed, returning no result rather than a
// guess.
package index

import (
	"os"
	"path/filepath"

	"github.com/karlding/ferrolsp/pkg/sig"
	"github.com/karlding/ferrolsp/pkg/token"
	"github.com/pkg/errors"
)

// Document is the minimal shape the index needs from an open buffer.
type Document struct {
	Path string
	Text string
}

// Index is the merged, name-keyed view of every function, method,
// generic-parameter list, and type name visible in the workspace.
type Index struct {
	FnDefs     map[string][]sig.FunctionSig
	MethodDefs map[string][]sig.FunctionSig
	Generics   map[string][][]sig.GenericParam
	TypeNames  map[string]int
}

func newIndex() *Index {
	return &Index{
		FnDefs:     make(map[string][]sig.FunctionSig),
		MethodDefs: make(map[string][]sig.FunctionSig),
		Generics:   make(map[string][][]sig.GenericParam),
		TypeNames:  make(map[string]int),
	}
}

// Build constructs an Index from the given open documents plus, if root is
// non-empty, every *.rs file found by walking root (skipping `target` and
// `.git` directories). A file path that's also open loses to the open
// document's in-memory text rather than what's on disk.
func Build(open []Document, root string) (*Index, error) {
	idx := newIndex()
	seen := make(map[string]bool, len(open))

	for _, doc := range open {
		seen[doc.Path] = true
		idx.merge(sig.ParseFile(doc.Text, token.Lex(doc.Text)))
	}

	if root == "" {
		return idx, nil
	}

	var walkErr error
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			walkErr = errors.Wrapf(err, "walking workspace at %s", path)
			return nil
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".rs" || seen[path] {
			return nil
		}
		text, err := os.ReadFile(path)
		if err != nil {
			walkErr = errors.Wrapf(err, "reading %s", path)
			return nil
		}
		idx.merge(sig.ParseFile(string(text), token.Lex(string(text))))
		return nil
	})
	if err != nil {
		return idx, errors.Wrap(err, "walking workspace")
	}
	return idx, walkErr
}

func shouldSkipDir(name string) bool {
	return name == "target" || name == ".git"
}

func (idx *Index) merge(f sig.File) {
	for _, fn := range f.Functions {
		if fn.HasSelf {
			stripped := fn
			stripped.Params = fn.Params[1:]
			idx.MethodDefs[fn.Name] = append(idx.MethodDefs[fn.Name], stripped)
		}
		idx.FnDefs[fn.Name] = append(idx.FnDefs[fn.Name], fn)
		if len(fn.Generics) > 0 {
			idx.Generics[fn.Name] = append(idx.Generics[fn.Name], fn.Generics)
		}
	}
	for _, decl := range f.Types {
		idx.TypeNames[decl.Name]++
		if len(decl.Generics) > 0 {
			idx.Generics[decl.Name] = append(idx.Generics[decl.Name], decl.Generics)
		}
	}
}

// UniqueFn returns the sole FunctionSig registered under name, or false if
// zero or more than one function shares that name.
func (idx *Index) UniqueFn(name string) (sig.FunctionSig, bool) {
	defs := idx.FnDefs[name]
	if len(defs) != 1 {
		return sig.FunctionSig{}, false
	}
	return defs[0], true
}

// UniqueMethod returns the sole self-stripped method signature registered
// under name, or false if zero or more than one method shares that name.
func (idx *Index) UniqueMethod(name string) (sig.FunctionSig, bool) {
	defs := idx.MethodDefs[name]
	if len(defs) != 1 {
		return sig.FunctionSig{}, false
	}
	return defs[0], true
}

// UniqueGenerics returns the sole generic-parameter list recorded for a
// function/type named name, or false if zero or more than one declaration
// under that name carries generics.
func (idx *Index) UniqueGenerics(name string) ([]sig.GenericParam, bool) {
	lists := idx.Generics[name]
	if len(lists) != 1 {
		return nil, false
	}
	return lists[0], true
}

// IsUniqueType reports whether name is declared as a struct/enum/trait/type
// exactly once in the workspace.
func (idx *Index) IsUniqueType(name string) bool {
	return idx.TypeNames[name] == 1
}
