package ast

import (
	"fmt"
	"os"
	"path/filepath"
)

type Program struct {
	Units []*CompilationUnit
	IDs   *IDGen
}

func NewProgram() *Program {
	return &Program{IDs: NewIDGen()}
}

type Loc struct {
	Name      string
	Dir       string
	Path      string
	IsPackage bool
}

func LocFromPath(fullPath string) (*Loc, error) {
	loc := new(Loc)
	loc.Path = fullPath

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}

	mode := info.Mode()
	loc.IsPackage = mode.IsDir()
	loc.Name = filepath.Base(fullPath)

	if mode.IsDir() {
		loc.Dir = filepath.Base(fullPath)
	} else {
		loc.Dir = filepath.Base(filepath.Dir(fullPath))
	}

	return loc, nil
}

func (l Loc) String() string {
	return fmt.Sprintf(
		"Name: %s | Dir: %s | Path: %s | isPackage: %v",
		l.Name,
		l.Dir,
		l.Path,
		l.IsPackage,
	)
}

// CompilationUnit owns the directive tree of one source file. It is a node
// itself so that its unit scope can be memoized like any other scope.
type CompilationUnit struct {
	Base
	Loc        *Loc
	Directives []Directive
}
