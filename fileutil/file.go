// Package fileutil identifies files the zsh scanner is likely to be
// asked to scan.
package fileutil

import (
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	shebangRe = regexp.MustCompile(`^#![ \t]*/(usr/)?bin/(env[ \t]+)?zsh(\s|$)`)
	extRe     = regexp.MustCompile(`\.zsh$|^\.zshrc$|^\.zshenv$|^\.zprofile$|^\.zlogin$`)
)

// HasShebang reports whether bs begins with a valid zsh shebang,
// supporting the /usr and env variations.
func HasShebang(bs []byte) bool {
	return shebangRe.Match(bs)
}

// ScriptConfidence grades how likely a directory entry is to be a zsh
// script, from certainly-not to certainly-is.
type ScriptConfidence int

const (
	// ConfNotScript: a directory, dotfile (other than a recognized zsh
	// rc file), symlink, or a non-zsh extension.
	ConfNotScript ScriptConfidence = iota

	// ConfIfShebang: extensionless; the answer depends on the file's
	// first line, which CouldBeScript can't see from a DirEntry alone.
	ConfIfShebang

	// ConfIsScript: a regular file with a recognized zsh extension or
	// rc-file name.
	ConfIsScript
)

// CouldBeScript reports how likely entry is to be a zsh script, judged
// from the directory entry alone, without opening the file.
func CouldBeScript(entry fs.DirEntry) ScriptConfidence {
	name := entry.Name()
	switch {
	case entry.IsDir():
		return ConfNotScript
	case entry.Type()&os.ModeSymlink != 0:
		return ConfNotScript
	case extRe.MatchString(name):
		return ConfIsScript
	case len(name) > 0 && name[0] == '.':
		return ConfNotScript
	case strings.IndexByte(name, '.') > 0:
		return ConfNotScript // different extension
	default:
		return ConfIfShebang
	}
}
