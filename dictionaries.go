package xonshlex

// reservedKeywords are the Python control-flow keywords plus xonsh's own
// reserved words that must never be mistaken for the start of a bare
// subprocess line. Stored as a hash set (map) rather than scanned linearly,
// per the fixed-dictionary design note: membership is an O(1) map lookup
// instead of the teacher corpus's occasional O(N) string-compare loops.
var reservedKeywords = map[string]struct{}{
	"def": {}, "class": {}, "if": {}, "elif": {}, "else": {}, "for": {},
	"while": {}, "try": {}, "except": {}, "finally": {}, "with": {},
	"import": {}, "from": {}, "return": {}, "yield": {}, "raise": {},
	"pass": {}, "break": {}, "continue": {}, "del": {}, "global": {},
	"nonlocal": {}, "assert": {}, "lambda": {}, "async": {}, "await": {},
	"match": {}, "case": {}, "type": {},
	"xontrib": {},
}

// shellCommands are common shell commands recognized as a bare subprocess
// even without any other shell signal on the line. Extending this set must
// never drop an entry already listed here (spec.md §6).
var shellCommands = map[string]struct{}{
	// Core utilities
	"cd": {}, "ls": {}, "pwd": {}, "echo": {}, "cat": {}, "cp": {}, "mv": {},
	"rm": {}, "mkdir": {}, "rmdir": {}, "touch": {}, "chmod": {}, "chown": {},
	"ln": {}, "head": {}, "tail": {}, "less": {}, "more": {},
	// Search and text processing
	"grep": {}, "find": {}, "sed": {}, "awk": {}, "sort": {}, "uniq": {},
	"wc": {}, "cut": {}, "tr": {}, "xargs": {},
	// Build tools
	"make": {}, "cmake": {}, "ninja": {}, "gradle": {}, "mvn": {}, "ant": {},
	"meson": {},
	// Package managers
	"npm": {}, "yarn": {}, "pnpm": {}, "pip": {}, "pip3": {}, "cargo": {},
	"go": {}, "gem": {}, "composer": {},
	// Version control
	"git": {}, "svn": {}, "hg": {}, "bzr": {},
	// Containers
	"docker": {}, "podman": {}, "kubectl": {}, "helm": {}, "docker-compose": {},
	// Network
	"curl": {}, "wget": {}, "ssh": {}, "scp": {}, "rsync": {}, "ping": {},
	"nc": {}, "netstat": {},
	// Archive
	"tar": {}, "zip": {}, "unzip": {}, "gzip": {}, "gunzip": {}, "xz": {},
	"bzip2": {},
	// System
	"sudo": {}, "su": {}, "ps": {}, "top": {}, "htop": {}, "kill": {},
	"killall": {}, "df": {}, "du": {}, "mount": {},
	// Compilers
	"gcc": {}, "g++": {}, "clang": {}, "clang++": {}, "rustc": {}, "javac": {},
	"python": {}, "python3": {},
	// Editors
	"vi": {}, "vim": {}, "nvim": {}, "nano": {}, "emacs": {}, "code": {},
	// Xonsh specific
	"xpip": {}, "completer": {}, "history": {}, "replay": {}, "trace": {},
	"timeit": {},
}

// dictionarySet is an additive, built-once view over a built-in map plus an
// optional overlay. It never removes a built-in entry.
type dictionarySet map[string]struct{}

func newDictionarySet(builtin map[string]struct{}, extra []string) dictionarySet {
	set := make(dictionarySet, len(builtin)+len(extra))
	for k := range builtin {
		set[k] = struct{}{}
	}
	for _, k := range extra {
		set[k] = struct{}{}
	}
	return set
}

func (d dictionarySet) has(word string) bool {
	_, ok := d[word]
	return ok
}
