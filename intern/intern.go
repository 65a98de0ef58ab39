// Package intern maps identifier names to small integer handles.
//
// An Interner is append-only: once a name has been interned its Symbol is
// never invalidated or reused, so Symbols can be compared and hashed in place
// of the strings they stand for. A single Interner is created per session and
// passed explicitly to every stage that handles identifiers.
package intern

import "sync"

// Symbol is the interned handle for a name.
type Symbol uint32

// Interner is a concurrency-safe, append-only string table.
type Interner struct {
	mu      sync.RWMutex
	symbols map[string]Symbol
	names   []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{symbols: map[string]Symbol{}}
}

// Intern returns the Symbol for name, adding it to the table if needed.
func (in *Interner) Intern(name string) Symbol {
	in.mu.RLock()
	sym, ok := in.symbols[name]
	in.mu.RUnlock()
	if ok {
		return sym
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	// Another writer may have won the race between the two locks.
	if sym, ok := in.symbols[name]; ok {
		return sym
	}
	sym = Symbol(len(in.names))
	in.names = append(in.names, name)
	in.symbols[name] = sym
	return sym
}

// Lookup returns the Symbol for name without interning it.
func (in *Interner) Lookup(name string) (Symbol, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	sym, ok := in.symbols[name]
	return sym, ok
}

// Resolve returns the name behind sym. It panics if sym was not produced by
// this Interner, which indicates a programming error.
func (in *Interner) Resolve(sym Symbol) string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.names[sym]
}

// Len returns the number of interned names.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.names)
}
