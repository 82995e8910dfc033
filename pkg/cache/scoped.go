package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving each scope its
// own namespace in a shared backend:
//
//	server := NewScopedKeyer(NewDefaultKeyer(), "server:")
//	cli := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, which defaults to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PageKey returns the prefixed page key.
func (k *ScopedKeyer) PageKey(sourceHash string, opts PageKeyOpts) string {
	return k.prefix + k.inner.PageKey(sourceHash, opts)
}
