package cache

// ScopedKeyer wraps a Keyer with a prefix so caches shared between registries
// never mix entries. The registry client scopes keys by API host:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api.iconify.design:")
//	keyer.IconKey("lucide", "home") // "api.iconify.design:icon:lucide:home"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CollectionsKey generates a prefixed collection listing key.
func (k *ScopedKeyer) CollectionsKey() string {
	return k.prefix + k.inner.CollectionsKey()
}

// CollectionKey generates a prefixed collection key.
func (k *ScopedKeyer) CollectionKey(prefix string) string {
	return k.prefix + k.inner.CollectionKey(prefix)
}

// IconKey generates a prefixed icon key.
func (k *ScopedKeyer) IconKey(collection, name string) string {
	return k.prefix + k.inner.IconKey(collection, name)
}
