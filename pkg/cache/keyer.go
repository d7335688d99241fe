package cache

// Keyer builds cache keys for registry resources.
type Keyer interface {
	// CollectionsKey is the key of the collection listing.
	CollectionsKey() string
	// CollectionKey is the key of one collection's detail document.
	CollectionKey(prefix string) string
	// IconKey is the key of one icon's source document.
	IconKey(collection, name string) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CollectionsKey returns "collections".
func (DefaultKeyer) CollectionsKey() string {
	return "collections"
}

// CollectionKey returns "collection:<prefix>".
func (DefaultKeyer) CollectionKey(prefix string) string {
	return "collection:" + prefix
}

// IconKey returns "icon:<collection>:<name>".
func (DefaultKeyer) IconKey(collection, name string) string {
	return "icon:" + collection + ":" + name
}
