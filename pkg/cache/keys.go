package cache

// LayoutKeyOpts holds what, besides the deck, determines a placement.
type LayoutKeyOpts struct {
	// OptionsHash is a hash of the layout-relevant options.
	OptionsHash string
	Order       string
}

// ArtifactKeyOpts holds what, besides the placement, determines an
// artifact.
type ArtifactKeyOpts struct {
	Format      string
	OptionsHash string
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(deckHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey generates a key for a paginated placement.
func (DefaultKeyer) LayoutKey(deckHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", deckHash, opts)
}

// ArtifactKey generates a key for one rendered format.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, layoutHash, opts)
}
