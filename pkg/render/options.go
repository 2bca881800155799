package render

// ThemeConfig carries a resolved theme selection into renderers: merged
// design tokens, derived CSS custom properties, and an asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}

// Options describe per-request data that renderers can use to customise
// their output without consulting mutable shared state.
type Options struct {
	// Theme is the resolved theme configuration, when the dispatcher was
	// constructed with a theme selector. Renderers treat a nil Theme as
	// "use built-in styling".
	Theme *ThemeConfig
}
