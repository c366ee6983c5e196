package gridpdf

// Config holds user options for rendering the layout grid.
type Config struct {
	PageWidth   float64 // Output page width in points
	PageHeight  float64 // Output page height in points
	CoordWidth  float64 // Width of the token coordinate space (0 = PageWidth)
	CoordHeight float64 // Height of the token coordinate space (0 = PageHeight)
	LayerName   string  // Base name of the grid layer (page number appended)
	ShowTokens  bool    // Mark every token origin, not just rows/baselines
}

// DefaultConfig returns a config with sensible defaults: A4 in points,
// identity coordinate space, token origins visible.
func DefaultConfig() Config {
	return Config{
		PageWidth:  595.28,
		PageHeight: 841.89,
		LayerName:  "Layout Grid",
		ShowTokens: true,
	}
}
