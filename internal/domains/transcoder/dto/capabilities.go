package dto

// Capabilities are detected once per run and stay read-only during it.
type Capabilities struct {
	FFmpegPath string
}

func (c *Capabilities) VideoAvailable() bool {
	return c != nil && c.FFmpegPath != ""
}
