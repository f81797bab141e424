package app

import "path/filepath"

// Config contains the optional knobs of a run. Every field except
// OutputPath is off by default, which reproduces the published card.
type Config struct {
	OutputPath  string
	QRBadge     bool
	Framebuffer string
	StdioLog    string
}

// DefaultConfig returns the configuration of a run without flags. Nothing
// is read from the environment.
func DefaultConfig(defaultOut string) Config {
	return Config{OutputPath: defaultOut}
}

// OutputPathFor returns public/og.png next to sourceFile. Builds with
// -trimpath report a relative source path; the working directory is used
// then.
func OutputPathFor(sourceFile string) string {
	if sourceFile == "" || !filepath.IsAbs(sourceFile) {
		return filepath.Join("public", "og.png")
	}
	return filepath.Join(filepath.Dir(sourceFile), "public", "og.png")
}
