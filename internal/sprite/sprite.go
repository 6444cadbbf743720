// Package sprite provides the boat's per-heading glyphs. A glyph set can be
// loaded from a small text file; if that fails the built-in set is used, so a
// missing or broken file never stops the game.
package sprite

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Set holds one glyph per heading, indexed by hexgrid.Heading
// (E, SE, SW, W, NW, NE).
type Set [6]string

var fallback = Set{"→", "↘", "↙", "←", "↖", "↗"}

// Fallback returns the built-in glyph set.
func Fallback() Set {
	return fallback
}

// Load reads a glyph file: six non-empty lines, one glyph per heading in the
// order E, SE, SW, W, NW, NE. Blank lines and lines starting with '#' are
// skipped.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	var set Set
	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if n >= len(set) {
			return Set{}, fmt.Errorf("sprite %s: more than %d glyphs", path, len(set))
		}
		set[n] = line
		n++
	}
	if err := sc.Err(); err != nil {
		return Set{}, fmt.Errorf("read sprite: %w", err)
	}
	if n != len(set) {
		return Set{}, fmt.Errorf("sprite %s: got %d glyphs, want %d", path, n, len(set))
	}
	return set, nil
}

// LoadOrFallback loads the glyph set at path, substituting the built-in set
// (with a diagnostic) when the file cannot be used. An empty path means no
// custom sprite was configured and selects the built-in set silently.
func LoadOrFallback(path string, log *slog.Logger) Set {
	if path == "" {
		return Fallback()
	}
	set, err := Load(path)
	if err != nil {
		log.Warn("unable to load boat sprite, using fallback", "path", path, "error", err)
		return Fallback()
	}
	return set
}
