package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultWords is the name of the bundled dictionary inside FS.
const DefaultWords = "words.txt"

// OpenWords opens the bundled dictionary: one 5-letter word per line.
func OpenWords() (io.ReadCloser, error) {
	return FS.Open(DefaultWords)
}
