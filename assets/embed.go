// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
)

// WordsFile is the name of the embedded default word list.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWords opens the embedded default word list.
func OpenWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
