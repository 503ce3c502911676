package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DocPair is one document/annotation pair matched by shared base name.
type DocPair struct {
	ID       string
	TextPath string
	AnnPath  string
}

// DiscoverPairs enumerates the .txt/.ann pairs under dir, sorted by document
// id. A .txt without its .ann (or the reverse) is excluded, not an error.
func DiscoverPairs(dir string) ([]DocPair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var pairs []DocPair
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ".txt")
		annPath := filepath.Join(dir, base+".ann")
		if info, err := os.Stat(annPath); err != nil || info.IsDir() {
			continue
		}
		pairs = append(pairs, DocPair{
			ID:       base,
			TextPath: filepath.Join(dir, e.Name()),
			AnnPath:  annPath,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
	return pairs, nil
}
