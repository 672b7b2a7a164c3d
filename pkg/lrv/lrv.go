package lrv

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"golang.org/x/exp/slices"
)

// Extension carried by low resolution proxy videos (GoPro, Insta360 GO/Ace).
const Extension = ".lrv"

// IsCandidate reports whether path carries the LRV extension or one of the
// configured extras. Matching is case insensitive, SD cards use `.LRV`.
func IsCandidate(path string, extraExts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == Extension {
		return true
	}
	return slices.Contains(normalizeExts(extraExts), ext)
}

// Discover walks root and returns every candidate file, sorted by full path.
// godirwalk only orders entries within one directory, so the collected paths
// are sorted afterwards to keep run order reproducible.
func Discover(root string, extraExts []string) ([]string, error) {
	files := []string{}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if IsCandidate(osPathname, extraExts) {
				files = append(files, osPathname)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func normalizeExts(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
