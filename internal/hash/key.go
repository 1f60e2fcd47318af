package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key computes the xxHash64 lookup key for a symbol name.
//
// Drawing symbol names (layers, styles, linetypes) compare case-insensitively,
// so names are upper-folded before hashing. Two names that differ only in case
// therefore share one key.
func Key(name string) uint64 {
	if isUpper(name) {
		return xxhash.Sum64String(name)
	}

	return xxhash.Sum64String(strings.ToUpper(name))
}

// isUpper reports whether the name contains no lowercase ASCII letters.
// Most drawing names are already uppercase; skipping the fold avoids an
// allocation on the common path.
func isUpper(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] >= 'a' && name[i] <= 'z' {
			return false
		}
	}

	return true
}
