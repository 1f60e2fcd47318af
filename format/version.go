package format

import "fmt"

// Version identifies a drawing-exchange format revision.
//
// Versions are ordered: a later revision compares greater than an earlier one,
// so version gates can be expressed as simple >= comparisons. The zero value
// means "no minimum"; a field or marker gated on VersionAny is read and written
// under every revision.
type Version uint8

const (
	// VersionAny imposes no revision constraint.
	VersionAny Version = 0

	R12   Version = 12 // AC1009
	R13   Version = 13 // AC1012
	R14   Version = 14 // AC1014
	R2000 Version = 15 // AC1015
	R2004 Version = 18 // AC1018
	R2007 Version = 21 // AC1021
	R2010 Version = 24 // AC1024
	R2013 Version = 27 // AC1027
	R2018 Version = 32 // AC1032
)

// versionIdents maps each revision to the identifier string stored in the
// drawing header ($ACADVER).
var versionIdents = map[Version]string{
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// String returns the header identifier for the revision, e.g. "AC1015" for R2000.
func (v Version) String() string {
	if s, ok := versionIdents[v]; ok {
		return s
	}

	return fmt.Sprintf("Version(%d)", uint8(v))
}

// Supported reports whether v is a revision this codec knows how to target.
func (v Version) Supported() bool {
	_, ok := versionIdents[v]
	return ok
}

// AtLeast reports whether v satisfies the given minimum revision.
// VersionAny as the minimum is satisfied by every revision.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// ParseVersion converts a header identifier string (e.g. "AC1015") into a Version.
//
// Returns:
//   - Version: The matching revision
//   - error: Unknown identifier error when the string matches no known revision
func ParseVersion(ident string) (Version, error) {
	for v, s := range versionIdents {
		if s == ident {
			return v, nil
		}
	}

	return VersionAny, fmt.Errorf("unknown format version identifier %q", ident)
}
