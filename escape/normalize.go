package escape

import "golang.org/x/text/unicode/norm"

// Normalize returns name in NFC form. Some filesystems hand back decomposed
// names, and both sides of a comparison must agree on composition before
// names are escaped or matched.
func Normalize(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
