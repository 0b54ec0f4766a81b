package walker

import "strings"

// RefKey is the mapping key that denotes a reference pointer.
const RefKey = "$ref"

// refPrefix is the leading segment shared by all component references.
const refPrefix = "#/components/"

// MakeRef builds a component reference pointer for a category and
// definition name, e.g. MakeRef("schemas", "Doc") == "#/components/schemas/Doc".
func MakeRef(category, name string) string {
	return refPrefix + category + "/" + name
}

// ParseRef splits a component reference pointer into its category and
// definition name. It returns ok == false for pointers that are not
// local component references (external files, other pointer shapes).
func ParseRef(ref string) (category, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, refPrefix)
	if !found {
		return "", "", false
	}
	category, name, found = strings.Cut(rest, "/")
	if !found || category == "" || name == "" {
		return "", "", false
	}
	return category, name, true
}

// RefName extracts the definition name from a reference pointer when the
// pointer targets the given category; ok is false otherwise.
func RefName(ref, category string) (string, bool) {
	cat, name, ok := ParseRef(ref)
	if !ok || cat != category {
		return "", false
	}
	return name, true
}
