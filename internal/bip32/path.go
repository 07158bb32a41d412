package bip32

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned by ParsePath when a derivation path string
// does not match the m/.../.../... grammar.
type ErrInvalidPath struct {
	Path   string
	Reason string
}

func (e *ErrInvalidPath) Error() string {
	return fmt.Sprintf("bip32: invalid derivation path %q: %s", e.Path, e.Reason)
}

// ParsePath parses a derivation path such as "m/84h/1h/0h/0/0" into a
// sequence of child indices, honoring both the "h" and "'" hardened
// markers. The leading "m" component is required.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, &ErrInvalidPath{Path: path, Reason: "must start with \"m\""}
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		if seg == "" {
			return nil, &ErrInvalidPath{Path: path, Reason: "empty path component"}
		}

		hardened := false
		numPart := seg
		switch {
		case strings.HasSuffix(seg, "h"), strings.HasSuffix(seg, "H"):
			hardened = true
			numPart = seg[:len(seg)-1]
		case strings.HasSuffix(seg, "'"):
			hardened = true
			numPart = seg[:len(seg)-1]
		}

		n, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, &ErrInvalidPath{Path: path, Reason: fmt.Sprintf("component %q is not a valid index", seg)}
		}
		if n >= uint64(HardenedOffset) {
			return nil, &ErrInvalidPath{Path: path, Reason: fmt.Sprintf("component %q index out of range", seg)}
		}

		idx := uint32(n)
		if hardened {
			idx += HardenedOffset
		}
		indices = append(indices, idx)
	}

	return indices, nil
}

// DeriveFromPath walks CKDpriv from master along indices, returning the
// final extended private key.
func DeriveFromPath(master *ExtendedKey, indices []uint32) (*ExtendedKey, error) {
	current := master
	for _, idx := range indices {
		next, err := CKDpriv(current, idx)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
