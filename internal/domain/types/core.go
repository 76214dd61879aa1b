package types

import "strconv"

// ID identifies any backend record (candidate, vacancy, interview, ...).
type ID int64

// String returns the decimal form of the identifier.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses a decimal identifier as typed on the command line.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// ContainsID reports whether id is present in ids.
func ContainsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
