package domain

// ValidID reports whether s has the shape of a store-issued identifier:
// 24 lower-case hex characters. The job feed rejects malformed college ids
// with this check before touching the store.
func ValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
