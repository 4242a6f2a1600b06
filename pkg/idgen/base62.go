package idgen

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var charIndex = func() map[rune]int {
	m := make(map[rune]int)
	for i, r := range alphabet {
		m[r] = i
	}
	return m
}()

// Encode converts n to its base62 representation.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append(b, alphabet[n%62])
		n /= 62
	}
	// digits were produced least-significant first
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Decode converts a base62 string back to its numeric value.
func Decode(s string) uint64 {
	var n uint64
	for _, ch := range s {
		n = n*62 + uint64(charIndex[ch])
	}
	return n
}
