package game

// DefaultColor is the placeholder for blobs without a registered address.
const DefaultColor = "#CCCCCC"

var palette = [...]string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// ColorForAddress maps an address string to a palette entry. The hash is
// the 31x rolling hash with int32 wraparound that the web clients also
// compute (((h<<5)-h)+c), so the same address yields the same color in
// every process. Do not change it without changing every client.
func ColorForAddress(addr string) string {
	var h int32
	for _, c := range addr {
		h = h*31 + int32(c)
	}
	idx := int64(h)
	if idx < 0 {
		idx = -idx
	}
	return palette[idx%int64(len(palette))]
}
