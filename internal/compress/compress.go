package compress

// Compress encodes and decodes wiki revision snapshots before they hit
// the database.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// Named returns the codec for a configured name, defaulting to nop.
func Named(name string) Compress {
	switch name {
	case "gzip":
		return NewGZip()
	case "brotli":
		return NewBrotli()
	case "lz4":
		return NewLZ4()
	default:
		return NewNop()
	}
}

// Name reports the configuration name of a codec, stored alongside each
// revision so old snapshots stay decodable after a config change.
func Name(c Compress) string {
	switch c.(type) {
	case GZip:
		return "gzip"
	case Brotli:
		return "brotli"
	case LZ4:
		return "lz4"
	default:
		return "nop"
	}
}
