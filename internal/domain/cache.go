package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// TranscriptKey derives the cache key for one input file under a given
// verifier setup. The key covers the file's path relative to the scanned
// root, so files with identical content never share transcripts.
func TranscriptKey(relPath string, content []byte, v VerifierConfig) string {
	h := sha256.New()
	h.Write([]byte(relPath))
	h.Write([]byte{0})
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(v.Fingerprint()))
	return hex.EncodeToString(h.Sum(nil))
}
