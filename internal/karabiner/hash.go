package karabiner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainDocument prefixes document digests. The version suffix leaves room
// for a future change of canonical form.
const DomainDocument = "hyperkey/document/v1"

// hashWithDomain computes SHA256(domain || 0x00 || data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest returns the content digest of doc. Documents that serialize to the
// same canonical JSON share a digest regardless of formatting.
func Digest(doc Document) (string, error) {
	canonical, err := MarshalCanonical(doc)
	if err != nil {
		return "", fmt.Errorf("Digest: %w", err)
	}
	return hashWithDomain(DomainDocument, canonical), nil
}

// DigestJSON returns the digest of raw karabiner.json contents, e.g. an
// existing file on disk.
func DigestJSON(data []byte) (string, error) {
	canonical, err := CanonicalizeJSON(data)
	if err != nil {
		return "", fmt.Errorf("DigestJSON: %w", err)
	}
	return hashWithDomain(DomainDocument, canonical), nil
}
