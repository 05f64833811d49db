package mutables

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// Digest hashes the JSON encoding of n. encoding/json sorts mapping keys,
// so equal trees have equal digests regardless of insertion order.
func Digest(n *Node) (string, error) {
	encoded, err := json.Marshal(n.Value())
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	hashBytes := blake2b.Sum256(encoded)
	return base64.RawURLEncoding.EncodeToString(hashBytes[:]), nil
}
