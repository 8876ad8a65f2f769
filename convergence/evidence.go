package convergence

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// missingEvidence is the fixed placeholder recorded when an evidence key
// cannot be resolved on an outcome. Outcomes that resolve none of their
// keys all hash identically, so repeated failures register as stagnation
// rather than as novelty.
const missingEvidence = ""

// extractEvidence resolves the configured evidence keys against one
// outcome. The outcome is marshaled to JSON once and each key applied as
// a gjson path, so top-level fields ("output") and nested fields
// ("data.confidence") are both addressable. Unresolvable keys and
// unmarshalable outcomes yield placeholders, never errors.
func extractEvidence(keys []string, outcome any) []string {
	values := make([]string, len(keys))

	raw, err := json.Marshal(outcome)
	if err != nil {
		for i := range values {
			values[i] = missingEvidence
		}

		return values
	}

	doc := string(raw)
	for i, key := range keys {
		res := gjson.Get(doc, key)
		if !res.Exists() {
			values[i] = missingEvidence
			continue
		}

		values[i] = res.String()
	}

	return values
}

// signature hashes ordered evidence values into a hex digest. Values are
// length-delimited before hashing so value boundaries cannot alias
// ("ab","c" never collides with "a","bc").
func signature(values []string) string {
	h := sha256.New()

	var lenBuf [8]byte

	for _, v := range values {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(v)))
		h.Write(lenBuf[:])
		h.Write([]byte(v))
	}

	return hex.EncodeToString(h.Sum(nil))
}
