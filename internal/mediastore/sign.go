package mediastore

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// unsignedParams never take part in the request signature.
var unsignedParams = map[string]bool{
	"file":          true,
	"api_key":       true,
	"resource_type": true,
	"cloud_name":    true,
	"signature":     true,
}

// sign computes the SHA-1 request signature: the non-empty parameters sorted
// by name, joined as k=v with '&', followed by the API secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if unsignedParams[k] || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
