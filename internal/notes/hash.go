package notes

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// manifestEntry is the canonical per-note record fed into the manifest hash.
type manifestEntry struct {
	Name        string `json:"name"`
	OutputFile  string `json:"output_file"`
	ContentHash string `json:"content_hash"`
}

// ComputeManifestHash computes a deterministic hash for a manifest. The hash
// covers note names, derived output files, and content hashes in manifest
// order, so it changes exactly when a rebuild would produce different output.
func ComputeManifestHash(m *Manifest) (string, error) {
	if m == nil || len(m.Notes) == 0 {
		// Empty set has a known hash
		h := sha256.Sum256([]byte("empty-notes-set"))
		return hex.EncodeToString(h[:]), nil
	}

	entries := make([]manifestEntry, 0, len(m.Notes))
	for _, n := range m.Notes {
		contentHash := ""
		if len(n.Content) > 0 {
			h := sha256.Sum256(n.Content)
			contentHash = hex.EncodeToString(h[:])
		}
		entries = append(entries, manifestEntry{
			Name:        n.Name,
			OutputFile:  n.OutputFile,
			ContentHash: contentHash,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest entries: %w", err)
	}

	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
