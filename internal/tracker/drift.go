package tracker

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DriftKind classifies how a file diverges from the manifest.
type DriftKind string

const (
	// DriftModified means the file on disk no longer matches the
	// recorded hash. Usually the user edited a generated file.
	DriftModified DriftKind = "modified"
	// DriftDeleted means the manifest records a file that is gone.
	DriftDeleted DriftKind = "deleted"
	// DriftUntracked means an expected curriculum file exists on disk
	// but was never recorded by a generation run.
	DriftUntracked DriftKind = "untracked"
)

// Drift is one divergence between the workspace and the manifest.
type Drift struct {
	RelPath string
	Kind    DriftKind
}

func (d Drift) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.RelPath)
}

// HashFile returns the hex sha256 of a file's contents.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HashBytes returns the hex sha256 of content already in memory.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DetectDrift compares the workspace under root against the manifest.
// The result is sorted by path; an empty slice means nothing drifted.
func (m *Manifest) DetectDrift(root string) ([]Drift, error) {
	recorded, err := m.Files()
	if err != nil {
		return nil, fmt.Errorf("load manifest files: %w", err)
	}

	var drifts []Drift
	tracked := make(map[string]bool, len(recorded))
	for _, entry := range recorded {
		tracked[entry.RelPath] = true

		abs := filepath.Join(root, filepath.FromSlash(entry.RelPath))
		sum, err := HashFile(abs)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				drifts = append(drifts, Drift{RelPath: entry.RelPath, Kind: DriftDeleted})
				continue
			}
			return nil, fmt.Errorf("hash %s: %w", entry.RelPath, err)
		}
		if sum != entry.SHA256 {
			drifts = append(drifts, Drift{RelPath: entry.RelPath, Kind: DriftModified})
		}
	}

	for _, rel := range ExpectedWorkspaceFiles() {
		if tracked[rel] {
			continue
		}
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			drifts = append(drifts, Drift{RelPath: rel, Kind: DriftUntracked})
		}
	}

	sort.Slice(drifts, func(i, j int) bool {
		if drifts[i].RelPath != drifts[j].RelPath {
			return drifts[i].RelPath < drifts[j].RelPath
		}
		return drifts[i].Kind < drifts[j].Kind
	})
	return drifts, nil
}
