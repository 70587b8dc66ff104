package verify

import (
	"fmt"

	"gotheory/internal/logging"
	"gotheory/internal/tracker"
)

// WorkspaceReport combines the coverage scan with drift detection.
type WorkspaceReport struct {
	Coverage tracker.Coverage
	Drifts   []tracker.Drift // nil when no manifest was attached
}

// Clean reports whether the workspace is complete and undrifted.
func (r WorkspaceReport) Clean() bool {
	return r.Coverage.Complete() && len(r.Drifts) == 0
}

// VerifyWorkspace scans a generated workspace and, when a manifest is
// available, compares the files on disk against what the last runs
// recorded.
func VerifyWorkspace(root string, manifest *tracker.Manifest) (*WorkspaceReport, error) {
	cov, err := tracker.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	report := &WorkspaceReport{Coverage: cov}
	if manifest != nil {
		drifts, err := manifest.DetectDrift(root)
		if err != nil {
			return nil, fmt.Errorf("detect drift: %w", err)
		}
		report.Drifts = drifts
	}

	logging.Verify("workspace %s: %d/%d theory files, %d drifts",
		root, cov.TheoryFound, cov.TheoryExpected, len(report.Drifts))
	return report, nil
}
