package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// StampFile is the name of the build stamp written at the root of a generated
// site.
const StampFile = ".appdemos.json"

// Stamp records which generator produced a site.
type Stamp struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Scenarios   []string  `json:"scenarios"`
}

// LoadStamp reads the stamp from dir. Returns nil, nil if there is none.
func LoadStamp(dir string) (*Stamp, error) {
	data, err := os.ReadFile(filepath.Join(dir, StampFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading build stamp: %w", err)
	}

	var s Stamp
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing build stamp: %w", err)
	}
	return &s, nil
}

func writeStamp(dir string, s *Stamp) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling build stamp: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, StampFile), data, 0644); err != nil {
		return fmt.Errorf("writing build stamp: %w", err)
	}
	return nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
