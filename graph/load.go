package graph

import (
	"os"

	"github.com/google/pprof/profile"
	"github.com/pkg/errors"
)

// Load parses the profile at path and builds its graph.
func Load(path string) (*Graph, *profile.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not open profile")
	}
	defer f.Close()
	prof, err := profile.Parse(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse profile %s", path)
	}
	return FromProfile(prof), prof, nil
}
