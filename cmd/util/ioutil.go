package util

import (
	"errors"
	"os"

	"github.com/plus3it/gorecurcopy"
	pkgerrors "github.com/pkg/errors"
)

// CleanOrCreateTempFolder makes sure path exists and is empty.
func CleanOrCreateTempFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		// the folder is left over from an earlier run with the same id
		if err := os.RemoveAll(path); err != nil {
			return pkgerrors.Wrap(err, "error removing temp folder")
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return pkgerrors.Wrap(err, "error checking temp folder")
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return pkgerrors.Wrap(err, "error creating temp folder")
	}
	return nil
}

// PublishFolder copies everything in src into dest, creating dest first, and
// then removes src.
func PublishFolder(src, dest string) error {
	if err := os.MkdirAll(dest, os.ModePerm); err != nil {
		return pkgerrors.Wrap(err, "error creating output folder")
	}
	if err := gorecurcopy.CopyDirectory(src, dest); err != nil {
		return pkgerrors.Wrapf(err, "error copying %s to %s", src, dest)
	}
	if err := os.RemoveAll(src); err != nil {
		return pkgerrors.Wrap(err, "error removing temp folder")
	}
	return nil
}
