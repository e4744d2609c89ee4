package config

import (
	"os"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/docflow/pkg/errors"
)

// LocalConfigFile is checked in the working directory before the XDG
// locations.
const LocalConfigFile = "docflow.toml"

// XDGConfigFile is the workflow file path relative to an XDG config dir.
const XDGConfigFile = "docflow/workflows.toml"

// FindConfigFile returns the workflow file to load when none was given.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile, nil
	}

	path, err := xdg.SearchConfigFile(XDGConfigFile)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound,
			"no workflow file given and none found in ./%s or $XDG_CONFIG_HOME/%s", LocalConfigFile, XDGConfigFile)
	}
	return path, nil
}
