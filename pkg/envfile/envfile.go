// Package envfile loads optional launcher configuration from dotenv files,
// so FXPYTHON can live next to the workspace instead of in shell profiles.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvVar names an explicit dotenv file to load.
const EnvVar = "JOTTLAUNCH_ENV"

// DefaultFile is picked up from the working directory when present.
const DefaultFile = ".jott.env"

// Load reads the dotenv file named by JOTTLAUNCH_ENV, falling back to
// .jott.env in the working directory. Variables already present in the
// environment are never overridden. Returns the file that was loaded, or ""
// when no file applies.
func Load() (string, error) {
	if path := os.Getenv(EnvVar); path != "" {
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("loading %s=%s: %w", EnvVar, path, err)
		}
		return path, nil
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		if err := godotenv.Load(DefaultFile); err != nil {
			return "", fmt.Errorf("loading %s: %w", DefaultFile, err)
		}
		return DefaultFile, nil
	}

	return "", nil
}
