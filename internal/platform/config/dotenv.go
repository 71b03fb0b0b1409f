package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvUsed string
)

// DotEnvCandidates lists the .env files tried at startup, first found wins
// the second entry covers running a binary from cmd/<name>
func DotEnvCandidates() []string {
	wd, err := os.Getwd()
	if err != nil {
		return []string{".env"}
	}
	return []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}
}

// LoadDotEnv loads the first existing candidate into the process env once
// values already present in the environment are never overwritten
// returns the file used, or "" when none was found
func LoadDotEnv(candidates ...string) string {
	dotenvOnce.Do(func() {
		if len(candidates) == 0 {
			candidates = DotEnvCandidates()
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := godotenv.Load(p); err != nil {
				continue
			}
			dotenvUsed = p
			return
		}
	})
	return dotenvUsed
}
