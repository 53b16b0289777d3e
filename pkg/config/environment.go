package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ticktock-project/ticktock/pkg/errclass"
)

// Environment identifies which data set the process operates on. Each
// environment maps to a distinct data file so their ledgers never collide.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTest        Environment = "test"
	EnvProduction  Environment = "production"
	EnvDistributed Environment = "distributed"
)

// ParseEnvironment parses an environment name.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case EnvDevelopment:
		return EnvDevelopment, nil
	case EnvTest:
		return EnvTest, nil
	case EnvProduction:
		return EnvProduction, nil
	case EnvDistributed:
		return EnvDistributed, nil
	default:
		return "", errclass.ErrEnvUnknown.WithMessagef("unknown environment %q", s)
	}
}

// DistributedMarkerName is the file that marks a packaged distributed build
// when placed next to the executable.
const DistributedMarkerName = "distributed_marker.txt"

// EnvVarEnvironment is the explicit environment override consumed at
// process start.
const EnvVarEnvironment = "TICKTOCK_ENV"

// EnvVarDistributed forces the ambient distributed-build signal, mainly for
// tests of the locked-settings policy.
const EnvVarDistributed = "TICKTOCK_DISTRIBUTED"

// IsDistributedBuild reports the ambient execution-context signal: the
// process runs as a packaged distributed build. True when the environment
// variable is set or a marker file sits beside the executable.
func IsDistributedBuild() bool {
	switch strings.ToLower(os.Getenv(EnvVarDistributed)) {
	case "1", "true", "yes":
		return true
	}

	exe, err := os.Executable()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(filepath.Dir(exe), DistributedMarkerName))
	return err == nil
}
