package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"dumpdriver/internal/config"
	"dumpdriver/internal/engine"
)

// Requirement defines an external dependency dumpdriver can drive.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// EngineRequirements lists the executables behind engines that have one,
// using the binary names from cfg. Only the configured default engine is
// mandatory.
func EngineRequirements(cfg *config.Config) []Requirement {
	var reqs []Requirement
	for _, id := range engine.All() {
		command := id.Executable()
		if command == "" {
			continue
		}
		optional := true
		if cfg != nil {
			switch id {
			case engine.DiscImageCreator:
				command = cfg.DIC.Binary
			case engine.Redumper:
				command = cfg.Redumper.Binary
			}
			optional = string(id) != cfg.Dump.Engine
		}
		reqs = append(reqs, Requirement{
			Name:        id.Name(),
			Command:     command,
			Description: fmt.Sprintf("%s dumping engine", id.Name()),
			Optional:    optional,
		})
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the statuses of mandatory dependencies that are not
// available.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status)
		}
	}
	return missing
}
