package workflow

import "github.com/finsight/orchestrator/pkg/models"

// stateMap translates the engine's raw state vocabulary into the closed
// ExecutionState enumeration. Kept as an explicit table so the mapping
// stays auditable and total.
var stateMap = map[string]models.ExecutionState{
	"CREATED": models.ExecutionCreated,
	"RUNNING": models.ExecutionRunning,
	"SUCCESS": models.ExecutionSuccess,
	"FAILED":  models.ExecutionFailed,
	"KILLED":  models.ExecutionKilled,
}

// MapState maps a raw engine state string. Unknown states fall back to
// CREATED rather than failing.
func MapState(raw string) models.ExecutionState {
	if s, ok := stateMap[raw]; ok {
		return s
	}
	return models.ExecutionCreated
}
