package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskTournamentCreated is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskTournamentCreated = "tournament:created"
)

// TournamentCreatedPayload is the JSON payload of the tournament announcement task.
type TournamentCreatedPayload struct {
	TournamentID     int64  `json:"tournament_id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	ParticipantCount int    `json:"participant_count"`
}

// NewTournamentCreatedTask constructs an Asynq task announcing a new tournament.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): send into the "default" queue
//   - Timeout(30s): kill the task if handler runs longer than 30 seconds
func NewTournamentCreatedTask(p TournamentCreatedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskTournamentCreated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
