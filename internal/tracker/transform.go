package tracker

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/models"
)

// BuildExerciseResponse merges the parent user's identity with the new
// exercise's fields. The exercise's own subdocument id is not exposed.
func BuildExerciseResponse(userID primitive.ObjectID, username string, ex models.Exercise) models.ExerciseResponse {
	return models.ExerciseResponse{
		ID:          userID,
		Username:    username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date,
	}
}

// BuildLogEntries strips each entry down to its public fields.
func BuildLogEntries(log []models.Exercise) []models.LogEntry {
	entries := make([]models.LogEntry, 0, len(log))
	for _, e := range log {
		entries = append(entries, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return entries
}

// BuildUserLogResponse shapes a user document and an already-filtered log
// into the logs response. Count is recomputed from the log being returned,
// never read from stored state.
func BuildUserLogResponse(u *models.User, entries []models.LogEntry) models.UserLogResponse {
	return models.UserLogResponse{
		ID:       u.ID,
		Username: u.Username,
		Count:    len(entries),
		Log:      entries,
	}
}
