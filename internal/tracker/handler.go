package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitstack/exercise-tracker/internal/models"
	"github.com/fitstack/exercise-tracker/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the error's message as the standard error payload.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	Create(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	AddExercise(ctx context.Context, id string, ex models.Exercise) error
}

// UserCache defines the interface for the user-document read cache.
type UserCache interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Set(ctx context.Context, u *models.User) error
	Invalidate(ctx context.Context, id string) error
}

// Handler holds the exercise tracker HTTP handlers.
type Handler struct {
	users UserStore
	cache UserCache
	now   func() time.Time
}

func NewHandler(users UserStore, cache UserCache) *Handler {
	return &Handler{users: users, cache: cache, now: time.Now}
}

// Routes returns the /api/users subtree.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateUser)
	r.Get("/", h.ListUsers)
	r.Post("/{id}/exercises", h.AddExercise)
	r.Get("/{id}/logs", h.ListLogs)
	return r
}

// bodyFields flattens a urlencoded form or JSON body into string fields, so
// validation sees the same raw values either way. JSON numbers are rendered
// back to their literal form.
func bodyFields(r *http.Request) (map[string]string, error) {
	fields := make(map[string]string)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			switch t := v.(type) {
			case string:
				fields[k] = t
			case float64:
				fields[k] = strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				fields[k] = strconv.FormatBool(t)
			}
		}
		return fields, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	return fields, nil
}

// lookupUser resolves a user by id, serving from the cache when possible.
func (h *Handler) lookupUser(ctx context.Context, id string) (*models.User, error) {
	u, err := h.cache.Get(ctx, id)
	if err != nil {
		log.Printf("cache get user %s: %v", id, err)
	}
	if u != nil {
		return u, nil
	}
	u, err = h.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.cache.Set(ctx, u); err != nil {
		log.Printf("cache set user %s: %v", id, err)
	}
	return u, nil
}

// CreateUser registers a new user.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if fields["username"] == "" {
		writeError(w, http.StatusBadRequest, ErrUsernameRequired)
		return
	}

	u, err := h.users.Create(r.Context(), fields["username"])
	if err != nil {
		log.Printf("create user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Could not save user"})
		return
	}

	log.Printf("new user (%s) saved", u.Username)
	writeJSON(w, http.StatusOK, models.CreatedUserResponse{ID: u.ID, Username: u.Username})
}

// ListUsers returns all stored user documents.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// AddExercise validates the exercise fields and appends the entry to the
// front of the user's log. Validation failures never reach the store.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u, err := h.lookupUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoUser) {
			writeError(w, http.StatusNotFound, ErrUserNotFound)
			return
		}
		log.Printf("get user %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	fields, err := bodyFields(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	ex, err := ValidateExerciseFields(fields["description"], fields["duration"], fields["date"], h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ex.ID = primitive.NewObjectID()

	if err := h.users.AddExercise(r.Context(), id, ex); err != nil {
		if errors.Is(err, store.ErrNoUser) {
			writeError(w, http.StatusNotFound, ErrUserNotFound)
			return
		}
		log.Printf("add exercise for user %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Could not save user"})
		return
	}
	if err := h.cache.Invalidate(r.Context(), id); err != nil {
		log.Printf("cache invalidate user %s: %v", id, err)
	}

	log.Printf("exercise %q (%d min, %s) added to user %s (ID: %s)",
		ex.Description, ex.Duration, ex.Date, u.Username, id)
	writeJSON(w, http.StatusOK, BuildExerciseResponse(u.ID, u.Username, ex))
}

// ListLogs returns a user's exercise log, optionally narrowed by the
// from/to/limit query parameters.
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u, err := h.lookupUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoUser) {
			writeError(w, http.StatusNotFound, ErrUserNotFound)
			return
		}
		log.Printf("get user %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	logSeq := u.Log
	if q := r.URL.Query(); len(q) > 0 {
		f := ValidateQuery(q.Get("from"), q.Get("to"), q.Get("limit"))
		logSeq = FilterLogByLimit(FilterLogByDates(logSeq, f.From, f.To), f.Limit)
	}
	writeJSON(w, http.StatusOK, BuildUserLogResponse(u, BuildLogEntries(logSeq)))
}
