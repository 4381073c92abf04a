package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/lmscli/types"
)

const (
	maxMultipartMemory = 8 << 20
	maxAvatarBytes     = 4 << 20
)

// errNotFound is returned when a record does not exist.
var errNotFound = errors.New("not found")

// updatableFields is the allow-list enforced on PATCH /users/{userID}.
var updatableFields = map[string]struct{}{
	"bio":     {},
	"avatar":  {},
	"fname":   {},
	"lname":   {},
	"phone":   {},
	"address": {},
}

type userRecord struct {
	user         types.User
	passwordHash string
}

type userStore struct {
	mu      sync.Mutex
	byID    map[int]*userRecord
	byEmail map[string]*userRecord
}

func newUserStore() *userStore {
	return &userStore{
		byID:    make(map[int]*userRecord),
		byEmail: make(map[string]*userRecord),
	}
}

func (s *userStore) add(user types.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	record := &userRecord{user: user, passwordHash: string(hashed)}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[user.ID] = record
	s.byEmail[user.Email] = record
	return nil
}

func (s *userStore) getByID(id int) (userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[id]
	if !ok {
		return userRecord{}, errNotFound
	}
	return *record, nil
}

func (s *userStore) getByEmail(email string) (userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byEmail[email]
	if !ok {
		return userRecord{}, errNotFound
	}
	return *record, nil
}

func (s *userStore) update(user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[user.ID]
	if !ok {
		return types.User{}, errNotFound
	}
	record.user = user
	return user, nil
}

// seedUsers creates the fixed development accounts. Every account uses the
// password "password123".
func seedUsers() (*userStore, error) {
	store := newUserStore()
	created := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	seeds := []types.User{
		{ID: 1, Email: "jane@learnhub.dev", Fname: "Jane", Lname: "Doe", Role: types.RoleAdmin, CreatedAt: created},
		{ID: 2, Email: "tom@learnhub.dev", Fname: "Tom", Lname: "Okafor", Role: types.RoleInstructor, Bio: "Teaches distributed systems.", CreatedAt: created},
		{ID: 3, Email: "mia@learnhub.dev", Fname: "Mia", Lname: "Chen", Role: types.RoleStudent, CreatedAt: created},
	}
	for _, user := range seeds {
		if err := store.add(user, "password123"); err != nil {
			return nil, err
		}
	}
	return store, nil
}

type userHandler struct {
	users  *userStore
	logger zerolog.Logger
}

func (h *userHandler) profile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.users.getByID(userID)
	if err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, record.user)
}

func (h *userHandler) update(w http.ResponseWriter, r *http.Request) {
	requesterID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	targetID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || targetID < 1 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	requester, err := h.users.getByID(requesterID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if requesterID != targetID && requester.user.Role != types.RoleAdmin {
		writeError(w, http.StatusForbidden, "cannot update another user's profile")
		return
	}

	target, err := h.users.getByID(targetID)
	if err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	fields, err := h.parseUpdateFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no valid fields to update")
		return
	}

	updated := applyFields(target.user, fields)
	result, err := h.users.update(updated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	h.logger.Debug().Int("user_id", targetID).Int("fields", len(fields)).Msg("profile updated")
	writeJSON(w, http.StatusOK, result)
}

// parseUpdateFields extracts the allow-listed fields from either a JSON or
// a multipart body. A multipart avatar part becomes a stored reference.
func (h *userHandler) parseUpdateFields(r *http.Request) (map[string]string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.New("invalid content type")
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return h.parseMultipartFields(r)
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, errors.New("invalid request body")
	}

	fields := make(map[string]string)
	for key, value := range raw {
		if _, ok := updatableFields[key]; !ok {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %s must be a string", key)
		}
		fields[key] = str
	}
	return fields, nil
}

func (h *userHandler) parseMultipartFields(r *http.Request) (map[string]string, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, errors.New("invalid multipart body")
	}

	fields := make(map[string]string)
	for key := range updatableFields {
		if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
			fields[key] = values[0]
		}
	}

	file, header, err := r.FormFile("avatar")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
		if readErr != nil {
			return nil, errors.New("failed to read avatar")
		}
		if len(data) > maxAvatarBytes {
			return nil, errors.New("avatar too large")
		}
		// The stub does not keep the bytes, only a plausible reference.
		fields["avatar"] = "/uploads/" + uuid.NewString() + filepath.Ext(header.Filename)
	}
	return fields, nil
}

func applyFields(user types.User, fields map[string]string) types.User {
	for key, value := range fields {
		switch key {
		case "bio":
			user.Bio = value
		case "avatar":
			user.Avatar = value
		case "fname":
			user.Fname = value
		case "lname":
			user.Lname = value
		case "phone":
			user.Phone = value
		case "address":
			user.Address = value
		}
	}
	return user
}
