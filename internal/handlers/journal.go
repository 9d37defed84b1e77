package handlers

//go:generate mockgen -source=journal.go -destination=journal_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-journal/internal/models"
)

// JournalCreator creates entries for the authenticated user.
type JournalCreator interface {
	Create(ctx context.Context, owner int64, title, date, entry string) (*models.JournalDB, error)
}

// JournalLister lists entries.
type JournalLister interface {
	ListAll(ctx context.Context) ([]models.JournalDB, error)
	ListByOwner(ctx context.Context, owner int64) ([]models.JournalDB, error)
	ListByTitle(ctx context.Context, title string) ([]models.JournalDB, error)
}

// JournalUpdater updates entries of the authenticated user.
type JournalUpdater interface {
	Update(ctx context.Context, owner, id int64, changes models.JournalChanges) (int64, error)
}

// JournalDeleter deletes entries of the authenticated user.
type JournalDeleter interface {
	Delete(ctx context.Context, owner, id int64) (int64, error)
}

// JournalFields is the content of a journal entry.
// swagger:model JournalFields
type JournalFields struct {
	// Title
	// default: My day
	Title *string `json:"title"`

	// Date
	// default: 2024-01-01
	Date *string `json:"date"`

	// Entry text
	// default: It was a good day.
	Entry *string `json:"entry"`
}

// JournalRequest is the JSON body for creating or updating an entry.
// swagger:model JournalRequest
type JournalRequest struct {
	Journal *JournalFields `json:"journal"`
}

func decodeJournal(r *http.Request) (*JournalFields, bool) {
	var req JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Journal == nil {
		return nil, false
	}
	return req.Journal, true
}

func writeJournals(w http.ResponseWriter, journals []models.JournalDB) {
	if journals == nil {
		journals = []models.JournalDB{}
	}
	writeJSON(w, http.StatusOK, journals)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NewCreateJournalHandler returns an HTTP handler creating an entry owned by the caller.
// @Summary Create journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param journalRequest body handlers.JournalRequest true "Journal entry"
// @Success 200 {object} models.JournalDB "Created entry"
// @Failure 400 {object} handlers.MessageResponse "Missing title, date or entry"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid token"
// @Failure 403 {object} middlewares.AuthErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/new [post]
// @Security BearerAuth
func NewCreateJournalHandler(svc JournalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		fields, ok := decodeJournal(r)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if fields.Title == nil || fields.Date == nil || fields.Entry == nil {
			writeMessage(w, http.StatusBadRequest, "Title, date and entry are required")
			return
		}

		journal, err := svc.Create(r.Context(), user.ID, *fields.Title, *fields.Date, *fields.Entry)
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, journal)
	}
}

// NewListJournalsHandler returns an HTTP handler listing every entry.
// @Summary List all journal entries
// @Tags journal
// @Produce json
// @Success 200 {array} models.JournalDB
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/ [get]
func NewListJournalsHandler(svc JournalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		journals, err := svc.ListAll(r.Context())
		if err != nil {
			writeInternalError(w)
			return
		}
		writeJournals(w, journals)
	}
}

// NewListMyJournalsHandler returns an HTTP handler listing the caller's entries.
// @Summary List own journal entries
// @Tags journal
// @Produce json
// @Success 200 {array} models.JournalDB
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid token"
// @Failure 403 {object} middlewares.AuthErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/mine [get]
// @Security BearerAuth
func NewListMyJournalsHandler(svc JournalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		journals, err := svc.ListByOwner(r.Context(), user.ID)
		if err != nil {
			writeInternalError(w)
			return
		}
		writeJournals(w, journals)
	}
}

// NewListJournalsByTitleHandler returns an HTTP handler listing entries with an exact title.
// @Summary List journal entries by title
// @Tags journal
// @Produce json
// @Param title path string true "Exact title"
// @Success 200 {array} models.JournalDB
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/{title} [get]
func NewListJournalsByTitleHandler(svc JournalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi matches on RawPath when it is set, leaving the param escaped
		title := chi.URLParam(r, "title")
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(title); err == nil {
				title = unescaped
			}
		}

		journals, err := svc.ListByTitle(r.Context(), title)
		if err != nil {
			writeInternalError(w)
			return
		}
		writeJournals(w, journals)
	}
}

// NewUpdateJournalHandler returns an HTTP handler updating one of the caller's entries.
// The response holds the number of updated rows; an entry of another user is never touched.
// @Summary Update journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param entryId path int true "Entry id"
// @Param journalRequest body handlers.JournalRequest true "Fields to change"
// @Success 200 {array} integer "Rows affected"
// @Failure 400 {object} handlers.MessageResponse "Invalid entry id or body"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid token"
// @Failure 403 {object} middlewares.AuthErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/update/{entryId} [put]
// @Security BearerAuth
func NewUpdateJournalHandler(svc JournalUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "entryId")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid entry id")
			return
		}

		fields, ok := decodeJournal(r)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		n, err := svc.Update(r.Context(), user.ID, id, models.JournalChanges{
			Title: fields.Title,
			Date:  fields.Date,
			Entry: fields.Entry,
		})
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, []int64{n})
	}
}

// NewDeleteJournalHandler returns an HTTP handler deleting one of the caller's entries.
// @Summary Delete journal entry
// @Tags journal
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} handlers.MessageResponse "Journal Entry Removed"
// @Failure 400 {object} handlers.MessageResponse "Invalid entry id"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid token"
// @Failure 403 {object} middlewares.AuthErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /journal/delete/{id} [delete]
// @Security BearerAuth
func NewDeleteJournalHandler(svc JournalDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid entry id")
			return
		}

		if _, err := svc.Delete(r.Context(), user.ID, id); err != nil {
			writeInternalError(w)
			return
		}

		writeMessage(w, http.StatusOK, "Journal Entry Removed")
	}
}
