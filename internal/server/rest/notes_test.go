package rest

import (
	"net/http"
	"testing"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

func TestCreateNote_Success(t *testing.T) {
	ns := &fakeNoteService{createOut: &models.Note{ID: 10, UserID: 1, Title: "hello", AuthorName: "alice"}}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodPost, "/notes",
		`{"title":"hello","content":"body"}`, validToken(t, 1))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ns.createOwner != 1 {
		t.Fatalf("owner = %d, want 1", ns.createOwner)
	}
	if ns.createIn.IsPublic {
		t.Fatalf("is_public should default to false")
	}
	body := decodeBody(t, w)
	if body["message"] != "Note created successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCreateNote_TitleRequired(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing title", `{"content":"body"}`},
		{"blank title", `{"title":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

			w := doRequest(t, s, http.MethodPost, "/notes", tt.payload, validToken(t, 1))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			body := decodeBody(t, w)
			if body["message"] != "Title is required" {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestCreateNote_RequiresAuth(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodPost, "/notes", `{"title":"hello"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestMyNotes_SetsTotalCountHeader(t *testing.T) {
	ns := &fakeNoteService{
		listOut:  []*models.Note{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
		countOut: 2,
	}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodGet, "/notes/my", "", validToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("X-Total-Count"); got != "2" {
		t.Fatalf("X-Total-Count = %q", got)
	}
}

func TestMyNotes_EmptyIsArray(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodGet, "/notes/my", "", validToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	notes, ok := body["notes"].([]any)
	if !ok || len(notes) != 0 {
		t.Fatalf("expected empty array, got %v", body["notes"])
	}
}

func TestPublicNotes_NoAuthNeeded(t *testing.T) {
	ns := &fakeNoteService{listOut: []*models.Note{{ID: 1, Title: "a", IsPublic: true, AuthorName: "alice"}}}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodGet, "/notes/public", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	notes, ok := body["notes"].([]any)
	if !ok || len(notes) != 1 {
		t.Fatalf("unexpected notes: %v", body["notes"])
	}
}

func TestGetNote_PassesViewer(t *testing.T) {
	ns := &fakeNoteService{getOut: &models.Note{ID: 10, UserID: 2, IsPublic: true}}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodGet, "/notes/10", "", validToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ns.getViewer == nil || *ns.getViewer != 1 {
		t.Fatalf("viewer = %v, want 1", ns.getViewer)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	ns := &fakeNoteService{getErr: common.ErrorNotFound}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodGet, "/notes/99", "", validToken(t, 1))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Note not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetNote_InvalidID(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodGet, "/notes/abc", "", validToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUpdateNote_Success(t *testing.T) {
	ns := &fakeNoteService{updateOut: &models.Note{ID: 10, Title: "renamed"}}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodPut, "/notes/10", `{"title":"renamed"}`, validToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ns.updateOwner != 1 {
		t.Fatalf("owner = %d, want 1", ns.updateOwner)
	}
	body := decodeBody(t, w)
	if body["message"] != "Note updated successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateNote_RejectsUnknownFields(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodPut, "/notes/10", `{"title":"x","user_id":99}`, validToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUpdateNote_BlankTitleRejected(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodPut, "/notes/10", `{"title":"  "}`, validToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestUpdateNote_NotOwnerOrMissing(t *testing.T) {
	ns := &fakeNoteService{updateErr: common.ErrorNotFound}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodPut, "/notes/10", `{"title":"x"}`, validToken(t, 2))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Note not found or you do not have permission to update it" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name       string
		deleted    bool
		wantStatus int
		wantMsg    string
	}{
		{"deleted", true, http.StatusOK, "Note deleted successfully"},
		{"missing or foreign", false, http.StatusNotFound, "Note not found or you do not have permission to delete it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := &fakeNoteService{deleted: tt.deleted}
			s := newTestServer(t, &fakeUserService{}, ns)

			w := doRequest(t, s, http.MethodDelete, "/notes/10", "", validToken(t, 1))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := decodeBody(t, w)
			if body["message"] != tt.wantMsg {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestSearchNotes_PassesTerm(t *testing.T) {
	ns := &fakeNoteService{listOut: []*models.Note{{ID: 1, Title: "groceries"}}}
	s := newTestServer(t, &fakeUserService{}, ns)

	w := doRequest(t, s, http.MethodGet, "/notes/search/groc", "", validToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ns.searchTerm != "groc" {
		t.Fatalf("term = %q, want %q", ns.searchTerm, "groc")
	}
}

func TestSearchNotes_BlankQueryRejected(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeNoteService{})

	w := doRequest(t, s, http.MethodGet, "/notes/search/%20", "", validToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Search query is required" {
		t.Fatalf("unexpected body: %v", body)
	}
}
