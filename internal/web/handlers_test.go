package web

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"

	"anotador-app/internal/model"
	"anotador-app/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	templates, err := NewTemplates(os.DirFS("../.."))
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	return NewServer(store.NewMemoryStore(), templates)
}

func seedOnboarded(s *Server) {
	s.state.OnboardingComplete = true
	s.state.Config = model.MatchConfig{TeamAName: "Rojos", TeamBName: "Azules"}
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHomeShowsOnboardingFirst(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "¿Quiénes juegan?") {
		t.Error("expected the onboarding screen before configuration")
	}
}

func TestOnboardingFlow(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(s.Routes(), "/onboarding", url.Values{
		"team_a":            {"Rojos"},
		"team_b":            {"Azules"},
		"double_first_hand": {"on"},
	})

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("status %d location %q", rec.Code, rec.Header().Get("Location"))
	}
	state := s.snapshotState()
	if !state.OnboardingComplete || state.Config.TeamAName != "Rojos" || !state.Config.DoubleFirstHand {
		t.Errorf("state after onboarding: %+v", state)
	}
	if !s.store.LoadState().OnboardingComplete {
		t.Error("onboarding was not persisted")
	}
}

func TestOnboardingRejectsDuplicateNames(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(s.Routes(), "/onboarding", url.Values{
		"team_a": {"Rojos"},
		"team_b": {"rojos"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Nombres inválidos") {
		t.Error("expected inline config error")
	}
	if s.snapshotState().OnboardingComplete {
		t.Error("state mutated by rejected onboarding")
	}
}

func TestRoundCreateAndWin(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)

	rec := postForm(s.Routes(), "/rounds", url.Values{
		"points_a": {"155"},
		"points_b": {"85"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.Contains(location, "notice=match_won") || !strings.Contains(location, url.QueryEscape("Rojos")) {
		t.Errorf("location %q", location)
	}
	state := s.snapshotState()
	if state.WinsA != 1 || state.WinsB != 0 || len(state.Rounds) != 0 {
		t.Errorf("state after win: %+v", state)
	}
	if s.store.LoadState().WinsA != 1 {
		t.Error("win was not persisted")
	}
}

func TestRoundCreateEmptyFieldCountsAsZero(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)

	rec := postForm(s.Routes(), "/rounds", url.Values{
		"points_a": {"30"},
		"points_b": {""},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/?notice=round_added" {
		t.Fatalf("status %d location %q", rec.Code, rec.Header().Get("Location"))
	}
	state := s.snapshotState()
	if len(state.Rounds) != 1 || state.Rounds[0].AppliedB != 0 {
		t.Errorf("state after round: %+v", state.Rounds)
	}
}

func TestRoundCreateRejectsAllZero(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)
	before := s.snapshotState()

	rec := postForm(s.Routes(), "/rounds", url.Values{
		"points_a": {"0"},
		"points_b": {"0"},
	})
	if rec.Header().Get("Location") != "/?error=invalid_round" {
		t.Errorf("location %q", rec.Header().Get("Location"))
	}
	if !reflect.DeepEqual(before, s.snapshotState()) {
		t.Error("state mutated by rejected round")
	}
}

func TestRoundCreateHTMXRendersPartial(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)

	form := url.Values{"points_a": {"30"}, "points_b": {"10"}}
	req := httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Mano anotada.") || !strings.Contains(body, "30") {
		t.Errorf("partial body missing scoreboard: %q", body)
	}
}

func TestUndoOnEmptyLedger(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)

	rec := postForm(s.Routes(), "/rounds/undo", url.Values{})
	if rec.Header().Get("Location") != "/?notice=nothing_to_undo" {
		t.Errorf("location %q", rec.Header().Get("Location"))
	}
}

func backupUpload(t *testing.T, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("backup", "backup.json")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)
	postForm(s.Routes(), "/rounds", url.Values{"points_a": {"30"}, "points_b": {"10"}})
	want := s.snapshotState()

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("export status %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "attachment") {
		t.Error("export should download as a file")
	}

	other := newTestServer(t)
	body, contentType := backupUpload(t, rec.Body.Bytes())
	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set("Content-Type", contentType)
	importRec := httptest.NewRecorder()
	other.Routes().ServeHTTP(importRec, req)

	if importRec.Header().Get("Location") != "/?notice=import_ok" {
		t.Fatalf("import location %q", importRec.Header().Get("Location"))
	}
	if !reflect.DeepEqual(want, other.snapshotState()) {
		t.Errorf("imported state mismatch:\n got %+v\nwant %+v", other.snapshotState(), want)
	}
	if other.store.LoadState().Config.TeamAName != "Rojos" {
		t.Error("imported state was not persisted")
	}
}

func TestImportRejectionKeepsState(t *testing.T) {
	s := newTestServer(t)
	seedOnboarded(s)
	postForm(s.Routes(), "/rounds", url.Values{"points_a": {"30"}, "points_b": {"10"}})
	before := s.snapshotState()

	body, contentType := backupUpload(t, []byte(`{"winsA": "many"}`))
	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Header().Get("Location") != "/?error=invalid_backup" {
		t.Errorf("location %q", rec.Header().Get("Location"))
	}
	if !reflect.DeepEqual(before, s.snapshotState()) {
		t.Error("rejected import changed the state")
	}
}

func TestBoardLock(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	t.Setenv("BOARD_PIN_HASH", string(hash))

	s := newTestServer(t)
	seedOnboarded(s)
	handler := WithBoardLock(s.Routes())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/unlock" {
		t.Fatalf("locked board: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = postForm(handler, "/unlock", url.Values{"pin": {"0000"}})
	if rec.Header().Get("Location") != "/unlock?error=wrong_pin" {
		t.Errorf("wrong pin location %q", rec.Header().Get("Location"))
	}

	rec = postForm(handler, "/unlock", url.Values{"pin": {"1234"}})
	if rec.Header().Get("Location") != "/" {
		t.Fatalf("unlock location %q", rec.Header().Get("Location"))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("unlock should set the board cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("unlocked board: status %d", rec.Code)
	}
}
