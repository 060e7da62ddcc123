package frudev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openbmc-tools/gxpfrud/fs"
)

func TestFruHandlerReturnsInventoryJSON(t *testing.T) {
	m, _ := newTestManager(t, []fs.FakeFile{
		fs.NewFakeFileBytes(testEepromPaths[0], testImage("HTTP")),
		fs.NewFakeFile(testServerIDPath, "SN123\n"),
	})
	if err := m.Scan(); err != nil {
		t.Fatalf("Scan returned error: %#v", err)
	}

	w := httptest.NewRecorder()
	m.NewRouter().ServeHTTP(w, httptest.NewRequest("GET", "/fru", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected content type application/json, got %q", ct)
	}

	var got InventoryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response body: %s", err)
	}
	if got != m.Inventory() {
		t.Errorf("expected response to match published record, got %#v", got)
	}
	if got.ServerID != "SN123" {
		t.Errorf("expected server id SN123, got %q", got.ServerID)
	}
}

func TestRescanHandlerReplacesObject(t *testing.T) {
	m, server := newTestManager(t, []fs.FakeFile{
		fs.NewFakeFileBytes(testEepromPaths[0], testImage("HTTP")),
	})
	if err := m.Scan(); err != nil {
		t.Fatalf("Scan returned error: %#v", err)
	}
	eventsBefore := len(server.Events)

	w := httptest.NewRecorder()
	m.NewRouter().ServeHTTP(w, httptest.NewRequest("PUT", "/fru/rescan", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if server.ObjectCount() != 1 {
		t.Errorf("expected exactly one object after rescan, got %d", server.ObjectCount())
	}
	if len(server.Events) != eventsBefore+2 {
		t.Errorf("expected an unexport and an export, got events %v", server.Events)
	}
}

func TestHealthz(t *testing.T) {
	m, _ := newTestManager(t, nil)

	w := httptest.NewRecorder()
	m.NewRouter().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
