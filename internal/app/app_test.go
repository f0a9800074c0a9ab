package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const listingHTML = `<!doctype html>
<html><body>
	<div data-testid="case-card">
		<a href="/cases/pervyj"><h3>Первый кейс</h3></a>
		<time datetime="2024-09-21">21 сентября 2024</time>
	</div>
	<div data-testid="case-card">
		<a href="/cases/pervyj"><h3>Дубль</h3></a>
	</div>
	<div data-testid="case-card">
		<a href="/cases/vtoroj"><h3>Второй кейс</h3></a>
		<span class="CaseCard__date">20.08.2024</span>
	</div>
</body></html>`

type record struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt *string `json:"published_at"`
}

func TestRun_FileInputEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "listing.html")
	if err := os.WriteFile(input, []byte(listingHTML), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "cases.json")

	a := New(Config{
		InputPath:  input,
		OutputPath: outPath,
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
	})
	var mirror bytes.Buffer
	a.stdout = &mirror

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got []record
	if err := json.Unmarshal(mirror.Bytes(), &got); err != nil {
		t.Fatalf("stdout payload not JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after dedupe, got %d", len(got))
	}
	if got[0].URL != "https://ads.vk.com/cases/pervyj" || got[0].Title != "Первый кейс" {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].PublishedAt == nil || *got[0].PublishedAt != "2024-09-21" {
		t.Errorf("first record date = %v", got[0].PublishedAt)
	}
	if got[1].PublishedAt == nil || *got[1].PublishedAt != "2024-08-20" {
		t.Errorf("second record date = %v", got[1].PublishedAt)
	}

	fromFile, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !bytes.Equal(fromFile, mirror.Bytes()) {
		t.Error("output file and stdout differ")
	}
}

func TestRun_URLInputUsesServerHostForRelativeLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(listingHTML))
	}))
	defer srv.Close()

	dir := t.TempDir()
	a := New(Config{
		URL:        srv.URL + "/cases",
		OutputPath: filepath.Join(dir, "cases.json"),
		Timeout:    5 * time.Second,
	})
	var mirror bytes.Buffer
	a.stdout = &mirror

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var got []record
	if err := json.Unmarshal(mirror.Bytes(), &got); err != nil {
		t.Fatalf("stdout payload not JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].URL != srv.URL+"/cases/pervyj" {
		t.Errorf("relative link resolved against wrong host: %q", got[0].URL)
	}
}

func TestRun_FetchFailureAbortsBeforeWriting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	outPath := filepath.Join(dir, "cases.json")
	a := New(Config{URL: srv.URL, OutputPath: outPath, Timeout: 5 * time.Second})
	a.stdout = &bytes.Buffer{}

	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("nothing should be written on a fatal failure")
	}
}

func TestRun_EmptyListingWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.html")
	if err := os.WriteFile(input, []byte("<html><body></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "cases.json")

	a := New(Config{InputPath: input, OutputPath: outPath})
	var mirror bytes.Buffer
	a.stdout = &mirror

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var got []record
	if err := json.Unmarshal(mirror.Bytes(), &got); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty array, got %v", got)
	}
}
