package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

func writeTempFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.jpg")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpload(t *testing.T) {
	var gotPath, gotName, gotData string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("reading multipart file: %v", err)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotName, gotData = header.Filename, string(data)
		w.Write([]byte("https://bucket.example.com/file.jpg\n"))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL+"/", time.Second, nil)
	stored, err := u.Upload(context.Background(), writeTempFile(t, "fake image data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/file/upload" {
		t.Errorf("path = %q, want /file/upload", gotPath)
	}
	if gotName != "file.jpg" || gotData != "fake image data" {
		t.Errorf("unexpected upload %q %q", gotName, gotData)
	}
	if stored != "https://bucket.example.com/file.jpg" {
		t.Errorf("stored = %q", stored)
	}
}

func TestUploadFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Upload failed"))
	}))
	defer srv.Close()

	_, err := NewUploader(srv.URL, time.Second, nil).Upload(context.Background(), writeTempFile(t, "x"))

	var netErr *domain.NetworkError
	if !errors.As(err, &netErr) || netErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected NetworkError with status 500, got %v", err)
	}
}

func TestUploadNotConfigured(t *testing.T) {
	u := NewUploader("", time.Second, nil)
	if u.Enabled() {
		t.Error("uploader without url should be disabled")
	}
	if _, err := u.Upload(context.Background(), "/path/to/file.jpg"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestUploadMissingFile(t *testing.T) {
	_, err := NewUploader("http://127.0.0.1:0", time.Second, nil).Upload(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
