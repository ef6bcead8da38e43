package fixgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/fixgen"
)

func TestGenerateRequests(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sample_requests")
	if err := fixgen.GenerateRequests(dir); err != nil {
		t.Fatalf("GenerateRequests returned error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "01_simple_get.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	if string(b) != want {
		t.Fatalf("content = %q, want %q", b, want)
	}
	if len(b) != 37 {
		t.Fatalf("expected 37 bytes, got %d", len(b))
	}
}

func TestGenerateResponses(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sample_responses")
	if err := fixgen.GenerateResponses(dir); err != nil {
		t.Fatalf("GenerateResponses returned error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "05_204_no_content.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "HTTP/1.1 204 No Content\r\nX-Request-ID: abc-789\r\n\r\n"
	if string(b) != want {
		t.Fatalf("content = %q, want %q", b, want)
	}
}

func TestCatalogSizes(t *testing.T) {
	if n := fixgen.Requests().Len(); n != 32 {
		t.Fatalf("request catalog has %d entries, want 32", n)
	}
	if n := fixgen.Responses().Len(); n != 16 {
		t.Fatalf("response catalog has %d entries, want 16", n)
	}
}
