package compression

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestResolveRequest_InputNotFound(t *testing.T) {
	_, err := ResolveRequest(filepath.Join(t.TempDir(), "missing.pdf"), "", 3, false)
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}

func TestResolveRequest_InvalidInputType(t *testing.T) {
	for _, name := range []string{"notes.txt", "archive.zip", "plain"} {
		path := writeTempFile(t, name)
		_, err := ResolveRequest(path, "", 3, false)
		if !errors.Is(err, ErrInvalidInputType) {
			t.Errorf("%s: expected ErrInvalidInputType, got %v", name, err)
		}
	}
}

func TestResolveRequest_UppercaseExtensionAccepted(t *testing.T) {
	path := writeTempFile(t, "REPORT.PDF")
	req, err := ResolveRequest(path, "", 3, false)
	if err != nil {
		t.Fatalf("expected uppercase .PDF to be accepted, got %v", err)
	}
	want := filepath.Join(filepath.Dir(path), "REPORT-compressed.pdf")
	if req.OutputPath != want {
		t.Errorf("expected derived output %s, got %s", want, req.OutputPath)
	}
}

func TestResolveRequest_InvalidLevel(t *testing.T) {
	path := writeTempFile(t, "sample.pdf")
	for _, level := range []int{0, 6, -3} {
		_, err := ResolveRequest(path, "", level, false)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
	}
}

func TestResolveRequest_DerivesOutput(t *testing.T) {
	path := writeTempFile(t, "sample.pdf")

	req, err := ResolveRequest(path, "", 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.OutputDerived {
		t.Error("expected OutputDerived to be true")
	}
	want := filepath.Join(filepath.Dir(path), "sample-compressed.pdf")
	if req.OutputPath != want {
		t.Errorf("expected output %s, got %s", want, req.OutputPath)
	}
}

func TestResolveRequest_ExplicitOutputKept(t *testing.T) {
	path := writeTempFile(t, "sample.pdf")

	req, err := ResolveRequest(path, "/tmp/custom.pdf", 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.OutputDerived {
		t.Error("expected OutputDerived to be false")
	}
	if req.OutputPath != "/tmp/custom.pdf" {
		t.Errorf("expected explicit output to be kept, got %s", req.OutputPath)
	}
	if req.Level != 2 || !req.Verbose {
		t.Errorf("expected level 2 verbose request, got %+v", req)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sample.pdf", "sample-compressed.pdf"},
		{"docs/report.pdf", filepath.Join("docs", "report-compressed.pdf")},
		{"/abs/path/scan.pdf", "/abs/path/scan-compressed.pdf"},
		{"UPPER.PDF", "UPPER-compressed.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DeriveOutputPath(tt.input)
			if got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
