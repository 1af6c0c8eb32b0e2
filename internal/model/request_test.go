package model

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestSummaryRequest_Validate(t *testing.T) {
	tests := []struct {
		text     string
		expected error
	}{
		{"", ErrEmptyText},
		{"   ", ErrEmptyText},
		{"\n\t ", ErrEmptyText},
		{"report body", nil},
		{"  padded  ", nil},
	}

	for _, test := range tests {
		err := SummaryRequest{Text: test.text}.Validate()
		if !errors.Is(err, test.expected) && err != test.expected {
			t.Errorf("Validate() with text=%q = %v, expected %v", test.text, err, test.expected)
		}
	}
}

func TestSummaryRequest_JSONShape(t *testing.T) {
	req := SummaryRequest{Text: "hello", Method: MethodAbstractive, MaxLength: 120, MinLength: 30}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"text":"hello","method":"abstractive","max_length":120,"min_length":30}`
	if string(data) != expected {
		t.Errorf("Marshal() = %s, expected %s", data, expected)
	}
}

func TestSummaryRequest_Normalize(t *testing.T) {
	req := SummaryRequest{Text: "  body \n"}.Normalize()
	if req.Text != "body" {
		t.Errorf("Normalize() text = %q, expected %q", req.Text, "body")
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		value    string
		expected Method
	}{
		{"extractive", MethodExtractive},
		{"abstractive", MethodAbstractive},
		{" abstractive ", MethodAbstractive},
		{"", DefaultMethod},
		{"bart", DefaultMethod},
	}

	for _, test := range tests {
		if got := ParseMethod(test.value); got != test.expected {
			t.Errorf("ParseMethod(%q) = %s, expected %s", test.value, got, test.expected)
		}
	}
}

func TestUploadRequest_Validate(t *testing.T) {
	open := func() (io.ReadCloser, error) { return nil, nil }

	tests := []struct {
		name     string
		files    []UploadFile
		expected error
	}{
		{"none", nil, ErrFileCount},
		{"one", []UploadFile{{Name: "a.txt", Open: open}}, nil},
		{"two", []UploadFile{{Name: "a.txt", Open: open}, {Name: "b.txt", Open: open}}, ErrFileCount},
		{"unreadable", []UploadFile{{Name: "a.txt"}}, ErrFileCount},
	}

	for _, test := range tests {
		err := UploadRequest{Files: test.files}.Validate()
		if err != test.expected {
			t.Errorf("%s: Validate() = %v, expected %v", test.name, err, test.expected)
		}
	}
}

func TestNewLocalUploadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(path, []byte("quarterly numbers"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	file, err := NewLocalUploadFile(path)
	if err != nil {
		t.Fatalf("NewLocalUploadFile failed: %v", err)
	}
	if file.Name != "report.txt" {
		t.Errorf("Expected name report.txt, got %s", file.Name)
	}
	if file.Size != int64(len("quarterly numbers")) {
		t.Errorf("Expected size %d, got %d", len("quarterly numbers"), file.Size)
	}

	rc, err := file.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "quarterly numbers" {
		t.Errorf("Unexpected content %q", data)
	}

	if _, err := NewLocalUploadFile(dir); err == nil {
		t.Error("Expected error for directory, got nil")
	}
	if _, err := NewLocalUploadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
