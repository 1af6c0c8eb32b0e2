package model

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Method is a summarization algorithm supported by the backend
type Method string

const (
	MethodExtractive  Method = "extractive"
	MethodAbstractive Method = "abstractive"
)

// Form defaults mirror the backend's own defaults
const (
	DefaultMethod    = MethodExtractive
	DefaultMaxLength = 150
	DefaultMinLength = 40
)

// Validation errors. Both are reported as warnings and never reach the network.
var (
	ErrEmptyText = errors.New("text is empty")
	ErrFileCount = errors.New("exactly one file must be selected")
)

// Methods returns the supported methods in display order
func Methods() []Method {
	return []Method{MethodExtractive, MethodAbstractive}
}

// ParseMethod maps a select value to a Method, falling back to DefaultMethod
func ParseMethod(value string) Method {
	for _, m := range Methods() {
		if string(m) == strings.TrimSpace(value) {
			return m
		}
	}
	return DefaultMethod
}

// SummaryRequest is the JSON body of POST /summarize
type SummaryRequest struct {
	Text      string `json:"text"`
	Method    Method `json:"method"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

// Normalize trims the text the same way the form does before sending
func (r SummaryRequest) Normalize() SummaryRequest {
	r.Text = strings.TrimSpace(r.Text)
	return r
}

// Validate checks the client-side precondition. MinLength > MaxLength is left
// to the backend.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// UploadFile is a file chosen in the upload form
type UploadFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// NewLocalUploadFile describes a file on the local filesystem
func NewLocalUploadFile(path string) (UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return UploadFile{}, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return UploadFile{}, errors.Errorf("%s is a directory", path)
	}
	return UploadFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// UploadRequest is sent as multipart form data to POST /upload
type UploadRequest struct {
	Files     []UploadFile
	Method    Method
	MaxLength int
	MinLength int
}

// Validate checks that exactly one readable file was chosen
func (r UploadRequest) Validate() error {
	if len(r.Files) != 1 || r.Files[0].Open == nil {
		return ErrFileCount
	}
	return nil
}

// File returns the single selected file. Call Validate first.
func (r UploadRequest) File() UploadFile {
	return r.Files[0]
}
