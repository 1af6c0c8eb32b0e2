package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/ytget/report-summarizer/internal/model"
)

// Multipart field names expected by POST /upload
const (
	FieldFile      = "file"
	FieldMethod    = "method"
	FieldMaxLength = "max_length"
	FieldMinLength = "min_length"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildUploadBody encodes the file and parameters. The file part carries a
// Content-Type sniffed from its content.
func buildUploadBody(req model.UploadRequest) (io.Reader, string, error) {
	file := req.File()

	rc, err := file.Open()
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %s", file.Name)
	}
	content, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", file.Name)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFile, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", mimetype.Detect(content).String())

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "create file part")
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", errors.Wrap(err, "write file part")
	}

	fields := []struct{ name, value string }{
		{FieldMethod, string(req.Method)},
		{FieldMaxLength, strconv.Itoa(req.MaxLength)},
		{FieldMinLength, strconv.Itoa(req.MinLength)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", f.name)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}
	return &buf, w.FormDataContentType(), nil
}
