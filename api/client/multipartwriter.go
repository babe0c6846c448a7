package client

import (
	"io"
	"mime/multipart"
	"sync"
)

// MultipartWriter streams a single file as a multipart form body without
// buffering it in memory. The form is written into a pipe on first Read.
type MultipartWriter struct {
	form     *multipart.Writer
	pr       *io.PipeReader
	pw       *io.PipeWriter
	start    sync.Once
	filename string
	reader   io.Reader
}

// MultipartFileWriter wraps r as the "file" field of a multipart form,
// named filename on the wire.
func MultipartFileWriter(filename string, r io.Reader) *MultipartWriter {
	pr, pw := io.Pipe()
	return &MultipartWriter{
		form:     multipart.NewWriter(pw),
		pr:       pr,
		pw:       pw,
		filename: filename,
		reader:   r,
	}
}

func (m *MultipartWriter) ContentType() string {
	return m.form.FormDataContentType()
}

func (m *MultipartWriter) Read(b []byte) (int, error) {
	m.start.Do(func() {
		go m.run()
	})
	return m.pr.Read(b)
}

func (m *MultipartWriter) run() {
	w, err := m.form.CreateFormFile("file", m.filename)
	if err != nil {
		m.pw.CloseWithError(err)
		return
	}
	if _, err := io.Copy(w, m.reader); err != nil {
		m.pw.CloseWithError(err)
		return
	}
	m.pw.CloseWithError(m.form.Close())
}
