package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/muhammadheryan/classifieds/model"
)

const (
	formFieldProperties = "properties"
	formFieldImage      = "image"

	// room for the non-file parts of a multipart body
	multipartOverhead = 1 << 20
)

var errMissingPart = stderrors.New("missing multipart part")

func (s *RestHandler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return fmt.Errorf("parse multipart: %w", err)
	}
	return nil
}

// readImagePart returns nil without error when the part is absent.
func (s *RestHandler) readImagePart(r *http.Request) (*model.ImageUpload, error) {
	file, header, err := r.FormFile(formFieldImage)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", s.maxUploadBytes)
	}
	return &model.ImageUpload{Filename: header.Filename, Data: data}, nil
}

// decodeProperties reads the JSON "properties" part, sent either as a plain
// field or as a file part with application/json content.
func decodeProperties(r *http.Request, dst interface{}) error {
	if v := r.FormValue(formFieldProperties); v != "" {
		return json.Unmarshal([]byte(v), dst)
	}
	if r.MultipartForm == nil {
		return errMissingPart
	}
	headers := r.MultipartForm.File[formFieldProperties]
	if len(headers) == 0 {
		return errMissingPart
	}
	return decodeFilePart(headers[0], dst)
}

func decodeFilePart(header *multipart.FileHeader, dst interface{}) error {
	f, err := header.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(dst)
}
