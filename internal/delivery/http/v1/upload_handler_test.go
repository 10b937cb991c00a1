package v1

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront-backend/pkg/storage"
)

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadHandler_UploadFile(t *testing.T) {
	store := new(mockMediaStore)
	store.On("UploadBuffer", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return("https://media.example/uploads/a.webp", nil)

	body, ct := multipartImage(t, "faq.png", "image/png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	NewUploadHandler(store, 5).UploadFile(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://media.example/uploads/a.webp")
	store.AssertExpectations(t)
}

func TestUploadHandler_RejectsBadType(t *testing.T) {
	store := new(mockMediaStore)

	body, ct := multipartImage(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	NewUploadHandler(store, 5).UploadFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "UploadBuffer", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandler_DeleteFile(t *testing.T) {
	store := new(mockMediaStore)
	store.On("DeleteFile", mock.Anything, "https://media.example/uploads/a.webp").Return(nil)
	store.On("DeleteFile", mock.Anything, "https://elsewhere.example/x.webp").Return(storage.ErrInvalidFileURL)

	h := NewUploadHandler(store, 5)

	rec := httptest.NewRecorder()
	h.DeleteFile(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/upload",
		strings.NewReader(`{"url":"https://media.example/uploads/a.webp"}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.DeleteFile(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/upload",
		strings.NewReader(`{"url":"https://elsewhere.example/x.webp"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.DeleteFile(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/upload", strings.NewReader(`{"url":"not a url"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	store.AssertExpectations(t)
}
