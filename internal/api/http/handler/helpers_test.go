package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cogedon-server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubContext returns a fixed session, or none when session.UserID is zero.
type stubContext struct {
	session model.Session
}

func (s stubContext) SetSessionToContext(ctx context.Context, _ model.Session) context.Context {
	return ctx
}

func (s stubContext) GetSessionFromContext(_ context.Context) (model.Session, bool) {
	return s.session, s.session.UserID != 0
}

func serve(t *testing.T, method, path string, h gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Handle(method, path, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFileField struct {
	field, name string
	content     []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file *formFileField) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = io.Copy(fw, bytes.NewReader(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
