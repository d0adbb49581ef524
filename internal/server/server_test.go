package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/speakeasy-app/speakeasy/internal/forms"
	"github.com/speakeasy-app/speakeasy/internal/providers"
	"github.com/speakeasy-app/speakeasy/internal/server/endpoints"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

func withMockProviders(t *testing.T, s *Server) (*providers.MockLLM, *providers.MockTTS) {
	t.Helper()
	llm := providers.NewMockLLM()
	llm.ResponseText = "simplified text"
	tts := providers.NewMockTTS()
	s.Registry().RegisterLLM("mock", llm)
	s.Registry().RegisterTTS("mock", tts)
	return llm, tts
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func doMultipart(t *testing.T, s *Server, path, filename, contentType string, fileData []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	if contentType != "" {
		hdr["Content-Type"] = []string{contentType}
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(fileData); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func formlessPDF(t *testing.T) []byte {
	t.Helper()
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 14, "just text", "", 1, "L", false, 0, "")
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture PDF: %v", err)
	}
	return buf.Bytes()
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp endpoints.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestReadyWithoutProviders(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no providers are configured", rec.Code)
	}
}

func TestReadyWithProviders(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)
	rec := doJSON(t, s, http.MethodGet, "/ready", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestStatusListsProviders(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)
	rec := doJSON(t, s, http.MethodGet, "/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp endpoints.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Providers.LLM) != 1 || resp.Providers.LLM[0] != "mock" {
		t.Errorf("LLM providers = %v", resp.Providers.LLM)
	}
	if len(resp.Providers.TTS) != 1 || resp.Providers.TTS[0] != "mock" {
		t.Errorf("TTS providers = %v", resp.Providers.TTS)
	}
}

func TestSpeakText(t *testing.T) {
	s := newTestServer(t)
	llm, _ := withMockProviders(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/speak/text", endpoints.SpeakRequest{
		Text:           "complicated legal text",
		TargetLanguage: "Spanish",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp endpoints.SpeakResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text != "simplified text" {
		t.Errorf("text = %q", resp.Text)
	}
	audio, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		t.Fatalf("audio is not valid base64: %v", err)
	}
	if string(audio) != "mock-audio" {
		t.Errorf("audio = %q", audio)
	}

	// Simplify (chunks + consolidation) plus one translate call.
	if llm.RequestCount() != 3 {
		t.Errorf("LLM called %d times, want 3", llm.RequestCount())
	}
}

func TestSpeakTextValidation(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/speak/text", endpoints.SpeakRequest{Text: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank text: status = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/speak/text", strings.NewReader("{not json"))
	rec2 := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec2.Code)
	}
}

func TestSpeakFile(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)

	rec := doMultipart(t, s, "/api/speak/file", "notes.txt", "text/plain",
		[]byte("some document text"), map[string]string{"target_language": "French"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp endpoints.SpeakResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Audio == "" {
		t.Error("expected audio in response")
	}
}

func TestSpeakFileRejections(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)

	t.Run("unsupported type", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/speak/file", "doc.docx",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			[]byte("x"), nil)
		if rec.Code != http.StatusUnsupportedMediaType {
			t.Errorf("status = %d, want 415", rec.Code)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/speak/file", "empty.txt", "text/plain", nil, nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/speak/file", "blank.txt", "text/plain", []byte("   \n"), nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestTranslate(t *testing.T) {
	s := newTestServer(t)
	llm, _ := withMockProviders(t, s)
	llm.ResponseText = "hola"

	rec := doJSON(t, s, http.MethodPost, "/api/translate", endpoints.TranslateRequest{
		Text:           "hello",
		TargetLanguage: "Spanish",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp endpoints.TranslateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Translated != "hola" {
		t.Errorf("translated = %q", resp.Translated)
	}
}

func TestTranslateValidation(t *testing.T) {
	s := newTestServer(t)
	withMockProviders(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/translate", endpoints.TranslateRequest{Text: "hello"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing language: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/translate", endpoints.TranslateRequest{TargetLanguage: "Spanish"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing text: status = %d, want 400", rec.Code)
	}
}

func TestFormsExtract(t *testing.T) {
	s := newTestServer(t)

	t.Run("no file", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/forms/extract", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("formless pdf", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/forms/extract", "plain.pdf", "application/pdf", formlessPDF(t), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var schema forms.FormSchema
		if err := json.Unmarshal(rec.Body.Bytes(), &schema); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if schema.HasFields {
			t.Error("expected has_form_fields false")
		}
	})

	t.Run("malformed pdf", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/forms/extract", "bad.pdf", "application/pdf", []byte("not a pdf"), nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestFormsPopulate(t *testing.T) {
	s := newTestServer(t)

	t.Run("no fields rejected", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/forms/populate", "plain.pdf", "application/pdf",
			formlessPDF(t), map[string]string{"filled_data": `{"a":"b"}`})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("invalid json rejected before extraction succeeds", func(t *testing.T) {
		rec := doMultipart(t, s, "/api/forms/populate", "bad.pdf", "application/pdf",
			[]byte("not a pdf"), map[string]string{"filled_data": `{"a":`})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}
