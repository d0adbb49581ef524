package endpoints

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/api"
	"github.com/speakeasy-app/speakeasy/internal/extract"
	"github.com/speakeasy-app/speakeasy/internal/providers"
	"github.com/speakeasy-app/speakeasy/internal/simplify"
	"github.com/speakeasy-app/speakeasy/internal/svcctx"
)

// SpeakRequest is the JSON body for POST /api/speak/text.
type SpeakRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	Voice          string `json:"voice,omitempty"`
}

// SpeakResponse carries the rewritten text and its narration.
type SpeakResponse struct {
	Text   string `json:"text"`
	Audio  string `json:"audio"` // base64-encoded
	Format string `json:"format,omitempty"`
}

// speakPipeline runs simplify, optional translate, then narration. Shared
// by the text and file entry points.
func speakPipeline(r *http.Request, w http.ResponseWriter, text, targetLanguage, voice string) {
	ctx := r.Context()

	registry := svcctx.RegistryFrom(ctx)
	if registry == nil {
		writeError(w, http.StatusServiceUnavailable, "provider registry not initialized")
		return
	}
	llm, err := registry.DefaultLLM()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	tts, err := registry.DefaultTTS()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	budget := 0
	if mgr := svcctx.ConfigFrom(ctx); mgr != nil {
		budget = mgr.Get().Pipeline.ChunkBudget
	}
	svc := simplify.NewService(llm, budget)

	simplified, err := svc.Simplify(ctx, text)
	if err != nil {
		if errors.Is(err, simplify.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("simplification failed: %v", err))
		return
	}

	final := simplified
	if targetLanguage != "" {
		final, err = svc.Translate(ctx, simplified, targetLanguage)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("translation failed: %v", err))
			return
		}
	}

	audio, err := tts.Generate(ctx, &providers.TTSRequest{Text: final, Voice: voice})
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("speech synthesis failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, SpeakResponse{
		Text:   final,
		Audio:  base64.StdEncoding.EncodeToString(audio.Audio),
		Format: audio.Format,
	})
}

// SpeakTextEndpoint handles POST /api/speak/text.
type SpeakTextEndpoint struct{}

var _ api.Endpoint = (*SpeakTextEndpoint)(nil)

func (e *SpeakTextEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/speak/text", e.handler
}

func (e *SpeakTextEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Simplify, translate, and narrate text
//	@Description	Rewrites text in plain language, optionally translates it, and returns base64 audio
//	@Tags			speak
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SpeakRequest	true	"Text and target language"
//	@Success		200		{object}	SpeakResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/speak/text [post]
func (e *SpeakTextEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SpeakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	speakPipeline(r, w, req.Text, req.TargetLanguage, req.Voice)
}

func (e *SpeakTextEndpoint) Command(getServerURL func() string) *cobra.Command {
	var language, voice, outFile string
	cmd := &cobra.Command{
		Use:   "speak [text]",
		Short: "Simplify, translate, and narrate text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SpeakResponse
			req := SpeakRequest{Text: args[0], TargetLanguage: language, Voice: voice}
			if err := client.Post(cmd.Context(), "/api/speak/text", req, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Text)
			if outFile != "" {
				audio, err := base64.StdEncoding.DecodeString(resp.Audio)
				if err != nil {
					return fmt.Errorf("failed to decode audio: %w", err)
				}
				if err := os.WriteFile(outFile, audio, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "audio written to %s\n", outFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Target language (e.g. Spanish)")
	cmd.Flags().StringVar(&voice, "voice", "", "TTS voice override")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write narration audio to file")
	return cmd
}

// SpeakFileEndpoint handles POST /api/speak/file with a multipart upload.
type SpeakFileEndpoint struct{}

var _ api.Endpoint = (*SpeakFileEndpoint)(nil)

func (e *SpeakFileEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/speak/file", e.handler
}

func (e *SpeakFileEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Simplify, translate, and narrate an uploaded document
//	@Description	Accepts a PDF or plain-text upload, extracts its text, and runs the speak pipeline
//	@Tags			speak
//	@Accept			mpfd
//	@Produce		json
//	@Param			file			formData	file	true	"PDF or plain-text file"
//	@Param			target_language	formData	string	false	"Target language"
//	@Param			voice			formData	string	false	"TTS voice override"
//	@Success		200	{object}	SpeakResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		415	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/speak/file [post]
func (e *SpeakFileEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 50 << 20 // 50MB
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read upload: %v", err))
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "uploaded file is empty")
		return
	}

	text, err := extractUpload(header.Header.Get("Content-Type"), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			writeError(w, http.StatusUnsupportedMediaType, "only PDF or plain text files are supported")
		case errors.Is(err, extract.ErrNoText):
			writeError(w, http.StatusUnprocessableEntity, "no extractable text found in file")
		default:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	speakPipeline(r, w, text, r.FormValue("target_language"), r.FormValue("voice"))
}

// extractUpload picks the extractor by declared content type, falling back
// to the filename extension when the type header is absent or generic.
func extractUpload(contentType, filename string, data []byte) (string, error) {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "application/pdf":
			return extract.FromPDF(data)
		case "text/plain":
			return extract.FromText(data)
		case "", "application/octet-stream":
			// Fall through to the extension.
		default:
			return "", fmt.Errorf("%w: %s", extract.ErrUnsupportedType, mt)
		}
	}
	return extract.FromFile(filename, data)
}

func (e *SpeakFileEndpoint) Command(getServerURL func() string) *cobra.Command {
	var language, voice, outFile string
	cmd := &cobra.Command{
		Use:   "speak-file <path>",
		Short: "Simplify, translate, and narrate a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			fields := map[string]string{}
			if language != "" {
				fields["target_language"] = language
			}
			if voice != "" {
				fields["voice"] = voice
			}
			var resp SpeakResponse
			if err := client.PostFile(cmd.Context(), "/api/speak/file", args[0], fields, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Text)
			if outFile != "" {
				audio, err := base64.StdEncoding.DecodeString(resp.Audio)
				if err != nil {
					return fmt.Errorf("failed to decode audio: %w", err)
				}
				if err := os.WriteFile(outFile, audio, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "audio written to %s\n", outFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Target language (e.g. Spanish)")
	cmd.Flags().StringVar(&voice, "voice", "", "TTS voice override")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write narration audio to file")
	return cmd
}
