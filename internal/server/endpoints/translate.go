package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/api"
	"github.com/speakeasy-app/speakeasy/internal/simplify"
	"github.com/speakeasy-app/speakeasy/internal/svcctx"
)

// TranslateRequest is the JSON body for POST /api/translate.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// TranslateResponse carries the translated text.
type TranslateResponse struct {
	Translated string `json:"translated"`
}

// TranslateEndpoint handles POST /api/translate.
type TranslateEndpoint struct{}

var _ api.Endpoint = (*TranslateEndpoint)(nil)

func (e *TranslateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/translate", e.handler
}

func (e *TranslateEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Translate text
//	@Description	Translates text to a target language without simplification
//	@Tags			translate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TranslateRequest	true	"Text and target language"
//	@Success		200		{object}	TranslateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/translate [post]
func (e *TranslateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		writeError(w, http.StatusBadRequest, "target_language is required")
		return
	}

	registry := svcctx.RegistryFrom(r.Context())
	if registry == nil {
		writeError(w, http.StatusServiceUnavailable, "provider registry not initialized")
		return
	}
	llm, err := registry.DefaultLLM()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	svc := simplify.NewService(llm, 0)
	translated, err := svc.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("translation failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{Translated: translated})
}

func (e *TranslateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var text, language string
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate text to a target language",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp TranslateResponse
			req := TranslateRequest{Text: text, TargetLanguage: language}
			if err := client.Post(cmd.Context(), "/api/translate", req, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Translated)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to translate")
	cmd.Flags().StringVar(&language, "language", "", "Target language (e.g. Spanish)")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("language")
	return cmd
}
