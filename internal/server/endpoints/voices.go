package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/api"
	"github.com/speakeasy-app/speakeasy/internal/providers"
	"github.com/speakeasy-app/speakeasy/internal/svcctx"
)

// VoicesResponse lists narration voices available from TTS providers.
type VoicesResponse struct {
	Voices []providers.Voice `json:"voices"`
}

// VoicesEndpoint handles GET /api/voices.
type VoicesEndpoint struct{}

var _ api.Endpoint = (*VoicesEndpoint)(nil)

func (e *VoicesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/voices", e.handler
}

func (e *VoicesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List available narration voices
//	@Description	Queries configured TTS providers for their voice catalogs
//	@Tags			speak
//	@Produce		json
//	@Success		200	{object}	VoicesResponse
//	@Failure		500	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/voices [get]
func (e *VoicesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	registry := svcctx.RegistryFrom(r.Context())
	if registry == nil {
		writeError(w, http.StatusServiceUnavailable, "provider registry not initialized")
		return
	}

	resp := VoicesResponse{Voices: []providers.Voice{}}
	for _, name := range registry.ListTTS() {
		provider, err := registry.GetTTS(name)
		if err != nil {
			continue
		}
		// Only ElevenLabs exposes a voice catalog today.
		client, ok := provider.(*providers.ElevenLabsTTSClient)
		if !ok {
			continue
		}
		voices, err := client.ListVoices(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list voices from %s: %v", name, err))
			return
		}
		resp.Voices = append(resp.Voices, voices...)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *VoicesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List available narration voices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp VoicesResponse
			if err := client.Get(cmd.Context(), "/api/voices", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
