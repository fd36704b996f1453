package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/records"
)

// KeywordsResponse lists the predefined keyword catalog.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// KeywordsEndpoint handles GET /api/keywords.
type KeywordsEndpoint struct{}

func (e *KeywordsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/keywords", e.handler
}

func (e *KeywordsEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List predefined keywords
//	@Description	Returns the built-in catalog of trade keywords and CPV codes
//	@Tags			extraction
//	@Produce		json
//	@Success		200	{object}	KeywordsResponse
//	@Router			/api/keywords [get]
func (e *KeywordsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, KeywordsResponse{Keywords: records.PredefinedKeywords()})
}

func (e *KeywordsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the predefined keyword catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp KeywordsResponse
			if err := client.Get(cmd.Context(), "/api/keywords", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
