package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/pdfdoc"
	"github.com/jfmartel/boampwatch/internal/signals"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// ExtractLinkRequest names one document to mine for links: either raw notice
// text, a document URL to fetch first, or both.
type ExtractLinkRequest struct {
	Text   string `json:"text,omitempty"`
	PDFURL string `json:"pdf_url,omitempty"`
}

// ExtractLinkResponse is the mined link set for one document.
type ExtractLinkResponse struct {
	Links       []string `json:"links"`
	PrimaryLink string   `json:"primary_link,omitempty"`
}

// ExtractLinkEndpoint handles POST /api/extract-link. Given a pdf_url it
// downloads the document and mines its text; given raw text it mines that
// directly, without any catalog lookup.
type ExtractLinkEndpoint struct{}

func (e *ExtractLinkEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract-link", e.handler
}

func (e *ExtractLinkEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Extract procurement links from one document
//	@Description	Downloads the document at pdf_url (or uses the supplied text), reconstructs line-broken URLs and returns the procurement platform links found
//	@Tags			extraction
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExtractLinkRequest	true	"Document URL or raw text to mine"
//	@Success		200		{object}	ExtractLinkResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/extract-link [post]
func (e *ExtractLinkEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ExtractLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" && req.PDFURL == "" {
		writeError(w, http.StatusBadRequest, "text or pdf_url is required")
		return
	}

	text := req.Text
	if req.PDFURL != "" {
		if !strings.HasPrefix(req.PDFURL, "http://") && !strings.HasPrefix(req.PDFURL, "https://") {
			writeError(w, http.StatusBadRequest, "pdf_url must be an http(s) URL")
			return
		}
		retriever := svcctx.RetrieverFrom(r.Context())
		if retriever == nil {
			writeError(w, http.StatusServiceUnavailable, "document retriever not initialized")
			return
		}
		doc, err := retriever.Fetch(r.Context(), req.PDFURL)
		if err != nil {
			writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch document: %v", err))
			return
		}
		if text == "" {
			text = doc.Text
		} else {
			text = text + "\n" + doc.Text
		}
	}

	links := signals.ExtractLinks(pdfdoc.ReconstructText(text))

	resp := ExtractLinkResponse{Links: links}
	if len(links) > 0 {
		resp.PrimaryLink = links[0]
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *ExtractLinkEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		inputFile string
		pdfURL    string
	)
	cmd := &cobra.Command{
		Use:   "extract-link [text]",
		Short: "Extract procurement links from a document URL or raw text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ExtractLinkRequest{PDFURL: pdfURL}
			switch {
			case inputFile != "":
				data, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("failed to read input file: %w", err)
				}
				req.Text = string(data)
			case len(args) == 1:
				req.Text = args[0]
			case pdfURL == "":
				return fmt.Errorf("provide text as an argument, --file, or --url")
			}

			client := api.NewClient(getServerURL())
			var resp ExtractLinkResponse
			if err := client.Post(cmd.Context(), "/api/extract-link", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read text from a file")
	cmd.Flags().StringVarP(&pdfURL, "url", "u", "", "Fetch and mine the document at this URL")
	return cmd
}
