package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/api"
	"github.com/speakeasy-app/speakeasy/internal/formdoc"
	"github.com/speakeasy-app/speakeasy/internal/forms"
	"github.com/speakeasy-app/speakeasy/internal/svcctx"
)

// readUploadedPDF pulls the "file" multipart part into memory.
func readUploadedPDF(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	const maxMemory = 50 << 20 // 50MB
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read upload: %v", err))
		return nil, false
	}
	if len(data) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "uploaded file is empty")
		return nil, false
	}
	return data, true
}

// FormsExtractEndpoint handles POST /api/forms/extract.
type FormsExtractEndpoint struct{}

var _ api.Endpoint = (*FormsExtractEndpoint)(nil)

func (e *FormsExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/forms/extract", e.handler
}

func (e *FormsExtractEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Extract fillable form fields from a PDF
//	@Description	Returns the names, types, and current values of AcroForm fields
//	@Tags			forms
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Success		200		{object}	forms.FormSchema
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/forms/extract [post]
func (e *FormsExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	data, ok := readUploadedPDF(w, r)
	if !ok {
		return
	}

	defer r.MultipartForm.RemoveAll()

	schema, err := forms.Extract(data)
	if err != nil {
		var exErr *forms.ExtractionError
		if errors.As(err, &exErr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, schema)
}

func (e *FormsExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "forms-extract <pdf>",
		Short: "List fillable form fields in a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var schema forms.FormSchema
			if err := client.PostFile(cmd.Context(), "/api/forms/extract", args[0], nil, &schema); err != nil {
				return err
			}
			return api.Output(schema)
		},
	}
}

// FormsPopulateEndpoint handles POST /api/forms/populate.
type FormsPopulateEndpoint struct{}

var _ api.Endpoint = (*FormsPopulateEndpoint)(nil)

func (e *FormsPopulateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/forms/populate", e.handler
}

func (e *FormsPopulateEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Generate a completed-form PDF
//	@Description	Extracts fields from the uploaded PDF, applies the supplied values, and streams back a styled summary document
//	@Tags			forms
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file		formData	file	true	"Source PDF with fillable fields"
//	@Param			filled_data	formData	string	true	"JSON object mapping field names to values"
//	@Param			form_title	formData	string	false	"Document title"
//	@Success		200	{file}		binary
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/forms/populate [post]
func (e *FormsPopulateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	data, ok := readUploadedPDF(w, r)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll()

	schema, err := forms.Extract(data)
	if err != nil {
		var exErr *forms.ExtractionError
		if errors.As(err, &exErr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !schema.HasFields {
		writeError(w, http.StatusUnprocessableEntity, "PDF has no fillable form fields")
		return
	}

	filled, err := forms.ParseFilledData([]byte(r.FormValue("filled_data")))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	title := r.FormValue("form_title")
	if title == "" {
		if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
			title = mgr.Get().Pipeline.FormTitle
		}
	}

	doc, err := formdoc.New(title).Build(schema.Fields, filled)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="completed_form.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (e *FormsPopulateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var filledData, title, outFile string
	cmd := &cobra.Command{
		Use:   "forms-populate <pdf>",
		Short: "Generate a completed-form PDF from field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			fields := map[string]string{"filled_data": filledData}
			if title != "" {
				fields["form_title"] = title
			}
			doc, err := client.PostFileRaw(cmd.Context(), "/api/forms/populate", args[0], fields)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outFile, doc, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", outFile, len(doc))
			return nil
		},
	}
	cmd.Flags().StringVar(&filledData, "data", "{}", "JSON object mapping field names to values")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVarP(&outFile, "out", "o", "completed_form.pdf", "Output file path")
	return cmd
}
