package operation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/report"
	"github.com/carson-networks/fuel-server/internal/service"
)

// ReportPDFOutput is the Huma output for the PDF report.
type ReportPDFOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type profileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (service.User, error)
}

// ReportPDFHandler handles GET /v1/operations/report/pdf.
type ReportPDFHandler struct {
	OperationService reportBuilder
	UserService      profileReader
}

func NewReportPDFHandler(svc reportBuilder, users profileReader) *ReportPDFHandler {
	return &ReportPDFHandler{OperationService: svc, UserService: users}
}

func (h *ReportPDFHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "operation-report-pdf",
		Method:      http.MethodGet,
		Path:        "/v1/operations/report/pdf",
		Summary:     "Operations report as PDF",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF document",
				Content:     map[string]*huma.MediaType{"application/pdf": {}},
			},
		},
	}, h.handle)
}

func (h *ReportPDFHandler) handle(ctx context.Context, input *ReportInput) (*ReportPDFOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, filter, err := parseFilteredRequest(ctx, input.FilterParams)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.Profile(ctx, userID)
	if err != nil {
		return nil, apierr.From(err, "failed to load profile")
	}

	stopTimer := logData.AddTiming("reportMs")
	r, err := h.OperationService.Report(ctx, userID, filter)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to generate report")
	}

	stopTimer = logData.AddTiming("renderPdfMs")
	doc, err := report.BuildPDF(r, user.Name)
	stopTimer()
	if err != nil {
		return nil, apierr.From(err, "failed to render report")
	}

	logData.AddData("pdfBytes", len(doc))
	return &ReportPDFOutput{
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf(`attachment; filename="relatorio-%s.pdf"`, r.GeneratedAt.Format("2006-01-02")),
		Body:               doc,
	}, nil
}
