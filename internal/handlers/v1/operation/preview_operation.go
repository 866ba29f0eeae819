package operation

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/apierr"
)

// PreviewOperationInput is the Huma input for previewing an operation.
type PreviewOperationInput struct {
	Body OperationInputBody
}

// PreviewOperationBody is the response body of a preview.
type PreviewOperationBody struct {
	Preview Valuation `json:"preview"`
}

// PreviewOperationOutput is the Huma output for previewing an operation.
type PreviewOperationOutput struct {
	Body PreviewOperationBody
}

type operationPreviewer interface {
	Preview(ctx context.Context, in fuel.Input) (fuel.Valuation, error)
}

// PreviewOperationHandler handles POST /v1/operations/preview.
type PreviewOperationHandler struct {
	OperationService operationPreviewer
}

func NewPreviewOperationHandler(svc operationPreviewer) *PreviewOperationHandler {
	return &PreviewOperationHandler{OperationService: svc}
}

// Register registers the preview endpoint with the Huma API.
func (h *PreviewOperationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-operation",
		Method:      http.MethodPost,
		Path:        "/v1/operations/preview",
		Summary:     "Preview operation",
		Description: "Computes the valuation an operation would get, without storing it.",
		Tags:        []string{"Operations"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *PreviewOperationHandler) handle(ctx context.Context, input *PreviewOperationInput) (*PreviewOperationOutput, error) {
	in, err := parseOperationInput(input.Body, time.Now().Year())
	if err != nil {
		return nil, apierr.From(err, "")
	}

	valuation, err := h.OperationService.Preview(ctx, in)
	if err != nil {
		return nil, apierr.From(err, "failed to preview operation")
	}
	return &PreviewOperationOutput{Body: PreviewOperationBody{Preview: toValuation(valuation)}}, nil
}
