package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/fx"
)

const apiVersion = "1.0.0"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type EmptyResponse struct{}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// PageResponse wraps a paginated list.
type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func newPageResponse[T any](items []T, p *domain.Pagination) *PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResponse[T]{Items: items, Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages()}
}

type Params struct {
	fx.In
	Svc     domain.Service
	Metrics *Metrics `optional:"true"`
}

func NewHandler(params Params) (*Handler, error) {
	metrics := params.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handler{
		Svc:      params.Svc,
		Metrics:  metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

type Handler struct {
	Svc      domain.Service
	Metrics  *Metrics
	validate *validator.Validate
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// JSONBind decodes the request body into dst and runs its validate tags.
func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Debug().Err(err).Int("status", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// BindError answers a body that failed to decode or validate.
func (h *Handler) BindError(ctx context.Context, w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" "+fe.Tag())
		}
		h.ErrorResponse(ctx, w, http.StatusUnprocessableEntity, "Invalid fields: "+strings.Join(fields, ", "), err)
		return
	}
	h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
}

func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.ErrorResponse(ctx, w, http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, domain.ErrDuplicate):
		h.ErrorResponse(ctx, w, http.StatusConflict, "Resource already exists", err)
	case errors.Is(err, domain.ErrNilQueryInput):
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid query", err)
	default:
		logger.Logger(ctx).Error().Err(err).Msg("unhandled error")
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (h *Handler) principal(r *http.Request) *domain.Principal {
	return domain.PrincipalFromContext(r.Context())
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Customs Clearance Back Office API",
		"version": apiVersion,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "backoffice-api",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func queryPagination(r *http.Request) *domain.Pagination {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	p := &domain.Pagination{Page: page, Limit: limit}
	p.Normalize()
	return p
}

// queryList splits a comma separated query parameter.
func queryList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func queryEnums[T ~string](r *http.Request, key string) []T {
	values := queryList(r, key)
	if len(values) == 0 {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}

func queryObjectIDs(r *http.Request, key string) ([]bson.ObjectID, error) {
	values := queryList(r, key)
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]bson.ObjectID, 0, len(values))
	for _, v := range values {
		id, err := bson.ObjectIDFromHex(v)
		if err != nil {
			return nil, errs.BadRequest("invalid "+key, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func parseOptionalObjectID(hex, field string) (bson.ObjectID, error) {
	if hex == "" {
		return bson.NilObjectID, nil
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, errs.BadRequest("invalid "+field, err)
	}
	return id, nil
}

func hexOrEmpty(id bson.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func requirePathObjectID(hex, resource string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, errs.BadRequest("invalid "+resource+" id", err)
	}
	return id, nil
}
