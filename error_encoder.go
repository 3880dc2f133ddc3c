package restify

import (
	stdErrors "errors"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// ErrorEncoder serializes handler errors into HTTP responses.
type ErrorEncoder func(ctx Context, err error, op Operation) error

type encoderOption func(*encoderConfig)

type encoderConfig struct {
	includeStack bool
	mappers      []goerrors.ErrorMapper
	contentType  string
}

// DefaultErrorEncoder returns an encoder that emits go-errors compatible
// problem+json responses. Data-access and validation failures map to
// 400-class codes carrying the underlying message; everything else is an
// internal error.
func DefaultErrorEncoder(opts ...encoderOption) ErrorEncoder {
	cfg := encoderConfig{
		includeStack: goerrors.IsDevelopment,
		mappers:      append([]goerrors.ErrorMapper{mapTypedErrors}, goerrors.DefaultErrorMappers()...),
		contentType:  "application/problem+json",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx Context, err error, op Operation) error {
		if err == nil {
			err = stdErrors.New("unknown error")
		}

		mapped := goerrors.MapToError(err, cfg.mappers)
		if mapped == nil {
			mapped = goerrors.New(err.Error(), goerrors.CategoryInternal)
		}

		status := mapped.Code
		if status <= 0 {
			status = statusForCategory(mapped.Category)
		}
		mapped.WithCode(status)

		if strings.TrimSpace(mapped.TextCode) == "" {
			mapped.WithTextCode(goerrors.HTTPStatusToTextCode(status))
		}
		if mapped.Timestamp.IsZero() {
			mapped.Timestamp = time.Now().UTC()
		}

		includeStack := cfg.includeStack || goerrors.IsDevelopment
		if includeStack && len(mapped.StackTrace) == 0 {
			mapped.WithStackTrace()
		}

		attachRequestMetadata(ctx, mapped, op)

		response := mapped.ToErrorResponse(includeStack, mapped.StackTrace)
		return ctx.Status(status).JSON(response, cfg.contentType)
	}
}

// WithEncoderIncludeStack configures whether stack traces are serialized.
func WithEncoderIncludeStack(include bool) encoderOption {
	return func(cfg *encoderConfig) {
		cfg.includeStack = include
	}
}

// WithEncoderContentType overrides the response content type.
func WithEncoderContentType(contentType string) encoderOption {
	return func(cfg *encoderConfig) {
		if strings.TrimSpace(contentType) != "" {
			cfg.contentType = strings.TrimSpace(contentType)
		}
	}
}

// WithEncoderMappers appends additional error mappers.
func WithEncoderMappers(mappers ...goerrors.ErrorMapper) encoderOption {
	return func(cfg *encoderConfig) {
		cfg.mappers = append(cfg.mappers, mappers...)
	}
}

func mapTypedErrors(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var dataAccess *DataAccessError
	if stdErrors.As(err, &dataAccess) {
		message := strings.TrimSpace(dataAccess.Error())
		if message == "" {
			message = "data access failed"
		}
		return goerrors.New(message, goerrors.CategoryBadInput).
			WithCode(http.StatusBadRequest).
			WithTextCode("DATA_ACCESS_ERROR")
	}

	var validation *ValidationError
	if stdErrors.As(err, &validation) {
		message := strings.TrimSpace(validation.Error())
		if message == "" {
			message = "validation failed"
		}
		return goerrors.New(message, goerrors.CategoryValidation).
			WithCode(http.StatusBadRequest).
			WithTextCode("VALIDATION_ERROR")
	}

	var invalidRoute *InvalidRouteError
	if stdErrors.As(err, &invalidRoute) {
		return goerrors.New(invalidRoute.Error(), goerrors.CategoryValidation).
			WithCode(http.StatusBadRequest).
			WithTextCode("INVALID_ROUTE")
	}

	return nil
}

func statusForCategory(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func attachRequestMetadata(ctx Context, err *goerrors.Error, op Operation) {
	if ctx == nil || err == nil {
		return
	}

	if requestID := RequestIDFromContext(ctx.UserContext()); requestID != "" {
		err.WithRequestID(requestID)
	}

	if correlationID := CorrelationIDFromContext(ctx.UserContext()); correlationID != "" {
		err.WithMetadata(map[string]any{
			"correlation_id": correlationID,
		})
	}

	if op != "" {
		err.WithMetadata(map[string]any{
			"operation": string(op),
		})
	}
}
