package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pocketbase/pocketbase/core"

	"shadequote/bom"
	"shadequote/configurator"
	"shadequote/quotes"
	"shadequote/services"
)

// Error codes returned in APIError.Code.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUnknownProductType = "UNKNOWN_PRODUCT_TYPE"
	CodeStepIncomplete     = "STEP_INCOMPLETE"
	CodeInvalidJump        = "INVALID_JUMP"
	CodeNoProductType      = "NO_PRODUCT_TYPE"
	CodeSessionCompleted   = "SESSION_COMPLETED"
	CodeMissingDimension   = "MISSING_DIMENSION"
	CodeMissingCatalogItem = "MISSING_CATALOG_ITEM"
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

var errSessionNotFound = errors.New("session not found")

// APIError is the JSON body of every error response.
type APIError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toAPIError maps domain errors to a status and code.
func toAPIError(err error) APIError {
	var (
		verrs       validator.ValidationErrors
		unknownType *configurator.UnknownProductTypeError
		missingDim  *services.MissingDimensionError
		unknownBase *services.UnknownMeasureBasisError
		missingItem *bom.MissingCatalogItemError
		lookup      *bom.CatalogLookupError
		bad         *badRequestError
		fieldErr    *configurator.FieldError
	)

	switch {
	case errors.As(err, &verrs):
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		return APIError{Code: CodeValidationError, Message: "validation failed", Details: details, HTTPStatus: http.StatusBadRequest}
	case errors.As(err, &fieldErr):
		field := fieldErr.Field
		if field == "" {
			field = "body"
		}
		return APIError{
			Code:       CodeValidationError,
			Message:    "validation failed",
			Details:    map[string]string{field: fieldErr.Err.Error()},
			HTTPStatus: http.StatusBadRequest,
		}
	case errors.As(err, &bad):
		return APIError{Code: CodeBadRequest, Message: bad.Error(), HTTPStatus: http.StatusBadRequest}
	case errors.As(err, &unknownType):
		return APIError{Code: CodeUnknownProductType, Message: err.Error(), HTTPStatus: http.StatusBadRequest}
	case errors.Is(err, errSessionNotFound),
		errors.Is(err, configurator.ErrProductNotFound),
		errors.Is(err, quotes.ErrQuoteNotFound),
		errors.Is(err, quotes.ErrLineNotFound):
		return APIError{Code: CodeNotFound, Message: err.Error(), HTTPStatus: http.StatusNotFound}
	case errors.Is(err, configurator.ErrCannotAdvance):
		return APIError{Code: CodeStepIncomplete, Message: err.Error(), HTTPStatus: http.StatusUnprocessableEntity}
	case errors.Is(err, configurator.ErrInvalidJump):
		return APIError{Code: CodeInvalidJump, Message: err.Error(), HTTPStatus: http.StatusBadRequest}
	case errors.Is(err, configurator.ErrNoProductType):
		return APIError{Code: CodeNoProductType, Message: err.Error(), HTTPStatus: http.StatusConflict}
	case errors.Is(err, configurator.ErrSessionCompleted):
		return APIError{Code: CodeSessionCompleted, Message: err.Error(), HTTPStatus: http.StatusConflict}
	case errors.As(err, &missingDim), errors.As(err, &unknownBase):
		return APIError{Code: CodeMissingDimension, Message: err.Error(), HTTPStatus: http.StatusUnprocessableEntity}
	case errors.As(err, &missingItem):
		return APIError{Code: CodeMissingCatalogItem, Message: err.Error(), HTTPStatus: http.StatusUnprocessableEntity}
	case errors.As(err, &lookup):
		return APIError{Code: CodeCatalogUnavailable, Message: "catalog lookup failed", HTTPStatus: http.StatusBadGateway}
	}
	return APIError{Code: CodeInternalError, Message: "an internal error occurred", HTTPStatus: http.StatusInternalServerError}
}

// respondError writes err as an APIError. Server-side failures are logged.
func respondError(e *core.RequestEvent, err error) error {
	apiErr := toAPIError(err)
	if apiErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("respond: %s %s: %v", e.Request.Method, e.Request.URL.Path, err)
	}
	return e.JSON(apiErr.HTTPStatus, apiErr)
}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

// bindJSON decodes an optional JSON body into dst and validates it. An
// empty body leaves dst untouched.
func bindJSON(e *core.RequestEvent, dst any) error {
	if e.Request.Body != nil {
		raw, err := io.ReadAll(e.Request.Body)
		if err != nil {
			return &badRequestError{msg: fmt.Sprintf("read body: %v", err)}
		}
		if len(strings.TrimSpace(string(raw))) > 0 {
			if err := json.Unmarshal(raw, dst); err != nil {
				return &badRequestError{msg: fmt.Sprintf("invalid request body: %v", err)}
			}
		}
	}
	if reflect.Indirect(reflect.ValueOf(dst)).Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(dst)
}
