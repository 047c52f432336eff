package helper

import (
	"errors"
	"net/http"
	"strings"

	"newsdesk-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`

	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeValidationError   = 403
	codeNotFound          = 404
	codeUpstreamError     = 502
)

// HTTPHelper renders the response envelope and translates binding errors
// into per-field messages.
type HTTPHelper struct {
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	h := &HTTPHelper{}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	h.Translator, _ = uni.GetTranslator("en")

	// gin binds with validator/v10 under the hood; register translations on
	// its engine so binding failures come back readable.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = entrans.RegisterDefaultTranslations(v, h.Translator)
	}

	return h
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func (u *HTTPHelper) send(c *gin.Context, httpCode, code int, codeType, status, message string, data interface{}) {
	if message == "" {
		message = "success"
	}
	c.JSON(httpCode, map[string]interface{}{
		"status":       status,
		"code":         code,
		"code_type":    codeType,
		"code_message": message,
		"data":         data,
	})
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusOK, codeSuccess, `success`, textOk, message, data)
}

func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusCreated, codeSuccess, `success`, textOk, message, data)
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusBadRequest, codeBadRequestError, `badRequest`, textError, message, data)
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusUnauthorized, codeUnauthorizedError, `unAuthorized`, textError, message, data)
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusNotFound, codeNotFound, `notFound`, textError, message, data)
}

func (u *HTTPHelper) SendUpstreamError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusBadGateway, codeUpstreamError, `upstreamError`, textError, message, data)
}

// SendBindingError renders a request-body bind failure, with per-field
// translations when the failure came from struct validation.
func (u *HTTPHelper) SendBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			key := strings.ToLower(fe.Field())
			fields[key] = append(fields[key], fe.Translate(u.Translator))
		}
		u.send(c, http.StatusBadRequest, codeValidationError, `validationError`, textError, "invalid request body", fields)
		return
	}
	u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
}

// SendDomainError maps the service error taxonomy onto HTTP responses.
// Validation problems are the caller's to fix; upload and persist failures
// are upstream faults scoped to the attempted submission.
func (u *HTTPHelper) SendDomainError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		uploadErr     *models.UploadError
		persistErr    *models.PersistError
		indexErr      *models.IndexError
	)

	switch {
	case errors.As(err, &validationErr):
		u.send(c, http.StatusBadRequest, codeValidationError, `validationError`, textError, validationErr.Error(),
			map[string]interface{}{"fields": validationErr.Fields})
	case errors.As(err, &indexErr):
		u.SendBadRequest(c, indexErr.Error(), u.EmptyJsonMap())
	case errors.Is(err, models.ErrSubmitInFlight):
		u.send(c, http.StatusConflict, codeBadRequestError, `conflict`, textError, err.Error(), u.EmptyJsonMap())
	case errors.Is(err, models.ErrDraftNotFound):
		u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case errors.As(err, &uploadErr), errors.As(err, &persistErr):
		u.SendUpstreamError(c, err.Error(), u.EmptyJsonMap())
	default:
		u.send(c, http.StatusInternalServerError, 500, `internalError`, textError, err.Error(), u.EmptyJsonMap())
	}
}
