package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/transport/response"
)

// pageQuery holds the optional paging parameters. They are checked but the
// collections are always returned whole.
type pageQuery struct {
	Page  *int `query:"page"  validate:"omitempty,min=1"`
	Limit *int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// QueryValidator rejects malformed query parameters before a handler runs.
type QueryValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewQueryValidator builds a validator with English messages keyed by
// query parameter names.
func NewQueryValidator() (*QueryValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &QueryValidator{validate: validate, trans: trans}, nil
}

// Pagination rejects requests whose page or limit is not an integer in range
// with 400 {success:false,error}. The first failing parameter is reported.
func (v *QueryValidator) Pagination(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if verr := v.checkPagination(r); verr != nil {
			response.Fail(w, r, http.StatusBadRequest, verr.Errors[0].Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkPagination returns nil when the paging parameters are acceptable.
func (v *QueryValidator) checkPagination(r *http.Request) *domain.ValidationError {
	q := r.URL.Query()

	var pq pageQuery
	var ok bool
	if pq.Page, ok = optionalInt(q.Get("page")); !ok {
		return domain.NewValidationError("page", "page must be an integer")
	}
	if pq.Limit, ok = optionalInt(q.Get("limit")); !ok {
		return domain.NewValidationError("limit", "limit must be an integer")
	}

	err := v.validate.Struct(pq)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("query", err.Error())
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fe.Translate(v.trans)})
	}
	return domain.NewValidationErrors(fields)
}

func optionalInt(raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}
