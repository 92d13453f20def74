package req

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"verify_gateway/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	validate = newValidator()                               //nolint:gochecknoglobals // skip
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names in errors follow the wire names, not the Go ones.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Read decodes the request body into dest and validates it. Both JSON and
// url-encoded form bodies are accepted; form values are matched by json tag.
func Read(r *http.Request, dest any) error {
	if err := decode(r, dest); err != nil {
		return failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid request body"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(describe(err)),
		)
	}

	return nil
}

func decode(r *http.Request, dest any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")) //nolint:errcheck

	if mediaType != "application/x-www-form-urlencoded" {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode: %w", err)
		}

		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("r.ParseForm: %w", err)
	}

	values := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}

	b, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err = json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := lo.Map(validationErrors, func(fieldError validator.FieldError, _ int) string {
		if fieldError.Tag() == "required" {
			return fieldError.Field() + " is required"
		}

		return fmt.Sprintf("%s is invalid (%s)", fieldError.Field(), fieldError.Tag())
	})

	return strings.Join(messages, ", ")
}
