// Package check implements the preconditions of a rename run: the
// original/replacement strings and the target directory. Every failure is
// fatal for the run and is reported before anything on disk changes.
package check

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/afero"

	"github.com/backmassage/subrename/internal/naming"
)

// Sentinel errors returned by [Inputs] and [Target]. Callers match them
// with errors.Is; the wrapped text carries the detail.
var (
	ErrEmptyOriginal  = errors.New("original string is empty")
	ErrSameStrings    = errors.New("original and replacement are identical, nothing to change")
	ErrForbiddenInput = errors.New("input contains a forbidden character (one of " + naming.ForbiddenChars + ")")
	ErrTargetNotFound = errors.New("target folder does not exist")
	ErrNotDirectory   = errors.New("target is not a directory")
)

// inputs mirrors the two user strings for struct validation.
type inputs struct {
	Original    string `name:"original" validate:"required,filename_chars"`
	Replacement string `name:"replacement" validate:"nefield=Original,filename_chars"`
}

// tagErrors maps a failed validation tag to its sentinel. The slice order is
// the report priority when several tags fail at once.
var tagErrors = []struct {
	tag string
	err error
}{
	{"required", ErrEmptyOriginal},
	{"nefield", ErrSameStrings},
	{"filename_chars", ErrForbiddenInput},
}

var validate, translator = newValidator()

func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()

	enLocale := en.New()
	trans, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	if err := v.RegisterValidation("filename_chars", func(fl validator.FieldLevel) bool {
		return !naming.HasForbiddenChars(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterTranslation("filename_chars", trans,
		func(t ut.Translator) error {
			return t.Add("filename_chars", "{0} must not contain any of "+naming.ForbiddenChars, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("filename_chars", fe.Field())
			return msg
		},
	); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("name"); name != "" {
			return name
		}
		return fld.Name
	})
	return v, trans
}

// Inputs validates the original and replacement strings. original must be
// non-empty, differ from replacement, and neither may contain a forbidden
// character. Returns an error wrapping one of the Err* sentinels.
func Inputs(original, replacement string) error {
	err := validate.Struct(inputs{Original: original, Replacement: replacement})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]validator.FieldError, len(verrs))
	for _, fe := range verrs {
		if _, seen := failed[fe.Tag()]; !seen {
			failed[fe.Tag()] = fe
		}
	}
	for _, te := range tagErrors {
		if fe, ok := failed[te.tag]; ok {
			return fmt.Errorf("%w: %s", te.err, fe.Translate(translator))
		}
	}
	return err
}

// Target verifies that dir exists on fs and is a directory.
func Target(fs afero.Fs, dir string) error {
	fi, err := fs.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrTargetNotFound, dir)
	case err != nil:
		return fmt.Errorf("cannot access target folder %s: %w", dir, err)
	case !fi.IsDir():
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// Request runs [Inputs] then [Target], returning the first failure.
func Request(fs afero.Fs, original, replacement, dir string) error {
	if err := Inputs(original, replacement); err != nil {
		return err
	}
	return Target(fs, dir)
}
