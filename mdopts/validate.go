package mdopts

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate runs struct-tag validation over a ParseOptions or RenderOptions
// value (or any other options type exposing validate tags), translating
// the first failure into a readable error.
func Validate(opts any) error {
	if err := getValidator().Struct(opts); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("mdopts: invalid option %s: failed %q validation", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("mdopts: validating options: %w", err)
	}
	return nil
}

// skinToneDigit is the internal decoded struct backing skin-tone suffix
// validation (SUPPLEMENTED FEATURES: "Skin-tone validation" — "N must be
// an ASCII digit 1-5 ... validated with a validator tag on the internal
// decoded struct").
type skinToneDigit struct {
	Value int `validate:"min=1,max=5"`
}

// ValidSkinTone reports whether n is a valid emoji skin-tone digit (1-5).
func ValidSkinTone(n int) bool {
	return getValidator().Struct(skinToneDigit{Value: n}) == nil
}
