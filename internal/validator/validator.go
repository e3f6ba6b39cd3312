package validator

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
)

// Input caps. They bound request size; the generators themselves accept any length.
const (
	MaxTopicLength       = 200
	MaxTitleLength       = 500
	MaxKeyPointsLength   = 5000
	MaxDescriptionLength = 5000
	MaxTagsLength        = 1000
)

// Validator provides validation methods for generator requests.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTitleRequest validates a TitleRequest. Empty category and tone are
// allowed and fall back to their defaults later.
func (v *Validator) ValidateTitleRequest(r *generator.TitleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Topic,
			validation.RuneLength(0, MaxTopicLength).Error("topic_too_long"),
		),
		validation.Field(&r.Category,
			validation.By(enumRule(generator.ValidCategory, "invalid_category")),
		),
		validation.Field(&r.Tone,
			validation.By(enumRule(generator.ValidTone, "invalid_tone")),
		),
	)
}

// ValidateDescriptionRequest validates a DescriptionRequest.
func (v *Validator) ValidateDescriptionRequest(r *generator.DescriptionRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.RuneLength(0, MaxTitleLength).Error("title_too_long"),
		),
		validation.Field(&r.KeyPoints,
			validation.RuneLength(0, MaxKeyPointsLength).Error("key_points_too_long"),
		),
		validation.Field(&r.CallToAction,
			validation.By(enumRule(generator.ValidCTA, "invalid_call_to_action")),
		),
	)
}

// ValidateSEORequest validates an SEORequest.
func (v *Validator) ValidateSEORequest(r *generator.SEORequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.RuneLength(0, MaxTitleLength).Error("title_too_long"),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, MaxDescriptionLength).Error("description_too_long"),
		),
		validation.Field(&r.Tags,
			validation.RuneLength(0, MaxTagsLength).Error("tags_too_long"),
		),
	)
}

// enumRule accepts the empty value and any value valid reports true for.
// Values are compared by their underlying string so named string types work.
func enumRule(valid func(string) bool, code string) validation.RuleFunc {
	return func(value interface{}) error {
		s := fmt.Sprint(value)
		if s == "" || valid(s) {
			return nil
		}
		return validation.NewError(code, fmt.Sprintf("unsupported value %q", s))
	}
}

// FieldErrors flattens ozzo validation errors into field -> message pairs
// for the JSON error envelope.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
	} else if err != nil {
		fields["unknown"] = err.Error()
	}
	return fields
}
