package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// InlineImage is a captured food photo: base64 data plus its MIME type.
type InlineImage struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Bytes decodes the image data.
func (img *InlineImage) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return b, nil
}

// Validate checks that the image has data and an image MIME type.
func (img *InlineImage) Validate() error {
	var errs []FieldError
	if img.Data == "" {
		errs = append(errs, FieldError{Field: "image", Message: "empty"})
	}
	if !strings.HasPrefix(img.MIMEType, "image/") {
		errs = append(errs, FieldError{Field: "mimeType", Message: "must be an image type"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// RecognizeInput is what gets analyzed: an image or a free-text
// description of a meal.
type RecognizeInput struct {
	Image       *InlineImage
	Description string
}
