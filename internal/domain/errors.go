package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCredential means the AI or auth provider rejected or never received
	// its key (missing, invalid, or lacking permission).
	ErrCredential = errors.New("credential error")
	// ErrEntitlement means a session exists but the profiles record does not
	// grant access.
	ErrEntitlement = errors.New("entitlement denied")
	// ErrTransient covers network and provider failures that may succeed on retry.
	ErrTransient = errors.New("transient provider error")
	// ErrPersistence covers serialization and quota failures of the KV substrate.
	ErrPersistence = errors.New("persistence error")
	// ErrMalformedState marks a persisted payload that is present but unusable.
	ErrMalformedState = errors.New("malformed persisted state")
	// ErrSuperseded is returned when an async completion arrives after the
	// state it was started for has moved on.
	ErrSuperseded = errors.New("superseded")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ProviderError is returned by adapters of external collaborators (AI, auth).
// Message is safe to show to the user. Kind is one of the sentinel errors
// above and is reachable through errors.Is.
type ProviderError struct {
	Op      string
	Kind    error
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ProviderError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Messages shown to the user. The product language is Spanish.
const (
	MsgCredential = "La clave de API no es válida o no está configurada. Verifica la configuración."
	MsgAnalyze    = "No se pudo analizar la imagen con la IA. Inténtalo de nuevo."
	MsgPlan       = "No se pudo generar el plan de comidas con la IA. Inténtalo de nuevo."
	MsgEntitled   = "Tu cuenta no tiene acceso activo."
	MsgLogin      = "Correo electrónico o contraseña incorrectos."
	MsgAuthDown   = "No se pudo conectar con el servicio de autenticación. Inténtalo de nuevo."
	MsgUnknown    = "Ocurrió un error desconocido."
)

// UserMessage returns the text a presentation layer should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var pe *ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	switch {
	case errors.Is(err, ErrCredential):
		return MsgCredential
	case errors.Is(err, ErrEntitlement):
		return MsgEntitled
	case errors.Is(err, ErrUnauthorized):
		return MsgLogin
	}
	return MsgUnknown
}
