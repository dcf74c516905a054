package notify

import "fmt"

// InvalidInputError is returned when caller-supplied data fails value-object
// validation. It is never retried and maps to a client error at the
// transport boundary.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// TemplateNotFoundError is returned when a template name has no corresponding
// provider template id. It maps to a not-found outcome at the transport
// boundary.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("email template %q not found", e.Name)
}

// ProviderError wraps a failure of the email provider or push transport
// itself, including authentication failures. It maps to a generic server
// error at the transport boundary.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
