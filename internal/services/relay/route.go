package relay

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Transform selects how the outbound payload is built from the inbound body.
type Transform string

const (
	// TransformPassthrough forwards the inbound bytes unchanged.
	TransformPassthrough Transform = "passthrough"
	// TransformWrap forwards {TargetField: inbound[SourceField]}.
	TransformWrap Transform = "wrap"
)

// Route is the configuration of one relay instance.
type Route struct {
	Name           string
	DestinationURL string
	Transform      Transform
	SourceField    string
	TargetField    string
	// RequiredFields are gjson paths that must resolve to a non-null, non-empty value.
	RequiredFields []string
	// SuccessStatus of 0 treats any destination status as delivered.
	SuccessStatus int
	// Condition is an optional CEL expression over `body`.
	Condition string
}

func (r Route) validate() error {
	if r.Name == "" {
		return errors.New("route name is empty")
	}
	if r.DestinationURL == "" {
		return fmt.Errorf("route %s has no destination", r.Name)
	}
	for _, field := range r.RequiredFields {
		if strings.TrimSpace(field) != field || field == "" {
			return fmt.Errorf("route %s has blank or padded required field %q", r.Name, field)
		}
	}
	switch r.Transform {
	case TransformPassthrough:
	case TransformWrap:
		if r.SourceField == "" || r.TargetField == "" {
			return fmt.Errorf("route %s wraps without source and target fields", r.Name)
		}
	default:
		return fmt.Errorf("route %s has unknown transform %q", r.Name, r.Transform)
	}
	return nil
}

// requiredFields returns the fields to check, including the wrap source field.
func (r Route) requiredFields() []string {
	fields := slices.Clone(r.RequiredFields)
	if r.Transform == TransformWrap && !slices.Contains(fields, r.SourceField) {
		fields = append([]string{r.SourceField}, fields...)
	}
	return fields
}
