package errors

// MaxWidth bounds the line width accepted from flags and configuration.
const MaxWidth = 1 << 16

// ValidateWidth checks a target line width. Zero is allowed and breaks every
// group that has content.
func ValidateWidth(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidWidth, "width cannot be negative, got %d", width)
	}
	if width > MaxWidth {
		return New(ErrCodeInvalidWidth, "width too large (max %d), got %d", MaxWidth, width)
	}
	return nil
}

// ValidateIndent checks a nesting step.
func ValidateIndent(indent int) error {
	if indent < 0 || indent > 16 {
		return New(ErrCodeInvalidIndent, "indent must be between 0 and 16, got %d", indent)
	}
	return nil
}

// ValidateChoice checks that value is one of allowed, reporting code otherwise.
func ValidateChoice(code Code, name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s %q (allowed: %v)", name, value, allowed)
}
