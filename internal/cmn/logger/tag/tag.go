// Package tag provides standardized tag functions for structured logging.
//
// All tag keys use kebab-case naming convention for consistency.
// Use these functions instead of raw strings to ensure consistent
// and type-safe log output across the codebase.
package tag

import "log/slog"

// Error creates a tag for error objects.
func Error(err any) slog.Attr {
	return slog.Any("err", err)
}

// Email creates a tag for the email address a license was issued to.
func Email(email string) slog.Attr {
	return slog.String("email", email)
}

// Path creates a tag for file paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Dir creates a tag for directory paths.
func Dir(path string) slog.Attr {
	return slog.String("dir", path)
}

// UseCount creates a tag for the number of recorded uses.
func UseCount(n uint32) slog.Attr {
	return slog.Any("use-count", n)
}

// Command creates a tag for CLI command names.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
