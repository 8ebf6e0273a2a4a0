package core

// errors.go defines the structural failures of a run and maps technical
// errors to messages for the HTTP surface.
//
// Error codes:
//
//	FILE001 - File too large: input exceeds the configured size limit
//	FILE003 - Input not found: the configured sheet does not exist
//	FILE004 - No file: the request carried no sheet
//	FILE005 - Empty file: the sheet is empty
//	UPL001  - Busy: all conversion slots are taken
//	UPL004  - Request cancelled
//	UPL005  - Request timeout
//	ERR000  - Anything else; check the logs for the technical error
//
// Patterns are matched case-insensitively with strings.Contains, first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound is returned when the input sheet does not exist.
	ErrInputNotFound = errors.New("could not find CSV file")

	// ErrFileTooLarge is returned when the input exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNoFile is returned when a request does not carry a sheet.
	ErrNoFile = errors.New("no file provided")

	// ErrEmptyFile is returned when a request carries an empty sheet.
	ErrEmptyFile = errors.New("empty file")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "The sheet exceeds the maximum size",
			Action:  "Remove unused rows or raise GRIPTIP_MAX_FILE_SIZE",
			Code:    "FILE001",
		},
	},
	{
		pattern: "could not find csv file",
		msg: UserMessage{
			Message: "The product sheet was not found",
			Action:  "Check GRIPTIP_INPUT or the --input flag",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No sheet was sent",
			Action:  "Send the CSV as the request body or as the multipart field \"file\"",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The sheet is empty",
			Action:  "Send a CSV with a header row and product rows",
			Code:    "FILE005",
		},
	},
	{
		pattern: "too many concurrent",
		msg: UserMessage{
			Message: "The server is busy converting other sheets",
			Action:  "Please try again in a moment",
			Code:    "UPL001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try again, or check that the sheet is not unusually large",
			Code:    "UPL005",
		},
	},
}

// FallbackCode is the code MapError returns for errors it does not know.
const FallbackCode = "ERR000"

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or check the server logs",
	Code:    FallbackCode,
}

// MapError converts a technical error to a user-friendly message.
// Returns the ERR000 fallback when no pattern matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action". The CLI prints it on failure.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
