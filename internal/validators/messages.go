package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messages holds the client-facing text per field and failing tag.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters long",
		"max":      "Name cannot exceed 50 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"phoneNumber": {
		"required": "Phone number is required",
		TagPhone10: "Phone number must be exactly 10 digits",
	},
	"date": {
		"required": "Date is required",
		TagISODate: "Date must be a valid date",
		TagNotPast: "Reservation date must be today or a future date",
	},
	"time": {
		"required": "Time is required",
		TagTime12h: "Time must be in HH:MM AM/PM format (e.g., 7:30 PM)",
	},
	"guests": {
		"required": "Number of guests is required",
		"min":      "There must be at least 1 guest",
		"max":      "Maximum 20 guests allowed per reservation",
	},
	"status": {
		"required": "Status is required",
		"oneof":    "Status must be one of: pending, confirmed, cancelled",
	},
	"id": {
		"required":  "Reservation ID is required",
		TagObjectID: "Invalid reservation ID format",
	},
}

// Path parameter schemas word a few messages differently.
var paramMessages = map[string]map[string]string{
	"DateParam.date": {
		"required": "Date parameter is required",
		TagISODate: "Date must be a valid date format (YYYY-MM-DD)",
	},
	"AuditLogQuery.reservation_id": {
		TagObjectID: "Invalid reservation ID format",
	},
	"StatusParam.status": {
		"required": "Status parameter is required",
	},
	"CheckAvailabilityRequest.date": {
		TagNotPast: "Date must be today or a future date",
	},
}

// Details turns a binding error into one message per offending field.
func Details(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, message(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{typeMessage(typeErr)}
	}

	if errors.Is(err, io.EOF) {
		return []string{"Request body is required"}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{"Request body must be valid JSON"}
	}

	return []string{err.Error()}
}

func message(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		key := ns[:i] + "." + fe.Field()
		if msg, ok := paramMessages[key][fe.Tag()]; ok {
			return msg
		}
	}

	if msg, ok := messages[fe.Field()][fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func typeMessage(e *json.UnmarshalTypeError) string {
	field := e.Field
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}

	if field == "guests" {
		// encoding/json reports a fractional value as "number 2.5"
		if strings.HasPrefix(e.Value, "number") {
			return "Number of guests must be a whole number"
		}
		return "Number of guests must be a number"
	}
	return fmt.Sprintf("%s must be a %s", field, e.Type.Kind())
}
