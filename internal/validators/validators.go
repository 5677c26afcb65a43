package validators

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
)

const (
	TagTime12h  = "time12h"
	TagISODate  = "isodate"
	TagNotPast  = "notpast"
	TagPhone10  = "phone10"
	TagObjectID = "objectid"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Register installs the reservation tags on gin's binding validator. Dates
// are interpreted in loc and "today" comes from now. Calling it again
// replaces the previous registration.
func Register(loc *time.Location, now func() time.Time) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v, loc, now)
}

func RegisterOn(v *validator.Validate, loc *time.Location, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	v.RegisterTagNameFunc(fieldName)

	tags := map[string]validator.Func{
		TagTime12h: func(fl validator.FieldLevel) bool {
			return reservation.TimePattern.MatchString(fl.Field().String())
		},
		TagISODate: func(fl validator.FieldLevel) bool {
			_, err := reservation.ParseDate(fl.Field().String(), loc)
			return err == nil
		},
		TagNotPast: func(fl validator.FieldLevel) bool {
			day, err := reservation.ParseDate(fl.Field().String(), loc)
			if err != nil {
				// reported by isodate
				return true
			}
			return reservation.IsTodayOrLater(day, now(), loc)
		},
		TagPhone10: func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		},
		TagObjectID: func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		},
	}

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// fieldName reports fields by their wire name: json for bodies, uri for
// path parameters.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
