package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the json field name rather than the Go
	// struct field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

const requiredFieldMsg = "This field is required."

// bindingMessages flattens a request binding failure into one message per
// offending field. fieldHelp supplies the message for each known field;
// anything else falls back to a generic reason.
func bindingMessages(err error, fieldHelp map[string]string) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			msg, ok := fieldHelp[fe.Field()]
			if !ok {
				msg = requiredFieldMsg
			}
			out[fe.Field()] = msg
		}
	case errors.As(err, &typeErr):
		out[typeErr.Field] = "This field must be of type " + typeErr.Type.String() + "."
	default:
		out["body"] = "The request body could not be parsed."
	}
	return out
}
