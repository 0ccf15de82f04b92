package validationutils

import (
	"reflect"
	"strings"
)

// TagNameFunction names struct fields in validation errors after their yaml key, so errors
// point at the key to fix in the config file. Fields without a yaml key fall back to json,
// then to the Go field name.
var TagNameFunction = func(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}
