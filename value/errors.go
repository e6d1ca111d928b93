package value

import "github.com/oasisprotocol/deepclone/common/errors"

// ModuleName is the module name used for errors.
const ModuleName = "value"

// ErrInvalidPattern is the error returned when a pattern or its flags
// can not be compiled.
var ErrInvalidPattern = errors.New(ModuleName, 1, "value: invalid pattern")
