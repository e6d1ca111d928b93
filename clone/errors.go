package clone

import "github.com/oasisprotocol/deepclone/common/errors"

// ModuleName is the module name used for errors and logging.
const ModuleName = "clone"

var (
	// ErrDepthExceeded is the error returned when a value graph is nested
	// deeper than the configured maximum depth.
	ErrDepthExceeded = errors.New(ModuleName, 1, "clone: maximum depth exceeded")

	// ErrSizeExceeded is the error returned when a value graph holds more
	// referenceable values than the configured maximum.
	ErrSizeExceeded = errors.New(ModuleName, 2, "clone: maximum node count exceeded")

	// ErrInvalidConfig is the error returned when the cloner configuration
	// is invalid.
	ErrInvalidConfig = errors.New(ModuleName, 3, "clone: invalid configuration")
)
