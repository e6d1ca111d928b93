package clone

import (
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/deepclone/common/errors"
)

const (
	// CfgMaxDepth is the maximum nesting depth of referenceable values
	// along the shortest path from the root, zero means unlimited.
	CfgMaxDepth = "clone.max_depth"
	// CfgMaxNodes is the maximum number of referenceable values copied by
	// one clone operation, zero means unlimited.
	CfgMaxNodes = "clone.max_nodes"
)

// Flags has the configuration flags of the cloner.
var Flags = flag.NewFlagSet("", flag.ContinueOnError)

// NewFromConfig creates a cloner configured from viper.
func NewFromConfig() (*Cloner, error) {
	maxDepth := viper.GetInt(CfgMaxDepth)
	if maxDepth < 0 {
		return nil, errors.WithContextf(ErrInvalidConfig, "%s must not be negative: %d", CfgMaxDepth, maxDepth)
	}
	maxNodes := viper.GetInt(CfgMaxNodes)
	if maxNodes < 0 {
		return nil, errors.WithContextf(ErrInvalidConfig, "%s must not be negative: %d", CfgMaxNodes, maxNodes)
	}

	return New(
		WithMaxDepth(maxDepth),
		WithMaxNodes(maxNodes),
	), nil
}

func init() {
	Flags.Int(CfgMaxDepth, 0, "maximum nesting depth of cloned values (0 = unlimited)")
	Flags.Int(CfgMaxNodes, 0, "maximum number of values copied per clone (0 = unlimited)")

	_ = viper.BindPFlags(Flags)
}
