package value

import (
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CfgPatternCacheSize is the number of compiled patterns kept in the
// process wide pattern cache. Zero disables the cache.
const CfgPatternCacheSize = "value.pattern_cache_size"

// Flags has the configuration flags of the value package.
var Flags = flag.NewFlagSet("", flag.ContinueOnError)

func init() {
	Flags.Int(CfgPatternCacheSize, 256, "number of compiled patterns to cache")

	_ = viper.BindPFlags(Flags)
}
