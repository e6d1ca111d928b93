package clone

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/deepclone/common/errors"
)

func TestNewFromConfig(t *testing.T) {
	require := require.New(t)

	defer func() {
		viper.Set(CfgMaxDepth, 0)
		viper.Set(CfgMaxNodes, 0)
	}()

	c, err := NewFromConfig()
	require.NoError(err, "defaults")
	require.Equal(0, c.maxDepth)
	require.Equal(0, c.maxNodes)

	viper.Set(CfgMaxDepth, 8)
	viper.Set(CfgMaxNodes, 100)
	c, err = NewFromConfig()
	require.NoError(err)
	require.Equal(8, c.maxDepth)
	require.Equal(100, c.maxNodes)

	viper.Set(CfgMaxNodes, -1)
	_, err = NewFromConfig()
	require.True(errors.Is(err, ErrInvalidConfig), "negative node limit")

	viper.Set(CfgMaxNodes, 0)
	viper.Set(CfgMaxDepth, -1)
	_, err = NewFromConfig()
	require.True(errors.Is(err, ErrInvalidConfig), "negative depth limit")

	require.NotNil(Flags.Lookup(CfgMaxDepth), "flag is registered")
	require.NotNil(Flags.Lookup(CfgMaxNodes), "flag is registered")
}
