package main

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGlobalConfigFollowsViper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	defer gconf.Initialize(testconfig.Conf{})
	//
	viper.Set("panic-on-nonconvergence", true)
	defer viper.Set("panic-on-nonconvergence", false)
	initGlobalConfig()
	assert.True(t, gconf.GetBool("panic-on-nonconvergence"))
	viper.Set("panic-on-nonconvergence", false)
	assert.False(t, gconf.GetBool("panic-on-nonconvergence"))
}
