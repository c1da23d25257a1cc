package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAccountSelector(t *testing.T) {
	assert.NoError(t, requireAccountSelector("prod", false))
	assert.NoError(t, requireAccountSelector("", true))
	assert.Error(t, requireAccountSelector("", false), "neither flag given")
	assert.Error(t, requireAccountSelector("prod", true), "both flags given")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"accounts", "instances", "elbs", "security-groups", "events"} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}
