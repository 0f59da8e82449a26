// Copyright (c) 2026 Alor Foundation. All rights reserved.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtraOriginList(t *testing.T) {
	cfg := &Config{ExtraOrigins: " https://staging.example.org , https://preview.example.org ,"}
	assert.Equal(t,
		[]string{"https://staging.example.org", "https://preview.example.org"},
		cfg.ExtraOriginList(),
	)

	assert.Empty(t, (&Config{}).ExtraOriginList())
}
