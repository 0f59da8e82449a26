// Copyright (c) 2026 Alor Foundation. All rights reserved.

package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The uploadedby column is uuid; an uncast NULLIF over text parameters fails
// Postgres statement analysis with a type-mismatch error.
func TestInsertQueries_CastUploaderToUUID(t *testing.T) {
	assert.Contains(t, insertImageQuery(), "NULLIF($7, '')::uuid")
	assert.Contains(t, insertVideoQuery(), "NULLIF($5, '')::uuid")
}
