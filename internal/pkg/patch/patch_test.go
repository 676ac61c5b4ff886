//go:build unit

package patch_test

import (
	"strconv"
	"testing"

	"parking-api/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	name := "North"
	assert.Equal(t, "North", patch.Coalesce(&name, "South"))
	assert.Equal(t, "South", patch.Coalesce(nil, "South"))
}

func TestMap(t *testing.T) {
	cents := int64(250)
	assert.Equal(t, "250", patch.Map(&cents, func(v int64) string { return strconv.FormatInt(v, 10) }, "none"))
	assert.Equal(t, "none", patch.Map[int64](nil, func(v int64) string { return strconv.FormatInt(v, 10) }, "none"))
}

func TestFirst(t *testing.T) {
	a, b := 1, 2
	assert.Same(t, &a, patch.First(nil, &a, &b))
	assert.Nil(t, patch.First[int](nil, nil))
}
