package prototype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneValueScalars(t *testing.T) {
	assert.Nil(t, cloneValue(nil))
	assert.Equal(t, 42, cloneValue(42))
	assert.Equal(t, "text", cloneValue("text"))
	assert.Equal(t, true, cloneValue(true))
	assert.Equal(t, 1.5, cloneValue(1.5))
}

func TestCloneValueMap(t *testing.T) {
	src := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	cloned := cloneValue(src).(map[string]any)

	require.Equal(t, src, cloned)
	cloned["a"] = 10
	cloned["b"].(map[string]any)["c"] = 20

	assert.Equal(t, 1, src["a"])
	assert.Equal(t, 2, src["b"].(map[string]any)["c"])
}

func TestCloneValueSlice(t *testing.T) {
	src := []any{1, []any{2, 3}}
	cloned := cloneValue(src).([]any)

	require.Equal(t, src, cloned)
	cloned[0] = 10
	cloned[1].([]any)[0] = 20

	assert.Equal(t, 1, src[0])
	assert.Equal(t, 2, src[1].([]any)[0])
}

func TestCloneValuePointer(t *testing.T) {
	n := 7
	src := &n
	cloned := cloneValue(src).(*int)

	require.Equal(t, 7, *cloned)
	assert.NotSame(t, src, cloned)

	*cloned = 8
	assert.Equal(t, 7, *src)

	var nilPtr *int
	assert.Nil(t, cloneValue(nilPtr).(*int))
}

func TestCloneValueStruct(t *testing.T) {
	type point struct {
		X, Y int
		Tags map[string]any
	}
	src := point{X: 1, Y: 2, Tags: map[string]any{"k": "v"}}
	cloned := cloneValue(src).(point)

	require.Equal(t, src, cloned)
	cloned.Tags["k"] = "changed"
	assert.Equal(t, "v", src.Tags["k"])
}

func TestCloneValueStructWithHiddenState(t *testing.T) {
	deadline := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cloned := cloneValue(deadline).(time.Time)
	assert.Equal(t, deadline, cloned)
}

func TestCloneMetadataStructValues(t *testing.T) {
	deadline := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	src := NewJobConfig("timed-job", 2, 10*time.Second, map[string]any{
		"deadline": deadline,
		"labels":   map[string]any{"team": "core"},
	})

	clone := src.Clone()
	require.Equal(t, src, clone)
	assert.Equal(t, deadline, clone.Metadata["deadline"])

	// Exported container fields still clone independently.
	clone.Metadata["labels"].(map[string]any)["team"] = "infra"
	assert.Equal(t, "core", src.Metadata["labels"].(map[string]any)["team"])
}

func TestCloneValueNilEntries(t *testing.T) {
	src := map[string]any{"present": 1, "absent": nil}
	cloned := cloneValue(src).(map[string]any)

	require.Equal(t, src, cloned)
	assert.Contains(t, cloned, "absent")
	assert.Nil(t, cloned["absent"])

	var nilMap map[string]any
	assert.Nil(t, cloneValue(nilMap))

	var nilSlice []any
	assert.Nil(t, cloneValue(nilSlice))
}
