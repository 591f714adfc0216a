package optpack_test

import (
	"testing"

	"github.com/AndrewDonelson/optpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(t *testing.T, m optpack.Mapping) []string {
	t.Helper()
	tbl, err := optpack.Compile(m)
	require.NoError(t, err)
	return tbl.Keys()
}

func TestOrdered_InsertionOrder(t *testing.T) {
	o := optpack.NewOrdered().
		Set("zeta", "z").
		Set("alpha", "a").
		Set("mid", "m")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keysOf(t, o))

	o.Set("alpha", "A")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keysOf(t, o), "replacing keeps position")
	v, ok := o.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestOrdered_ZeroValue(t *testing.T) {
	var o optpack.Ordered
	o.Set("k", "v")
	assert.Equal(t, 1, o.Len())

	s, err := optpack.Encode(&o, optpack.NewSelection("v"))
	require.NoError(t, err)
	assert.Equal(t, "W", s)
}

func TestNewOrdered_DuplicateKeysCollapse(t *testing.T) {
	o := optpack.NewOrdered(
		optpack.Pair{Key: "a", Value: "1"},
		optpack.Pair{Key: "b", Value: "2"},
		optpack.Pair{Key: "a", Value: "3"},
	)
	assert.Equal(t, 2, o.Len())
	k, v := o.At(0)
	assert.Equal(t, "a", k)
	assert.Equal(t, "3", v)
}

func TestStringMap_SortedKeys(t *testing.T) {
	m := optpack.StringMap{"option3": "value3", "option1": "value1", "option4": "value4", "option2": "value2"}
	assert.Equal(t, []string{"option1", "option2", "option3", "option4"}, keysOf(t, m))

	s, err := optpack.Encode(m, optpack.NewSelection("value1", "value3"))
	require.NoError(t, err)
	assert.Equal(t, "e", s)

	k, v := m.At(2)
	assert.Equal(t, "option3", k)
	assert.Equal(t, "value3", v)
}

func TestIntMap_NumericOrder(t *testing.T) {
	m := optpack.IntMap{10: "ten", 2: "two", 1: "one", -3: "minus"}
	assert.Equal(t, []string{"-3", "1", "2", "10"}, keysOf(t, m))

	features := optpack.IntMap{1: "feature_a", 2: "feature_b", 3: "feature_c", 4: "feature_d"}
	s, err := optpack.Encode(features, optpack.NewSelection("feature_a", "feature_c"))
	require.NoError(t, err)
	assert.Equal(t, "e", s)

	back, err := optpack.Decode(features, "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"feature_a", "feature_b", "feature_c", "feature_d"}, back.Values())

	k, v := features.At(3)
	assert.Equal(t, "4", k)
	assert.Equal(t, "feature_d", v)
}

func TestList_IndexKeys(t *testing.T) {
	colors := optpack.List{"red", "blue", "green", "yellow"}
	assert.Equal(t, []string{"0", "1", "2", "3"}, keysOf(t, colors))

	s, err := optpack.Encode(colors, optpack.NewSelection("red", "green"))
	require.NoError(t, err)
	assert.Equal(t, "e", s)

	c := newCodec(t, optpack.Config{IncludeUncompressed: true, Warn: optpack.WarnNever})
	s, err = c.Encode(colors, optpack.NewSelection("red", "purple"))
	require.NoError(t, err)
	back, err := c.Decode(colors, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"purple", "red"}, back.Values())
}

func TestShapesAgree(t *testing.T) {
	values := []string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7"}
	list := optpack.List(values)
	ints := optpack.IntMap{}
	ordered := optpack.NewOrdered()
	for i, v := range values {
		ints[i] = v
		ordered.Set(v+"-key", v)
	}
	sel := optpack.NewSelection("v0", "v5", "v7")

	want, err := optpack.Encode(list, sel)
	require.NoError(t, err)
	for _, m := range []optpack.Mapping{ints, ordered} {
		got, err := optpack.Encode(m, sel)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDuplicateValues(t *testing.T) {
	m := optpack.List{"same", "other", "same"}
	s, err := optpack.Encode(m, optpack.NewSelection("same"))
	require.NoError(t, err)
	assert.Equal(t, "e", s)

	back, err := optpack.Decode(m, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, back.Values())
}
