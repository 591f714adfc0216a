package optpack_test

import (
	"testing"

	"github.com/AndrewDonelson/optpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDefinition() *optpack.Definition {
	return &optpack.Definition{
		Name:        "ui_prefs",
		Description: "dashboard toggles",
		Options: optpack.OptionList{
			{Key: "z", Value: "dark_mode"},
			{Key: "m", Value: "compact"},
			{Key: "a", Value: "beta"},
		},
	}
}

func TestDefinition_RoundTripAllFormats(t *testing.T) {
	for _, format := range []string{"json", "msgpack", "yaml"} {
		t.Run(format, func(t *testing.T) {
			orig := sampleDefinition()
			data, err := orig.Marshal(format)
			require.NoError(t, err)

			got, err := optpack.ParseDefinition(format, data)
			require.NoError(t, err)
			assert.Equal(t, orig, got)

			want, err := optpack.Encode(orig, optpack.NewSelection("dark_mode", "beta"))
			require.NoError(t, err)
			s, err := optpack.Encode(got, optpack.NewSelection("dark_mode", "beta"))
			require.NoError(t, err)
			assert.Equal(t, want, s)
			assert.Equal(t, "e", s)
		})
	}
}

func TestParseDefinition_JSONObjectKeepsOrder(t *testing.T) {
	data := []byte(`{"name":"prefs","options":{"option4":"value4","option1":"value1","option3":"value3"}}`)
	d, err := optpack.ParseDefinition("json", data)
	require.NoError(t, err)
	assert.Equal(t, optpack.OptionList{
		{Key: "option4", Value: "value4"},
		{Key: "option1", Value: "value1"},
		{Key: "option3", Value: "value3"},
	}, d.Options)

	s, err := optpack.Encode(d, optpack.NewSelection("value4"))
	require.NoError(t, err)
	assert.Equal(t, "W", s)
}

func TestParseDefinition_YAMLList(t *testing.T) {
	data := []byte(`
name: perms
options:
  - key: read
    value: can_read
  - key: write
    value: can_write
`)
	d, err := optpack.ParseDefinition("yml", data)
	require.NoError(t, err)
	assert.Equal(t, "perms", d.Name)
	assert.Equal(t, 2, d.Len())
	k, v := d.At(1)
	assert.Equal(t, "write", k)
	assert.Equal(t, "can_write", v)
}

func TestParseDefinition_Errors(t *testing.T) {
	_, err := optpack.ParseDefinition("toml", []byte("x"))
	assert.ErrorIs(t, err, optpack.ErrUnknownFormat)

	_, err = optpack.ParseDefinition("json", []byte(`{"options": 5}`))
	assert.ErrorIs(t, err, optpack.ErrInvalidDefinition)

	_, err = optpack.ParseDefinition("json", []byte(`{"options": {"a": 1}}`))
	assert.ErrorIs(t, err, optpack.ErrInvalidDefinition)

	_, err = optpack.ParseDefinition("json", []byte(`{"options": [{"key":"a","value":"1"},{"key":"a","value":"2"}]}`))
	assert.ErrorIs(t, err, optpack.ErrInvalidDefinition)

	_, err = optpack.ParseDefinition("msgpack", []byte{0xc1})
	assert.ErrorIs(t, err, optpack.ErrInvalidDefinition)

	_, err = sampleDefinition().Marshal("toml")
	assert.ErrorIs(t, err, optpack.ErrUnknownFormat)
}

func TestParseDefinition_NullOptions(t *testing.T) {
	d, err := optpack.ParseDefinition("json", []byte(`{"name":"empty","options":null}`))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	s, err := optpack.Encode(d, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestDefinitionOf(t *testing.T) {
	d, err := optpack.DefinitionOf("ints", optpack.IntMap{2: "b", 1: "a"})
	require.NoError(t, err)
	assert.Equal(t, "ints", d.Name)
	assert.Equal(t, optpack.OptionList{{Key: "1", Value: "a"}, {Key: "2", Value: "b"}}, d.Options)

	_, err = optpack.DefinitionOf("nil", nil)
	assert.ErrorIs(t, err, optpack.ErrInvalidInput)
}
