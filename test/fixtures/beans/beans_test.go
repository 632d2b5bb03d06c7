package beans

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorWithoutRequiredPropertiesTakesNoArguments(t *testing.T) {
	for _, constructor := range []any{
		NewEmptyBean,
		NewBeanWithEnumProperty,
		NewBeanWithReferenceToEmptyBean,
		NewBeanWithArrays,
	} {
		assert.Equal(t, 0, reflect.TypeOf(constructor).NumIn())
	}
}

func TestConstructorTakesRequiredPropertiesInOrder(t *testing.T) {
	// Given...
	bean := NewBeanWithMultiplePrimitiveProperties("hello", 11)

	// Then...
	fn := reflect.TypeOf(NewBeanWithMultiplePrimitiveProperties)
	assert.Equal(t, 2, fn.NumIn())
	assert.Equal(t, reflect.String, fn.In(0).Kind())
	assert.Equal(t, reflect.Int64, fn.In(1).Kind())

	assert.Equal(t, "hello", bean.GetAStringVariable())
	assert.Equal(t, int64(11), bean.GetAIntVariable())
}

func TestSerializesRequiredPropertiesInDeclarationOrder(t *testing.T) {
	// Given...
	bean := NewBeanWithMultiplePrimitiveProperties("hello", 11)

	// When...
	data, err := json.Marshal(bean)

	// Then...
	require.NoError(t, err)
	assert.Equal(t, `{"aStringVariable":"hello","aIntVariable":11,"aNumberVariable":0,"aBooleanVariable":false}`, string(data))
}

func TestRoundTrip(t *testing.T) {
	// Given...
	bean := NewBeanWithMultiplePrimitiveProperties("hello", 11)
	bean.SetANumberVariable(1.5)
	bean.SetABooleanVariable(true)

	// When...
	data, err := json.Marshal(bean)
	require.NoError(t, err)

	var decoded BeanWithMultiplePrimitiveProperties
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then...
	assert.Equal(t, *bean, decoded)
	assert.Equal(t, 1.5, decoded.GetANumberVariable())
	assert.True(t, decoded.GetABooleanVariable())
}

func TestEnumSerializesToLiteral(t *testing.T) {
	// Given...
	bean := NewBeanWithEnumProperty()
	bean.SetAnEnumProperty(BeanWithEnumPropertyAnEnumPropertyString1)

	// When...
	data, err := json.Marshal(bean)

	// Then...
	require.NoError(t, err)
	assert.Equal(t, `{"anEnumProperty":"string1"}`, string(data))

	var decoded BeanWithEnumProperty
	require.NoError(t, json.Unmarshal([]byte(`{"anEnumProperty":"string2"}`), &decoded))
	assert.Equal(t, BeanWithEnumPropertyAnEnumPropertyString2, decoded.GetAnEnumProperty())
	assert.Equal(t, "string2", decoded.GetAnEnumProperty().String())
}

func TestEnumHasOneConstantPerLiteral(t *testing.T) {
	assert.Len(t, beanWithEnumPropertyAnEnumPropertyLiterals, 2)

	for constant, literal := range beanWithEnumPropertyAnEnumPropertyLiterals {
		data, err := json.Marshal(constant)
		require.NoError(t, err)
		assert.Equal(t, `"`+literal+`"`, string(data))

		parsed, err := ParseBeanWithEnumPropertyAnEnumProperty(literal)
		require.NoError(t, err)
		assert.Equal(t, constant, parsed)
	}
}

func TestUnsetEnumIsAbsent(t *testing.T) {
	data, err := json.Marshal(NewBeanWithEnumProperty())

	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestEnumRejectsUnknownLiteral(t *testing.T) {
	var decoded BeanWithEnumProperty
	err := json.Unmarshal([]byte(`{"anEnumProperty":"string3"}`), &decoded)
	assert.ErrorContains(t, err, `invalid BeanWithEnumPropertyAnEnumProperty literal "string3"`)

	_, err = json.Marshal(BeanWithEnumPropertyAnEnumProperty(42))
	assert.ErrorContains(t, err, "invalid BeanWithEnumPropertyAnEnumProperty value 42")
}

func TestEnumNull(t *testing.T) {
	var c Colour = ColourRed
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, Colour(0), c)

	data, err := json.Marshal(Colour(0))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestUnsetReferenceIsAbsent(t *testing.T) {
	data, err := json.Marshal(NewBeanWithReferenceToEmptyBean())

	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestReferenceToEmptyBeanSerializesAsEmptyObject(t *testing.T) {
	// Given...
	bean := NewBeanWithReferenceToEmptyBean()
	bean.SetAReference(NewEmptyBean())

	// When...
	data, err := json.Marshal(bean)

	// Then...
	require.NoError(t, err)
	assert.Equal(t, `{"aReference":{}}`, string(data))

	var decoded BeanWithReferenceToEmptyBean
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotNil(t, decoded.GetAReference())
}

func TestArrays(t *testing.T) {
	// Given...
	bean := NewBeanWithArrays()
	bean.SetAStringArray([]string{"a", "b", "c"})
	bean.SetANumberArray([]float64{1.5, 2})
	bean.SetColours([]Colour{ColourDarkGreen, ColourRed})

	// When...
	data, err := json.Marshal(bean)

	// Then...
	require.NoError(t, err)
	assert.Equal(t, `{"a_string_array":["a","b","c"],"a-number-array":[1.5,2],"colours":["dark-green","red"]}`, string(data))

	var decoded BeanWithArrays
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"a", "b", "c"}, decoded.GetAStringArray())
	assert.Equal(t, []float64{1.5, 2}, decoded.GetANumberArray())
	assert.Equal(t, []Colour{ColourDarkGreen, ColourRed}, decoded.GetColours())
}

func TestArraySetterReplacesSequence(t *testing.T) {
	bean := NewBeanWithArrays()
	bean.SetAStringArray([]string{"a", "b"})
	bean.SetAStringArray([]string{"c"})

	assert.Equal(t, []string{"c"}, bean.GetAStringArray())
}

func TestUnmarshalReplacesAllProperties(t *testing.T) {
	bean := NewBeanWithArrays()
	bean.SetAStringArray([]string{"a"})

	require.NoError(t, json.Unmarshal([]byte(`{"colours":["red"]}`), bean))

	assert.Nil(t, bean.GetAStringArray())
	assert.Equal(t, []Colour{ColourRed}, bean.GetColours())
}
