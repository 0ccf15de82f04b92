package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRandomAlgorithm_ShouldUnmarshal(t *testing.T) {
	yamlString := `---
algorithm: MATH_ABS
`
	holder := &struct {
		Algorithm RandomAlgorithm `yaml:"algorithm"`
	}{}
	err := yaml.Unmarshal([]byte(yamlString), holder)
	if err != nil {
		t.Fatalf("Failed to unmarshall: %+v", err)
	}
	assert.Equal(t, MathAbs, holder.Algorithm)
}

func TestRandomAlgorithm_ShouldFailToUnmarshalUnknownName(t *testing.T) {
	holder := &struct {
		Algorithm RandomAlgorithm `yaml:"algorithm"`
	}{}
	err := yaml.Unmarshal([]byte("algorithm: SHA1PRNG"), holder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHA1PRNG")
	assert.Contains(t, err.Error(), "SECURE_RANDOM")
}

func TestRandomAlgorithm_ShouldMarshalByName(t *testing.T) {
	out, err := yaml.Marshal(map[string]RandomAlgorithm{"algorithm": Random})
	require.NoError(t, err)
	assert.Equal(t, "algorithm: RANDOM\n", string(out))

	_, err = yaml.Marshal(map[string]RandomAlgorithm{"algorithm": RandomAlgorithm(42)})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    RandomAlgorithm
		wantErr bool
	}{
		{name: "shouldParseMathAbs", arg: "MATH_ABS", want: MathAbs},
		{name: "shouldParseMathRandom", arg: "MATH_RANDOM", want: MathRandom},
		{name: "shouldParseRandom", arg: "RANDOM", want: Random},
		{name: "shouldParseSecureRandom", arg: "SECURE_RANDOM", want: SecureRandom},
		{name: "shouldFailOnLowercase", arg: "secure_random", wantErr: true},
		{name: "shouldFailOnEmpty", arg: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.arg, got.String())
		})
	}
}

func TestRandomAlgorithm_OrDefault(t *testing.T) {
	var zero RandomAlgorithm
	assert.False(t, zero.IsValid())
	assert.Equal(t, SecureRandom, zero.OrDefault())
	assert.Equal(t, MathAbs, MathAbs.OrDefault())
}

func TestValues(t *testing.T) {
	values := Values()
	assert.Len(t, values, 4)
	for _, v := range values {
		assert.True(t, v.IsValid())
	}
}
