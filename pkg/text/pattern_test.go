package text

import (
	"sync"
	"testing"

	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalPattern(t *testing.T) {
	yamlString := `---
pattern: ^-qB3310-[A-Za-z0-9_~\(\)\!\.\*-]{12}$
limit: 5
`
	p := &Pattern{}
	err := yaml.Unmarshal([]byte(yamlString), p)
	if err != nil {
		t.Fatalf("Failed to unmarshall: %+v", err)
	}
	require.NoError(t, p.AfterPropertiesSet())
	assert.Equal(t, `^-qB3310-[A-Za-z0-9_~\(\)\!\.\*-]{12}$`, p.Expr)
	assert.Equal(t, 5, p.Limit)
}

func TestGeneratePattern(t *testing.T) {
	pattern := `^-qB3310-[A-Za-z0-9_~\(\)\!\.\*-]{12}$`
	p, err := NewPattern(pattern, 0)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		assert.Regexp(t, pattern, p.Generate())
	}
}

func TestGeneratePatternShouldBeRandom(t *testing.T) {
	p, err := NewPattern(`^-qB3310-[A-Za-z0-9_~\(\)\!\.\*-]{12}$`, 0)
	require.NoError(t, err)

	set := make(map[string]bool)
	for i := 0; i < 500; i++ {
		set[p.Generate()] = true
	}
	assert.Greater(t, len(set), 300)
}

func TestNewPattern_ShouldRejectBadPatterns(t *testing.T) {
	_, err := NewPattern("", 0)
	assert.Error(t, err)

	_, err = NewPattern("[a-z", 0)
	assert.Error(t, err)
}

func TestFromPattern(t *testing.T) {
	src := randutils.MustBuild(randutils.WithSeed(31))
	for i := 0; i < 50; i++ {
		s, err := FromPattern(`^[a-z]{5}-[0-9]{2}$`, 0, src)
		require.NoError(t, err)
		assert.Regexp(t, `^[a-z]{5}-[0-9]{2}$`, s)
	}

	s, err := FromPattern(`^a+$`, 3, src)
	require.NoError(t, err)
	assert.Regexp(t, `^a+$`, s)

	_, err = FromPattern(`(`, 0, src)
	assert.Error(t, err)
}

func TestFromPattern_SameSeedShouldGiveSameString(t *testing.T) {
	first, err := FromPattern(`[a-z]{12}`, 0, randutils.MustBuild(randutils.WithSeed(32)))
	require.NoError(t, err)
	second, err := FromPattern(`[a-z]{12}`, 0, randutils.MustBuild(randutils.WithSeed(32)))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p, err := NewPattern(`[a-z]{12}`, 0)
	require.NoError(t, err)
	assert.Equal(t, first, p.GenerateFrom(randutils.MustBuild(randutils.WithSeed(32))))
}

func TestFromPattern_ShouldBeSafeForConcurrentUse(t *testing.T) {
	src := randutils.MustBuild(randutils.WithSeed(33))
	p, err := NewPattern(`[a-z]{5}`, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s, err := FromPattern(`[a-z]{5}`, 0, src)
				assert.NoError(t, err)
				assert.Regexp(t, `^[a-z]{5}$`, s)
				assert.Regexp(t, `^[a-z]{5}$`, p.Generate())
			}
		}()
	}
	wg.Wait()
}

func TestCase(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want string
	}{
		{name: "lower", c: Lower, want: "abc1"},
		{name: "upper", c: Upper, want: "ABC1"},
		{name: "none", c: None, want: "aBc1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.ApplyCase("aBc1"))

			out, err := yaml.Marshal(tt.c)
			require.NoError(t, err)
			var back Case
			require.NoError(t, yaml.Unmarshal(out, &back))
			assert.Equal(t, tt.c, back)
		})
	}

	var c Case
	assert.Error(t, yaml.Unmarshal([]byte("title"), &c))
}
