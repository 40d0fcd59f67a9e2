package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestDefine(t *testing.T) {
	env := calc.NewEnv()
	require.NoError(t, define(env, "x=2*3"))
	require.NoError(t, define(env, " y = x+1 "))
	assert.Equal(t, []string{"x", "y"}, env.Names())
	v, _ := env.Lookup("y")
	assert.Equal(t, 7.0, v)

	cases := []struct {
		name string
		def  string
		err  error
	}{
		{"no-eq", "x", nil},
		{"chained", "a=b=3", calc.ErrInvalidToken},
		{"undefined", "a=q", calc.ErrInvalidToken},
		{"div-zero", "a=1/0", calc.ErrDivisionByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := calc.NewEnv()
			err := define(env, c.def)
			require.Error(t, err)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
			}
			assert.Zero(t, env.Len())
		})
	}
}
