package demo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectFaultPanicsWithDivideByZero(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "InjectFault must panic")

		err, ok := r.(runtime.Error)
		require.True(t, ok, "panic value must be a runtime error, got %T", r)
		assert.Contains(t, err.Error(), "divide by zero")
	}()

	InjectFault()
}
