package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseCommand_ShouldSplitCommandAndArg(t *testing.T) {
	cmd, arg := parseCommand("/expense Food 25 groceries")
	assert.Equal(t, "/expense", cmd)
	assert.Equal(t, "Food 25 groceries", arg)

	cmd, arg = parseCommand("/lock")
	assert.Equal(t, "/lock", cmd)
	assert.Equal(t, "", arg)

	cmd, arg = parseCommand("hello there")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "hello there", arg)
}

func Test_OnParseIndex_ShouldTranslateOneBasedInput(t *testing.T) {
	index, ok := parseIndex(" 3 ")
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	_, ok = parseIndex("0")
	assert.False(t, ok)
	_, ok = parseIndex("first")
	assert.False(t, ok)
}

func Test_OnParseEditArgs_ShouldJoinMiddleWordsAsName(t *testing.T) {
	index, name, amount, ok := parseEditArgs("2 monthly rent payment 1250.50")
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, "monthly rent payment", name)
	assert.Equal(t, 1250.50, amount)

	_, _, _, ok = parseEditArgs("2 1250")
	assert.False(t, ok)
	_, _, _, ok = parseEditArgs("two rent 1250")
	assert.False(t, ok)
	_, _, _, ok = parseEditArgs("2 rent lots")
	assert.False(t, ok)
}
