package parse_test

import (
	"testing"

	"github.com/almasriprojects/BankAPI/cmd/parse"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandMetadata(t *testing.T) {
	assert.Contains(t, parse.Cmd.Use, "parse")
	assert.NotEmpty(t, parse.Cmd.Short)
	assert.NotNil(t, parse.Cmd.RunE)
}

func TestParseCommandFlags(t *testing.T) {
	flag := parse.Cmd.Flags().Lookup("csv")
	assert.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}
