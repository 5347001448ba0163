package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChain(t *testing.T) {
	offsets, err := parseChain("0x10,0x44")
	require.NoError(t, err)
	require.Equal(t, []int64{0x10, 0x44}, offsets)

	offsets, err = parseChain(" 16 , -0x20 , 0 ")
	require.NoError(t, err)
	require.Equal(t, []int64{16, -0x20, 0}, offsets)

	_, err = parseChain("")
	require.Error(t, err)

	_, err = parseChain("0x10,nope")
	require.Error(t, err)
}
