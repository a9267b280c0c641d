package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/shortrange"
)

func TestTrajectoryWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	tw := NewTrajectoryWriter(buf)

	ps := shortrange.Particles{{X: 0.5, Y: 0.25}, {X: 1, Y: 0}}
	require.NoError(t, tw.WriteFrame(ps, 1))
	ps[0].X, ps[1].Y = 0.125, 0.75
	require.NoError(t, tw.WriteFrame(ps, 1))
	require.NoError(t, tw.Flush())

	assert.Equal(t, 2, tw.Frames())
	assert.Equal(t, "2 1\n0.5 0.25\n1 0\n\n0.125 0.25\n1 0.75\n\n", buf.String())
}
