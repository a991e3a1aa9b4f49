package trace_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	k "github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/internal/trace"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexReader(t *testing.T) {
	input := strings.Join([]string{
		"# left shift + ka",
		"02 00 31 00 00 00 00 00",
		"",
		"0000330000000000   # ko",
		"00 00 zz 00 00 00 00 00",
		"00 00 31",
	}, "\n")

	r := trace.NewHexReader(strings.NewReader(input))

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, matrix.New(k.ModLeftShift, 0, 0x31), s)

	s, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, matrix.New(0, 0, 0x33), s)

	_, err = r.Next()
	require.ErrorIs(t, err, trace.ErrFrame)
	assert.Contains(t, err.Error(), "line 5")

	_, err = r.Next()
	require.ErrorIs(t, err, trace.ErrFrame)
	assert.Contains(t, err.Error(), "3 bytes")

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFrameReader(t *testing.T) {
	data := []byte{
		0x20, 0x00, 0x0b, 0, 0, 0, 0, 0,
		0x00, 0x01, 0x41, 0, 0, 0, 0, 0,
		0x00, 0x00,
	}
	r := trace.NewFrameReader(bytes.NewReader(data))

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, matrix.New(k.ModRightShift, 0, 11), s)

	s, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, matrix.New(0, matrix.ExtraLeftAltShift, 65), s)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = trace.NewFrameReader(bytes.NewReader(nil)).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCycleSourceRepeats(t *testing.T) {
	src := trace.NewCycleSource([]trace.Cycle{
		{Keys: []int{49}, Repeat: 2},
		{Keys: []int{50}},
	})

	var got []matrix.ScanReport
	for {
		s, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, s)
	}

	held := matrix.New(0, 0, 49)
	assert.Equal(t, []matrix.ScanReport{held, held, held, matrix.New(0, 0, 50)}, got)
}

func TestCycleSourceNegativeRepeatEnds(t *testing.T) {
	src := trace.NewCycleSource([]trace.Cycle{
		{Keys: []int{49}, Repeat: -3},
		{Keys: []int{50}},
	})

	_, err := src.Next()
	require.ErrorIs(t, err, trace.ErrRepeat)

	s, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, matrix.New(0, 0, 50), s)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}
