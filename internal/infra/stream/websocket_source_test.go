package stream

import (
	"testing"

	"macts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame_BareToken(t *testing.T) {
	read, err := decodeFrame(entity.VenueAttendance, []byte("03AB7F21\r\n"))
	require.NoError(t, err)

	assert.Equal(t, entity.VenueAttendance, read.Venue)
	assert.Equal(t, "03AB7F21", read.RawToken)
	assert.Nil(t, read.ExcessiveTap)
	assert.Empty(t, read.TapStatus)
	assert.False(t, read.ReceivedAt.IsZero())
}

func TestDecodeFrame_BareTokenKeepsCase(t *testing.T) {
	read, err := decodeFrame(entity.VenueGym, []byte("03ab7f21"))
	require.NoError(t, err)
	assert.Equal(t, "03ab7f21", read.RawToken)
}

func TestDecodeFrame_LibraryJSON(t *testing.T) {
	frame := []byte(`{"tagData":"03AB7F21","excessiveTap":true,"tapStatus":"IN"}`)

	read, err := decodeFrame(entity.VenueLibrary, frame)
	require.NoError(t, err)

	assert.Equal(t, "03AB7F21", read.RawToken)
	require.NotNil(t, read.ExcessiveTap)
	assert.True(t, *read.ExcessiveTap)
	assert.Equal(t, entity.TapStatusIn, read.TapStatus)
}

func TestDecodeFrame_LibraryJSONWithoutFlag(t *testing.T) {
	frame := []byte(`{"tagData":"03AB7F21","tapStatus":"OUT"}`)

	read, err := decodeFrame(entity.VenueLibrary, frame)
	require.NoError(t, err)

	assert.Equal(t, "03AB7F21", read.RawToken)
	assert.Nil(t, read.ExcessiveTap)
	assert.Equal(t, entity.TapStatusOut, read.TapStatus)
}

func TestDecodeFrame_LibraryMalformed(t *testing.T) {
	_, err := decodeFrame(entity.VenueLibrary, []byte("03AB7F21"))
	assert.Error(t, err)
}
