package eventcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryIDRoundTrip(t *testing.T) {
	id, err := ParseEntryID("1700000000123456-7")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123456), id.Micros)
	assert.Equal(t, uint64(7), id.Seq)
	assert.Equal(t, "1700000000123456-7", id.String())
}

func TestParseEntryIDMalformed(t *testing.T) {
	_, err := ParseEntryID("not-an-id-at-all")
	assert.Error(t, err)

	_, err = ParseEntryID("no-separator-missing")
	assert.Error(t, err)

	_, err = ParseEntryID("nodash")
	assert.Error(t, err)
}

func TestEntryIDLess(t *testing.T) {
	a := EntryID{Micros: 100, Seq: 0}
	b := EntryID{Micros: 100, Seq: 1}
	c := EntryID{Micros: 101, Seq: 0}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(a))
}

func TestEntryIDSeconds(t *testing.T) {
	id := EntryID{Micros: 1700000000123456, Seq: 0}
	assert.InDelta(t, 1700000000.123456, id.Seconds(), 1e-9)
}

func TestEntryIDSecondsSeqIsSubMicrosecond(t *testing.T) {
	a := EntryID{Micros: 1700000000000000, Seq: 0}
	b := EntryID{Micros: 1700000000000000, Seq: 1}
	assert.Less(t, a.Seconds(), b.Seconds())
	assert.InDelta(t, a.Seconds(), b.Seconds(), 1e-9)
}

func TestDecodeEntry(t *testing.T) {
	fields := map[string]interface{}{
		FieldEventID: "evt-1",
		FieldAction:  "entity_created",
		FieldData:    "{\"k\":1}",
	}
	e, err := DecodeEntry("1700000000000000-0", fields)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", e.EventID)
	assert.Equal(t, "entity_created", e.Action)
	assert.Equal(t, "{\"k\":1}", string(e.Data))
}

func TestDecodeEntryMissingFields(t *testing.T) {
	e, err := DecodeEntry("1-0", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "", e.EventID)
	assert.Equal(t, "", e.Action)
	assert.Equal(t, []byte(""), e.Data)
}

func TestFields(t *testing.T) {
	f := Fields("evt-1", "x", []byte("D"))
	assert.Equal(t, "evt-1", f[FieldEventID])
	assert.Equal(t, "x", f[FieldAction])
	assert.Equal(t, "D", f[FieldData])
}
