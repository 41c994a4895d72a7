package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatID(t *testing.T) {
	assert.Equal(t, "STU001", FormatID(PrefixStudent, 1))
	assert.Equal(t, "STU006", FormatID(PrefixStudent, 6))
	assert.Equal(t, "GRA042", FormatID(PrefixGrade, 42))
	assert.Equal(t, "ATT999", FormatID(PrefixAttendance, 999))
	// Padding stops at three digits; numbering keeps growing past it.
	assert.Equal(t, "TEA1000", FormatID(PrefixTeacher, 1000))
}

func TestParseID(t *testing.T) {
	n, err := ParseID(PrefixStudent, "STU005")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = ParseID(PrefixStudent, "STU1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), n)

	_, err = ParseID(PrefixStudent, "TEA001")
	assert.Error(t, err)

	_, err = ParseID(PrefixStudent, "STUxyz")
	assert.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, prefix := range []string{PrefixTeacher, PrefixStudent, PrefixSubject, PrefixGrade, PrefixAttendance} {
		n, err := ParseID(prefix, FormatID(prefix, 7))
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	}
}
