package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBuffer(t *testing.T) {
	tests := []struct {
		value        uint16
		wantReserved uint16
		wantErr      bool
	}{
		{value: 0x0000},
		{value: 0x01F4},
		{value: 0x2000},
		{value: 0xFFF9},
		{value: 0xFFFA, wantReserved: 5, wantErr: true},
		{value: 0xFFFC, wantReserved: 3, wantErr: true},
		{value: 0xFFFF, wantReserved: 0, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ValidateBuffer(tt.value, 132)
		if !tt.wantErr {
			require.NoError(t, err, "value 0x%04X", tt.value)
			assert.Equal(t, tt.value, got)
			continue
		}
		require.ErrorIs(t, err, ErrUnsupportedReservedValue, "value 0x%04X", tt.value)

		var rv *ReservedValueError
		require.ErrorAs(t, err, &rv)
		assert.Equal(t, tt.value, rv.Value)
		assert.Equal(t, tt.wantReserved, rv.Reserved)
		assert.Equal(t, int64(132), rv.Offset)
		assert.Contains(t, err.Error(), "reserved combination")
	}
}
