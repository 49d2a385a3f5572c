package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if U16LE([]byte{0xAA}) != 0 {
		t.Fatalf("U16LE short should be 0")
	}

	out := make([]byte, 2)
	PutU16LE(out, 0x2000)
	if out[0] != 0x00 || out[1] != 0x20 {
		t.Fatalf("PutU16LE wrote % x, want 00 20", out)
	}
	PutU16LE(out[:1], 0xFFFF)
	if out[0] != 0x00 {
		t.Fatalf("PutU16LE on short slice should not write")
	}
}

func TestHexU16(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
		ok   bool
	}{
		{"01F4", 0x01F4, true},
		{"01f4", 0x01F4, true},
		{"FFFF", 0xFFFF, true},
		{"0000", 0, true},
		{"01F", 0, false},
		{"01F45", 0, false},
		{"01G4", 0, false},
		{" 1F4", 0, false},
	}
	for _, tt := range tests {
		got, ok := HexU16([]byte(tt.in))
		if ok != tt.ok || got != tt.want {
			t.Errorf("HexU16(%q) = 0x%x,%v want 0x%x,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPutHexU16(t *testing.T) {
	out := make([]byte, 4)
	PutHexU16(out, 0x01F4)
	if string(out) != "01F4" {
		t.Fatalf("PutHexU16 = %q, want 01F4", out)
	}
	v, ok := HexU16(out)
	if !ok || v != 0x01F4 {
		t.Fatalf("HexU16 of PutHexU16 output = 0x%x,%v", v, ok)
	}
}
