// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import (
	"encoding/binary"
	"errors"
	"testing"
)

func wordsToBytes(words []uint32, order binary.ByteOrder) []byte {
	data := make([]byte, len(words)*4)
	for i, w := range words {
		order.PutUint32(data[i*4:], w)
	}
	return data
}

func TestModuleFromBytes(t *testing.T) {
	words := []uint32{spirvMagic, 0x00010000, 0, 5, 0}

	t.Run("host order", func(t *testing.T) {
		m, err := ModuleFromBytes(wordsToBytes(words, binary.LittleEndian))
		if err != nil {
			t.Fatalf("ModuleFromBytes() error = %v", err)
		}
		got := m.Words()
		if len(got) != len(words) {
			t.Fatalf("Words() length = %d, want %d", len(got), len(words))
		}
		for i := range words {
			if got[i] != words[i] {
				t.Errorf("Words()[%d] = %#x, want %#x", i, got[i], words[i])
			}
		}
	})

	t.Run("swapped order", func(t *testing.T) {
		m, err := ModuleFromBytes(wordsToBytes(words, binary.BigEndian))
		if err != nil {
			t.Fatalf("ModuleFromBytes() error = %v", err)
		}
		got := m.Words()
		if got[0] != spirvMagic {
			t.Errorf("Words()[0] = %#x, want magic %#x", got[0], uint32(spirvMagic))
		}
		if got[3] != 5 {
			t.Errorf("Words()[3] = %d, want 5 after byte swap", got[3])
		}
	})
}

func TestModuleFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated word", wordsToBytes([]uint32{spirvMagic}, binary.LittleEndian)[:3]},
		{"bad magic", wordsToBytes([]uint32{0xdeadbeef, 0x00010000}, binary.LittleEndian)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ModuleFromBytes(tt.data)
			if !errors.Is(err, &Error{Kind: ErrInvalidSPIRV}) {
				t.Errorf("ModuleFromBytes() error = %v, want ErrInvalidSPIRV", err)
			}
		})
	}
}

func TestModuleFromWords(t *testing.T) {
	words := []uint32{spirvMagic, 0x00010000}
	m := ModuleFromWords(words)

	got := m.Words()
	if len(got) != 2 || got[0] != spirvMagic {
		t.Fatalf("Words() = %v, want %v", got, words)
	}

	// The slice is shared, not copied.
	words[1] = 0x00010600
	if m.Words()[1] != 0x00010600 {
		t.Error("Words() should share the caller's backing array")
	}
}

func TestSwapWord(t *testing.T) {
	if got := swapWord(spirvMagicSwapped); got != spirvMagic {
		t.Errorf("swapWord(%#x) = %#x, want %#x", uint32(spirvMagicSwapped), got, uint32(spirvMagic))
	}
	if got := swapWord(0x12345678); got != 0x78563412 {
		t.Errorf("swapWord(0x12345678) = %#x, want 0x78563412", got)
	}
}
