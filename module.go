// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import "encoding/binary"

// spirvMagic is the SPIR-V magic number in the module's first word.
const spirvMagic = 0x07230203

// spirvMagicSwapped is the magic as seen when the module was produced
// on a machine with the opposite byte order.
const spirvMagicSwapped = 0x03022307

// Module is a SPIR-V module represented as 32-bit words, ready to be
// handed to the native parser.
type Module struct {
	words []uint32
}

// ModuleFromWords wraps SPIR-V words without copying. The words are
// not validated; the native parser reports malformed modules.
func ModuleFromWords(words []uint32) Module {
	return Module{words: words}
}

// ModuleFromBytes decodes a SPIR-V binary, as read from a .spv file,
// into words. The byte length must be a multiple of four and the
// module must start with the SPIR-V magic number. Modules stored in
// the opposite byte order are swapped to host order, which the native
// parser requires.
func ModuleFromBytes(data []byte) (Module, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		return Module{}, &Error{Kind: ErrInvalidSPIRV, Message: "module size is not a multiple of 4 bytes"}
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	switch words[0] {
	case spirvMagic:
	case spirvMagicSwapped:
		for i, w := range words {
			words[i] = swapWord(w)
		}
	default:
		return Module{}, &Error{Kind: ErrInvalidSPIRV, Message: "missing SPIR-V magic number"}
	}

	return Module{words: words}, nil
}

// Words returns the module's words. The slice is shared, not copied.
func (m Module) Words() []uint32 {
	return m.words
}

func swapWord(w uint32) uint32 {
	return w<<24 | w>>24 | (w&0x00ff0000)>>8 | (w&0x0000ff00)<<8
}
