// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spv

// Decoration is a SPIR-V decoration applied to an id or struct member.
type Decoration uint32

// Decorations, per the SPIR-V specification.
const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationGLSLShared           Decoration = 8
	DecorationGLSLPacked           Decoration = 9
	DecorationCPacked              Decoration = 10
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationSample               Decoration = 17
	DecorationInvariant            Decoration = 18
	DecorationRestrict             Decoration = 19
	DecorationAliased              Decoration = 20
	DecorationVolatile             Decoration = 21
	DecorationConstant             Decoration = 22
	DecorationCoherent             Decoration = 23
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationUniform              Decoration = 26
	DecorationUniformID            Decoration = 27
	DecorationSaturatedConversion  Decoration = 28
	DecorationStream               Decoration = 29
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationXfbBuffer            Decoration = 36
	DecorationXfbStride            Decoration = 37
	DecorationFuncParamAttr        Decoration = 38
	DecorationFPRoundingMode       Decoration = 39
	DecorationFPFastMathMode       Decoration = 40
	DecorationLinkageAttributes    Decoration = 41
	DecorationNoContraction        Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
	DecorationAlignment            Decoration = 44
	DecorationMaxByteOffset        Decoration = 45
	DecorationUserSemantic         Decoration = 5635
)

// HasArgument reports whether the decoration carries an operand,
// numeric or string; IsString tells the two apart. Decorations without
// an operand are flags; setting them uses literal 1 and reading them
// yields no meaningful value.
func (d Decoration) HasArgument() bool {
	switch d {
	case DecorationSpecID, DecorationArrayStride, DecorationMatrixStride,
		DecorationBuiltIn, DecorationStream, DecorationLocation,
		DecorationComponent, DecorationIndex, DecorationBinding,
		DecorationDescriptorSet, DecorationOffset, DecorationXfbBuffer,
		DecorationXfbStride, DecorationFuncParamAttr, DecorationFPRoundingMode,
		DecorationFPFastMathMode, DecorationInputAttachmentIndex,
		DecorationAlignment, DecorationMaxByteOffset, DecorationUniformID,
		DecorationUserSemantic:
		return true
	default:
		return false
	}
}

// IsString reports whether the decoration argument is a string literal
// rather than a number.
func (d Decoration) IsString() bool {
	switch d {
	case DecorationUserSemantic:
		return true
	default:
		return false
	}
}
