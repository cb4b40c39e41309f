package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lcsim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("R-format", func() {
		// add 1 2 3 -> 0x000A0003
		// Encoding: op=000, regA=001, regB=010, dest=011
		It("should decode add 1 2 3", func() {
			inst := decoder.Decode(0x000A0003)

			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.RegA).To(Equal(uint8(1)))
			Expect(inst.RegB).To(Equal(uint8(2)))
			Expect(inst.Dest).To(Equal(uint8(3)))
			Expect(inst.String()).To(Equal("add 1 2 3"))
		})

		// nand 7 6 5 -> 0x007E0005
		It("should decode nand 7 6 5", func() {
			inst := decoder.Decode(0x007E0005)

			Expect(inst.Op).To(Equal(insts.OpNAND))
			Expect(inst.RegA).To(Equal(uint8(7)))
			Expect(inst.RegB).To(Equal(uint8(6)))
			Expect(inst.Dest).To(Equal(uint8(5)))
		})
	})

	Describe("I-format", func() {
		// lw 0 1 5 -> 0x00810005
		It("should decode lw 0 1 5", func() {
			inst := decoder.Decode(0x00810005)

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.RegA).To(Equal(uint8(0)))
			Expect(inst.RegB).To(Equal(uint8(1)))
			Expect(inst.Offset).To(Equal(int16(5)))
		})

		// sw 2 3 -1 -> 0x00D3FFFF
		It("should sign-extend a negative offset", func() {
			inst := decoder.Decode(0x00D3FFFF)

			Expect(inst.Op).To(Equal(insts.OpSW))
			Expect(inst.RegA).To(Equal(uint8(2)))
			Expect(inst.RegB).To(Equal(uint8(3)))
			Expect(inst.Offset).To(Equal(int16(-1)))
			Expect(inst.String()).To(Equal("sw 2 3 -1"))
		})

		// beq 1 1 -32768 -> 0x01098000
		It("should decode the most negative branch offset", func() {
			inst := decoder.Decode(0x01098000)

			Expect(inst.Op).To(Equal(insts.OpBEQ))
			Expect(inst.Offset).To(Equal(int16(-32768)))
		})
	})

	Describe("O-format", func() {
		It("should decode halt", func() {
			inst := decoder.Decode(25165824) // 6 << 22

			Expect(inst.Op).To(Equal(insts.OpHALT))
			Expect(inst.Format).To(Equal(insts.FormatO))
			Expect(inst.String()).To(Equal("halt"))
		})

		It("should decode noop and the unused opcode", func() {
			Expect(decoder.Decode(29360128).Op).To(Equal(insts.OpNOOP))
			Expect(decoder.Decode(20971520).Op).To(Equal(insts.OpUnused))
		})
	})

	It("should ignore bits above the opcode", func() {
		inst := decoder.Decode(int32(-0x80000000) | 0x000A0003)

		Expect(inst.Op).To(Equal(insts.OpADD))
		Expect(inst.Dest).To(Equal(uint8(3)))
	})

	DescribeTable("round trips through the encoders",
		func(word int32, op insts.Op) {
			Expect(decoder.Decode(word).Op).To(Equal(op))
		},
		Entry("add", insts.EncodeR(insts.OpADD, 1, 2, 3), insts.OpADD),
		Entry("nand", insts.EncodeR(insts.OpNAND, 4, 5, 6), insts.OpNAND),
		Entry("lw", insts.EncodeI(insts.OpLW, 0, 1, -7), insts.OpLW),
		Entry("sw", insts.EncodeI(insts.OpSW, 0, 1, 7), insts.OpSW),
		Entry("beq", insts.EncodeI(insts.OpBEQ, 0, 1, 0), insts.OpBEQ),
		Entry("halt", insts.EncodeO(insts.OpHALT), insts.OpHALT),
		Entry("noop", insts.EncodeO(insts.OpNOOP), insts.OpNOOP),
	)

	It("should keep a negative offset through EncodeI", func() {
		inst := decoder.Decode(insts.EncodeI(insts.OpBEQ, 3, 4, -3))
		Expect(inst.RegA).To(Equal(uint8(3)))
		Expect(inst.RegB).To(Equal(uint8(4)))
		Expect(inst.Offset).To(Equal(int16(-3)))
	})
})
