package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lcsim/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should name every opcode", func() {
		Expect(insts.OpADD.String()).To(Equal("add"))
		Expect(insts.OpHALT.String()).To(Equal("halt"))
		Expect(insts.Op(9).String()).To(Equal("Op(9)"))
	})
})
