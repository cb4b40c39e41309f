package loader_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lcsim/loader"
)

var _ = Describe("Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with a valid machine code file", func() {
			var path string

			BeforeEach(func() {
				path = filepath.Join(tempDir, "prog.mc")
				content := "8454151\n9043971\n\n  25165824  \n-1\n"
				Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
			})

			It("should load every word in order", func() {
				prog, err := loader.Load(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Words).To(Equal([]int32{
					8454151, 9043971, 25165824, -1,
				}))
			})
		})

		It("should fail on a missing file", func() {
			_, err := loader.Load(filepath.Join(tempDir, "missing.mc"))
			Expect(err).To(MatchError(ContainSubstring("failed to open")))
		})
	})

	Describe("Parse", func() {
		It("should name the line of a bad word", func() {
			_, err := loader.Parse(strings.NewReader("1\n2\nthree\n"))
			Expect(err).To(MatchError(ContainSubstring("line 3")))
		})

		It("should reject words wider than 32 bits", func() {
			_, err := loader.Parse(strings.NewReader("4294967296\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should accept an empty file", func() {
			prog, err := loader.Parse(strings.NewReader(""))
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(BeEmpty())
		})

		It("should reject a program larger than memory", func() {
			content := strings.Repeat("0\n", loader.MaxWords+1)
			_, err := loader.Parse(strings.NewReader(content))
			Expect(err).To(MatchError(ContainSubstring("exceeds")))
		})
	})
})
