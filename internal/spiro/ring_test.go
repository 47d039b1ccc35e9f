package spiro_test

import (
	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spirosim/internal/spiro"
)

var _ = Describe("Trail ring", func() {
	var trail *spiro.Trail

	BeforeEach(func() {
		var err error
		trail, err = spiro.NewTrail(5)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts empty with the cursor at slot 0", func() {
		_, count := trail.Snapshot()
		Expect(count).To(BeZero())
		Expect(trail.Cursor()).To(BeZero())
	})

	It("grows to capacity and stays there", func() {
		for i := 0; i < 12; i++ {
			trail.Push(spiro.Point{X: float64(i)})
			Expect(trail.Len()).To(Equal(min(i+1, 5)))
			Expect(trail.Cursor()).To(Equal((i + 1) % 5))
		}
	})

	It("keeps the newest vertex coloured as age 0", func() {
		Expect(trail.SetColorMode(spiro.Fade(spiro.RGB(1, 0, 0)))).To(Succeed())
		for i := 0; i < 8; i++ {
			trail.Push(spiro.Point{X: float64(i)})
			newest := trail.Vertices()[0]
			Expect(newest.X).To(BeNumerically("==", i))
			Expect(newest.Color()).To(Equal(spiro.RGB(1, 0, 0)))
		}
	})

	It("orders vertices by age", func() {
		for i := 0; i < 8; i++ {
			trail.Push(spiro.Point{X: float64(i)})
		}
		xs := []float32{}
		for _, v := range trail.Vertices() {
			xs = append(xs, v.X)
		}
		Expect(xs).To(Equal([]float32{7, 6, 5, 4, 3}))
	})

	It("returns to the initial state on Clear", func() {
		trail.Push(spiro.Point{X: 1})
		trail.Push(spiro.Point{X: 2})
		trail.Clear()
		Expect(trail.Len()).To(BeZero())
		Expect(trail.Cursor()).To(BeZero())
	})

	It("rejects a bad gradient without touching the table", func() {
		before := trail.ColorAt(3)
		err := trail.SetColorMode(spiro.Gradient{
			Stops:  []colorful.Color{spiro.RGB(1, 0, 0), spiro.RGB(0, 1, 0), spiro.RGB(0, 0, 1)},
			Ratios: []float64{1.0, -0.5},
		})
		Expect(err).To(MatchError(spiro.ErrInvalidParameter))
		Expect(trail.ColorAt(3)).To(Equal(before))
	})
})
