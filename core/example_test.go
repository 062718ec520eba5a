package core_test

import (
	"fmt"

	"github.com/katalvlaran/inkstep/core"
)

// timed builds a horizontal stroke of length 100 at height y: 11 points
// dt milliseconds apart starting at t0.
func timed(t0, dt uint64, y float64) *core.Stroke {
	pts := make([]core.Point, 11)
	for i := range pts {
		pts[i] = core.Point{Time: t0 + uint64(i)*dt, X: float64(i * 10), Y: y}
	}

	return core.NewStroke(pts)
}

// ExampleSheet_Stats computes the timing statistics of a two-stroke answer.
func ExampleSheet_Stats() {
	// Two strokes of length 100, written in 500ms and 200ms, 500ms apart.
	s := core.NewSheet(0, "demo", []*core.Stroke{
		timed(0, 50, 0),
		timed(1000, 20, 50),
	})

	st, err := s.Stats()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("answer=%dms writing=%dms ratio=%.3f\n", st.AnswerTime, st.WritingTime, st.WritingRatio)
	fmt.Printf("speed mean=%.2f var=%.4f over %d strokes\n", st.SpeedMean, st.SpeedVar, st.SpeedSamples)

	// Output:
	// answer=1200ms writing=700ms ratio=0.583
	// speed mean=0.35 var=0.0225 over 2 strokes
}

// ExampleStep_Join overlays a second step on the first, starting at the
// first step's left edge with the vertical centers aligned.
func ExampleStep_Join() {
	a := core.NewStep(0, []*core.Stroke{line(0, 0, 0, 40, 20, 3)})
	b := core.NewStep(1, []*core.Stroke{line(100, 500, 500, 510, 510, 3)})

	j := a.Join(b)
	r := j.Strokes[1].Bounds()
	fmt.Printf("joined stroke at (%.0f,%.0f)-(%.0f,%.0f)\n", r.Left, r.Top, r.Right, r.Bottom)
	r = j.Bounds()
	fmt.Printf("%d strokes, bounds (%.0f,%.0f)-(%.0f,%.0f)\n", len(j.Strokes), r.Left, r.Top, r.Right, r.Bottom)

	// Output:
	// joined stroke at (0,5)-(10,15)
	// 2 strokes, bounds (0,0)-(40,20)
}
