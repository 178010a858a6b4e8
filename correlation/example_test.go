package correlation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twopoint/correlation"
	"github.com/katalvlaran/twopoint/pairs"
)

// ExampleTwoPoint correlates five consecutive points on a periodic line of
// length 10. With 5 points the expected count in each bin of width 1 is
// 5·2·5/10 = 5 ordered pairs; the line holds 8 at separation 1 and 6 at 2.
func ExampleTwoPoint() {
	line := pairs.Points{{0}, {1}, {2}, {3}, {4}}

	opts := correlation.DefaultOptions()
	opts.Period = pairs.Period{10}

	res, err := correlation.TwoPoint(line, []float64{0.5, 1.5, 2.5}, nil, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("auto:", res.Auto)
	fmt.Printf("xi: %.2f\n", res.XI11)
	// Output:
	// auto: true
	// xi: [0.60 0.20]
}

// ExampleTwoPoint_noRandoms shows that an open domain needs a random catalog.
func ExampleTwoPoint_noRandoms() {
	_, err := correlation.TwoPoint(pairs.Points{{1, 2, 3}}, []float64{1, 2}, nil, correlation.DefaultOptions())
	fmt.Println(errors.Is(err, correlation.ErrNoRandoms))
	// Output:
	// true
}
