// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"fmt"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
)

func ExampleEcho() {
	in := audio.NewMono(8000, []float32{1, 0.5})

	out := effects.Echo(in, 1, 0.5)
	fmt.Println(out.Data)
	// Output: [1 1 0.25]
}

func ExampleReverseSegments() {
	in := audio.NewMono(8000, []float32{1, 2, 3, 4, 5})

	fmt.Println(effects.ReverseSegments(in, 2).Data)
	// Output: [2 1 4 3 5]
}

func ExampleDoppler() {
	in := audio.NewMono(8000, []float32{0, 1, 2, 3})

	fmt.Println(effects.Doppler(in, 1).Data)
	// Output: [0 3]
}

func ExamplePanToSurround() {
	in := audio.NewMono(8000, []float32{1})

	out := effects.PanToSurround(in, []float64{-1, 0.5})
	fmt.Println(out.Channels, out.Data)
	// Output: 2 [0 0.5]
}
