// SPDX-License-Identifier: EPL-2.0

// Package utils contains small numeric helpers shared by the codec and the
// signal processing packages: PCM scaling, interpolation and evenly spaced
// ramps.
package utils
