// Package present renders screen state as aligned, colored terminal text.
//
// Colors come from fatih/color and switch off by themselves when output is
// not a terminal or NO_COLOR is set.
package present
