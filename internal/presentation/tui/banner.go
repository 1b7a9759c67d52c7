package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the pourbaix banner with a water-to-rust
// gradient.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                        _           _      `, "#38bdf8"},
		{`  _ __   ___  _   _ _ _| |__  __ _(_)_  __`, "#22d3ee"},
		{` | '_ \ / _ \| | | | '__| '_ \/ _' | \ \/ /`, "#2dd4bf"},
		{` | |_) | (_) | |_| | |  | |_) | (_| | |>  < `, "#fb923c"},
		{` | .__/ \___/ \__,_|_|  |_.__/\__,_|_/_/\_\`, "#f87171"},
		{` |_|                                       `, "#ef4444"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
