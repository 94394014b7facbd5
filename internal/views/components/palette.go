package components

import "image/color"

var (
	PageBackground    = color.NRGBA{R: 0xf7, G: 0xf9, B: 0xfc, A: 0xff}
	HeaderBackground  = color.NRGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}
	WeekdayBackground = color.NRGBA{R: 0xdf, G: 0xe7, B: 0xf2, A: 0xff}
	WeekdayForeground = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	CellBackground    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	CellBorder        = color.NRGBA{R: 0xc8, G: 0xd0, B: 0xdc, A: 0xff}
	TodayHighlight    = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	EventHighlight    = color.NRGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
)
