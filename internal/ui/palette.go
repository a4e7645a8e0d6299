package ui

import "github.com/gdamore/tcell/v2"

// Палитра: из именованного цвета спрайта в стиль терминала. Имена живут
// на шаблонах отрисовки, чтобы бестиарий не знал про tcell.
var palette = map[string]tcell.Style{
	"player":    tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	"salamango": tcell.StyleDefault.Foreground(tcell.ColorRed),
	"tree":      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	"grass":     tcell.StyleDefault.Foreground(tcell.ColorLightGreen),
	"dirt":      tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown),
	"floor":     tcell.StyleDefault.Foreground(tcell.ColorGray),
	"stairs":    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	"wood":      tcell.StyleDefault.Foreground(tcell.ColorSandyBrown),
	"decay0":    tcell.StyleDefault.Foreground(tcell.ColorSilver),
	"decay1":    tcell.StyleDefault.Foreground(tcell.ColorGray),
	"decay2":    tcell.StyleDefault.Foreground(tcell.ColorDimGray),
	"decay3":    tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
	"default":   tcell.StyleDefault,
}

func styleFor(color string) tcell.Style {
	if style, ok := palette[color]; ok {
		return style
	}
	return tcell.StyleDefault
}
