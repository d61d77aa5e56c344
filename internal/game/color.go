package game

import (
	"math/rand"

	"github.com/kingrea/riseshine/internal/i18n"
)

// PaletteColor is one named color: a stable ID, the ink hex used for
// rendering, and per-language display names.
type PaletteColor struct {
	ID    string
	Hex   string
	Names map[i18n.Language]string
}

// Name returns the color's display name in the given language, falling
// back to English.
func (c PaletteColor) Name(lang i18n.Language) string {
	if name, ok := c.Names[lang]; ok {
		return name
	}
	return c.Names[i18n.LangEN]
}

var colorPalette = []PaletteColor{
	{ID: "RED", Hex: "#ef4444", Names: map[i18n.Language]string{i18n.LangEN: "RED", i18n.LangZH: "红"}},
	{ID: "BLUE", Hex: "#3b82f6", Names: map[i18n.Language]string{i18n.LangEN: "BLUE", i18n.LangZH: "蓝"}},
	{ID: "GREEN", Hex: "#22c55e", Names: map[i18n.Language]string{i18n.LangEN: "GREEN", i18n.LangZH: "绿"}},
	{ID: "YELLOW", Hex: "#eab308", Names: map[i18n.Language]string{i18n.LangEN: "YELLOW", i18n.LangZH: "黄"}},
	{ID: "PURPLE", Hex: "#a855f7", Names: map[i18n.Language]string{i18n.LangEN: "PURPLE", i18n.LangZH: "紫"}},
	{ID: "ORANGE", Hex: "#f97316", Names: map[i18n.Language]string{i18n.LangEN: "ORANGE", i18n.LangZH: "橙"}},
}

// Palette returns the fixed color set.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(colorPalette))
	copy(out, colorPalette)
	return out
}

const (
	colorTimeLimit      = 20
	colorRequiredScore  = 5
	colorPenaltySeconds = 3
)

// ColorRound shows one color name (the distraction) rendered in the ink
// of an independently chosen palette entry (the answer).
type ColorRound struct {
	Word PaletteColor // whose name is displayed
	Ink  PaletteColor // whose ink colors the text; matching it is correct
}

// ColorEngine runs the color-word interference challenge.
type ColorEngine struct {
	outcome
	rng      *rand.Rand
	round    ColorRound
	score    int
	timeLeft int
}

// NewColor creates an engine with the first round generated and the
// 20-second countdown armed.
func NewColor(rng *rand.Rand) *ColorEngine {
	e := &ColorEngine{rng: rng, timeLeft: colorTimeLimit}
	e.nextRound()
	return e
}

func (e *ColorEngine) nextRound() {
	e.round = ColorRound{
		Ink:  colorPalette[e.rng.Intn(len(colorPalette))],
		Word: colorPalette[e.rng.Intn(len(colorPalette))],
	}
}

// Round returns the current round.
func (e *ColorEngine) Round() ColorRound { return e.round }

// Score returns correct selections so far.
func (e *ColorEngine) Score() int { return e.score }

// Required returns the pass threshold.
func (e *ColorEngine) Required() int { return colorRequiredScore }

// TimeLeft returns the remaining whole seconds.
func (e *ColorEngine) TimeLeft() int { return e.timeLeft }

// Choose selects a palette color by ID. Matching the ink color scores
// and regenerates the round; a wrong pick costs three seconds, floored
// at zero.
func (e *ColorEngine) Choose(id string) bool {
	if e.done() {
		return false
	}
	if id == e.round.Ink.ID {
		e.score++
		if e.score >= colorRequiredScore {
			e.finish(Complete)
		} else {
			e.nextRound()
		}
		return true
	}
	e.timeLeft -= colorPenaltySeconds
	if e.timeLeft < 0 {
		e.timeLeft = 0
	}
	return false
}

// Tick advances the countdown and fails the session at zero.
func (e *ColorEngine) Tick() {
	if e.done() {
		return
	}
	if e.timeLeft > 0 {
		e.timeLeft--
	}
	if e.timeLeft <= 0 {
		e.finish(Failed)
	}
}
