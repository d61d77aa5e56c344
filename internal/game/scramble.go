package game

import (
	"math/rand"
	"strings"

	"github.com/kingrea/riseshine/internal/i18n"
)

var scrambleWordsEN = []string{
	"MORNING", "SUNRISE", "COFFEE", "STRETCH", "SHOWER",
	"BREAKFAST", "AWAKE", "ENERGY", "ALARM", "ROUTINE",
	"FRESH", "BRIGHT", "EARLY", "SHINE", "START",
	"PANCAKE", "OMELET", "TOAST", "YOGURT", "FRUIT",
}

// Four-character idioms for the Chinese bank.
var scrambleWordsZH = []string{
	"早睡早起", "精神焕发", "闻鸡起舞", "旭日东升", "一日之计",
	"生机勃勃", "神清气爽", "阳光明媚", "朝气蓬勃", "元气满满",
}

const (
	scrambleWordCount   = 3
	scrambleTimeLimit   = 60
	scrambleMaxAttempts = 10
)

// WordBank returns the unscramble source words for a language.
func WordBank(lang i18n.Language) []string {
	src := scrambleWordsEN
	if lang == i18n.LangZH {
		src = scrambleWordsZH
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ScrambleWord produces a random permutation of word's characters,
// reshuffling up to ten times to differ from the original. If every
// attempt coincides (only possible for words whose permutations are all
// identical, or through extreme luck) the matching permutation is
// accepted rather than looping forever.
func ScrambleWord(rng *rand.Rand, word string) string {
	runes := []rune(word)
	shuffle := func() string {
		rng.Shuffle(len(runes), func(i, j int) {
			runes[i], runes[j] = runes[j], runes[i]
		})
		return string(runes)
	}
	scrambled := shuffle()
	for attempts := 0; scrambled == word && attempts < scrambleMaxAttempts; attempts++ {
		scrambled = shuffle()
	}
	return scrambled
}

// ScrambleEngine runs the word-unscramble challenge: three distinct words
// drawn from the language bank, one shared 60-second budget.
type ScrambleEngine struct {
	outcome
	rng       *rand.Rand
	lang      i18n.Language
	words     []string
	index     int
	scrambled string
	timeLeft  int
}

// NewScramble draws the session's words (shuffled bank, first three,
// no replacement) and scrambles the first.
func NewScramble(rng *rand.Rand, lang i18n.Language) *ScrambleEngine {
	bank := WordBank(lang)
	rng.Shuffle(len(bank), func(i, j int) {
		bank[i], bank[j] = bank[j], bank[i]
	})
	e := &ScrambleEngine{
		rng:      rng,
		lang:     lang,
		words:    bank[:scrambleWordCount],
		timeLeft: scrambleTimeLimit,
	}
	e.scrambled = ScrambleWord(rng, e.words[0])
	return e
}

// WordNumber returns the 1-based index of the current word.
func (e *ScrambleEngine) WordNumber() int { return e.index + 1 }

// Total returns how many words the session requires.
func (e *ScrambleEngine) Total() int { return scrambleWordCount }

// Scrambled returns the current scrambled form.
func (e *ScrambleEngine) Scrambled() string { return e.scrambled }

// TimeLeft returns the remaining whole seconds.
func (e *ScrambleEngine) TimeLeft() int { return e.timeLeft }

func (e *ScrambleEngine) normalize(input string) string {
	input = strings.TrimSpace(input)
	if e.lang == i18n.LangZH {
		return input
	}
	return strings.ToUpper(input)
}

// Submit checks the input against the current word after normalization
// (trimmed; case-folded for alphabetic scripts). A correct match
// advances or completes; a wrong one returns false so the view can flash
// an error — the shared countdown is the only penalty.
func (e *ScrambleEngine) Submit(input string) bool {
	if e.done() {
		return false
	}
	if e.normalize(input) != e.words[e.index] {
		return false
	}
	if e.index+1 >= scrambleWordCount {
		e.finish(Complete)
		return true
	}
	e.index++
	e.scrambled = ScrambleWord(e.rng, e.words[e.index])
	return true
}

// Tick advances the countdown and fails the session at zero.
func (e *ScrambleEngine) Tick() {
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
