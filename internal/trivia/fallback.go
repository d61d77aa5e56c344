package trivia

import (
	"context"
	"math/rand"

	"github.com/kingrea/riseshine/internal/i18n"
)

// fallbackBank holds locally playable riddles per language, used when the
// remote provider is unavailable or unauthenticated.
var fallbackBank = map[i18n.Language][]Question{
	i18n.LangEN: {
		{
			Question: "I speak without a mouth and hear without ears. I have no body, but I come alive with wind. What am I?",
			Options:  []string{"An Echo", "A Ghost", "A Cloud", "A Bat"},
			Answer:   "An Echo",
		},
		{
			Question: "What has to be broken before you can use it?",
			Options:  []string{"A Promise", "An Egg", "A Window", "A Record"},
			Answer:   "An Egg",
		},
		{
			Question: "The more of this there is, the less you see. What is it?",
			Options:  []string{"Fog", "Darkness", "Rain", "Smoke"},
			Answer:   "Darkness",
		},
		{
			Question: "What gets wet while drying?",
			Options:  []string{"A Sponge", "A Towel", "Soap", "An Umbrella"},
			Answer:   "A Towel",
		},
	},
	i18n.LangZH: {
		{
			Question: "千条线，万条线，掉到水里看不见。是什么？",
			Options:  []string{"雨", "头发", "针", "鱼线"},
			Answer:   "雨",
		},
		{
			Question: "什么东西越洗越脏？",
			Options:  []string{"水", "衣服", "碗", "手"},
			Answer:   "水",
		},
		{
			Question: "什么门永远关不上？",
			Options:  []string{"球门", "城门", "家门", "大门"},
			Answer:   "球门",
		},
	},
}

// Fallback returns one riddle from the built-in bank for the language,
// defaulting to the English bank for unknown languages.
func Fallback(rng *rand.Rand, lang i18n.Language) Question {
	bank, ok := fallbackBank[lang]
	if !ok || len(bank) == 0 {
		bank = fallbackBank[i18n.LangEN]
	}
	if rng == nil {
		return bank[0]
	}
	return bank[rng.Intn(len(bank))]
}

type fallbackProvider struct {
	inner Provider
	rng   *rand.Rand
}

// WithFallback wraps a provider so that any fetch error degrades to the
// local bank instead of surfacing. The riddle session only fails on a
// wrong answer, never on provider unavailability.
func WithFallback(inner Provider, rng *rand.Rand) Provider {
	return &fallbackProvider{inner: inner, rng: rng}
}

func (p *fallbackProvider) Fetch(ctx context.Context, lang i18n.Language) (Question, error) {
	if p.inner != nil {
		if q, err := p.inner.Fetch(ctx, lang); err == nil {
			return q, nil
		}
	}
	return Fallback(p.rng, lang), nil
}
