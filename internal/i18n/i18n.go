// Package i18n maps typed string keys to per-language text.
//
// Lookup follows a fixed three-level fallback: requested language, then
// English, then the key itself rendered literally. Parameters appear in
// the text as {name} placeholders.
package i18n

import (
	"fmt"
	"strings"
)

// Language identifies a display language.
type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

// Languages returns every supported language in toggle order.
func Languages() []Language {
	return []Language{LangEN, LangZH}
}

// Key names one translatable string. Game variant tags double as keys for
// their display labels.
type Key string

const (
	KeyAppTitle       Key = "appTitle"
	KeyGoodMorning    Key = "goodMorning"
	KeyWokeUpAt       Key = "wokeUpAt"
	KeyGoalMet        Key = "goalMet"
	KeyTodaysGame     Key = "todaysChallenge"
	KeyCancelWakeUp   Key = "cancelWakeUp"
	KeyReadyToStart   Key = "readyToStart"
	KeyReadySubtitle  Key = "readySubtitle"
	KeyImAwake        Key = "imAwake"
	KeyTotalDays      Key = "totalDays"
	KeyStreak         Key = "streak"
	KeyDailyGoal      Key = "dailyGoal"
	KeyEdit           Key = "edit"
	KeyWakeUpTrends   Key = "wakeUpTrends"
	KeyTime           Key = "time"
	KeyNoHistory      Key = "noHistory"
	KeyStillDreaming  Key = "stillDreaming"
	KeyFailedCheck    Key = "failedCheck"
	KeyTryAgain       Key = "tryAgain"
	KeyGiveUp         Key = "giveUp"
	KeyMathTitle      Key = "mathTitle"
	KeyChooseLevel    Key = "chooseLevel"
	KeySolveToProve   Key = "solveToProve"
	KeyEasy           Key = "easy"
	KeyMedium         Key = "medium"
	KeyHard           Key = "hard"
	KeySubmit         Key = "submit"
	KeyMemoryTitle    Key = "memoryTitle"
	KeyLevel          Key = "level"
	KeyWatchCarefully Key = "watchCarefully"
	KeyYourTurn       Key = "yourTurn"
	KeyRiddleTitle    Key = "riddleTitle"
	KeyConsulting     Key = "consultingOracle"
	KeyColorTitle     Key = "colorTitle"
	KeyColorHint      Key = "colorInstruction"
	KeyScore          Key = "score"
	KeyScrambleTitle  Key = "scrambleTitle"
	KeyScrambleHint   Key = "scrambleInstruction"
	KeyWord           Key = "word"
	KeyTypeHere       Key = "typeHere"
)

var tables = map[Language]map[Key]string{
	LangEN: {
		KeyAppTitle:       "Rise & Shine",
		KeyGoodMorning:    "Good Morning!",
		KeyWokeUpAt:       "You woke up at",
		KeyGoalMet:        "Goal Met!",
		KeyTodaysGame:     "Today's Challenge",
		KeyCancelWakeUp:   "Cancel today's wake up",
		KeyReadyToStart:   "Ready to start the day?",
		KeyReadySubtitle:  "Complete a quick challenge to record your wake-up time.",
		KeyImAwake:        "I'm Awake!",
		KeyTotalDays:      "Total Days",
		KeyStreak:         "Streak",
		KeyDailyGoal:      "Daily Goal",
		KeyEdit:           "Edit",
		KeyWakeUpTrends:   "Wake Up Trends",
		KeyTime:           "Time",
		KeyNoHistory:      "No history recorded yet",
		KeyStillDreaming:  "You're still dreaming!",
		KeyFailedCheck:    "You failed the wake-up check. Try again to record your time.",
		KeyTryAgain:       "Try Again",
		KeyGiveUp:         "Give Up",
		"MATH":            "Math Challenge",
		"MEMORY":          "Memory Grid",
		"RIDDLE":          "Morning Riddle (AI)",
		"COLOR_MATCH":     "Color Chaos",
		"WORD_SCRAMBLE":   "Word Scramble",
		KeyMathTitle:      "Math Awake!",
		KeyChooseLevel:    "Choose your challenge level",
		KeySolveToProve:   "Solve {n} problems to prove you're up.",
		KeyEasy:           "Easy",
		KeyMedium:         "Medium",
		KeyHard:           "Hard",
		KeySubmit:         "Submit",
		KeyMemoryTitle:    "Memory Grid",
		KeyLevel:          "Level",
		KeyWatchCarefully: "Watch carefully...",
		KeyYourTurn:       "Your turn!",
		KeyRiddleTitle:    "Morning Riddle",
		KeyConsulting:     "Consulting the Oracle...",
		KeyColorTitle:     "Color Chaos",
		KeyColorHint:      "Pick the button matching the INK COLOR, not the word!",
		KeyScore:          "Score",
		KeyScrambleTitle:  "Unscramble",
		KeyScrambleHint:   "Unscramble the morning word.",
		KeyWord:           "Word",
		KeyTypeHere:       "TYPE HERE",
	},
	LangZH: {
		KeyAppTitle:       "早安唤醒",
		KeyGoodMorning:    "早上好！",
		KeyWokeUpAt:       "起床时间",
		KeyGoalMet:        "达成目标！",
		KeyTodaysGame:     "今日挑战",
		KeyCancelWakeUp:   "撤销今日起床记录",
		KeyReadyToStart:   "准备好开始新的一天了吗？",
		KeyReadySubtitle:  "完成一个小挑战来记录你的起床时间。",
		KeyImAwake:        "我醒了！",
		KeyTotalDays:      "总天数",
		KeyStreak:         "连续打卡",
		KeyDailyGoal:      "每日目标",
		KeyEdit:           "编辑",
		KeyWakeUpTrends:   "起床趋势",
		KeyTime:           "时间",
		KeyNoHistory:      "暂无记录",
		KeyStillDreaming:  "你还在做梦呢！",
		KeyFailedCheck:    "挑战失败，请重试以记录时间。",
		KeyTryAgain:       "重试",
		KeyGiveUp:         "放弃",
		"MATH":            "数学挑战",
		"MEMORY":          "记忆方格",
		"RIDDLE":          "晨间谜题 (AI)",
		"COLOR_MATCH":     "颜色大乱斗",
		"WORD_SCRAMBLE":   "文字重组",
		KeyMathTitle:      "数学唤醒",
		KeyChooseLevel:    "选择难度",
		KeySolveToProve:   "做对 {n} 道题证明你醒了。",
		KeyEasy:           "简单",
		KeyMedium:         "中等",
		KeyHard:           "困难",
		KeySubmit:         "提交",
		KeyMemoryTitle:    "记忆方格",
		KeyLevel:          "关卡",
		KeyWatchCarefully: "仔细看...",
		KeyYourTurn:       "到你了！",
		KeyRiddleTitle:    "晨间谜题",
		KeyConsulting:     "正在咨询先知...",
		KeyColorTitle:     "颜色大乱斗",
		KeyColorHint:      "选择与文字颜色（墨水颜色）相符的按钮，不要管文字内容！",
		KeyScore:          "得分",
		KeyScrambleTitle:  "文字重组",
		KeyScrambleHint:   "重组与早晨相关的词语。",
		KeyWord:           "单词",
		KeyTypeHere:       "输入答案",
	},
}

// Translator resolves keys against the active language.
type Translator struct {
	lang Language
}

// New creates a translator. Unknown languages fall back to English at
// lookup time rather than being rejected here.
func New(lang Language) *Translator {
	return &Translator{lang: lang}
}

// Language returns the active language.
func (t *Translator) Language() Language { return t.lang }

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang Language) { t.lang = lang }

// T resolves key in the active language, falling back to English and then
// to the literal key text. Params replace {name} placeholders.
func (t *Translator) T(key Key, params map[string]any) string {
	text, ok := tables[t.lang][key]
	if !ok {
		text, ok = tables[LangEN][key]
	}
	if !ok {
		text = string(key)
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprint(value))
	}
	return text
}
