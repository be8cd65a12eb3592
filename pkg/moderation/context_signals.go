package moderation

import (
	"regexp"
	"strings"
)

// Typed context-signal structs. Each scoring category reads a struct of named
// booleans rather than a bag of string lookups; the structs double as the
// explanation a human reviewer sees, so every field must be populated.

type SelfHarmContext struct {
	HasCrisisLanguage bool `json:"has_crisis_language"`
	HasIntentLanguage bool `json:"has_intent_language"`
	IsThirdPerson     bool `json:"is_third_person"`
	IsPastTense       bool `json:"is_past_tense"`
}

type SexualContentContext struct {
	IsEducational          bool `json:"is_educational"`
	IsSupportSeeking       bool `json:"is_support_seeking"`
	IsFictional            bool `json:"is_fictional"`
	HasExplicitDescriptors bool `json:"has_explicit_descriptors"`
}

type HarmOthersContext struct {
	IsHypothetical    bool `json:"is_hypothetical"`
	IsFantasy         bool `json:"is_fantasy"`
	IsMediaReference  bool `json:"is_media_reference"`
	HasExplicitThreat bool `json:"has_explicit_threat"`
}

type AbusiveLanguageContext struct {
	IsEmotionalExpression bool `json:"is_emotional_expression"`
	IsCasualUsage         bool `json:"is_casual_usage"`
	IsDirected            bool `json:"is_directed"`
	HasPersonalPronoun    bool `json:"has_personal_pronoun"`
}

var (
	crisisPhrases = []string{
		"can't go on", "cant go on", "no reason to live", "no way out",
		"goodbye forever", "i have a plan", "tonight is the night",
	}
	intentPhrases = []string{
		"i want to", "i'm going to", "im going to", "i will", "planning to",
	}
	thirdPersonPhrases = []string{
		"my friend", "a friend", "someone i know", "somebody i know",
		"my brother", "my sister", "my son", "my daughter",
	}
	pastTensePhrases = []string{
		"used to", "when i was", "in the past", "years ago",
		"i recovered", "i'm recovered", "no longer feel",
	}

	educationalPhrases = []string{
		"sex education", "educational", "anatomy", "biology class",
		"health class", "reproduction", "reproductive health",
	}
	supportPhrases = []string{
		"therapist", "therapy", "counseling", "counselor",
		"abuse survivor", "trauma", "support group",
	}
	fictionalPhrases = []string{
		"novel", "story", "fiction", "fictional", "character",
		"roleplay", "screenplay", "writing a",
	}
	explicitDescriptorPhrases = []string{
		"in explicit detail", "graphic detail", "describe every",
		"step by step",
	}

	hypotheticalPhrases = []string{
		"hypothetically", "hypothetical", "what if", "in theory",
		"theoretically", "would it be possible",
	}
	fantasyPhrases = []string{
		"video game", "in the game", "d&d", "dungeons and dragons",
		"fantasy", "in minecraft", "novel", "character", "story",
	}
	mediaPhrases = []string{
		"movie", "film", "tv show", "series", "documentary",
		"history", "historical", "in the news",
	}
	explicitThreatPhrases = []string{
		"i will kill", "i'm going to kill", "im going to kill",
		"you're dead", "youre dead", "watch your back",
		"i know where you live",
	}

	emotionalPhrases = []string{
		"i'm so frustrated", "im so frustrated", "i'm so angry",
		"im so angry", "i can't believe", "cant believe", "i hate that",
	}
	casualPhrases = []string{
		"fucking awesome", "fucking great", "fucking amazing",
		"no shit", "holy shit", "badass",
	}

	secondPersonPattern    = regexp.MustCompile(`\byou\b|\byour\b|\byou're\b|\byoure\b`)
	personalPronounPattern = regexp.MustCompile(`\bi\b|\bme\b|\bmy\b|\byou\b|\byour\b|\bhe\b|\bshe\b|\bthey\b`)
)

func extractSelfHarmContext(normalized string) SelfHarmContext {
	return SelfHarmContext{
		HasCrisisLanguage: containsAny(normalized, crisisPhrases),
		HasIntentLanguage: containsAny(normalized, intentPhrases),
		IsThirdPerson:     containsAny(normalized, thirdPersonPhrases),
		IsPastTense:       containsAny(normalized, pastTensePhrases),
	}
}

func extractSexualContentContext(normalized string) SexualContentContext {
	return SexualContentContext{
		IsEducational:          containsAny(normalized, educationalPhrases),
		IsSupportSeeking:       containsAny(normalized, supportPhrases),
		IsFictional:            containsAny(normalized, fictionalPhrases),
		HasExplicitDescriptors: containsAny(normalized, explicitDescriptorPhrases),
	}
}

func extractHarmOthersContext(normalized string) HarmOthersContext {
	return HarmOthersContext{
		IsHypothetical:    containsAny(normalized, hypotheticalPhrases),
		IsFantasy:         containsAny(normalized, fantasyPhrases),
		IsMediaReference:  containsAny(normalized, mediaPhrases),
		HasExplicitThreat: containsAny(normalized, explicitThreatPhrases),
	}
}

func extractAbusiveLanguageContext(normalized string) AbusiveLanguageContext {
	return AbusiveLanguageContext{
		IsEmotionalExpression: containsAny(normalized, emotionalPhrases),
		IsCasualUsage:         containsAny(normalized, casualPhrases),
		IsDirected:            secondPersonPattern.MatchString(normalized),
		HasPersonalPronoun:    personalPronounPattern.MatchString(normalized),
	}
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
