package lexicon

import (
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

// defaultKeywords is the baseline lexicon shipped with the binary. Categories
// aimed at the broadest user base (sexual content, self-harm, hate) carry
// Spanish entries alongside English; the rest are English-only.
//
// Matching semantics (substring vs word boundary vs whitespace-tolerant) are
// decided by the detector per category, not here. Lists stay lowercase.
var defaultKeywords = map[violation.Type][]string{
	violation.TypeMinorContent: {
		"child porn",
		"child sexual",
		"underage girl",
		"underage boy",
		"underage sex",
		"minor sexual",
		"preteen",
		"jailbait",
		"loli",
	},
	violation.TypeSelfHarm: {
		"kill myself",
		"end my life",
		"suicide",
		"hurt myself",
		"cut myself",
		"self harm",
		"want to die",
		"overdose on",
		"quiero morirme",
		"quitarme la vida",
		"hacerme daño",
	},
	violation.TypeHarmOthers: {
		"kill someone",
		"kill you",
		"kill him",
		"kill her",
		"kill them",
		"murder someone",
		"shoot up",
		"hurt them badly",
		"make them suffer",
		"plant a bomb",
	},
	violation.TypeDoxxingThreats: {
		"dox you",
		"doxx",
		"post your address",
		"leak your address",
		"find where you live",
		"i know where you live",
		"swat you",
		"expose your identity",
	},
	violation.TypeHatefulContent: {
		"ethnic cleansing",
		"racial purity",
		"master race",
		"white power",
		"subhuman",
		"exterminate them all",
		"go back to your country",
		"limpieza étnica",
		"raza superior",
	},
	violation.TypeIllegalActivity: {
		"how to make a bomb",
		"how to make explosives",
		"buy drugs online",
		"sell drugs",
		"launder money",
		"hack into",
		"steal a car",
		"credit card fraud",
		"fake id",
		"meth",
		"cocaine",
		"heroin",
		"fentanyl",
	},
	violation.TypeSexualContent: {
		"porn",
		"send nudes",
		"naked pics",
		"sexual fantasy",
		"erotic",
		"horny",
		"make love to me",
		"sexting",
		"fotos desnuda",
		"fantasía sexual",
	},
	violation.TypeJailbreakAttempt: {
		"ignore previous instructions",
		"ignore all instructions",
		"disregard your instructions",
		"forget your rules",
		"developer mode",
		"you are now dan",
		"no restrictions apply",
		"bypass your guidelines",
		"pretend you have no rules",
	},
	violation.TypeAbusiveLanguage: {
		"fuck",
		"fucking",
		"shit",
		"bitch",
		"asshole",
		"bastard",
		"dickhead",
		"moron",
	},
	violation.TypeHealthMedicalAdvice: {
		"diagnose",
		"diagnosis",
		"prescription",
		"medication",
		"dosage",
		"antibiotics",
		"chemotherapy",
		"symptoms",
	},
}

// DefaultKeywords returns a copy of the baseline list for a category.
func DefaultKeywords(category violation.Type) []string {
	list, ok := defaultKeywords[category]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
