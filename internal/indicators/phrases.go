package indicators

import "regexp"

// Fixed French word lists and patterns behind the heuristics. None of these
// are validated against ground truth; they encode the observation that
// generated French prose leans on the same connectors and academic formulas.

// formulaicOpeners flag sentences built on stock academic scaffolding.
var formulaicOpeners = []string{
	"il est important",
	"il convient",
	"en effet",
	"par ailleurs",
}

// polishedAdjectives is vocabulary that reads "too perfect" when stacked.
var polishedAdjectives = []string{
	"optimal", "efficace", "pertinent", "significatif", "considérable",
	"substantiel", "fondamental", "essentiel", "crucial", "primordial",
}

// liaisonWords are the short coordinating conjunctions counted for density.
var liaisonPattern = regexp.MustCompile(`(?i)\b(et|ou|mais|donc|or|ni|car)\b`)

// perfectTransitions are over-clean discourse moves, including paired
// connectors ("d'une part ... d'autre part").
var perfectTransitions = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(ainsi|donc|par conséquent|en conséquence|de ce fait)\b`),
	regexp.MustCompile(`(?i)d'une part.*d'autre part|d'un côté.*de l'autre`),
	regexp.MustCompile(`(?i)en premier lieu.*en second lieu|premièrement.*deuxièmement`),
}

// structuralWords betray essay-template structure announced out loud.
var structuralWords = regexp.MustCompile(`(?i)\b(introduction|développement|conclusion)\b`)

// hesitationMarkers are the natural imperfections humans leave behind.
var hesitationMarkers = regexp.MustCompile(`(?i)\b(euh|enfin|disons|peut-être|je pense|il me semble)\b`)

// punctuationSlips matches a lowercase letter directly after a terminal,
// the kind of sloppiness generated text rarely produces.
var punctuationSlips = regexp.MustCompile(`[.!?]\s*[a-zà-ÿ]`)

// frenchAIPatterns are formulaic phrases characteristic of generated French
// academic prose.
var frenchAIPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)il est important de noter que|il convient de souligner que|il faut noter que`),
	regexp.MustCompile(`(?i)\b(en conclusion|pour conclure|en définitive|en somme|pour résumer)\b`),
	regexp.MustCompile(`(?i)d'une part.*d'autre part|premièrement.*deuxièmement.*troisièmement`),
	regexp.MustCompile(`(?i)\b(par ailleurs|en outre|de plus|qui plus est|de surcroît)\b`),
	regexp.MustCompile(`(?i)\b(cette approche|cette méthode|cette stratégie|cette solution)\b`),
	regexp.MustCompile(`(?i)il est essentiel de|il est crucial de|il est fondamental de`),
	regexp.MustCompile(`(?i)\b(dans le cadre de|au niveau de|en termes de|en matière de)\b`),
}

// academicCliches are stock analysis-speak checked as plain substrings.
var academicCliches = []string{
	"force est de constater",
	"il ressort de cette analyse",
	"cette étude révèle",
	"les résultats montrent",
	"il apparaît clairement",
	"on peut observer",
}
