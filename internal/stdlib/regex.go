package stdlib

import "regexp"

var (
	quickFoxRe   = regexp.MustCompile(`quick.*fox`)
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneRe      = regexp.MustCompile(`\d{3}-\d{4}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	userDomainRe = regexp.MustCompile(`(?P<username>\w+)@(?P<domain>\w+\.\w+)`)
	fiveLetterRe = regexp.MustCompile(`\b\w{5}\b`)
	theRe        = regexp.MustCompile(`(?i)the`)
)

const regexSample = "The quick brown fox jumps over the lazy dog. Contact: john@email.com or call 555-1234."

type Groups struct {
	Full     string `json:"full" yaml:"full"`
	Username string `json:"username" yaml:"username"`
	Domain   string `json:"domain" yaml:"domain"`
}

type RegexResult struct {
	BasicMatch         string            `json:"basic_match" yaml:"basic_match"`
	Emails             []string          `json:"emails" yaml:"emails"`
	Phones             []string          `json:"phones" yaml:"phones"`
	PhoneMasked        string            `json:"phone_masked" yaml:"phone_masked"`
	Words              []string          `json:"words" yaml:"words"`
	Groups             Groups            `json:"groups" yaml:"groups"`
	NamedGroups        map[string]string `json:"named_groups" yaml:"named_groups"`
	FiveLetterWords    []string          `json:"five_letter_words" yaml:"five_letter_words"`
	CaseInsensitiveThe int               `json:"case_insensitive_the" yaml:"case_insensitive_the"`
}

// NamedGroups maps every named subexpression of re to its text in the
// first match. It returns nil when there is no match.
func NamedGroups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}

func Regex() RegexResult {
	text := regexSample
	r := RegexResult{
		BasicMatch:         quickFoxRe.FindString(text),
		Emails:             emailRe.FindAllString(text, -1),
		Phones:             phoneRe.FindAllString(text, -1),
		PhoneMasked:        phoneRe.ReplaceAllString(text, "XXX-XXXX"),
		NamedGroups:        NamedGroups(userDomainRe, text),
		FiveLetterWords:    fiveLetterRe.FindAllString(text, -1),
		CaseInsensitiveThe: len(theRe.FindAllStringIndex(text, -1)),
	}

	words := whitespaceRe.Split(text, -1)
	r.Words = words[:min(5, len(words))]

	if m := userDomainRe.FindStringSubmatch(text); m != nil {
		r.Groups = Groups{Full: m[0], Username: m[1], Domain: m[2]}
	}
	return r
}
