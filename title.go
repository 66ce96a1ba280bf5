package isobib

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// TitleSeparator separates the intro, main and part components of a title.
const TitleSeparator = " -- "

// partRe recognizes a part title in English or French.
var partRe = regexp.MustCompile(`^(Part|Partie) \d+:`)

// SplitTitle assigns the components of a full title to intro, main and part.
//
//	"Main"                      -> main
//	"Main -- Part 1: Detail"    -> main, part
//	"Intro -- Main"             -> intro, main
//	"Intro -- Main -- Part"     -> intro, main, part
//	"Intro -- Main -- P1 -- P2" -> intro, main, "P1 -- P2"
func SplitTitle(text, lang string) Title {
	t := Title{Language: lang, Script: ScriptFor(lang)}
	if text == "" {
		return t
	}

	parts := strings.Split(text, TitleSeparator)
	switch len(parts) {
	case 1:
		t.Main = parts[0]
	case 2:
		if partRe.MatchString(parts[1]) {
			t.Main, t.Part = parts[0], parts[1]
		} else {
			t.Intro, t.Main = parts[0], parts[1]
		}
	case 3:
		t.Intro, t.Main, t.Part = parts[0], parts[1], parts[2]
	default:
		t.Intro, t.Main = parts[0], parts[1]
		t.Part = strings.Join(parts[2:], TitleSeparator)
	}
	return t
}

// scripts lists the ISO 15924 script of each language the site publishes in.
var scripts = map[language.Tag]string{
	language.English: "Latn",
	language.French:  "Latn",
}

// ScriptFor returns the script code for a language code, or an empty
// string when the language is not one the site publishes in.
func ScriptFor(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	return scripts[tag]
}
