package token

import "strings"

// scanPlaceholders calls fn with the content of every bracket-delimited
// run of lowercase letters in text, left to right. Bracket pairs whose
// content is empty or not purely lowercase are atom text, not placeholders.
func scanPlaceholders(text string, fn func(content string)) {
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		j := i + 1
		for j < len(text) && text[j] >= 'a' && text[j] <= 'z' {
			j++
		}
		if j == i+1 || j == len(text) || text[j] != '>' {
			continue
		}
		fn(text[i+1 : j])
		i = j
	}
}

// Names returns every constant placeholder (two or more lowercase letters)
// embedded in text, in order of appearance.
func Names(text string) []string {
	var names []string
	scanPlaceholders(text, func(content string) {
		if len(content) >= 2 {
			names = append(names, content)
		}
	})
	return names
}

// Variables returns every variable placeholder (single lowercase letter)
// embedded in text, in order of appearance.
func Variables(text string) []string {
	var vars []string
	scanPlaceholders(text, func(content string) {
		if len(content) == 1 {
			vars = append(vars, content)
		}
	})
	return vars
}

// Replace rewrites every "<variable>" placeholder in text to "<name>".
func Replace(text, variable, name string) string {
	return strings.ReplaceAll(text, "<"+variable+">", "<"+name+">")
}
