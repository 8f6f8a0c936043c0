package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CommitType is one of the prefixes of the Udacity commit style.
type CommitType struct {
	Name        string
	Description string
}

// UdacityCommitTypes lists the prefixes in the order they are offered.
func UdacityCommitTypes() []CommitType {
	return []CommitType{
		{Name: "feat", Description: "A new feature"},
		{Name: "fix", Description: "A bug fix"},
		{Name: "docs", Description: "Changes to documentation"},
		{Name: "style", Description: "Formatting, missing semi colons, etc; no code change"},
		{Name: "refactor", Description: "Refactoring production code"},
		{Name: "test", Description: "Adding tests, refactoring test; no production code change"},
		{Name: "chore", Description: "Updating build tasks, package manager configs, etc; no production code change"},
	}
}

// CommitMessage holds the pieces collected by the commit prompt.
type CommitMessage struct {
	Type    string
	Emoji   string
	Subject string
	Body    string
}

// Format renders the message. Plain style is "<emoji> <subject>". Udacity
// style is "<type>: <emoji> <Subject>" with the subject capitalised and one
// trailing period dropped, unless that would leave it empty. A body follows after one blank line.
func (m CommitMessage) Format(udacityStyle bool) string {
	subject := strings.TrimSpace(m.Subject)
	emoji := strings.TrimSpace(m.Emoji)

	var header string
	if udacityStyle {
		if s := strings.TrimSpace(strings.TrimSuffix(subject, ".")); s != "" {
			subject = s
		}
		subject = capitalize(subject)
		header = strings.TrimSpace(m.Type) + ": " + emoji + " " + subject
	} else {
		header = emoji + " " + subject
	}

	body := strings.TrimSpace(m.Body)
	if body == "" {
		return header
	}
	return header + "\n\n" + body
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
