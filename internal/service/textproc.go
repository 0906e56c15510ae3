package service

import (
	"regexp"
	"strings"
)

// Header/footer detection only applies near the document edges.
const edgeLineCount = 3

var (
	pageNumberRes = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*\d+\s*$`),
		regexp.MustCompile(`(?im)^\s*Page\s+\d+\s*$`),
		regexp.MustCompile(`(?im)^\s*\d+\s+of\s+\d+\s*$`),
		regexp.MustCompile(`(?m)^\s*\d+/\d+\s*$`),
	}
	runSpacesRe     = regexp.MustCompile(`[ \t]+`)
	runNewlinesRe   = regexp.MustCompile(`\n{3,}`)
	headerCueRe     = regexp.MustCompile(`(?i)^(confidential|proprietary|draft|internal)`)
	headerOrgCueRe  = regexp.MustCompile(`(?i)^(company|organization|department)`)
	footerCueRe     = regexp.MustCompile(`(?i)©|copyright|all rights reserved`)
	footerPageCueRe = regexp.MustCompile(`(?i)page\s+\d+`)
	bareNumberRe    = regexp.MustCompile(`^\d+\s*$`)
	footerConfRe    = regexp.MustCompile(`(?i)confidential`)
)

// NormalizeText runs the full cleanup pass expected by the analysis
// pipeline: strip header/footer lines, remove page numbers, normalize
// paragraph spacing and collapse stray whitespace. Input that has already
// been normalized passes through unchanged apart from idempotent trims.
func NormalizeText(text string) string {
	text = removeHeaders(text)
	text = removeFooters(text)
	text = removePageNumbers(text)
	text = normalizeParagraphs(text)
	text = cleanWhitespace(text)
	return text
}

func removeHeaders(text string) string {
	lines := strings.Split(text, "\n")
	filtered := lines[:0]
	for i, line := range lines {
		if i < edgeLineCount && looksLikeHeader(line) {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}

func removeFooters(text string) string {
	lines := strings.Split(text, "\n")
	filtered := lines[:0]
	for i, line := range lines {
		if i >= len(lines)-edgeLineCount && looksLikeFooter(line) {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}

func removePageNumbers(text string) string {
	for _, re := range pageNumberRes {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

func normalizeParagraphs(text string) string {
	text = runSpacesRe.ReplaceAllString(text, " ")
	text = runNewlinesRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func cleanWhitespace(text string) string {
	text = runNewlinesRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))

	return runSpacesRe.ReplaceAllString(text, " ")
}

func looksLikeHeader(line string) bool {
	trimmed := strings.TrimSpace(line)

	if len(trimmed) < 3 {
		return true
	}
	if headerCueRe.MatchString(trimmed) {
		return true
	}
	if headerOrgCueRe.MatchString(trimmed) && len(trimmed) < 50 {
		return true
	}
	if trimmed == strings.ToUpper(trimmed) && len(trimmed) < 30 {
		return true
	}

	return false
}

func looksLikeFooter(line string) bool {
	trimmed := strings.TrimSpace(line)

	if len(trimmed) < 3 {
		return true
	}
	if footerCueRe.MatchString(trimmed) {
		return true
	}
	if footerPageCueRe.MatchString(trimmed) {
		return true
	}
	if bareNumberRe.MatchString(trimmed) {
		return true
	}
	if footerConfRe.MatchString(trimmed) && len(trimmed) < 50 {
		return true
	}

	return false
}
