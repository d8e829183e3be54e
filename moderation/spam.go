package moderation

import (
	"strings"
	"unicode"

	"blogdeck/config"
	"blogdeck/models"
	"blogdeck/parser"
)

// Scorer applies the comment spam heuristics: link density, banned
// terms, shouting, and degenerate length. Scores are additive; a comment
// at or above the threshold is filed as spam on arrival.
type Scorer struct {
	threshold int
	maxLinks  int
	banned    []string
}

func NewScorer(cfg config.SpamConfig) *Scorer {
	banned := make([]string, 0, len(cfg.BannedTerms))
	for _, t := range cfg.BannedTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			banned = append(banned, t)
		}
	}
	return &Scorer{
		threshold: cfg.Threshold,
		maxLinks:  cfg.MaxLinks,
		banned:    banned,
	}
}

// Score rates a comment body. Returns the score and the signals that
// fired, for the admin list's spam_score column and moderation tooling.
func (s *Scorer) Score(body string) (int, []string) {
	score := 0
	var reasons []string

	if links := parser.CountLinks(body); links > s.maxLinks {
		score += 2 * (links - s.maxLinks)
		reasons = append(reasons, "too_many_links")
	}

	lower := strings.ToLower(parser.PlainText(body))
	for _, term := range s.banned {
		if strings.Contains(lower, term) {
			score += 3
			reasons = append(reasons, "banned_term:"+term)
		}
	}

	if isShouting(body) {
		score += 1
		reasons = append(reasons, "all_caps")
	}

	trimmed := strings.TrimSpace(lower)
	if len(trimmed) < 3 {
		score += 1
		reasons = append(reasons, "too_short")
	}

	return score, reasons
}

// Classify maps a body to the initial moderation status.
func (s *Scorer) Classify(body string) (string, int) {
	score, _ := s.Score(body)
	if score >= s.threshold {
		return models.CommentStatusSpam, score
	}
	return models.CommentStatusPending, score
}

// isShouting reports whether the body is mostly upper-case letters.
// Needs a minimum of letters so short comments like "OK" don't trip it.
func isShouting(original string) bool {
	letters, upper := 0, 0
	for _, r := range parser.PlainText(original) {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters >= 12 && upper*10 >= letters*8
}
