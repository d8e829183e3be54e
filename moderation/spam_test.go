package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogdeck/config"
	"blogdeck/models"
)

func newTestScorer() *Scorer {
	return NewScorer(config.SpamConfig{
		Threshold:   5,
		MaxLinks:    2,
		BannedTerms: []string{"casino", " Cheap Pills "},
	})
}

func TestCleanCommentStaysPending(t *testing.T) {
	s := newTestScorer()
	status, score := s.Classify("<p>Great write-up, the pagination section helped a lot.</p>")
	assert.Equal(t, models.CommentStatusPending, status)
	assert.Less(t, score, 5)
}

func TestLinkFarmIsSpam(t *testing.T) {
	s := newTestScorer()
	body := `<a href="http://a">1</a><a href="http://b">2</a><a href="http://c">3</a><a href="http://d">4</a><a href="http://e">5</a>`
	status, score := s.Classify(body)
	assert.Equal(t, models.CommentStatusSpam, status)
	assert.GreaterOrEqual(t, score, 5)
}

func TestBannedTermsAreCaseInsensitive(t *testing.T) {
	s := newTestScorer()
	score, reasons := s.Score("Visit my CASINO and get cheap pills today")
	assert.GreaterOrEqual(t, score, 6)
	assert.Contains(t, reasons, "banned_term:casino")
	assert.Contains(t, reasons, "banned_term:cheap pills")
}

func TestShoutingScoresButDoesNotFlagAlone(t *testing.T) {
	s := newTestScorer()
	status, _ := s.Classify("THIS IS THE BEST ARTICLE I HAVE EVER READ")
	assert.Equal(t, models.CommentStatusPending, status)

	_, reasons := s.Score("THIS IS THE BEST ARTICLE I HAVE EVER READ")
	assert.Contains(t, reasons, "all_caps")
}

func TestDegenerateShortComment(t *testing.T) {
	s := newTestScorer()
	_, reasons := s.Score("  a ")
	assert.Contains(t, reasons, "too_short")
}
