package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogdeck/parser"
)

func TestPlainTextStripsMarkup(t *testing.T) {
	got := parser.PlainText(`<p>Hello <b>world</b></p><script>alert(1)</script>`)
	assert.Equal(t, "Hello world", got)
}

func TestCountLinks(t *testing.T) {
	htmlStr := `<p>Buy <a href="http://a">now</a> or <a href="http://b">here</a>, see <a name="anchor">this</a></p>`
	assert.Equal(t, 2, parser.CountLinks(htmlStr))
	assert.Equal(t, 0, parser.CountLinks("plain text, no links"))
}

func TestExcerptTruncatesOnRuneBoundary(t *testing.T) {
	got := parser.Excerpt("<p>가나다라마바사아자차</p>", 5)
	assert.Equal(t, "가나다라마…", got)

	short := parser.Excerpt("<p>short</p>", 50)
	assert.Equal(t, "short", short)
}
