package notifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHTMLMessage(t *testing.T) {
	body := string(build("noreply@taskpro.test", Message{
		To:      "alice@example.com",
		Subject: "Registration Confirmation",
		HTML:    "<p>hello</p>",
	}))

	assert.Contains(t, body, "From: noreply@taskpro.test\r\n")
	assert.Contains(t, body, "To: alice@example.com\r\n")
	assert.Contains(t, body, "Subject: Registration Confirmation\r\n")
	assert.Contains(t, body, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(body, "<p>hello</p>\r\n"))
}

func TestBuildTextFallback(t *testing.T) {
	body := string(build("noreply@taskpro.test", Message{
		To:      "alice@example.com",
		Subject: "Support",
		Text:    "plain words",
	}))

	assert.Contains(t, body, "Content-Type: text/plain")
	assert.Contains(t, body, "plain words")
}
