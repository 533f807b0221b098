package content

import (
	"fmt"
	"strings"
)

// Per-content-type guidance appended after the tone and keyword clauses.
const (
	blogPostGuidance = "The blog post should be engaging, well-structured with a clear introduction, " +
		"body, and conclusion. Aim for around 500-800 words."
	socialMediaGuidance = "Keep it concise and engaging for social media. " +
		"Include relevant hashtags if possible. Max 280 characters."
	emailDraftGuidance = "Draft a professional email. " +
		"Include a subject line, greeting, body, and closing."
	productDescriptionGuidance = "Write a compelling product description " +
		"highlighting key features and benefits."
)

// BuildPrompt renders a validated request into the prompt sent to the model.
//
// The prompt always opens with `Generate a {contentType} about "{topic}".`,
// followed by the tone clause when a tone is set, the keywords clause when
// keywords are set, and finally the guidance for the content type.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s about \"%s\".", req.ContentType, req.Topic)

	if req.Tone != "" {
		fmt.Fprintf(&b, " The tone should be %s.", req.Tone)
	}

	if req.Keywords != "" {
		fmt.Fprintf(&b, " Please incorporate the following keywords: %s.", req.Keywords)
	}

	// Unknown content types never get here; Validate rejects them.
	switch req.ContentType {
	case ContentTypeBlogPost:
		b.WriteString(" " + blogPostGuidance)
	case ContentTypeSocialMediaUpdate:
		b.WriteString(" " + socialMediaGuidance)
	case ContentTypeEmailDraft:
		b.WriteString(" " + emailDraftGuidance)
	case ContentTypeProductDescription:
		b.WriteString(" " + productDescriptionGuidance)
	}

	return b.String()
}
