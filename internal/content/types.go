package content

import (
	"bytes"
	"encoding/json"
)

// ContentType identifies the kind of content to generate.
type ContentType string

// Supported content types.
const (
	ContentTypeBlogPost           ContentType = "blog_post"
	ContentTypeSocialMediaUpdate  ContentType = "social_media_update"
	ContentTypeEmailDraft         ContentType = "email_draft"
	ContentTypeProductDescription ContentType = "product_description"
)

// Tone is the voice the generated content should be written in.
type Tone string

// Supported tones.
const (
	ToneFormal     Tone = "formal"
	ToneCasual     Tone = "casual"
	ToneHumorous   Tone = "humorous"
	TonePersuasive Tone = "persuasive"
)

// DefaultTone is applied when a request omits the tone.
const DefaultTone = ToneCasual

// Temperature is the sampling temperature used for every generation call.
const Temperature = 0.7

// Input is the request body as received on the wire, before defaults are
// applied. Tone is a pointer so an absent tone can be told apart from an
// explicitly empty one.
type Input struct {
	Topic       string  `json:"topic"       validate:"required,min=3"`
	ContentType string  `json:"contentType" validate:"required,oneof=blog_post social_media_update email_draft product_description"`
	Tone        *string `json:"tone"        validate:"omitnil,oneof=formal casual humorous persuasive"`
	// Keywords is a free-text, comma-separated list.
	Keywords string `json:"keywords"`

	// nullFields lists optional fields sent as JSON null; Validate rejects them.
	nullFields []string
}

// optionalFields may be omitted but, when present, must be strings.
var optionalFields = []string{"tone", "keywords"}

// UnmarshalJSON decodes the request body and records optional fields that
// were sent as null, which plain decoding cannot tell apart from absent ones.
func (in *Input) UnmarshalJSON(data []byte) error {
	type plain Input
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = Input(p)
	in.nullFields = nil
	for _, name := range optionalFields {
		if v, ok := raw[name]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			in.nullFields = append(in.nullFields, name)
		}
	}
	return nil
}

// Request is a validated content request with defaults applied.
type Request struct {
	Topic       string
	ContentType ContentType
	Tone        Tone
	Keywords    string
}

// Response pairs the generated text with the exact prompt that produced it.
type Response struct {
	GeneratedContent string `json:"generatedContent"`
	PromptUsed       string `json:"promptUsed"`
}
