package gemini

// Role values accepted in Content.Role
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Request is the generateContent body
type Request struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
}

// Response is the subset of the generateContent reply we read
type Response struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

// NewText builds a single-part content
func NewText(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}

// FirstText returns the first part text of the first candidate
func (r Response) FirstText() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return r.Candidates[0].Content.Parts[0].Text, true
}
