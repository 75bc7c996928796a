package dto

type CreateSessionResponse struct {
	Id string `json:"id"`
}

// AnswerItem is one answered question. Answers arrive as an ordered list, not
// a map, so the session keeps insertion order for prompt reproducibility.
type AnswerItem struct {
	Id     string `json:"id" validate:"required"`
	Answer string `json:"answer"`
}

type UpsertAnswersRequest struct {
	Answers []AnswerItem `json:"answers" validate:"required,dive"`
}

type ShowSessionResponse struct {
	Id      string       `json:"id"`
	Agent   string       `json:"agent,omitempty"`
	Answers []AnswerItem `json:"answers"`
	Draft   string       `json:"draft,omitempty"`
}

type GenerateDraftRequest struct {
	Agent string `json:"agent" validate:"required"`
}

type GenerateDraftResponse struct {
	Agent string `json:"agent"`
	Draft string `json:"draft"`
}

type SaveDraftRequest struct {
	Draft string `json:"draft" validate:"required"`
}

// ExportFileResponse is a rendered download: a fresh buffer per request,
// never cached.
type ExportFileResponse struct {
	FileName    string
	ContentType string
	Data        []byte
}
