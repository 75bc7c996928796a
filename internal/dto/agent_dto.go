package dto

type AgentResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type QuestionResponse struct {
	Id          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder,omitempty"`
	Help        string `json:"help,omitempty"`
	Required    bool   `json:"required"`
	Section     string `json:"section,omitempty"`
}

type QuestionCatalogResponse struct {
	Agent     string             `json:"agent"`
	Total     int                `json:"total"`
	Required  int                `json:"required"`
	Questions []QuestionResponse `json:"questions"`
}
