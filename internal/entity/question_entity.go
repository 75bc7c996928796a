package entity

// Question is one item of an agent's intake form. Catalogs are immutable,
// defined at process start in internal/constant.
type Question struct {
	Id          string
	Question    string
	Placeholder string
	Help        string
	Required    bool
	Section     string // used by the digital catalog for grouping, empty otherwise
}
