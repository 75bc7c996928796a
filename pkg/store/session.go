package store

// AnswerSet is an insertion-ordered mapping from question id to the client's
// free-text answer. Order is preserved so the assembled prompt is reproducible
// for the same sequence of inputs.
type AnswerSet struct {
	keys   []string
	values map[string]string
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{
		keys:   make([]string, 0),
		values: make(map[string]string),
	}
}

// Set stores an answer. A new id is appended; an existing id keeps its
// original position and only the value changes.
func (a *AnswerSet) Set(id, answer string) {
	if _, ok := a.values[id]; !ok {
		a.keys = append(a.keys, id)
	}
	a.values[id] = answer
}

func (a *AnswerSet) Get(id string) (string, bool) {
	v, ok := a.values[id]
	return v, ok
}

func (a *AnswerSet) Len() int {
	return len(a.keys)
}

// Pair is one answered question in insertion order.
type Pair struct {
	Id     string
	Answer string
}

func (a *AnswerSet) Pairs() []Pair {
	pairs := make([]Pair, 0, len(a.keys))
	for _, k := range a.keys {
		pairs = append(pairs, Pair{Id: k, Answer: a.values[k]})
	}
	return pairs
}

// Session is the active in-memory state for one client: collected answers and
// the current draft. The draft is superseded, not versioned, on regeneration
// or edit-save.
type Session struct {
	ID      string     `json:"id"`
	Agent   string     `json:"agent"`
	Answers *AnswerSet `json:"-"`
	Draft   string     `json:"draft"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Answers: NewAnswerSet(),
	}
}
