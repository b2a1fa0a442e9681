package nlpsvc

// Part-of-speech tag and entity label values the parser cares about.
// The sidecar emits Universal Dependencies POS tags and OntoNotes entity labels.
const (
	POSNoun   = "NOUN"
	LabelDate = "DATE"
)

// Token is one token from the tokenizer with its part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
}

// Entity is one named entity with its label and span text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation is the full analysis of one text.
type Annotation struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// analyzeRequest is the body for POST /analyze.
type analyzeRequest struct {
	Text string `json:"text"`
}
