package domain

// Entry represents a word-translation pair
type Entry struct {
	Word        string `json:"word" yaml:"word" msgpack:"word"`
	Translation string `json:"translation" yaml:"translation" msgpack:"translation"`
}

// Match is an entry found by a search together with its similarity score
type Match struct {
	Entry
	Score float64
}
