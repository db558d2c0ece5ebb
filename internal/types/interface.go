package types

type Tokenizer interface {
	Tokenize() []Word
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() WordStats
}
