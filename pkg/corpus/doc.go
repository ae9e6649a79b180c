// Package corpus reads plain-text training material from disk, splits it into
// paragraphs and sentences, and feeds the tokenized sentences to a markov.Chain.
package corpus
