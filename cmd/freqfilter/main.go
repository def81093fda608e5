// Package main implements freqfilter, which reports the most frequent word
// sequences of a text.
package main

import "github.com/e11jah/bst/internal/cmd"

func main() {
	cmd.Execute()
}
