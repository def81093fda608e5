// Package frequency counts how often each run of consecutive words occurs in a
// text and filters those runs by a minimum count.
//
// One bst.Map[string, int] is kept per prefix length. Filtering removes the
// rare prefixes from those maps and reports the survivors by descending count.
package frequency

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/e11jah/bst"
)

var (
	ErrMinPrefixLen   = errors.New("minimum prefix length must be positive")
	ErrPrefixRange    = errors.New("maximum prefix length cannot be less than minimum prefix length")
	ErrNegativeCutoff = errors.New("cutoff frequency cannot be negative")
	ErrCutoffCount    = errors.New("number of cutoffs must match number of prefix lengths")
	ErrNotBuilt       = errors.New("frequency trees have not been built")
)

// Filter holds the frequency trees of the last Build.
type Filter struct {
	logger       logrus.FieldLogger
	minPrefixLen int
	maxPrefixLen int
	trees        map[int]bst.Map[string, int]
}

type Option func(*Filter)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

func New(opts ...Option) *Filter {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	f := &Filter{logger: discard}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build replaces the trees of f with the prefix counts of data for every prefix
// length in [minPrefixLen, maxPrefixLen]. Words are separated by whitespace and
// a prefix is its words joined by single spaces. Data without words leaves f
// unbuilt.
func (f *Filter) Build(data string, minPrefixLen, maxPrefixLen int) error {
	if minPrefixLen <= 0 {
		return fmt.Errorf("%w: got %d", ErrMinPrefixLen, minPrefixLen)
	}
	if maxPrefixLen < minPrefixLen {
		return fmt.Errorf("%w: got [%d, %d]", ErrPrefixRange, minPrefixLen, maxPrefixLen)
	}

	f.trees = nil
	words := strings.Fields(data)
	if len(words) == 0 {
		f.logger.Debug("no words to count")
		return nil
	}

	trees := make(map[int]bst.Map[string, int], maxPrefixLen-minPrefixLen+1)
	for prefixLen := minPrefixLen; prefixLen <= maxPrefixLen; prefixLen++ {
		tree := bst.New[string, int]()
		for i := 0; i+prefixLen <= len(words); i++ {
			if err := count(tree, strings.Join(words[i:i+prefixLen], " ")); err != nil {
				return err
			}
		}
		trees[prefixLen] = tree

		f.logger.WithFields(logrus.Fields{
			"prefixLen": prefixLen,
			"prefixes":  tree.Size(),
		}).Debug("built frequency tree")
	}

	f.trees = trees
	f.minPrefixLen, f.maxPrefixLen = minPrefixLen, maxPrefixLen
	return nil
}

func count(tree bst.Map[string, int], prefix string) error {
	found, err := tree.ContainsKey(prefix)
	if err != nil {
		return err
	}
	if !found {
		_, err = tree.Put(prefix, 1)
		return err
	}

	n, _, err := tree.Get(prefix)
	if err != nil {
		return err
	}
	_, err = tree.Replace(prefix, n+1)
	return err
}

// Frequencies returns the tree for prefixLen, if it was built.
func (f *Filter) Frequencies(prefixLen int) (bst.Map[string, int], bool) {
	tree, ok := f.trees[prefixLen]
	return tree, ok
}

// PrefixLens returns the built prefix lengths in ascending order.
func (f *Filter) PrefixLens() []int {
	if f.trees == nil {
		return nil
	}
	lens := make([]int, 0, len(f.trees))
	for n := f.minPrefixLen; n <= f.maxPrefixLen; n++ {
		lens = append(lens, n)
	}
	return lens
}

// Filter removes every prefix occurring less than cutoff times from every tree
// and reports what is left, one report per prefix length.
func (f *Filter) Filter(cutoff int) ([]Report, error) {
	if f.trees == nil {
		return nil, ErrNotBuilt
	}

	cutoffs := make([]int, len(f.trees))
	for i := range cutoffs {
		cutoffs[i] = cutoff
	}
	return f.FilterEach(cutoffs)
}

// FilterEach is Filter with one cutoff per prefix length, in ascending prefix
// length order.
func (f *Filter) FilterEach(cutoffs []int) ([]Report, error) {
	if f.trees == nil {
		return nil, ErrNotBuilt
	}
	if len(cutoffs) != len(f.trees) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCutoffCount, len(cutoffs), len(f.trees))
	}
	for _, cutoff := range cutoffs {
		if cutoff < 0 {
			return nil, fmt.Errorf("%w: got %d", ErrNegativeCutoff, cutoff)
		}
	}

	reports := make([]Report, 0, len(cutoffs))
	for i, cutoff := range cutoffs {
		prefixLen := f.minPrefixLen + i
		report, err := f.filterTree(prefixLen, cutoff)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (f *Filter) filterTree(prefixLen, cutoff int) (Report, error) {
	tree := f.trees[prefixLen]
	ranked := bst.NewFunc[Entry, struct{}](compareEntries)

	removed := 0
	for _, prefix := range tree.Keys() {
		n, _, err := tree.Get(prefix)
		if err != nil {
			return Report{}, err
		}
		if n < cutoff {
			if _, err := tree.Remove(prefix); err != nil {
				return Report{}, err
			}
			removed++
			continue
		}
		if _, err := ranked.Put(Entry{Prefix: prefix, Count: n}, struct{}{}); err != nil {
			return Report{}, err
		}
	}

	f.logger.WithFields(logrus.Fields{
		"prefixLen": prefixLen,
		"cutoff":    cutoff,
		"removed":   removed,
		"kept":      tree.Size(),
	}).Debug("filtered frequency tree")

	return Report{PrefixLen: prefixLen, Entries: ranked.Keys()}, nil
}

// descending count, then ascending prefix
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Prefix, b.Prefix)
}
