package reference

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Summary describes a reference genome FASTA.
type Summary struct {
	Path        string
	NumSeqs     int
	TotalLength int
	SeqIDs      []string
	SeqLengths  []int
}

// Summarize reads a reference FASTA (plain or gzipped) and reports its
// sequences. An empty or unreadable FASTA is an error, a workspace whose
// reference/genome directory holds a broken download should not reach STAR.
func Summarize(refFile string) (*Summary, error) {
	fna, err := os.Open(refFile)
	if err != nil {
		return nil, fmt.Errorf("opening FASTA file: %w", err)
	}
	defer fna.Close()

	var reader io.Reader = fna
	if strings.HasSuffix(refFile, ".gz") {
		gzReader, gzErr := gzip.NewReader(fna)
		if gzErr != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", gzErr)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	r := fasta.NewReader(reader, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	sum := &Summary{Path: refFile}
	for sc.Next() {
		seq := sc.Seq().(*linear.Seq)
		sum.NumSeqs++
		sum.TotalLength += seq.Len()
		sum.SeqIDs = append(sum.SeqIDs, seq.ID)
		sum.SeqLengths = append(sum.SeqLengths, seq.Len())
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("reading FASTA records: %w", err)
	}
	if sum.NumSeqs == 0 {
		return nil, fmt.Errorf("no sequences found in %s", refFile)
	}
	return sum, nil
}

// Print writes a human readable report of the summary to stdout.
func (s *Summary) Print() {
	fmt.Printf("Reference: %s\n", s.Path)
	fmt.Printf("Sequences: %d\n", s.NumSeqs)
	fmt.Printf("Total length: %d bp\n\n", s.TotalLength)
	for i, id := range s.SeqIDs {
		fmt.Printf("%s\t%d bp\n", id, s.SeqLengths[i])
	}
}
