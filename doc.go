// Package latincorpus loads Latin dependency treebanks, attributes every
// sentence to an author and a historical period, and removes duplicate
// sentences across treebanks.
//
// # Quick Start
//
//	loader := latincorpus.NewLoader()
//	corpus, err := loader.Load(ctx, "data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	byAuthor := corpus.ByAuthor()     // author -> sentence texts
//	rows := corpus.Table()            // text, author, period, parsed sentence
//	pairsInput := corpus.AuthorTexts() // input for package pairs
//
// # Corpus Layout
//
// Files are found by walking the data directory in lexical order. The name of
// the directory holding a file selects how its sentences are attributed; the
// recognized names are Perseus, PROIEL, ITTB, Dante, Late, test_data and
// combined_data, matched as suffixes. Any other directory fails the load.
//
// # Deduplication
//
// A sentence is identified by its "# text" metadata, compared exactly. The
// first occurrence in walk order is kept and later ones are counted as
// skipped for the file they appear in.
package latincorpus
