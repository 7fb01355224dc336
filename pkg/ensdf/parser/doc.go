// Package parser implements the dataset parser: a two-state machine that
// turns one ENSDF card-image text block into a typed record model.
//
// The first line of a dataset is its identification header. The machine then
// starts in a header state that collects the flat records preceding the
// level scheme (parents, Q-values, references, cross-references, history and
// comment cards) and switches permanently to a body state at the first
// level/decay signature. Body cards are classified by columns 5-8 alone and
// grouped into records: a record-start card closes the pending group, and
// continuation, comment, and cross-reference cards accumulate against it.
// Cards matching no rule are tolerated as continuations of the current
// record; structural failures (a card shorter than 80 columns, an unknown
// record type, an invalid property entry or quantity) abort the whole parse.
//
//	ds, err := parser.New().Parse(text)
//	if err != nil {
//	    return err
//	}
//	for _, level := range ds.Levels {
//	    fmt.Println(level.Energy, len(level.Decays))
//	}
package parser
