// Package ensdf is the high-level API for evaluated nuclear structure
// data in the ENSDF card-image format.
//
// A Service ties together a dataset provider, the parser, and an
// optional cache:
//
//	p, err := provider.NewFileProvider("/data/ensdf")
//	if err != nil {
//		return err
//	}
//	svc := ensdf.NewService(p, ensdf.WithCache(cache.NewMemoryBackend(0)))
//
//	nuc, err := svc.Nucleus(ctx, 60, 27)
//	if err != nil {
//		return err
//	}
//	for _, iso := range nuc.Isomers() {
//		fmt.Println(iso.Energy, iso.HalfLife)
//	}
//
// The subpackages can also be used directly: parser turns raw card
// text into a record.Dataset, and quantity parses individual ENSDF
// value fields.
package ensdf
