// Package record defines the typed record model for parsed ENSDF datasets.
//
// A Dataset owns every record the parser produces: levels, the decay
// variants (Beta, EC, Alpha, Particle, Gamma), and the flat header records
// (Parent, QValue, CrossReference, Reference, GeneralComment). Records hold
// non-owning links back to their Dataset, and the level graph is linked
// bidirectionally: a level lists the transitions that originate at it
// (Decays) and the transitions that feed it (Populating).
//
// Each multi-line record maps the fixed column ranges of its first card into
// the Props mapping and typed fields, then runs its continuation cards
// through the shared property grammar. Gamma records additionally resolve
// their destination level at construction time, using either their "FL"
// final-level property or a recoil-corrected estimate matched against the
// dataset's level list.
package record
