// Helios reads evaluated nuclear structure data in the ENSDF card-image
// format.
//
// It parses mass-chain distribution files into typed datasets: level
// schemes, gamma transitions, decay records, and their associated
// quantities.
//
// Usage:
//
//	# Parse a dataset file and print a summary
//	helios parse 60co_adopted.ens
//
//	# List the datasets available for a mass chain
//	helios datasets 60
//
//	# Show the adopted level scheme of a nuclide
//	helios levels 60CO
//
//	# Show gamma transitions with resolved destinations
//	helios gammas 60CO
//
//	# Show long-lived states (ground state plus metastable levels)
//	helios isomers 60CO
//
//	# Watch the data directory and invalidate cached datasets on change
//	helios watch
//
//	# Show version information
//	helios version
package main

func main() {
	Execute()
}
