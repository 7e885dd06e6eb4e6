// Package harness runs scripted menu sessions.
//
// A script is a YAML file describing a sequence of user intents against a
// seeded menu, with optional expectations after each step:
//
//	name: seed_add_remove
//	description: "Adding a starter moves the starter average"
//	steps:
//	  - stats: true
//	    expect:
//	      count: 3
//	      averages: { Starters: "85.00" }
//	  - add: { name: Soup, description: Hot, course: Starters, price: "15" }
//	    expect:
//	      ids: ["4", "1", "2", "3"]
//	  - remove: "1"
//	  - filter: { name: "soup", course: Starters }
//	    expect:
//	      ids: ["4"]
//	  - add: { name: "" }
//	    expect:
//	      rejected: [name, description, price]
//
// # Step Types
//
//   - add: submit a candidate dish through the writer
//   - remove: submit a removal by ID through the writer
//   - filter: apply name and/or course filters to the current snapshot
//   - stats: compute statistics over the current snapshot
//
// # Deterministic Runs
//
// Every run builds a fresh store with deterministic counter IDs, so the
// same script always produces the same trace. RunWithGolden compares that
// trace against testdata/golden/{name}.golden.
package harness
