// Package voting implements the voting rules evaluated by the simulator.
//
// Each rule turns a voter's position in a one-dimensional policy space into a
// [Vote], folds weighted votes into an [Aggregate], and picks a winner:
//
//   - [Plurality]: every closest candidate receives the full weight
//   - [Approval]: quadratic falloff between the closest and farthest candidate
//   - [Borda]: rank scores n..1 by distance
//   - [InstantRunoff]: full preference rankings tabulated by elimination
//
// Candidates are identified by their index, never by their position.
//
// # Ties
//
// Exactly equidistant candidates are resolved the way the rules have always
// resolved them: plurality credits each tied candidate with the full weight,
// Borda gives every tied candidate the rank of the first occurrence, and the
// runoff ranking repeats the first tied index in place of the others.
// Winners are always the lowest index among equal totals.
//
// # Interning
//
// Runoff rankings are deduplicated through an [Interner] so that identical
// rankings share one aggregate bucket. The interner outlives a single redraw;
// callers scope it per candidate layout and may [Interner.Reset] it.
package voting
