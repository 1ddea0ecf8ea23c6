// Package classify maps analysis results to entanglement classes.
//
// Classify is a pure precedence chain over the tri-state outcomes of an
// AnalysedCoordState — first matching rule wins:
//
//  1. ppt evaluated false                        → NPT
//  2. kernel true OR spinrep true                → SEP
//  3. ppt evaluated true                         → PPT_UNKNOWN, upgraded to
//     BOUND by any one of realign / concurrenceQP / mub / numericEW true
//  4. otherwise                                  → UNKNOWN
//
// A NotEvaluated outcome never counts as false: rule 1 fires only on an
// actually evaluated negative PPT. The kernel/spinrep separability
// short-circuit ahead of the BOUND refinement is intentional and preserved
// as-is, with NPT deliberately preceding SEP.
//
// ClassifyAll labels a batch in place: UNKNOWN states adopt their derived
// label; a state already carrying a different non-UNKNOWN label raises a
// ConflictError (errors.Is ErrLabelConflict) identifying the offending
// state — no partial labeling is produced for that item.
package classify
