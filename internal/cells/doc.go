// Package cells implements the built-in rules of the automaton.
//
// Every rule is a small value type satisfying automaton.Cell, with the
// zero value as the dead state:
//
//   - [Binary]: standard Conway Life (B3/S23), the default
//   - [HighLife]: Conway plus birth on six neighbors (B36/S23)
//   - [Seeds]: two-neighbor births and no survival (B2/S)
//   - [Aged]: Conway dynamics with a saturating age counter
//   - [Brain]: Brian's Brain three-state firing and dying rule
package cells
