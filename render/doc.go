// Package render draws scale patterns for a terminal.
//
// 🎨 What it draws
//
//   - Necklace: one row of pitch-class cells, scale members named and
//     the root emphasised, everything else a dot.
//   - Table: one line per pattern with its index, step string and
//     class badges (aug, ½½).
//   - Partition: the four-class table of a pattern set in a bordered
//     grid with counts and percentages.
//
// Styling goes through lipgloss, so colour is dropped automatically when
// the output is not a terminal. Layout never depends on colour: every
// function produces the same text once escape sequences are stripped.
package render
