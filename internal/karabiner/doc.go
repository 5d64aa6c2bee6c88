// Package karabiner provides the document types of the Karabiner-Elements
// configuration format, plus serialization helpers.
//
// This package depends only on keycode; every other internal package that
// produces or inspects manipulators imports it.
//
// Key constraints:
//   - Every manipulator is of type "basic"
//   - Variable values are integers (0 = disengaged, 1 = engaged)
//   - Output is deterministic: slices keep authoring order, maps are only
//     used where encoding/json sorts their keys (Parameters)
//   - No floats anywhere, so canonical JSON and digests are stable
package karabiner
