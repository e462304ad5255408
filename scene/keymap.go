package scene

// KeyMap binds typed characters to commands.
type KeyMap map[rune]Command

// DefaultKeyMap:
//
//	1 2 3   spin active meshes about z, y, x
//	4 5 6   spin the camera about z, y, x
//	s d f   move active meshes +x, +y, +z
//	j k l   move the camera -x, -y, -z
//	Tab     cycle the active mesh selection
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'1': {Op: OpRotateMeshes, Axis: AxisZ, Sign: 1},
		'2': {Op: OpRotateMeshes, Axis: AxisY, Sign: 1},
		'3': {Op: OpRotateMeshes, Axis: AxisX, Sign: 1},
		'4': {Op: OpRotateCamera, Axis: AxisZ, Sign: 1},
		'5': {Op: OpRotateCamera, Axis: AxisY, Sign: 1},
		'6': {Op: OpRotateCamera, Axis: AxisX, Sign: 1},
		's': {Op: OpTranslateMeshes, Axis: AxisX, Sign: 1},
		'd': {Op: OpTranslateMeshes, Axis: AxisY, Sign: 1},
		'f': {Op: OpTranslateMeshes, Axis: AxisZ, Sign: 1},
		'j': {Op: OpTranslateCamera, Axis: AxisX, Sign: -1},
		'k': {Op: OpTranslateCamera, Axis: AxisY, Sign: -1},
		'l': {Op: OpTranslateCamera, Axis: AxisZ, Sign: -1},
		'\t': {Op: OpCycleSelection},
	}
}

// Lookup returns the command bound to r. Unbound keys report false.
func (k KeyMap) Lookup(r rune) (Command, bool) {
	cmd, ok := k[r]
	return cmd, ok
}
