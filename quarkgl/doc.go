// Package quarkgl is a minimal, predictable software 3D renderer.
//
// A scene is a list of triangulated polyhedral meshes viewed through a Camera that
// carries its own orthonormal frame (forward, up, right). Each frame the camera
// walks every face and runs a fixed pipeline:
//
//	backface test → frustum cone test → projection → point-in-polygon rasterization.
//
// There is no lighting and no depth buffer: visibility is decided per face by the
// backface test alone. Culling accepts or rejects whole faces; nothing is clipped.
//
// Rendering writes into a caller-provided Surface, which addresses pixels with
// signed coordinates centered on the middle of the frame (+y up). The package
// holds no global scene state; callers own meshes and the camera.
package quarkgl
