// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms positions and normals into eye space.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader applies flat color, Phong lighting and the tile blend.
//
//go:embed phong.frag
var PhongFragmentShader string

// PickVertexShader is the position-only pass used for id rendering.
//
//go:embed pick.vert
var PickVertexShader string

// PickFragmentShader writes the per-object id color unlit.
//
//go:embed pick.frag
var PickFragmentShader string

// Uniform names shared by the Go side and the GLSL above.
const (
	UProjection   = "uProjection"
	UView         = "uView"
	UModel        = "uModel"
	UNormalMatrix = "uNormalMatrix"
	UColor        = "uColor"

	ULightEnabled   = "uLightEnabled"
	ULightPos       = "uLightPos"
	ULightColor     = "uLightColor"
	ULightIntensity = "uLightIntensity"
	UAmbient        = "uAmbient"
	UDiffuse        = "uDiffuse"
	USpecular       = "uSpecular"
	UShininess      = "uShininess"

	UUseTexture = "uUseTexture"
	UTexColor1  = "uTexColor1"
	UTexColor2  = "uTexColor2"
	UTexTiling  = "uTexTiling"
	UTexMix     = "uTexMix"
	UUseImage   = "uUseImage"
	UImage      = "uImage"

	UPickColor = "uPickColor"
)

// PhongUniforms lists every uniform of the Phong program.
var PhongUniforms = []string{
	UProjection, UView, UModel, UNormalMatrix, UColor,
	ULightEnabled, ULightPos, ULightColor, ULightIntensity,
	UAmbient, UDiffuse, USpecular, UShininess,
	UUseTexture, UTexColor1, UTexColor2, UTexTiling, UTexMix, UUseImage, UImage,
}

// PickUniforms lists every uniform of the pick program.
var PickUniforms = []string{UProjection, UView, UModel, UPickColor}
