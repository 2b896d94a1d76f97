// Package layout implementa el ajuste de tamaño de fuente para que el contenido
// de la factura no desborde horizontalmente el ancho visible.
package layout

import "math"

// Valores por defecto del ajuste (px).
const (
	DefaultFontSize      = 12.0
	DefaultMinFontSize   = 9.0
	DefaultStep          = 0.5
	DefaultMaxIterations = 40
)

// FitState tamaño de fuente actual acotado por un piso y un máximo de iteraciones.
type FitState struct {
	FontSize      float64
	MinFontSize   float64
	MaxIterations int
}

// DefaultFitState estado inicial: 12px, piso de 9px, 40 iteraciones.
func DefaultFitState() FitState {
	return FitState{
		FontSize:      DefaultFontSize,
		MinFontSize:   DefaultMinFontSize,
		MaxIterations: DefaultMaxIterations,
	}
}

// MeasureFunc devuelve el ancho del contenedor renderizado con el tamaño de fuente dado.
type MeasureFunc func(fontSize float64) float64

// FitResult resultado de una pasada de ajuste.
type FitResult struct {
	FontSize    float64
	Iterations  int
	Width       float64 // última medición
	Overflowing bool    // sigue desbordando al terminar (piso o tope alcanzado)
}

// FitWithMeasure reduce el tamaño de fuente de a step mientras el contenedor desborde,
// la fuente esté por encima del piso y queden iteraciones. Vuelve a medir tras cada cambio.
// Nunca aumenta la fuente.
func FitWithMeasure(measure MeasureFunc, viewportWidth float64, state FitState, step float64) FitResult {
	current := state.FontSize
	width := measure(current)
	if step <= 0 {
		return FitResult{FontSize: current, Width: width, Overflowing: width > viewportWidth}
	}

	attempts := 0
	for width > viewportWidth && current > state.MinFontSize && attempts < state.MaxIterations {
		current = math.Max(state.MinFontSize, current-step)
		width = measure(current)
		attempts++
	}
	return FitResult{
		FontSize:    current,
		Iterations:  attempts,
		Width:       width,
		Overflowing: width > viewportWidth,
	}
}

// FitToWidth variante de una sola medición: el ancho del contenedor se considera fijo,
// así que si desborda se reduce hasta el piso o hasta agotar las iteraciones.
func FitToWidth(containerWidth, viewportWidth, currentFontSize, minFontSize, step float64, maxIterations int) float64 {
	res := FitWithMeasure(
		func(float64) float64 { return containerWidth },
		viewportWidth,
		FitState{FontSize: currentFontSize, MinFontSize: minFontSize, MaxIterations: maxIterations},
		step,
	)
	return res.FontSize
}
