package editor

// TextMeasurer mide el ancho renderizado del documento con su FontSize.
type TextMeasurer interface {
	ContainerWidth(doc Document) float64
}
