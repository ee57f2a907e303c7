package outfit

var (
	bodyTypes     = []string{"Hourglass", "Pear", "Apple", "Rectangle", "Inverted Triangle"}
	bodyShapes    = []string{"Triangle", "Inverted Triangle", "Rectangle", "Hourglass", "Oval", "Diamond"}
	colorPalettes = []string{"Spring", "Summer", "Autumn", "Winter"}
)

// Options returns the form catalog. The flow itself accepts any non-blank value.
func Options() Catalog {
	return Catalog{
		BodyTypes:     append([]string(nil), bodyTypes...),
		BodyShapes:    append([]string(nil), bodyShapes...),
		ColorPalettes: append([]string(nil), colorPalettes...),
	}
}
