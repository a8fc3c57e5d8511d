package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 8

	// Rows of text reserved under the map for the message panel
	MessagePanelLines = 6
	// Height of one message line in pixels (ebitenutil debug font)
	MessageLineHeight = 16

	// Largest window the viewer will ask for
	MaxWindowWidth  = 1600
	MaxWindowHeight = 1000
)

// GetScreenDimensions returns the logical screen size in pixels for a grid
func GetScreenDimensions(gridWidth, gridHeight int) (width, height int) {
	return gridWidth * TileSize, gridHeight*TileSize + MessagePanelLines*MessageLineHeight
}

// GetWindowSize returns the recommended window size for a grid, scaled down
// to fit MaxWindowWidth x MaxWindowHeight while keeping the aspect ratio
func GetWindowSize(gridWidth, gridHeight int) (width, height int) {
	width, height = GetScreenDimensions(gridWidth, gridHeight)
	if width <= MaxWindowWidth && height <= MaxWindowHeight {
		return width, height
	}
	scaleW := float64(MaxWindowWidth) / float64(width)
	scaleH := float64(MaxWindowHeight) / float64(height)
	scale := min(scaleW, scaleH)
	return int(float64(width) * scale), int(float64(height) * scale)
}
