package core

// Color says what a cell depicts. The platform decides how each one
// looks on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRoad
	ColorChicken

	// Cars are colored by travel direction.
	ColorCarEast
	ColorCarWest

	ColorText

	// ColorShade is a translucent overlay. Painting it keeps the glyphs
	// already on screen and only dims them.
	ColorShade
)
