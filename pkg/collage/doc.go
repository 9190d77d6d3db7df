// Package collage arranges a set of images into one grid collage.
//
// Plan chooses the grid, Fitter scales and crops each image to its cell, and
// Assembler places the cells on a white canvas while reporting progress.
// ListImages and Save sit at either end of a build; Assembler.AssembleFiles
// decodes the listed files just ahead of placing them. LoadFolder loads a
// whole folder into memory for callers that need the images themselves.
package collage
