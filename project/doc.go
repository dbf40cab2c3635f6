// Package project pushes canonical points onto a sphere.
//
// Every point keeps its id and angular position (elevation, azimuth) and
// gets radius R: cartesian → spherical → r := R → cartesian.
package project
